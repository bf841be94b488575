package handlers

import (
	"log"
	"net/http"

	"taskify/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func RegisterHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Username        string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := utils.ValidateEmail(req.Email); err != nil {
		writeMessage(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if !utils.SamePassword(req.Password, req.ConfirmPassword) {
		writeMessage(w, http.StatusBadRequest, "Passwords do not match")
		return
	}
	if req.Username == "" {
		writeMessage(w, http.StatusBadRequest, "Username is required")
		return
	}

	inUse, err := utils.EmailInUse(req.Email, db)
	if err != nil {
		log.Println("Error checking email:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}
	if inUse {
		writeMessage(w, http.StatusConflict, "An account with this email already exists")
		return
	}

	taken, err := utils.UsernameInUse(req.Username, db)
	if err != nil {
		log.Println("Error checking username:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}
	if taken {
		writeMessage(w, http.StatusConflict, "That username is taken")
		return
	}

	if _, err := utils.RegisterUser(req.Email, req.Password, req.FirstName, req.LastName, req.Username, db); err != nil {
		log.Println("Error registering user:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	// Registration doubles as sign-in
	userID, err := utils.LoginUser(w, r, req.Email, req.Password, db, redisClient)
	if err != nil {
		log.Println("Error logging in after registration:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	user, err := utils.GetUser(userID, db)
	if err != nil {
		log.Println("Error loading user:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func LoginHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, err := utils.LoginUser(w, r, req.Email, req.Password, db, redisClient)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, err := utils.GetUser(userID, db)
	if err != nil {
		log.Println("Error loading user:", err)
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func LogOutHandler(w http.ResponseWriter, r *http.Request, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	if utils.CookieExists(r, "session_token") {
		st, _ := r.Cookie("session_token")
		if err := utils.DeleteSession(redisClient, st.Value); err != nil {
			log.Println("Error deleting session:", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    "",
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})

	writeMessage(w, http.StatusOK, "Signed out")
}

func ResetPasswordRequestHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inUse, err := utils.EmailInUse(req.Email, db)
	if err != nil {
		log.Println("Error checking email:", err)
		http.Error(w, "Reset request failed", http.StatusInternalServerError)
		return
	}

	// Same response whether or not the account exists
	if inUse {
		otp := utils.GenerateOTP()
		if err := utils.SetOTP(req.Email, otp, db); err != nil {
			log.Println("Error setting otp:", err)
			http.Error(w, "Reset request failed", http.StatusInternalServerError)
			return
		}
		if err := utils.SendOTP(req.Email, otp); err != nil {
			log.Println("Error sending otp:", err)
			http.Error(w, "Reset request failed", http.StatusInternalServerError)
			return
		}
	}

	writeMessage(w, http.StatusOK, "If that account exists, a reset code was emailed")
}

func ResetPasswordHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email           string `json:"email"`
		Code            string `json:"code"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := utils.CheckOTP(req.Code, req.Email, db)
	if err != nil || !ok {
		writeMessage(w, http.StatusUnauthorized, "Invalid or expired reset code")
		return
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if !utils.SamePassword(req.Password, req.ConfirmPassword) {
		writeMessage(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	userID, err := utils.ChangePassword(req.Email, req.Password, db)
	if err != nil {
		log.Println("Error changing password:", err)
		http.Error(w, "Password change failed", http.StatusInternalServerError)
		return
	}

	// A reset invalidates every session the old credential opened
	if err := utils.DeleteAllUserSessions(redisClient, userID); err != nil {
		log.Println("Error revoking sessions:", err)
	}

	writeMessage(w, http.StatusOK, "Password updated, please sign in")
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"taskify/handlers"
	"taskify/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}
	log.Println("environment: ", os.Getenv("APP_ENV"))

	pgDSN := os.Getenv("DATABASE_URL")

	// Initialize the database connection pool
	dbPool, pgErr := utils.OpenDB(pgDSN)
	if pgErr != nil {
		log.Fatalf("Failed to connect to database: %v", pgErr)
	}
	defer dbPool.Close()

	redisDSN := os.Getenv("REDIS_URL")
	redisPool := utils.OpenRedisPool(redisDSN)
	defer redisPool.Close()

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	// Identity
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		handlers.RegisterHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		handlers.LoginHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/logOut", func(w http.ResponseWriter, r *http.Request) {
		handlers.LogOutHandler(w, r, redisPool)
	})
	mux.HandleFunc("/reset-password/send-email", func(w http.ResponseWriter, r *http.Request) {
		handlers.ResetPasswordRequestHandler(w, r, dbPool)
	})
	mux.HandleFunc("/reset-password/update-password", func(w http.ResponseWriter, r *http.Request) {
		handlers.ResetPasswordHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		handlers.ProfileHandler(w, r, dbPool, redisPool)
	})

	// Project directory
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		handlers.ProjectsHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/projects/join", func(w http.ResponseWriter, r *http.Request) {
		handlers.JoinProjectHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/deleteProject/", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteProjectHandler(w, r, dbPool, redisPool)
	})

	// Task board
	mux.HandleFunc("/board", func(w http.ResponseWriter, r *http.Request) {
		handlers.BoardHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/addTask", func(w http.ResponseWriter, r *http.Request) {
		handlers.AddTaskHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/moveTask/", func(w http.ResponseWriter, r *http.Request) {
		handlers.MoveTaskHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/deleteTask/", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteTaskHandler(w, r, dbPool, redisPool)
	})

	// Comment threads
	mux.HandleFunc("/comments", func(w http.ResponseWriter, r *http.Request) {
		handlers.CommentsHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/addComment", func(w http.ResponseWriter, r *http.Request) {
		handlers.AddCommentHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/deleteComment/", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteCommentHandler(w, r, dbPool, redisPool)
	})

	// Calendar
	mux.HandleFunc("/calendar", func(w http.ResponseWriter, r *http.Request) {
		handlers.CalendarHandler(w, r, dbPool, redisPool)
	})

	// Live snapshots
	mux.HandleFunc("/events/projects", func(w http.ResponseWriter, r *http.Request) {
		handlers.ProjectEventsHandler(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/events/tasks", func(w http.ResponseWriter, r *http.Request) {
		handlers.TaskEventsHandler(w, r, dbPool, redisPool)
	})

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Start the server
	fmt.Println("Starting server on " + addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

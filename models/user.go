package models

type User struct {
	ID           string   `db:"id" json:"id"`
	FirstName    string   `db:"first_name" json:"firstName"`
	LastName     string   `db:"last_name" json:"lastName"`
	Username     string   `db:"username" json:"username"`
	Email        string   `db:"email" json:"email"`
	PasswordHash []byte   `db:"password_hash" json:"-"`
	Projects     []string `db:"projects" json:"projects"`
}

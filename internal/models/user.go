package models

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

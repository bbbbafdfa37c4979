package models

// Token is an opaque bearer credential, one per user, issued at signup.
// The key never expires and is returned verbatim at login.
type Token struct {
	Key    string `json:"key"`
	UserID int    `json:"user_id"`
}

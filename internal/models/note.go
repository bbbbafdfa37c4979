package models

// Note is a user-owned text record. The API representation carries only
// id and content; the owner is internal.
type Note struct {
	ID      int    `json:"id"`
	UserID  int    `json:"-"`
	Content string `json:"content"`
}

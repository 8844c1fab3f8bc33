package models

import "time"

// ClipboardFavorite marks one clipboard item as kept by its owner. A user
// favorites an item at most once.
type ClipboardFavorite struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	ClipboardID string        `json:"clipboard_id"`
	CreatedAt   time.Time     `json:"created_at"`
	Item        ClipboardItem `json:"item"`
}

// TableName returns the name of the database table
// associated with the ClipboardFavorite model.
func (f ClipboardFavorite) TableName() string {
	return "clipboard_favorites"
}

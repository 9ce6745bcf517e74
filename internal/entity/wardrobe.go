package entity

import "time"

// WardrobeItem is a garment the user has saved after analysis.
type WardrobeItem struct {
	ID          string    `json:"item_id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Color       string    `json:"color"`
	Pattern     string    `json:"pattern"`
	Fabric      string    `json:"fabric"`
	Description string    `json:"description"`
	Brand       string    `json:"brand,omitempty"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import (
	"time"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID                   int64     `json:"id" db:"id"`
	Title                string    `json:"title" db:"title"`
	Description          string    `json:"description" db:"description"`
	EventDate            time.Time `json:"event_date" db:"event_date"`
	Location             string    `json:"location" db:"location"`
	RegistrationRequired bool      `json:"registration_required" db:"registration_required"`
	MaxParticipants      *int      `json:"max_participants,omitempty" db:"max_participants"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}

// GalleryItem defines the gallery model based on the 'gallery' table
type GalleryItem struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewsItem defines the news model based on the 'news' table
type NewsItem struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Summary   *string   `json:"summary,omitempty" db:"summary"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FAQ defines the FAQ model based on the 'faqs' table
type FAQ struct {
	ID           int64     `json:"id" db:"id"`
	Question     string    `json:"question" db:"question"`
	Answer       string    `json:"answer" db:"answer"`
	Category     string    `json:"category" db:"category"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

package model

import "time"

// MoodEntry represents a single mood journal entry.
type MoodEntry struct {
	ID        int64
	UserID    int64
	Mood      string
	Notes     string
	CreatedAt time.Time
}

// MoodRequest represents a request to record a mood.
type MoodRequest struct {
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

// MoodResponse represents a mood entry in API responses.
type MoodResponse struct {
	ID        int64     `json:"id"`
	Mood      string    `json:"mood"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodCount is one row of a mood distribution.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

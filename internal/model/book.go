package model

import "time"

// Book represents a book in a user's personal library.
type Book struct {
	ID        int64
	UserID    int64
	Title     string
	Author    string
	Year      int
	Genre     string
	Read      bool
	CreatedAt time.Time
}

// BookRequest represents a request to add a book.
type BookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// ReadStatusRequest sets the read flag on a book.
type ReadStatusRequest struct {
	Read bool `json:"read"`
}

// BookResponse represents a book in API responses.
type BookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	Genre     string    `json:"genre"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// LibraryStats summarises a library.
type LibraryStats struct {
	Total  int `json:"total"`
	Read   int `json:"read"`
	Unread int `json:"unread"`
}

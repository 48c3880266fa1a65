package api

import "time"

// Event событие в формате передачи по сети
type Event struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	OwnerID   string    `json:"ownerId"`
}

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// EventsResponse список событий
type EventsResponse struct {
	Events []Event `json:"events"`
}

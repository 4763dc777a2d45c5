package models

import (
	"github.com/google/uuid"
)

// ChatRequest is a message submitted from the chat form or the JSON API.
type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

// ChatResponse contains one exchange returned by the JSON API.
// Message is the user text with markup neutralized; Reply may carry trusted
// template markup (<br />, <strong>, <ul>).
type ChatResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Reply   string    `json:"reply"`
	Crisis  bool      `json:"crisis"`
	Tags    []string  `json:"tags"`
}

// ClassifyResponse contains the classification of a message without a reply.
type ClassifyResponse struct {
	Crisis   bool     `json:"crisis"`
	Positive bool     `json:"positive"`
	Tags     []string `json:"tags"`
}

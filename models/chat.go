package models

import "time"

// ChatExchange is one user message and the generated reply, grouped by session.
// Exchanges are append-only and expire 30 days after creation via a TTL index.
type ChatExchange struct {
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Message   string    `bson:"message" json:"message"`
	Response  string    `bson:"response" json:"response"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ChatTurn is a single role-tagged message forwarded to the language model.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatSessionSummary is the per-session aggregate shown in the admin view.
type ChatSessionSummary struct {
	SessionID    string    `bson:"_id" json:"sessionId"`
	MessageCount int       `bson:"messageCount" json:"messageCount"`
	LastMessage  string    `bson:"lastMessage" json:"lastMessage"`
	LastResponse string    `bson:"lastResponse" json:"lastResponse"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

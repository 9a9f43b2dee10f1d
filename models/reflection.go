package models

import "time"

// Reflection is a journal-style design write-up managed from the admin
// dashboard. AISummary is generated once on demand and cached permanently.
type Reflection struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content,omitempty" json:"content,omitempty"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	ReadTime    string    `bson:"readTime" json:"readTime"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	IsPublished bool      `bson:"isPublished" json:"isPublished"`
	AISummary   string    `bson:"aiSummary,omitempty" json:"aiSummary,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReflectionInput is the admin create/update payload.
type ReflectionInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	ReadTime    string   `json:"readTime"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a transcript. Timestamp is an RFC3339 string, kept
// as text because the wire format and the stores treat it opaquely.
type Message struct {
	Role      string `json:"role" bson:"role" firestore:"role"`
	Content   string `json:"content" bson:"content" firestore:"content"`
	Timestamp string `json:"timestamp" bson:"timestamp" firestore:"timestamp"`
}

// Conversation is an append-only transcript owned by one user. Messages are
// ordered by insertion; concurrent turns on the same id are last-write-wins.
type Conversation struct {
	ID          string    `json:"id" bson:"_id" firestore:"id"`
	UserID      string    `json:"userId" bson:"user_id" firestore:"userId"`
	Messages    []Message `json:"messages" bson:"messages" firestore:"messages"`
	LastUpdated time.Time `json:"lastUpdated" bson:"last_updated" firestore:"lastUpdated"`
	Intent      string    `json:"intent,omitempty" bson:"intent,omitempty" firestore:"intent"`
}

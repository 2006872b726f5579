package models

import "time"

// Summary is a URL submitted for summarization.
// Collection: summaries
//
// The _id is an application-assigned integer taken from the counters
// collection, so ids are unique, increasing and never reused.
type Summary struct {
	ID         int64          `bson:"_id" json:"id"`
	URL        string         `bson:"url" json:"url"`
	Summary    string         `bson:"summary" json:"summary"`
	Generation GenerationInfo `bson:"generation" json:"generation"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `bson:"updated_at" json:"updated_at"`
}

// GenerationInfo is a snapshot of the background generation that last filled
// the summary text. Zero while the record is still pending and after a manual
// update overwrote the generated text.
type GenerationInfo struct {
	Specifier     string    `bson:"specifier,omitempty" json:"specifier,omitempty"`
	SentenceCount int       `bson:"sentence_count,omitempty" json:"sentence_count,omitempty"`
	GeneratedAt   time.Time `bson:"generated_at,omitempty" json:"generated_at,omitempty"`
}

package dto

import (
	"time"

	"summarly/models"
)

// SummaryPayloadDTO is the create request body.
// summarizer_specifier is opaque here; unknown values fall back to the
// default strategy at generation time.
type SummaryPayloadDTO struct {
	URL                 string `json:"url" binding:"required,url" example:"https://example.com"`
	SummarizerSpecifier string `json:"summarizer_specifier" example:"leading"`
	SentenceCount       int    `json:"sentence_count" binding:"required,gt=0" example:"3"`
}

// SummaryUpdatePayloadDTO is the update request body. Both fields are
// replaced wholesale; no partial update.
type SummaryUpdatePayloadDTO struct {
	URL     string `json:"url" binding:"required,url" example:"https://example.com"`
	Summary string `json:"summary" binding:"required" example:"edited summary text"`
}

// SummaryCreatedDTO echoes the create request together with the assigned id.
// The generated text is not part of it; generation has not run yet.
type SummaryCreatedDTO struct {
	ID                  int64  `json:"id" example:"1"`
	URL                 string `json:"url" example:"https://example.com"`
	SummarizerSpecifier string `json:"summarizer_specifier" example:"leading"`
	SentenceCount       int    `json:"sentence_count" example:"3"`
}

// SummaryDTO is the read model for a stored summary record.
type SummaryDTO struct {
	ID        int64     `json:"id" example:"1"`
	URL       string    `json:"url" example:"https://example.com"`
	Summary   string    `json:"summary" example:"generated summary text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSummaryDTO(s models.Summary) SummaryDTO {
	return SummaryDTO{
		ID:        s.ID,
		URL:       s.URL,
		Summary:   s.Summary,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FeedPayloadDTO is the feed ingestion request body. Every item of the feed
// (bounded by limit) becomes its own summary record.
type FeedPayloadDTO struct {
	FeedURL             string `json:"feed_url" binding:"required,url" example:"https://example.com/feed"`
	SummarizerSpecifier string `json:"summarizer_specifier" example:"leading"`
	SentenceCount       int    `json:"sentence_count" binding:"required,gt=0" example:"3"`
	Limit               int    `json:"limit" binding:"omitempty,gt=0" example:"10"`
}

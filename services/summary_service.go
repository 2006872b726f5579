package services

import (
	"context"

	"summarly/dto"
	"summarly/feeder"
	"summarly/models"
	"summarly/task"
)

// SummaryStore is the persistence contract the service depends on.
// Absent records surface as repositories.ErrNotFound.
type SummaryStore interface {
	Insert(ctx context.Context, url string) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Summary, error)
	FindAll(ctx context.Context) ([]models.Summary, error)
	Update(ctx context.Context, id int64, url, summary string) (*models.Summary, error)
	Delete(ctx context.Context, id int64) (*models.Summary, error)
}

// Generator is the summarization collaborator. It owns its own error
// handling; Generate never reports back.
type Generator interface {
	Generate(ctx context.Context, id int64, url, specifier string, sentenceCount int)
}

// SummaryService encapsulates the summary lifecycle and DTO mapping.
// Background generation goes through the injected Scheduler so tests can
// run it synchronously or not at all.
type SummaryService struct {
	store     SummaryStore
	scheduler task.Scheduler
	generator Generator

	defaultSpecifier string

	// FetchFeed defaults to feeder.FetchItems and is swappable in tests.
	FetchFeed func(ctx context.Context, feedURL string, limit int) ([]feeder.FeedItem, error)
}

func NewSummaryService(store SummaryStore, scheduler task.Scheduler, generator Generator, defaultSpecifier string) *SummaryService {
	return &SummaryService{
		store:            store,
		scheduler:        scheduler,
		generator:        generator,
		defaultSpecifier: defaultSpecifier,
		FetchFeed:        feeder.FetchItems,
	}
}

// Create persists a new record with empty summary text and schedules the
// generation task. The response echoes the request plus the assigned id;
// it never waits for the generated text.
func (s *SummaryService) Create(ctx context.Context, payload dto.SummaryPayloadDTO) (*dto.SummaryCreatedDTO, error) {
	specifier := payload.SummarizerSpecifier
	if specifier == "" {
		specifier = s.defaultSpecifier
	}

	id, err := s.store.Insert(ctx, payload.URL)
	if err != nil {
		return nil, err
	}

	s.scheduleGeneration(id, payload.URL, specifier, payload.SentenceCount)

	return &dto.SummaryCreatedDTO{
		ID:                  id,
		URL:                 payload.URL,
		SummarizerSpecifier: specifier,
		SentenceCount:       payload.SentenceCount,
	}, nil
}

// Get returns the record as stored right now; the summary text may still be
// empty if generation has not completed.
func (s *SummaryService) Get(ctx context.Context, id int64) (*dto.SummaryDTO, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewSummaryDTO(*m)
	return &d, nil
}

// List returns every stored record in insertion order.
func (s *SummaryService) List(ctx context.Context) ([]dto.SummaryDTO, error) {
	items, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SummaryDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.NewSummaryDTO(m))
	}
	return out, nil
}

// Update overwrites url and summary wholesale. It does not re-trigger
// generation; the caller supplies the final text.
func (s *SummaryService) Update(ctx context.Context, id int64, payload dto.SummaryUpdatePayloadDTO) (*dto.SummaryDTO, error) {
	m, err := s.store.Update(ctx, id, payload.URL, payload.Summary)
	if err != nil {
		return nil, err
	}
	d := dto.NewSummaryDTO(*m)
	return &d, nil
}

// Delete removes the record and returns its pre-deletion snapshot. An
// already-scheduled generation task for this id is not cancelled; its
// eventual write hits a missing id and is dropped by the generator.
func (s *SummaryService) Delete(ctx context.Context, id int64) (*dto.SummaryDTO, error) {
	m, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewSummaryDTO(*m)
	return &d, nil
}

// CreateFromFeed fetches a feed and creates one summary record per entry,
// each with its own scheduled generation.
func (s *SummaryService) CreateFromFeed(ctx context.Context, payload dto.FeedPayloadDTO) ([]dto.SummaryCreatedDTO, error) {
	specifier := payload.SummarizerSpecifier
	if specifier == "" {
		specifier = s.defaultSpecifier
	}

	items, err := s.FetchFeed(ctx, payload.FeedURL, payload.Limit)
	if err != nil {
		return nil, err
	}

	created := make([]dto.SummaryCreatedDTO, 0, len(items))
	for _, item := range items {
		id, err := s.store.Insert(ctx, item.Link)
		if err != nil {
			return nil, err
		}
		s.scheduleGeneration(id, item.Link, specifier, payload.SentenceCount)
		created = append(created, dto.SummaryCreatedDTO{
			ID:                  id,
			URL:                 item.Link,
			SummarizerSpecifier: specifier,
			SentenceCount:       payload.SentenceCount,
		})
	}
	return created, nil
}

func (s *SummaryService) scheduleGeneration(id int64, url, specifier string, sentenceCount int) {
	s.scheduler.Schedule("summary.generate", func(ctx context.Context) {
		s.generator.Generate(ctx, id, url, specifier, sentenceCount)
	})
}

package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"summarly/models"
)

// ErrNotFound is returned when no summary exists for a well-formed id.
var ErrNotFound = errors.New("summary not found")

type SummaryRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewSummaryRepository(db *mongo.Database) *SummaryRepository {
	return &SummaryRepository{db: db, col: db.Collection("summaries")}
}

// Insert creates a new summary record with empty summary text and returns
// the assigned id.
func (r *SummaryRepository) Insert(ctx context.Context, url string) (int64, error) {
	id, err := NextSequence(ctx, r.db, "summaries")
	if err != nil {
		return 0, err
	}
	now := time.Now()
	s := models.Summary{
		ID:        id,
		URL:       url,
		Summary:   "",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return 0, err
	}
	return id, nil
}

// FindByID returns a summary by id.
func (r *SummaryRepository) FindByID(ctx context.Context, id int64) (*models.Summary, error) {
	var s models.Summary
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll returns every summary in insertion order.
func (r *SummaryRepository) FindAll(ctx context.Context) ([]models.Summary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Summary, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites url and summary wholesale and returns the updated record.
// The generation snapshot is cleared because the stored text is no longer
// the generated one.
func (r *SummaryRepository) Update(ctx context.Context, id int64, url, summary string) (*models.Summary, error) {
	update := bson.M{"$set": bson.M{
		"url":        url,
		"summary":    summary,
		"generation": models.GenerationInfo{},
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var s models.Summary
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a summary and returns the record as it existed right
// before deletion.
func (r *SummaryRepository) Delete(ctx context.Context, id int64) (*models.Summary, error) {
	var s models.Summary
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// SetGenerated writes the generated summary text produced by the background
// job. Returns ErrNotFound when the record was deleted while generation was
// in flight; the caller decides whether that is worth more than a log line.
func (r *SummaryRepository) SetGenerated(ctx context.Context, id int64, text string, info models.GenerationInfo) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"summary":    text,
		"generation": info,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

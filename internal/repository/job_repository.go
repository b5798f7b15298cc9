package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"job-tracker/internal/database"
	"job-tracker/internal/database/mongodb"
	"job-tracker/internal/domain/job"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type ListFilter struct {
	Status   string
	Platform string
	Limit    int
	Skip     int
}

type JobRepository interface {
	Insert(ctx context.Context, rec *job.Record) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*job.Record, error)
	FindByURL(ctx context.Context, url *string) (*job.Record, error)
	List(ctx context.Context, filter ListFilter) ([]job.Record, error)
	Update(ctx context.Context, id bson.ObjectID, upd job.Update) error
	Delete(ctx context.Context, id bson.ObjectID) error
	Search(ctx context.Context, query string, limit int) ([]job.Record, error)
	Count(ctx context.Context) (int64, error)
	CountByField(ctx context.Context, field string) (map[string]int64, error)
}

type MongoJobRepository struct {
	db database.DB
}

func NewMongoJobRepository(db database.DB) *MongoJobRepository {
	return &MongoJobRepository{db: db}
}

func (r *MongoJobRepository) col() *mongo.Collection {
	return r.db.Collection(mongodb.ColJobs)
}

func (r *MongoJobRepository) Insert(ctx context.Context, rec *job.Record) (bson.ObjectID, error) {
	res, err := r.col().InsertOne(ctx, rec)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("repository: insert job: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("repository: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *MongoJobRepository) FindByID(ctx context.Context, id bson.ObjectID) (*job.Record, error) {
	var rec job.Record
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("repository: find job by id: %w", err)
	}
	return &rec, nil
}

// FindByURL returns the first record whose url equals the given value, or
// (nil, nil) when none matches. A nil url matches records saved without one.
func (r *MongoJobRepository) FindByURL(ctx context.Context, url *string) (*job.Record, error) {
	filter := bson.M{"url": nil}
	if url != nil {
		filter["url"] = *url
	}

	var rec job.Record
	err := r.col().FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: find job by url: %w", err)
	}
	return &rec, nil
}

func (r *MongoJobRepository) List(ctx context.Context, filter ListFilter) ([]job.Record, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "date_saved", Value: -1}})
	if filter.Limit > 0 {
		findOpts.SetLimit(int64(filter.Limit))
	}
	if filter.Skip > 0 {
		findOpts.SetSkip(int64(filter.Skip))
	}

	cursor, err := r.col().Find(ctx, buildListFilter(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("repository: list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	recs := make([]job.Record, 0)
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("repository: list jobs decode: %w", err)
	}
	return recs, nil
}

func (r *MongoJobRepository) Update(ctx context.Context, id bson.ObjectID, upd job.Update) error {
	set := setFields(upd)
	if len(set) == 0 {
		return nil
	}

	res, err := r.col().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("repository: update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *MongoJobRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("repository: delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *MongoJobRepository) Search(ctx context.Context, query string, limit int) ([]job.Record, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "date_saved", Value: -1}})
	if limit > 0 {
		findOpts.SetLimit(int64(limit))
	}

	cursor, err := r.col().Find(ctx, searchFilter(query), findOpts)
	if err != nil {
		return nil, fmt.Errorf("repository: search jobs: %w", err)
	}
	defer cursor.Close(ctx)

	recs := make([]job.Record, 0)
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("repository: search jobs decode: %w", err)
	}
	return recs, nil
}

func (r *MongoJobRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("repository: count jobs: %w", err)
	}
	return n, nil
}

// CountByField groups the whole collection by the given field and counts
// each distinct value. Records missing the field land under "unknown".
func (r *MongoJobRepository) CountByField(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.col().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("repository: aggregate %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    *string `bson:"_id"`
		Count int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("repository: aggregate %s decode: %w", field, err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := "unknown"
		if row.ID != nil {
			key = *row.ID
		}
		out[key] += row.Count
	}
	return out, nil
}

func buildListFilter(filter ListFilter) bson.M {
	q := bson.M{}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	if filter.Platform != "" {
		q["platform"] = filter.Platform
	}
	return q
}

// searchFilter builds a case-insensitive substring match on title or
// company. The query is escaped so regex metacharacters match literally.
func searchFilter(query string) bson.M {
	pattern := regexp.QuoteMeta(query)
	return bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": pattern, "$options": "i"}},
		{"company": bson.M{"$regex": pattern, "$options": "i"}},
	}}
}

func setFields(upd job.Update) bson.M {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Company != nil {
		set["company"] = *upd.Company
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	return set
}

package job

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StatusSaved is the status stamped on records created without one. The
// field is otherwise free-form; the client supplies its own pipeline values.
const StatusSaved = "saved"

// Record is a single saved job application. Every optional field is a
// pointer so "absent" survives the trip through the store unchanged.
type Record struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       *string       `bson:"title"`
	Company     *string       `bson:"company"`
	URL         *string       `bson:"url"`
	Platform    *string       `bson:"platform"`
	Location    *string       `bson:"location"`
	Description *string       `bson:"description"`
	Status      string        `bson:"status"`
	Notes       *string       `bson:"notes"`
	DateSaved   *time.Time    `bson:"date_saved"`
}

// Update carries the restricted field subset a caller may change. Nil means
// "leave untouched"; url, platform, description and date_saved are never
// updatable.
type Update struct {
	Title    *string
	Company  *string
	Location *string
	Status   *string
	Notes    *string
}

// IsEmpty reports whether the update would change nothing.
func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Company == nil && u.Location == nil && u.Status == nil && u.Notes == nil
}

// Summary is the aggregate view over the whole collection.
type Summary struct {
	TotalJobs       int64
	StatusBreakdown map[string]int64
	Platforms       map[string]int64
}

package store

import (
	"context"
	"time"
)

// KVRepo is keyed record storage for client-side state. The learner
// profile and the API credential live here as JSON and plain strings
// under well-known keys.
type KVRepo interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, creating or replacing it.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the record for key. Removing an absent key is not
	// an error.
	Remove(ctx context.Context, key string) error
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QuizResultEventData captures one finished quiz for the append-only log.
type QuizResultEventData struct {
	UnitID           string
	UnitTitle        string
	Level            int
	Score            int
	Total            int
	TimeSpentSeconds int
	Passed           bool
}

// LLMRequestRecord is a stored model request event row.
type LLMRequestRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates request events for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates request events for one model id.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizResult records a finished quiz.
	AppendQuizResult(ctx context.Context, data QuizResultEventData) error

	// RecentLLMRequests returns up to limit request events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// GetLLMRequest returns one request event by row id, nil if absent.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error)

	// UsageByPurpose aggregates token usage grouped by purpose.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// UsageByModel aggregates token usage grouped by model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Snapshot is a point-in-time backup of the learner profile.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Profile   string // profile JSON as stored
}

// SnapshotRepo manages learner profile backups.
type SnapshotRepo interface {
	// Save stores a new snapshot of the given profile JSON.
	Save(ctx context.Context, profileJSON string) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// path: internal/archive/archive.go

// Package archive persists replay outcomes to MongoDB. It is optional
// wiring: the replay tooling runs without it when no database address
// is configured.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chess_arbiter/internal/config"
	"chess_arbiter/internal/replay"
)

const opTimeout = 5 * time.Second

// Record is one archived replay outcome.
type Record struct {
	ID       string    `bson:"_id"`
	Source   string    `bson:"source"`
	Label    string    `bson:"label"`
	Passed   bool      `bson:"passed"`
	Moves    int       `bson:"moves"`
	FinalFEN string    `bson:"final_fen,omitempty"`
	FailPly  int       `bson:"fail_ply,omitempty"`
	FailMove string    `bson:"fail_move,omitempty"`
	FailWhy  string    `bson:"fail_why,omitempty"`
	RunAt    time.Time `bson:"run_at"`
}

// NewRecord builds an archive record from a replay result.
func NewRecord(source string, res replay.Result) Record {
	rec := Record{
		ID:       uuid.NewString(),
		Source:   source,
		Label:    res.Label,
		Passed:   res.Passed(),
		Moves:    res.Moves,
		FinalFEN: res.FinalFEN,
		RunAt:    time.Now().UTC(),
	}
	if res.Err != nil {
		rec.FailPly = res.Err.Ply
		rec.FailMove = res.Err.MoveText
		rec.FailWhy = res.Err.Err.Error()
	}
	return rec
}

// Client wraps the mongo connection and the replay collection.
type Client struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect opens the configured database and resolves the collection.
func Connect(ctx context.Context, cfg *config.Configuration) (*Client, error) {
	clientOpts := options.Client().ApplyURI(cfg.Database.Address)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("archive: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("archive: ping: %w", err)
	}
	collection := client.Database(cfg.Database.DatabaseName).Collection(cfg.Database.Collection)
	return &Client{client: client, collection: collection}, nil
}

// Close disconnects from the database.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// SaveRun archives every result of a batch under one source name.
func (c *Client) SaveRun(ctx context.Context, source string, summary replay.Summary) error {
	if len(summary.Results) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(summary.Results))
	for _, res := range summary.Results {
		docs = append(docs, NewRecord(source, res))
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := c.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("archive: insert run: %w", err)
	}
	return nil
}

// ListFailures returns the archived failures for a source, newest first.
func (c *Client) ListFailures(ctx context.Context, source string) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	filter := bson.M{"source": source, "passed": false}
	opts := options.Find().SetSort(bson.D{{Key: "run_at", Value: -1}})
	cursor, err := c.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("archive: list failures: %w", err)
	}
	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("archive: decode failures: %w", err)
	}
	return records, nil
}

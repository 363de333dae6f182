// Package snapshot persists point-in-time audit results to MongoDB so a
// workspace's dependency structure can be compared across checkouts.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/cargoscope/pkg/graph"
)

// ErrNotFound is returned when a snapshot ID does not exist.
var ErrNotFound = errors.New("snapshot not found")

const collectionName = "snapshots"

// Snapshot is a point-in-time capture of one audit run.
type Snapshot struct {
	ID        string      `json:"id" bson:"id"`
	Root      string      `json:"root" bson:"root"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	Nodes     int         `json:"nodes" bson:"nodes"`
	Edges     int         `json:"edges" bson:"edges"`
	Unused    []string    `json:"unused" bson:"unused"`
	Graph     graph.Graph `json:"graph" bson:"graph"`
}

// New builds a snapshot from a serialized graph. Unused projects are
// derived from the edge set so the stored summary matches the report the
// run produced.
func New(root string, g graph.Graph) Snapshot {
	var unused []string
	counts := g.Dependents()
	for _, n := range g.Nodes {
		if counts[n.ID] == 0 {
			unused = append(unused, n.ID)
		}
	}
	return Snapshot{
		ID:        uuid.NewString(),
		Root:      root,
		CreatedAt: time.Now().UTC(),
		Nodes:     len(g.Nodes),
		Edges:     len(g.Edges),
		Unused:    unused,
		Graph:     g,
	}
}

// Store persists snapshots in a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect opens a store against the given MongoDB URI and database.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
	}, nil
}

// Save inserts a snapshot.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if _, err := s.coll.InsertOne(ctx, snap); err != nil {
		return fmt.Errorf("insert snapshot %s: %w", snap.ID, err)
	}
	return nil
}

// List returns up to limit snapshots, newest first.
func (s *Store) List(ctx context.Context, limit int64) ([]Snapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer cur.Close(ctx)

	var snaps []Snapshot
	if err := cur.All(ctx, &snaps); err != nil {
		return nil, fmt.Errorf("decode snapshots: %w", err)
	}
	return snaps, nil
}

// Get returns the snapshot with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := s.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	return snap, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

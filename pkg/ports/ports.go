// Package ports declares the driven-side contracts the engine core
// depends on, keeping adapters (memory, Redis) swappable.
package ports

import (
	"context"
	"errors"
	"time"
)

// ErrRunNotFound is returned when a run record cannot be found.
var ErrRunNotFound = errors.New("run not found")

// RunRecord summarizes one completed sort run.
type RunRecord struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Size        int       `json:"size"`
	Steps       int       `json:"steps"`
	Sorted      []int     `json:"sorted"`
	CompletedAt time.Time `json:"completed_at"`
}

// RunStore persists completed run records.
type RunStore interface {
	Save(ctx context.Context, rec RunRecord) error
	Load(ctx context.Context, id string) (RunRecord, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

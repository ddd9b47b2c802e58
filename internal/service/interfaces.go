package service

import (
	"context"
	"errors"
)

// ErrSyncInFlight reports that a save or load was skipped because another
// sync is running. The caller retries on the next autosave tick or manual
// save; requests are never queued or interleaved.
var ErrSyncInFlight = errors.New("sync already in flight")

// SyncService moves the whole plan between the in-memory store and storage.
// The in-memory plan is authoritative: a failed save changes nothing in
// memory, a successful load replaces the plan wholesale.
type SyncService interface {
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	InFlight() bool
}

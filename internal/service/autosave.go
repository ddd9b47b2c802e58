package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// Autosaver persists the plan in the background. Mutations mark it dirty;
// a ticker flushes dirty state through the sync service. A flush that loses
// the in-flight race stays dirty and retries on the next tick.
type Autosaver struct {
	syncer   SyncService
	interval time.Duration
	onError  func(error)
	dirty    atomic.Bool
	stop     chan struct{}
	done     chan struct{}
}

func NewAutosaver(syncer SyncService, interval time.Duration) *Autosaver {
	return &Autosaver{
		syncer:   syncer,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// MarkDirty schedules a save on the next tick. Safe from any goroutine;
// wire it to the store's change hook.
func (a *Autosaver) MarkDirty() {
	a.dirty.Store(true)
}

// OnError registers a callback for failed background saves. Must be set
// before Start. An in-flight skip is not reported; the state stays dirty and
// the next tick retries.
func (a *Autosaver) OnError(fn func(error)) {
	a.onError = fn
}

// Start launches the flush loop. Call Stop to end it.
func (a *Autosaver) Start() {
	go a.loop()
}

// Stop flushes any pending change and waits for the loop to exit.
func (a *Autosaver) Stop() {
	close(a.stop)
	<-a.done
}

func (a *Autosaver) loop() {
	defer close(a.done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.flush()
		case <-a.stop:
			a.flush()
			return
		}
	}
}

func (a *Autosaver) flush() {
	if !a.dirty.Swap(false) {
		return
	}
	if err := a.syncer.Save(context.Background()); err != nil {
		a.dirty.Store(true)
		if a.onError != nil && !errors.Is(err, ErrSyncInFlight) {
			a.onError(err)
		}
	}
}

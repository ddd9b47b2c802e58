package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tasselapp/tassel/internal/db"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/planner"
	"github.com/tasselapp/tassel/internal/repository"
)

type syncService struct {
	store    *planner.Store
	database db.DBTX
	uow      db.UnitOfWork
	inFlight atomic.Bool
}

// NewSyncService wires the planner store to SQLite storage. Reads go through
// database directly; the save path builds tx-scoped repositories from uow.
func NewSyncService(store *planner.Store, database db.DBTX, uow db.UnitOfWork) SyncService {
	return &syncService{store: store, database: database, uow: uow}
}

func (s *syncService) InFlight() bool {
	return s.inFlight.Load()
}

// Save writes a snapshot of the whole plan in one transaction, replacing
// whatever was stored before. A concurrent sync causes ErrSyncInFlight.
func (s *syncService) Save(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSyncInFlight
	}
	defer s.inFlight.Store(false)

	plan := s.store.Snapshot()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		degrees := repository.NewSQLiteDegreeRepo(tx)
		semesters := repository.NewSQLiteSemesterRepo(tx)
		courses := repository.NewSQLiteCourseRepo(tx)
		notes := repository.NewSQLiteNoteRepo(tx)

		// Stored rows mirror the snapshot exactly: clear, then write.
		// Deleting semesters cascades to their courses.
		if err := semesters.DeleteAll(ctx); err != nil {
			return err
		}
		if err := notes.DeleteAll(ctx); err != nil {
			return err
		}

		if plan.Degree != nil {
			if err := degrees.Upsert(ctx, plan.Degree); err != nil {
				return err
			}
		} else if err := degrees.Delete(ctx); err != nil {
			return err
		}

		for i, sem := range plan.Semesters {
			if err := semesters.Upsert(ctx, sem, i); err != nil {
				return err
			}
			for j, c := range sem.Courses {
				if err := courses.Upsert(ctx, sem.ID, c, j); err != nil {
					return err
				}
			}
		}

		for id, body := range plan.Notes {
			if err := notes.Upsert(ctx, id, body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

// Load reads the stored plan and installs it as the in-memory baseline; undo
// history is cleared, so the loaded plan is the floor undo can reach. On any
// read error the in-memory plan is left untouched.
func (s *syncService) Load(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSyncInFlight
	}
	defer s.inFlight.Store(false)

	degrees := repository.NewSQLiteDegreeRepo(s.database)
	semesters := repository.NewSQLiteSemesterRepo(s.database)
	courses := repository.NewSQLiteCourseRepo(s.database)
	notes := repository.NewSQLiteNoteRepo(s.database)

	plan := domain.NewPlan()

	degree, err := degrees.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading degree: %w", err)
	}
	plan.Degree = degree

	sems, err := semesters.List(ctx)
	if err != nil {
		return fmt.Errorf("loading semesters: %w", err)
	}
	for _, sem := range sems {
		cs, err := courses.ListBySemester(ctx, sem.ID)
		if err != nil {
			return fmt.Errorf("loading courses for %s: %w", sem.ID, err)
		}
		if cs != nil {
			sem.Courses = cs
		}
		plan.Semesters = append(plan.Semesters, sem)
	}

	noteMap, err := notes.Map(ctx)
	if err != nil {
		return fmt.Errorf("loading notes: %w", err)
	}
	plan.Notes = noteMap

	s.store.Seed(plan)
	return nil
}

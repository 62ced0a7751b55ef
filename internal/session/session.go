// Package session owns the in-memory job collection for an authenticated
// session and mirrors it to persistent storage.
package session

import (
	"context"
	"log"
	"sync"

	"github.com/titanhire/titanhire/internal/jobs"
	"github.com/titanhire/titanhire/internal/storage"
	"github.com/titanhire/titanhire/internal/types"
)

// Session holds the authoritative job collection between login and logout.
// The collection is ordered newest-first. All state is session-scoped;
// End resets it fully without touching persisted storage.
type Session struct {
	mu       sync.Mutex
	adapter  *storage.Adapter
	jobs     []types.Job
	activeID string
	started  bool
}

// New creates a session over the given persistence adapter. The session is
// empty until Start.
func New(adapter *storage.Adapter) *Session {
	return &Session{adapter: adapter}
}

// Start loads the persisted collection. Invalid records are filtered and
// parse failures fall back to an empty collection; Start never fails.
func (s *Session) Start(ctx context.Context) {
	loaded := s.adapter.LoadJobs(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = loaded
	s.activeID = ""
	s.started = true
}

// End clears the in-memory collection and active selection. Persisted
// storage is left as-is: the jobs key is global per install, so the next
// session reloads the same data.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = nil
	s.activeID = ""
	s.started = false
}

// Started reports whether the session is active.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Jobs returns a copy of the collection, newest-first.
func (s *Session) Jobs() []types.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Job returns the job with the given id, if present.
func (s *Session) Job(id string) (types.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, job := range s.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return types.Job{}, false
}

// Active returns the currently selected job, if any.
func (s *Session) Active() (types.Job, bool) {
	s.mu.Lock()
	id := s.activeID
	s.mu.Unlock()
	if id == "" {
		return types.Job{}, false
	}
	return s.Job(id)
}

// CreateJob builds a fresh job, prepends it to the collection and marks it
// as the active selection.
func (s *Session) CreateJob(ctx context.Context) types.Job {
	job := jobs.NewJob()

	s.mu.Lock()
	s.jobs = append([]types.Job{job}, s.jobs...)
	s.activeID = job.ID
	s.mu.Unlock()

	s.persist(ctx)
	return job
}

// ReplaceJob swaps the record matching updated.ID. A record with no id is
// rejected with InvalidJobError and the collection is left unchanged. An
// unmatched id is a silent no-op.
func (s *Session) ReplaceJob(ctx context.Context, updated types.Job) error {
	if updated.ID == "" {
		err := &jobs.InvalidJobError{Op: "replace"}
		log.Printf("Invalid job update: %v", err)
		return err
	}

	s.mu.Lock()
	replaced := false
	for i, job := range s.jobs {
		if job.ID == updated.ID {
			s.jobs[i] = updated
			replaced = true
			break
		}
	}
	if replaced {
		s.activeID = updated.ID
	}
	s.mu.Unlock()

	if replaced {
		s.persist(ctx)
	}
	return nil
}

// DeleteJob removes the record with the given id. Deleting an unknown id
// leaves the collection unchanged; deleting the active job clears the
// active selection.
func (s *Session) DeleteJob(ctx context.Context, id string) error {
	if id == "" {
		err := &jobs.InvalidJobError{Op: "delete"}
		log.Printf("Invalid job ID for deletion: %v", err)
		return err
	}

	s.mu.Lock()
	kept := s.jobs[:0]
	for _, job := range s.jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	s.jobs = kept
	if s.activeID == id {
		s.activeID = ""
	}
	s.mu.Unlock()

	s.persist(ctx)
	return nil
}

// persist mirrors the collection to storage after a mutation. An emptied
// collection is not written, so storage can retain stale data after the
// last job is deleted; sessions observed this behavior and it is kept.
func (s *Session) persist(ctx context.Context) {
	s.mu.Lock()
	snapshot := make([]types.Job, len(s.jobs))
	copy(snapshot, s.jobs)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		return
	}
	s.adapter.SaveJobs(ctx, snapshot)
}

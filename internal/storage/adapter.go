package storage

import (
	"context"
	"encoding/json"
	"log"

	"github.com/titanhire/titanhire/internal/schemas"
	"github.com/titanhire/titanhire/internal/types"
)

// Adapter wraps a Store with JSON encoding and failure isolation. Reads
// never fail: parse and storage errors are logged and fall back to empty
// defaults. Writes are best-effort and report success without blocking
// in-memory progress on failure.
type Adapter struct {
	store Store
}

// NewAdapter creates an adapter over the given store.
func NewAdapter(store Store) *Adapter {
	return &Adapter{store: store}
}

// LoadJobs reads the persisted job collection. Records missing an id or
// title are dropped, never mutated. Any failure yields an empty collection.
func (a *Adapter) LoadJobs(ctx context.Context) []types.Job {
	data, err := a.store.Get(ctx, KeyJobs)
	if err != nil {
		log.Printf("Error loading jobs from storage: %v", err)
		return []types.Job{}
	}
	if data == nil {
		return []types.Job{}
	}

	// Advisory schema check; a failing document is still decoded and
	// filtered below.
	if err := schemas.ValidateJSONString(schemas.JobsCollection, string(data)); err != nil {
		log.Printf("Persisted job collection failed schema check: %v", err)
	}

	var parsed []types.Job
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Printf("Error parsing jobs from storage: %v", err)
		return []types.Job{}
	}

	valid := make([]types.Job, 0, len(parsed))
	for _, job := range parsed {
		if job.Listable() {
			valid = append(valid, job)
		}
	}
	return valid
}

// SaveJobs writes the job collection. Returns false (after logging) on
// failure.
func (a *Adapter) SaveJobs(ctx context.Context, collection []types.Job) bool {
	data, err := json.Marshal(collection)
	if err != nil {
		log.Printf("Error encoding jobs for storage: %v", err)
		return false
	}
	if err := a.store.Set(ctx, KeyJobs, data); err != nil {
		log.Printf("Error saving jobs to storage: %v", err)
		return false
	}
	return true
}

// LoadUser reads the cached user profile, or nil when absent or unreadable.
func (a *Adapter) LoadUser(ctx context.Context) *types.User {
	data, err := a.store.Get(ctx, KeyUser)
	if err != nil {
		log.Printf("Error loading user from storage: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var user types.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("Error parsing user from storage: %v", err)
		return nil
	}
	return &user
}

// SaveUser caches the user profile. Returns false (after logging) on
// failure.
func (a *Adapter) SaveUser(ctx context.Context, user *types.User) bool {
	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("Error encoding user for storage: %v", err)
		return false
	}
	if err := a.store.Set(ctx, KeyUser, data); err != nil {
		log.Printf("Error saving user to storage: %v", err)
		return false
	}
	return true
}

// LoadAuthToken reads the cached auth token, or "" when absent.
func (a *Adapter) LoadAuthToken(ctx context.Context) string {
	data, err := a.store.Get(ctx, KeyAuthToken)
	if err != nil {
		log.Printf("Error loading auth token from storage: %v", err)
		return ""
	}
	return string(data)
}

// SaveAuthToken caches the auth token. Returns false (after logging) on
// failure.
func (a *Adapter) SaveAuthToken(ctx context.Context, token string) bool {
	if err := a.store.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
		log.Printf("Error saving auth token to storage: %v", err)
		return false
	}
	return true
}

// Clear removes every known key, best-effort.
func (a *Adapter) Clear(ctx context.Context) {
	for _, key := range []string{KeyJobs, KeyUser, KeyAuthToken} {
		if err := a.store.Remove(ctx, key); err != nil {
			log.Printf("Error clearing storage key %q: %v", key, err)
		}
	}
}

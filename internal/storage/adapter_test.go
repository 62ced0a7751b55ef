package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanhire/titanhire/internal/types"
)

func TestAdapterJobsRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter(NewMemory())

	jobs := []types.Job{
		{ID: "a", Title: "Backend Engineer", Status: types.StatusPlan, CompletedStages: []types.Stage{}},
		{ID: "b", Title: "Designer", Status: types.StatusAttract, CompletedStages: []types.Stage{types.StagePlan}},
	}
	require.True(t, adapter.SaveJobs(ctx, jobs))

	loaded := adapter.LoadJobs(ctx)
	require.Len(t, loaded, 2)
	assert.Equal(t, "a", loaded[0].ID)
	assert.Equal(t, types.StatusAttract, loaded[1].Status)
}

func TestAdapterLoadJobsFiltersInvalidRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	adapter := NewAdapter(store)

	// One record missing its title, one missing its id, one valid.
	raw := `[
		{"id": "a", "title": "", "status": "plan", "inputs": {}, "outputs": {}, "completedStages": []},
		{"id": "", "title": "Ghost", "status": "plan", "inputs": {}, "outputs": {}, "completedStages": []},
		{"id": "c", "title": "Kept", "status": "plan", "inputs": {}, "outputs": {}, "completedStages": []}
	]`
	require.NoError(t, store.Set(ctx, KeyJobs, []byte(raw)))

	loaded := adapter.LoadJobs(ctx)
	require.Len(t, loaded, 1)
	assert.Equal(t, "c", loaded[0].ID)
}

func TestAdapterLoadJobsCorruptData(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	adapter := NewAdapter(store)

	require.NoError(t, store.Set(ctx, KeyJobs, []byte("{not json")))

	loaded := adapter.LoadJobs(ctx)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestAdapterLoadJobsAbsentKey(t *testing.T) {
	adapter := NewAdapter(NewMemory())
	loaded := adapter.LoadJobs(context.Background())
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestAdapterUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter(NewMemory())

	assert.Nil(t, adapter.LoadUser(ctx))

	user := &types.User{ID: uuid.New(), Name: "Dana", Email: "dana@example.com", Role: "Hiring Manager"}
	require.True(t, adapter.SaveUser(ctx, user))

	loaded := adapter.LoadUser(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, user.ID, loaded.ID)
	assert.Equal(t, "Dana", loaded.Name)
}

func TestAdapterAuthTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter(NewMemory())

	assert.Empty(t, adapter.LoadAuthToken(ctx))
	require.True(t, adapter.SaveAuthToken(ctx, "token-123"))
	assert.Equal(t, "token-123", adapter.LoadAuthToken(ctx))
}

func TestAdapterClear(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter(NewMemory())

	adapter.SaveJobs(ctx, []types.Job{{ID: "a", Title: "Kept"}})
	adapter.SaveUser(ctx, &types.User{Name: "Dana"})
	adapter.SaveAuthToken(ctx, "token")

	adapter.Clear(ctx)

	assert.Empty(t, adapter.LoadJobs(ctx))
	assert.Nil(t, adapter.LoadUser(ctx))
	assert.Empty(t, adapter.LoadAuthToken(ctx))
}

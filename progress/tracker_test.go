package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTracker(t *testing.T) *Tracker {
	t.Helper()
	tracker := NewTracker(filepath.Join(t.TempDir(), "progress.json"))
	tracker.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return tracker
}

func TestTrackerLoadMissingFile(t *testing.T) {
	state := testTracker(t).Load()

	require.NotNil(t, state)
	assert.Empty(t, state.Basic)
	assert.NotNil(t, state.Basic)
	assert.NotNil(t, state.RetryQueue)
}

func TestTrackerLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	state := NewTracker(path).Load()
	require.NotNil(t, state)
	assert.Empty(t, state.Completed)
}

func TestTrackerLoadNormalizesNullBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"basic": null, "completed": ["X"]}`), 0o644))

	state := NewTracker(path).Load()
	assert.NotNil(t, state.Basic)
	assert.NotNil(t, state.Partial)
	assert.NotNil(t, state.RetryQueue)
	assert.Equal(t, []string{"X"}, state.Completed)
}

func TestTrackerUpdateBucketExclusivity(t *testing.T) {
	tracker := testTracker(t)

	require.NoError(t, tracker.Update("Twin 127mm", "basic"))
	require.NoError(t, tracker.Update("Twin 127mm", "partial"))
	require.NoError(t, tracker.Update("Twin 127mm", "completed"))

	state := tracker.Load()
	assert.Empty(t, state.Basic)
	assert.Empty(t, state.Partial)
	assert.Equal(t, []string{"Twin 127mm"}, state.Completed)
	assert.Equal(t, "2026-08-31T12:00:00Z", state.LastUpdated)
}

func TestTrackerUpdateUnknownStatusOnlyRemoves(t *testing.T) {
	tracker := testTracker(t)

	require.NoError(t, tracker.Update("Radar", "partial"))
	require.NoError(t, tracker.Update("Radar", "bogus"))

	state := tracker.Load()
	for _, name := range Buckets {
		assert.Empty(t, *state.bucket(name), "bucket %s", name)
	}
}

func TestTrackerPreservesOtherItems(t *testing.T) {
	tracker := testTracker(t)

	require.NoError(t, tracker.Update("A", "completed"))
	require.NoError(t, tracker.Update("B", "completed"))
	require.NoError(t, tracker.Update("A", "failed"))

	state := tracker.Load()
	assert.Equal(t, []string{"B"}, state.Completed)
	assert.Equal(t, []string{"A"}, state.Failed)
}

func TestTrackerPreservesRetryQueue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"retry_queue": ["Stuck Item"]}`), 0o644))

	tracker := NewTracker(path)
	require.NoError(t, tracker.Update("Other", "basic"))

	state := tracker.Load()
	assert.Equal(t, []string{"Stuck Item"}, state.RetryQueue)
}

func TestCommitMessage(t *testing.T) {
	assert.Equal(t, "Update: A - completed", commitMessage([]string{"A"}, "completed"))
	assert.Equal(t, "Update: A, B, C - partial", commitMessage([]string{"A", "B", "C"}, "partial"))
	assert.Equal(t, "Update: A, B, C (+2 more) - Mixed",
		commitMessage([]string{"A", "B", "C", "D", "E"}, "Mixed"))
}

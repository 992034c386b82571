package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oignontom8283/timeclass/internal/clock"
	"github.com/Oignontom8283/timeclass/internal/loader"
	"github.com/Oignontom8283/timeclass/internal/models"
)

var at = time.Date(2025, time.March, 14, 7, 30, 0, 0, time.UTC)

func school(id string, slots ...string) models.School {
	s := models.School{
		Name:          models.Name{Original: "École " + id},
		ScheduleStart: models.TimeSlot{Time: at.Add(30 * time.Minute), Label: "start"},
	}
	for i, label := range slots {
		s.Schedule = append(s.Schedule, models.TimeSlot{Time: at.Add(time.Duration(i+1) * time.Hour), Label: label})
	}
	return s.WithID(id)
}

func TestCatalog_InitialState(t *testing.T) {
	c := New()
	snap := c.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.True(t, snap.Loading)
	assert.Empty(t, snap.Schools)
	assert.NoError(t, snap.Error)
}

func TestCatalog_ReplaceAndLookup(t *testing.T) {
	c := New()
	c.Replace([]models.School{school("a", "9h"), school("b")}, at)

	snap := c.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Schools, 2)
	assert.Equal(t, at, snap.LoadedAt)

	s, err := c.School("a")
	require.NoError(t, err)
	assert.Equal(t, "a", s.ID)

	_, slot, err := c.Slot("a", "1")
	require.NoError(t, err)
	assert.Equal(t, "9h", slot.Label)

	_, err = c.School("zzz")
	assert.ErrorIs(t, err, ErrSchoolNotFound)

	for _, idx := range []string{"2", "-1", "x", ""} {
		_, _, err = c.Slot("a", idx)
		assert.ErrorIs(t, err, ErrSlotNotFound, "index %q", idx)
	}

	_, _, err = c.Slot("zzz", "0")
	var lerr *LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "zzz", lerr.ID)
}

func TestCatalog_ReloadReplacesWholesale(t *testing.T) {
	c := New()
	c.Replace([]models.School{school("a"), school("b")}, at)

	c.BeginLoad()
	snap := c.Snapshot()
	assert.True(t, snap.Loading)
	assert.Len(t, snap.Schools, 2, "old collection is served while reloading")

	c.Replace([]models.School{school("c")}, at.Add(time.Minute))
	_, err := c.School("a")
	assert.ErrorIs(t, err, ErrSchoolNotFound)
	_, err = c.School("c")
	assert.NoError(t, err)
}

func TestCatalog_FailEmptiesCollection(t *testing.T) {
	c := New()
	c.Replace([]models.School{school("a")}, at)

	boom := errors.New("boom")
	c.Fail(boom, at)

	snap := c.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Schools)
	assert.ErrorIs(t, snap.Error, boom)
}

type stubSource struct {
	mu    sync.Mutex
	calls int
	res   loader.Result
	err   error
}

func (s *stubSource) Load(context.Context) (loader.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.res, s.err
}

type memRuns struct {
	mu   sync.Mutex
	runs []models.LoadRun
}

func (m *memRuns) Create(_ context.Context, run *models.LoadRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, *run)
	return nil
}

func (m *memRuns) ListRecent(_ context.Context, limit int) ([]models.LoadRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs, nil
}

func TestRefresher_Success(t *testing.T) {
	src := &stubSource{res: loader.Result{
		Schools: []models.School{school("a")},
		Report: loader.Report{
			Listed:  2,
			Loaded:  1,
			Skipped: []loader.Skip{{ID: "b", Kind: loader.SkipFetch, Reason: "bad status code: 404"}},
		},
	}}
	runs := &memRuns{}
	r := NewRefresher(src, New(), runs, clock.Fixed{At: at})

	report, err := r.Refresh(context.Background(), TriggerStartup)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Loaded)

	snap := r.Catalog().Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.Len(t, snap.Schools, 1)

	require.Len(t, runs.runs, 1)
	run := runs.runs[0]
	assert.Equal(t, TriggerStartup, run.Trigger)
	assert.False(t, run.Failed)
	assert.Equal(t, 2, run.Listed)

	var skipped []loader.Skip
	require.NoError(t, json.Unmarshal(run.Skipped, &skipped))
	assert.Equal(t, src.res.Report.Skipped, skipped)
}

func TestRefresher_ListFailure(t *testing.T) {
	lerr := &loader.ListFetchError{URL: "http://origin/schools.json", Err: &loader.StatusError{Code: 500}}
	src := &stubSource{err: lerr}
	runs := &memRuns{}
	cat := New()
	cat.Replace([]models.School{school("old")}, at)
	r := NewRefresher(src, cat, runs, clock.Fixed{At: at})

	_, err := r.Refresh(context.Background(), TriggerCron)
	assert.True(t, loader.IsListFetch(err))

	snap := cat.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Empty(t, snap.Schools)

	require.Len(t, runs.runs, 1)
	assert.True(t, runs.runs[0].Failed)
	assert.Contains(t, runs.runs[0].Error, "bad status code: 500")
}

func TestRefresher_WithoutHistory(t *testing.T) {
	src := &stubSource{}
	r := NewRefresher(src, New(), nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Refresh(context.Background(), TriggerAdmin)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, src.calls)
	assert.Equal(t, StateReady, r.Catalog().Snapshot().State)
}

func TestRefresher_AbortedKeepsCollection(t *testing.T) {
	src := &stubSource{err: &loader.AbortedError{Err: context.DeadlineExceeded}}
	runs := &memRuns{}
	cat := New()
	cat.Replace([]models.School{school("old")}, at)
	r := NewRefresher(src, cat, runs, clock.Fixed{At: at.Add(time.Hour)})

	_, err := r.Refresh(context.Background(), TriggerCron)
	assert.True(t, loader.IsAborted(err))

	snap := cat.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.False(t, snap.Loading)
	assert.Equal(t, at, snap.LoadedAt)
	_, err = cat.School("old")
	assert.NoError(t, err)

	require.Len(t, runs.runs, 1)
	assert.True(t, runs.runs[0].Failed)
	assert.Contains(t, runs.runs[0].Error, "aborted")
}

func TestRefresher_AbortedFirstLoadStaysLoading(t *testing.T) {
	src := &stubSource{err: &loader.AbortedError{Err: context.Canceled}}
	r := NewRefresher(src, New(), nil, clock.Fixed{At: at})

	_, err := r.Refresh(context.Background(), TriggerStartup)
	require.Error(t, err)
	assert.Equal(t, StateLoading, r.Catalog().Snapshot().State)
}

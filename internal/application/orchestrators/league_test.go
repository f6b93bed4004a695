package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/league"
)

var errServer = errors.New("server said no")

// fakeLeagues is a hand mock of the league API client.
type fakeLeagues struct {
	createFn func(league.League) (league.League, error)
	updateFn func(league.League) (league.League, error)
	deleteFn func(string) error
	calls    int
}

func (f *fakeLeagues) List(context.Context) ([]league.League, error) { return nil, nil }
func (f *fakeLeagues) GetByID(context.Context, string) (league.League, error) {
	return league.League{}, nil
}
func (f *fakeLeagues) Create(_ context.Context, v league.League) (league.League, error) {
	f.calls++
	return f.createFn(v)
}
func (f *fakeLeagues) Update(_ context.Context, v league.League) (league.League, error) {
	f.calls++
	return f.updateFn(v)
}
func (f *fakeLeagues) Delete(_ context.Context, id string) error {
	f.calls++
	return f.deleteFn(id)
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func seededLeagueCache() *listcache.Collection[league.League] {
	c := listcache.New[league.League]()
	base := fixedNow().Add(-time.Hour)
	c.Replace([]league.League{
		{ID: "a", Name: "Alpha", UpdatedAt: base},
		{ID: "b", Name: "Beta", UpdatedAt: base},
		{ID: "c", Name: "Gamma", UpdatedAt: base},
	})
	return c
}

func leagueIDs(items []league.League) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// TestExecuteCreateLeague_AppendsServerRow verifies the created league lands
// in the cache with the server's fields, not the form's.
func TestExecuteCreateLeague_AppendsServerRow(t *testing.T) {
	cache := seededLeagueCache()
	api := &fakeLeagues{
		createFn: func(v league.League) (league.League, error) {
			v.ID = "d"
			v.OwnerID = "me"
			v.UpdatedAt = fixedNow()
			return v, nil
		},
	}
	deps := LeagueDeps{Leagues: api, Cache: cache, Now: fixedNow}

	created, err := ExecuteCreateLeague(context.Background(), CreateLeagueInput{Name: "Delta", Sport: "hockey"}, deps)
	if err != nil {
		t.Fatalf("ExecuteCreateLeague: %v", err)
	}
	if created.ID != "d" || created.OwnerID != "me" {
		t.Errorf("created = %+v, want the server-assigned id and owner", created)
	}
	got, ok := cache.Get("d")
	if !ok || got.Name != "Delta" {
		t.Errorf("cache row = %+v/%v, want Delta/true", got, ok)
	}
}

// TestExecuteCreateLeague_ValidationStopsBeforeAPI verifies a bad form never
// reaches the wire or the cache.
func TestExecuteCreateLeague_ValidationStopsBeforeAPI(t *testing.T) {
	cache := listcache.New[league.League]()
	api := &fakeLeagues{}
	deps := LeagueDeps{Leagues: api, Cache: cache, Now: fixedNow}

	_, err := ExecuteCreateLeague(context.Background(), CreateLeagueInput{Name: ""}, deps)
	if !errors.Is(err, league.ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
	if api.calls != 0 {
		t.Errorf("api calls = %d, want 0", api.calls)
	}
	if !cache.Empty() {
		t.Error("cache should stay empty")
	}
}

// TestExecuteUpdateLeague_CommitsServerRow verifies the server's reply
// replaces the optimistic row in place.
func TestExecuteUpdateLeague_CommitsServerRow(t *testing.T) {
	cache := seededLeagueCache()
	api := &fakeLeagues{
		updateFn: func(v league.League) (league.League, error) {
			v.Name = v.Name + " (server)"
			v.UpdatedAt = fixedNow().Add(time.Second)
			return v, nil
		},
	}
	deps := LeagueDeps{Leagues: api, Cache: cache, Now: fixedNow}

	input := UpdateLeagueInput{ID: "b", Name: "Beta Prime"}
	if _, err := ExecuteUpdateLeague(context.Background(), input, deps); err != nil {
		t.Fatalf("ExecuteUpdateLeague: %v", err)
	}

	got, _ := cache.Get("b")
	if got.Name != "Beta Prime (server)" {
		t.Errorf("cache b.Name = %q, want the server's row", got.Name)
	}
	order := leagueIDs(cache.Items())
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
}

// TestExecuteUpdateLeague_RollsBackOnRejection verifies the cache matches
// its pre-image after a server rejection.
func TestExecuteUpdateLeague_RollsBackOnRejection(t *testing.T) {
	cache := seededLeagueCache()
	api := &fakeLeagues{
		updateFn: func(league.League) (league.League, error) { return league.League{}, errServer },
	}
	deps := LeagueDeps{Leagues: api, Cache: cache, Now: fixedNow}

	input := UpdateLeagueInput{ID: "b", Name: "Beta Prime"}
	if _, err := ExecuteUpdateLeague(context.Background(), input, deps); !errors.Is(err, errServer) {
		t.Fatalf("err = %v, want the server error", err)
	}

	got, _ := cache.Get("b")
	if got.Name != "Beta" {
		t.Errorf("cache b.Name = %q, want the pre-image Beta", got.Name)
	}
}

// TestExecuteDeleteLeague_RollsBackOnRejection verifies the removed row is
// reinserted at its original position when the server rejects the delete.
func TestExecuteDeleteLeague_RollsBackOnRejection(t *testing.T) {
	cache := seededLeagueCache()
	api := &fakeLeagues{
		deleteFn: func(string) error { return errServer },
	}
	deps := LeagueDeps{Leagues: api, Cache: cache, Now: fixedNow}

	if err := ExecuteDeleteLeague(context.Background(), "b", deps); !errors.Is(err, errServer) {
		t.Fatalf("err = %v, want the server error", err)
	}

	order := leagueIDs(cache.Items())
	if len(order) != 3 || order[1] != "b" {
		t.Errorf("order = %v, want b restored at position 1", order)
	}
}

// TestExecuteDeleteLeague_RemovesOnSuccess verifies the happy path.
func TestExecuteDeleteLeague_RemovesOnSuccess(t *testing.T) {
	cache := seededLeagueCache()
	api := &fakeLeagues{
		deleteFn: func(string) error { return nil },
	}
	deps := LeagueDeps{Leagues: api, Cache: cache, Now: fixedNow}

	if err := ExecuteDeleteLeague(context.Background(), "b", deps); err != nil {
		t.Fatalf("ExecuteDeleteLeague: %v", err)
	}
	if _, ok := cache.Get("b"); ok {
		t.Error("b should be gone from the cache")
	}
	if cache.Len() != 2 {
		t.Errorf("len = %d, want 2", cache.Len())
	}
}

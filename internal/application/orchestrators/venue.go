package orchestrators

import (
	"context"
	"log/slog"
	"time"

	venueAPI "leaguedesk/internal/adapters/api/venue"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/venue"
)

// VenueDeps holds dependencies for the venue orchestrators. Caches are
// scoped per league.
type VenueDeps struct {
	Venues venueAPI.Client
	Caches *listcache.Registry[venue.Venue]
	Now    func() time.Time
}

// SaveVenueInput carries the add/edit form fields. ID is empty in add mode.
type SaveVenueInput struct {
	ID       string
	LeagueID string
	Name     string
	Address  string
	City     string
	Capacity int
}

// ExecuteCreateVenue validates and posts a new venue.
// POST: On success the league's cache contains the server's row
func ExecuteCreateVenue(ctx context.Context, input SaveVenueInput, deps VenueDeps) (venue.Venue, error) {
	candidate := venue.Venue{
		LeagueID: input.LeagueID,
		Name:     input.Name,
		Address:  input.Address,
		City:     input.City,
		Capacity: input.Capacity,
	}
	if err := candidate.Validate(); err != nil {
		return venue.Venue{}, err
	}
	created, err := deps.Venues.Create(ctx, candidate)
	if err != nil {
		return venue.Venue{}, err
	}
	deps.Caches.Scope(input.LeagueID).Apply(created)
	slog.Info("venue_created", "id", created.ID, "league", input.LeagueID)
	return created, nil
}

// ExecuteUpdateVenue applies the edit optimistically and reconciles.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateVenue(ctx context.Context, input SaveVenueInput, deps VenueDeps) (venue.Venue, error) {
	cache := deps.Caches.Scope(input.LeagueID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.LeagueID = input.LeagueID
	candidate.Name = input.Name
	candidate.Address = input.Address
	candidate.City = input.City
	candidate.Capacity = input.Capacity
	if err := candidate.Validate(); err != nil {
		return venue.Venue{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.Venues.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return venue.Venue{}, err
	}
	txn.Commit(updated)
	return updated, nil
}

// ExecuteDeleteVenue removes optimistically with rollback on failure.
func ExecuteDeleteVenue(ctx context.Context, leagueID, id string, deps VenueDeps) error {
	cache := deps.Caches.Scope(leagueID)
	txn := cache.StageRemove(id)
	if err := deps.Venues.Delete(ctx, leagueID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(venue.Venue{})
	return nil
}

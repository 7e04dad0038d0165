package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"innkeep/config"
	"innkeep/infras/otel"
	bookingModel "innkeep/internal/domains/booking/model"
	bookingRepo "innkeep/internal/domains/booking/repository"
	"innkeep/internal/domains/calendar"
	"innkeep/internal/domains/console/model"
	locationModel "innkeep/internal/domains/location/model"
	locationModelDto "innkeep/internal/domains/location/model/dto"
	locationRepo "innkeep/internal/domains/location/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomModelDto "innkeep/internal/domains/room/model/dto"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/event"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

const sortAscending = "ASC"

// Console keeps the admin console's displayed state in step with the selected
// location. All three triggers funnel through the same load path: initial
// Start, an explicit SelectLocation, and data-changed events from the mutation
// workflows.
type Console interface {
	Start(ctx context.Context) error
	SelectLocation(ctx context.Context, locationID string) error
	Refresh(ctx context.Context) error
	Snapshot() model.Snapshot
	WeekGrid(anchor time.Time) calendar.Grid
}

type serviceImpl struct {
	locationRepo locationRepo.Location
	roomRepo     roomRepo.Room
	bookingRepo  bookingRepo.Booking
	cfg          *config.Config
	otel         otel.Otel

	mu sync.Mutex
	// generation increments on every scoped load; a load's results commit
	// only while its generation is still the latest, so a slow fetch for a
	// previously selected location can never overwrite a newer selection.
	generation uint64
	state      model.Snapshot
}

func New(locationRepo locationRepo.Location, roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, hub event.Hub, otel otel.Otel) Console {
	svc := &serviceImpl{
		locationRepo: locationRepo,
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		cfg:          cfg,
		otel:         otel,
		state:        model.Snapshot{Phase: model.PhaseIdle},
	}

	hub.Subscribe(svc.dataChanged)

	return svc
}

// Start runs the mount sequence: idempotent seed, location load, default
// selection, scoped data load.
func (s *serviceImpl) Start(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.setPhase(model.PhaseSeeding)

	if err = s.seed(ctx); err != nil {
		s.fail(err)

		return fmt.Errorf("failed to seed initial data: %w", err)
	}

	return s.reload(ctx)
}

// SelectLocation switches the console to another location and loads its rooms
// and bookings. Selecting an unknown location is rejected without touching the
// current state.
func (s *serviceImpl) SelectLocation(ctx context.Context, locationID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+".SelectLocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()

	known := false

	for _, location := range s.state.Locations {
		if location.ID == locationID {
			known = true

			break
		}
	}

	if !known {
		s.mu.Unlock()

		return failure.NotFound("location not found") // nolint:wrapcheck
	}

	s.state.SelectedLocationID = locationID
	s.state.Phase = model.PhaseLoadingLocationData
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	return s.loadLocationData(ctx, locationID, generation)
}

// Refresh re-runs the full load on demand, taking the same path a
// data-changed event does.
func (s *serviceImpl) Refresh(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.reload(ctx)
}

// Snapshot returns a wholesale copy of the current state.
func (s *serviceImpl) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyStateLocked()
}

// WeekGrid builds the occupancy grid for the week containing anchor, using
// the currently loaded rooms and bookings.
func (s *serviceImpl) WeekGrid(anchor time.Time) calendar.Grid {
	s.mu.Lock()
	rooms := make([]roomModel.Room, len(s.state.Rooms))
	copy(rooms, s.state.Rooms)
	bookings := make([]bookingModel.Booking, len(s.state.Bookings))
	copy(bookings, s.state.Bookings)
	s.mu.Unlock()

	weekStart := timezone.WeekStart(anchor, s.weekStartDay())

	return calendar.BuildGrid(rooms, bookings, weekStart)
}

// dataChanged re-runs the location fetch and the scoped load. A mutation may
// have added or removed a location, moved a room, or touched bookings; rather
// than patching, the whole view reloads and re-validates the selection.
func (s *serviceImpl) dataChanged(ctx context.Context, change event.Change) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+".dataChanged")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.entity": string(change.Entity),
		"event.action": string(change.Action),
	})

	if err := s.reload(ctx); err != nil {
		log.Error().Err(err).Msg("failed to refresh console after data change")
	}
}

// reload fetches locations, re-validates the selection, and loads the scoped
// rooms and bookings.
func (s *serviceImpl) reload(ctx context.Context) error {
	s.setPhase(model.PhaseLoadingLocations)

	locations, err := s.locationRepo.GetAll(ctx, gDto.QueryParams{SortBy: locationModel.FieldName, SortDir: sortAscending}, gDto.FilterGroup{})
	if err != nil {
		s.fail(err)

		return fmt.Errorf("failed to load locations: %w", err)
	}

	s.mu.Lock()
	s.state.Locations = locations
	s.state.SelectedLocationID = s.pickSelectionLocked(locations)

	if s.state.SelectedLocationID == constant.Empty {
		s.state.Rooms = nil
		s.state.Bookings = nil
		s.state.Phase = model.PhaseReady
		s.state.LastError = constant.Empty
		s.generation++
		s.mu.Unlock()

		return nil
	}

	s.state.Phase = model.PhaseLoadingLocationData
	s.generation++
	generation := s.generation
	selected := s.state.SelectedLocationID
	s.mu.Unlock()

	return s.loadLocationData(ctx, selected, generation)
}

// pickSelectionLocked applies the default-selection rule: keep the current
// selection while it still exists, else the configured default name, else the
// first location, else nothing.
func (s *serviceImpl) pickSelectionLocked(locations []locationModel.Location) string {
	if len(locations) == 0 {
		return constant.Empty
	}

	for _, location := range locations {
		if location.ID == s.state.SelectedLocationID {
			return location.ID
		}
	}

	if name := s.cfg.App.Console.DefaultLocationName; name != constant.Empty {
		for _, location := range locations {
			if location.Name == name {
				return location.ID
			}
		}
	}

	return locations[0].ID
}

// loadLocationData fetches the rooms of the location and then all bookings of
// those rooms, and commits both lists together. Stale results, detected by a
// generation mismatch, are discarded untouched.
func (s *serviceImpl) loadLocationData(ctx context.Context, locationID string, generation uint64) error {
	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldName, SortDir: sortAscending}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    roomModel.TableName,
				Field:    roomModel.FieldLocationID,
				Operator: gDto.FilterOperatorEq,
				Value:    locationID,
			},
		},
	})
	if err != nil {
		s.failGeneration(err, generation)

		return fmt.Errorf("failed to load rooms for location: %w", err)
	}

	roomIDs := make([]string, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	bookings, err := s.bookingRepo.GetAllByRoomIDs(ctx, roomIDs)
	if err != nil {
		s.failGeneration(err, generation)

		return fmt.Errorf("failed to load bookings for location: %w", err)
	}

	for i := range bookings {
		bookings[i] = bookings[i].Normalize()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		log.Debug().Str("locationID", locationID).Msg("discarding stale location data load")

		return nil
	}

	s.state.Rooms = rooms
	s.state.Bookings = bookings
	s.state.Phase = model.PhaseReady
	s.state.LastError = constant.Empty

	return nil
}

// seed creates the configured default location and starter rooms when the
// store holds no locations at all. Any existing location makes it a no-op.
func (s *serviceImpl) seed(ctx context.Context) error {
	if !s.cfg.App.Seed.Enable {
		return nil
	}

	count, err := s.locationRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count locations: %w", err)
	}

	if count > 0 {
		return nil
	}

	locationReq := locationModelDto.CreateLocationRequest{Name: s.cfg.App.Seed.LocationName}
	location := locationReq.ToModel(constant.SeedUser)

	if err = s.locationRepo.Insert(ctx, location); err != nil {
		return fmt.Errorf("failed to seed location: %w", err)
	}

	rooms := make([]roomModel.Room, 0, len(s.cfg.App.Seed.RoomNames))

	for _, name := range s.cfg.App.Seed.RoomNames {
		name = strings.TrimSpace(name)
		if name == constant.Empty {
			continue
		}

		roomReq := roomModelDto.CreateRoomRequest{Name: name, LocationID: location.ID}
		rooms = append(rooms, roomReq.ToModel(constant.SeedUser, constant.Empty))
	}

	if err = s.roomRepo.InsertBulk(ctx, rooms); err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Info().Str("location", location.Name).Int("rooms", len(rooms)).Msg("seeded initial data")

	return nil
}

func (s *serviceImpl) weekStartDay() time.Weekday {
	switch strings.ToLower(s.cfg.App.Console.WeekStart) {
	case "sunday":
		return time.Sunday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

func (s *serviceImpl) setPhase(phase model.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Phase = phase
}

// fail clears every loaded list so a failed load never leaves a stale mix on
// display. It covers failures before a scoped load owns a generation, the
// location fetch included, so the location list goes too.
func (s *serviceImpl) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Locations = nil
	s.state.Rooms = nil
	s.state.Bookings = nil
	s.state.Phase = model.PhaseFailed
	s.state.LastError = err.Error()
}

// failGeneration records a load failure unless a newer load has superseded it.
func (s *serviceImpl) failGeneration(err error, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return
	}

	s.state.Rooms = nil
	s.state.Bookings = nil
	s.state.Phase = model.PhaseFailed
	s.state.LastError = err.Error()
}

func (s *serviceImpl) copyStateLocked() model.Snapshot {
	snapshot := model.Snapshot{
		SelectedLocationID: s.state.SelectedLocationID,
		Phase:              s.state.Phase,
		LastError:          s.state.LastError,
		Locations:          make([]locationModel.Location, len(s.state.Locations)),
		Rooms:              make([]roomModel.Room, len(s.state.Rooms)),
		Bookings:           make([]bookingModel.Booking, len(s.state.Bookings)),
	}

	copy(snapshot.Locations, s.state.Locations)
	copy(snapshot.Rooms, s.state.Rooms)
	copy(snapshot.Bookings, s.state.Bookings)

	return snapshot
}

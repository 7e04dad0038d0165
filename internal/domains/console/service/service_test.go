package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/calendar"
	"innkeep/internal/domains/console/model"
	"innkeep/internal/domains/console/service"
	locationMocks "innkeep/internal/domains/location/mocks"
	locationModel "innkeep/internal/domains/location/model"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	"innkeep/shared/event"
)

type consoleServiceMocks struct {
	locationRepo *locationMocks.MockLocation
	roomRepo     *roomMocks.MockRoom
	bookingRepo  *bookingMocks.MockBooking
	hub          event.Hub
}

func newConsoleService(t *testing.T, cfg *config.Config) (service.Console, consoleServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := consoleServiceMocks{
		locationRepo: locationMocks.NewMockLocation(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
	}

	if cfg == nil {
		cfg = &config.Config{}
	}

	mockOtel := mocks.NewOtel()
	m.hub = event.NewHub(mockOtel)

	svc := service.New(m.locationRepo, m.roomRepo, m.bookingRepo, cfg, m.hub, mockOtel)

	return svc, m
}

func seedConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.Seed.Enable = enable
	cfg.App.Seed.LocationName = "Main House"
	cfg.App.Seed.RoomNames = []string{"Room 1", "Room 2"}
	cfg.App.Console.DefaultLocationName = "Main House"
	cfg.App.Console.WeekStart = "Monday"

	return cfg
}

func location(id, name string) locationModel.Location {
	return locationModel.Location{ID: id, Name: name}
}

func room(id, name, locationID string) roomModel.Room {
	return roomModel.Room{ID: id, Name: name, LocationID: locationID}
}

func TestConsoleService_StartSeedsEmptyStore(t *testing.T) {
	svc, m := newConsoleService(t, seedConfig(true))

	var seededLocation locationModel.Location

	m.locationRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, nil)
	m.locationRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc locationModel.Location) error {
			assert.Equal(t, "Main House", loc.Name)
			seededLocation = loc

			return nil
		})
	m.roomRepo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rooms []roomModel.Room) error {
			assert.Len(t, rooms, 2)
			assert.Equal(t, "Room 1", rooms[0].Name)
			assert.Equal(t, seededLocation.ID, rooms[0].LocationID)

			return nil
		})
	m.locationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any, any, ...string) ([]locationModel.Location, error) {
			return []locationModel.Location{seededLocation}, nil
		})
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{room("room-1", "Room 1", "loc-1")}, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	err := svc.Start(context.Background())

	assert.NoError(t, err)

	snapshot := svc.Snapshot()
	assert.Equal(t, model.PhaseReady, snapshot.Phase)
	assert.Equal(t, seededLocation.ID, snapshot.SelectedLocationID)
	assert.Len(t, snapshot.Rooms, 1)
}

func TestConsoleService_StartSkipsSeedWhenDataExists(t *testing.T) {
	svc, m := newConsoleService(t, seedConfig(true))

	locations := []locationModel.Location{location("loc-1", "Main House")}

	m.locationRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	m.locationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(locations, nil)
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	err := svc.Start(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, model.PhaseReady, svc.Snapshot().Phase)
}

func TestConsoleService_StartWithSeedDisabled(t *testing.T) {
	svc, m := newConsoleService(t, seedConfig(false))

	m.locationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	err := svc.Start(context.Background())

	assert.NoError(t, err)

	snapshot := svc.Snapshot()
	assert.Equal(t, model.PhaseReady, snapshot.Phase)
	assert.Empty(t, snapshot.SelectedLocationID)
	assert.Empty(t, snapshot.Rooms)
	assert.Empty(t, snapshot.Bookings)
}

func TestConsoleService_DefaultSelectionRules(t *testing.T) {
	locations := []locationModel.Location{
		location("loc-1", "Annex"),
		location("loc-2", "Main House"),
	}

	t.Run("configured default name wins", func(t *testing.T) {
		svc, m := newConsoleService(t, seedConfig(false))

		m.locationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(locations, nil)
		m.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.bookingRepo.EXPECT().
			GetAllByRoomIDs(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := svc.Start(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "loc-2", svc.Snapshot().SelectedLocationID)
	})

	t.Run("first location when default name missing", func(t *testing.T) {
		cfg := seedConfig(false)
		cfg.App.Console.DefaultLocationName = "No Such House"

		svc, m := newConsoleService(t, cfg)

		m.locationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(locations, nil)
		m.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.bookingRepo.EXPECT().
			GetAllByRoomIDs(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := svc.Start(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "loc-1", svc.Snapshot().SelectedLocationID)
	})

	t.Run("existing selection survives reload", func(t *testing.T) {
		svc, m := newConsoleService(t, seedConfig(false))

		m.locationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(locations, nil).
			Times(2)
		m.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(3)
		m.bookingRepo.EXPECT().
			GetAllByRoomIDs(gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(3)

		err := svc.Start(context.Background())
		assert.NoError(t, err)

		err = svc.SelectLocation(context.Background(), "loc-1")
		assert.NoError(t, err)

		// A data change reloads everything; the explicit selection sticks.
		m.hub.Publish(context.Background(), event.Change{Entity: event.EntityBooking, Action: event.ActionCreated})

		assert.Equal(t, "loc-1", svc.Snapshot().SelectedLocationID)
	})
}

func TestConsoleService_SelectLocationUnknown(t *testing.T) {
	svc, m := newConsoleService(t, seedConfig(false))

	m.locationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]locationModel.Location{location("loc-1", "Main House")}, nil)
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	err := svc.Start(context.Background())
	assert.NoError(t, err)

	err = svc.SelectLocation(context.Background(), "loc-9")

	assert.Error(t, err)
	assert.Equal(t, "loc-1", svc.Snapshot().SelectedLocationID)
}

func TestConsoleService_StaleLoadNeverOverwritesNewerSelection(t *testing.T) {
	locations := []locationModel.Location{
		location("loc-a", "House A"),
		location("loc-b", "House B"),
	}

	cfg := seedConfig(false)
	cfg.App.Console.DefaultLocationName = "House A"

	svc, m := newConsoleService(t, cfg)

	roomsA := []roomModel.Room{room("room-a", "Room A", "loc-a")}
	roomsB := []roomModel.Room{room("room-b", "Room B", "loc-b")}

	m.locationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(locations, nil)

	// Initial load for the default selection A.
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(roomsA, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), []string{"room-a"}).
		Return(nil, nil)

	err := svc.Start(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "loc-a", svc.Snapshot().SelectedLocationID)

	releaseSlowLoad := make(chan struct{})
	slowLoadStarted := make(chan struct{})

	// Re-selecting A hangs mid-fetch until B's load has fully committed.
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any, any, ...string) ([]roomModel.Room, error) {
			close(slowLoadStarted)
			<-releaseSlowLoad

			return roomsA, nil
		})
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), []string{"room-a"}).
		Return([]bookingModel.Booking{{ID: "stale", RoomID: "room-a"}}, nil)

	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(roomsB, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), []string{"room-b"}).
		Return(nil, nil)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		assert.NoError(t, svc.SelectLocation(context.Background(), "loc-a"))
	}()

	<-slowLoadStarted

	err = svc.SelectLocation(context.Background(), "loc-b")
	assert.NoError(t, err)

	close(releaseSlowLoad)
	wg.Wait()

	snapshot := svc.Snapshot()
	assert.Equal(t, "loc-b", snapshot.SelectedLocationID)
	assert.Equal(t, model.PhaseReady, snapshot.Phase)
	assert.Len(t, snapshot.Rooms, 1)
	assert.Equal(t, "room-b", snapshot.Rooms[0].ID)
	assert.Empty(t, snapshot.Bookings)
}

func TestConsoleService_LoadFailureClearsScopedData(t *testing.T) {
	t.Run("room fetch failure", func(t *testing.T) {
		svc, m := newConsoleService(t, seedConfig(false))

		m.locationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]locationModel.Location{location("loc-1", "Main House")}, nil)
		m.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("store unavailable"))

		err := svc.Start(context.Background())

		assert.Error(t, err)

		snapshot := svc.Snapshot()
		assert.Equal(t, model.PhaseFailed, snapshot.Phase)
		assert.Empty(t, snapshot.Rooms)
		assert.Empty(t, snapshot.Bookings)
		assert.Contains(t, snapshot.LastError, "store unavailable")
	})

	t.Run("location fetch failure clears the location list", func(t *testing.T) {
		svc, m := newConsoleService(t, seedConfig(false))

		m.locationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]locationModel.Location{location("loc-1", "Main House")}, nil)
		m.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{room("room-1", "Room 1", "loc-1")}, nil)
		m.bookingRepo.EXPECT().
			GetAllByRoomIDs(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := svc.Start(context.Background())
		assert.NoError(t, err)
		assert.Len(t, svc.Snapshot().Locations, 1)

		// The next reload fails at the location fetch itself.
		m.locationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("store unavailable"))

		m.hub.Publish(context.Background(), event.Change{Entity: event.EntityLocation, Action: event.ActionDeleted})

		snapshot := svc.Snapshot()
		assert.Equal(t, model.PhaseFailed, snapshot.Phase)
		assert.Empty(t, snapshot.Locations)
		assert.Empty(t, snapshot.Rooms)
		assert.Empty(t, snapshot.Bookings)
		assert.Contains(t, snapshot.LastError, "store unavailable")
	})
}

func TestConsoleService_Refresh(t *testing.T) {
	svc, m := newConsoleService(t, seedConfig(false))

	m.locationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]locationModel.Location{location("loc-1", "Main House")}, nil).
		Times(2)
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	err := svc.Start(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, svc.Snapshot().Rooms)

	// A room appeared between loads; the manual refresh picks it up.
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{room("room-1", "Room 1", "loc-1")}, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), []string{"room-1"}).
		Return(nil, nil)

	err = svc.Refresh(context.Background())

	assert.NoError(t, err)

	snapshot := svc.Snapshot()
	assert.Equal(t, model.PhaseReady, snapshot.Phase)
	assert.Equal(t, "loc-1", snapshot.SelectedLocationID)
	assert.Len(t, snapshot.Rooms, 1)
}

func TestConsoleService_WeekGrid(t *testing.T) {
	svc, m := newConsoleService(t, seedConfig(false))

	rooms := []roomModel.Room{room("room-1", "Room 1", "loc-1")}
	bookings := []bookingModel.Booking{
		{
			ID:        "b1",
			RoomID:    "room-1",
			GuestName: "Alice",
			StartDate: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			Status:    bookingModel.StatusBooked,
		},
	}

	m.locationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]locationModel.Location{location("loc-1", "Main House")}, nil)
	m.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rooms, nil)
	m.bookingRepo.EXPECT().
		GetAllByRoomIDs(gomock.Any(), gomock.Any()).
		Return(bookings, nil)

	err := svc.Start(context.Background())
	assert.NoError(t, err)

	// 2026-03-04 is a Wednesday; the Monday-start week begins 2026-03-02.
	grid := svc.WeekGrid(time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC))

	assert.False(t, grid.NoRooms())
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), grid.WeekStart)
	assert.Equal(t, calendar.StatusAvailable, grid.Rows[0].Cells[0].Status)
	assert.Equal(t, calendar.StatusBooked, grid.Rows[0].Cells[1].Status)
	assert.Equal(t, calendar.StatusBooked, grid.Rows[0].Cells[3].Status)
	assert.Equal(t, calendar.StatusAvailable, grid.Rows[0].Cells[4].Status)
}

package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	otelMocks "innkeep/infras/otel/mocks"
	s3Mocks "innkeep/infras/s3/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	locationMocks "innkeep/internal/domains/location/mocks"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/event"
	"innkeep/shared/failure"
)

type roomServiceMocks struct {
	repo         *roomMocks.MockRoom
	locationRepo *locationMocks.MockLocation
	bookingRepo  *bookingMocks.MockBooking
	cache        *cacheMocks.MockRedisCache
	s3           *s3Mocks.MockS3
}

func newRoomService(t *testing.T) (service.Room, roomServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := roomServiceMocks{
		repo:         roomMocks.NewMockRoom(ctrl),
		locationRepo: locationMocks.NewMockLocation(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
	}

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "innkeep-test"

	mockOtel := otelMocks.NewOtel()
	hub := event.NewHub(mockOtel)

	svc := service.New(m.repo, m.locationRepo, m.bookingRepo, cfg, m.cache, hub, mockOtel, m.s3)

	return svc, m
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(m roomServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful creation without image",
			req: dto.CreateRoomRequest{
				Name:       "Room 1",
				LocationID: "loc-1",
			},
			setupMock: func(m roomServiceMocks) {
				m.locationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "successful creation with image",
			req: dto.CreateRoomRequest{
				Name:       "Room 1",
				LocationID: "loc-1",
				Image:      &multipart.FileHeader{Filename: "room.png"},
			},
			setupMock: func(m roomServiceMocks) {
				m.locationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "innkeep-test", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/abc.png", nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "https://cdn.example.com/room/abc.png", room.Image)

						return nil
					})
			},
		},
		{
			name: "location not found",
			req: dto.CreateRoomRequest{
				Name:       "Room 1",
				LocationID: "loc-9",
			},
			setupMock: func(m roomServiceMocks) {
				m.locationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "uploaded image is cleaned up on insert failure",
			req: dto.CreateRoomRequest{
				Name:       "Room 1",
				LocationID: "loc-1",
				Image:      &multipart.FileHeader{Filename: "room.png"},
			},
			setupMock: func(m roomServiceMocks) {
				m.locationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/abc.png", nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
				m.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Name, res.Name)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	current := model.Room{ID: "room-1", Name: "Room 1", LocationID: "loc-1"}

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func(m roomServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateRoomRequest{Name: "Room Renamed"},
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{Name: "Room Renamed"},
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	current := model.Room{ID: "room-1", Name: "Room 1", LocationID: "loc-1"}

	tests := []struct {
		name         string
		setupMock    func(m roomServiceMocks)
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "successful deletion",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "blocked while bookings reference it",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "room not found",
			setupMock: func(m roomServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deletion removes stored image",
			setupMock: func(m roomServiceMocks) {
				withImage := current
				withImage.Image = "https://cdn.example.com/room/abc.png"

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(withImage, nil)
				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
				m.s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), withImage.Image).
					Return("abc.png")
				m.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, "abc.png").
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, "room-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantConflict {
					assert.True(t, failure.IsConflict(err))
					assert.Contains(t, err.Error(), "bookings")
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertBulk(ctx context.Context, models []model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllByRoomIDs(ctx context.Context, roomIDs []string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllByRoomIDs fetches every booking belonging to the given rooms. The ID
// list is chunked so the IN clause stays below provider batch limits.
func (r *repositoryImpl) GetAllByRoomIDs(ctx context.Context, roomIDs []string) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAllByRoomIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(roomIDs) == 0 {
		return res, nil
	}

	for _, chunk := range shared.ChunkSlice(roomIDs, constant.FilterInBatchSize) {
		bookings, err := r.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Table:    model.TableName,
					Field:    model.FieldRoomID,
					Operator: gDto.FilterOperatorIn,
					Value:    chunk,
				},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get bookings by room ids: %w", err)
		}

		res = append(res, bookings...)
	}

	return res, nil
}

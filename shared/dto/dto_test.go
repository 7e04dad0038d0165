package dto_test

import (
	"net/http/httptest"
	"testing"

	"innkeep/shared/constant"
	"innkeep/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "location_id",
				Value:    "loc-1",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			wantWhere: "rooms.location_id = :location_id",
			wantArgs:  map[string]any{"location_id": "loc-1"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "booked",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "booked"},
		},
		{
			name: "in with slice expands named args",
			filter: dto.Filter{
				Field:    "room_id",
				Value:    []string{"r1", "r2"},
				Operator: dto.FilterOperatorIn,
				Table:    "bookings",
			},
			wantWhere: "bookings.room_id IN (:room_id_0, :room_id_1) ",
			wantArgs:  map[string]any{"room_id_0": "r1", "room_id_1": "r2"},
		},
		{
			name: "less eq",
			filter: dto.Filter{
				Field:    "start_date",
				Value:    "2025-03-10",
				Operator: dto.FilterOperatorLessEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.start_date <= :start_date",
			wantArgs:  map[string]any{"start_date": "2025-03-10"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "name",
				Value:    "x",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "status", Value: "booked", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"room_id": "r1", "status": "booked"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?page=2&limit=25&sort_by=start_date&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, false)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "start_date", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParams_FromRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, constant.DefaultValuePage, q.Page)
	assert.Equal(t, constant.DefaultValueLimit, q.Limit)
}

package shared_test

import (
	"reflect"
	"testing"

	"innkeep/shared"
	"innkeep/shared/constant"
	"innkeep/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "not-a-bool",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}

				return
			}

			if got == nil || *got != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, got)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{
			name:     "valid number",
			input:    "42",
			expected: 42,
		},
		{
			name:     "negative number",
			input:    "-3",
			expected: -3,
		},
		{
			name:    "not a number",
			input:   "forty",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ConvertStringToInt(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got value %d", got)
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "rounds up", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name   string `db:"name"`
		Status string `db:"status"`
		Note   string `db:"note"`
		NoTag  string
	}

	fields := shared.TransformFields(updateRequest{Name: "Suite 3", Status: "maintenance"}, "admin")

	if fields["name"] != "Suite 3" {
		t.Errorf("expected name to be carried over, got %v", fields["name"])
	}

	if fields["status"] != "maintenance" {
		t.Errorf("expected status to be carried over, got %v", fields["status"])
	}

	if _, ok := fields["note"]; ok {
		t.Error("zero-valued field should be skipped")
	}

	if fields[constant.FieldModifiedBy] != "admin" {
		t.Errorf("expected modified_by stamp, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at stamp")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("room-1", "id", "rooms")

	if len(group.Filters) != 1 {
		t.Fatalf("expected a single filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected a dto.Filter")
	}

	if filter.Value != "room-1" || filter.Field != "id" || filter.Table != "rooms" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking", "get", "b-1"); got != "booking:get:b-1" {
		t.Errorf("unexpected cache key %q", got)
	}
}

func TestBuildCacheKeyWithQuery_Distinct(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	filterA := shared.FilterByID("room-1", "room_id", "bookings")
	filterB := shared.FilterByID("room-2", "room_id", "bookings")

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, filterB)

	if keyA == keyB {
		t.Error("expected distinct filters to produce distinct cache keys")
	}
}

func TestChunkSlice(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		size     int
		expected [][]string
	}{
		{
			name:     "empty input",
			values:   nil,
			size:     3,
			expected: nil,
		},
		{
			name:     "single partial batch",
			values:   []string{"a", "b"},
			size:     3,
			expected: [][]string{{"a", "b"}},
		},
		{
			name:     "exact batches",
			values:   []string{"a", "b", "c", "d"},
			size:     2,
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:     "trailing remainder",
			values:   []string{"a", "b", "c", "d", "e"},
			size:     2,
			expected: [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name:     "non-positive size keeps one batch",
			values:   []string{"a", "b", "c"},
			size:     0,
			expected: [][]string{{"a", "b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ChunkSlice(tt.values, tt.size)

			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

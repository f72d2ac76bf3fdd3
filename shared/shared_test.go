package shared_test

import (
	"testing"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	"tourdesk/shared/dto"
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
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
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

			if got == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}
			if *got != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *got)
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
		{"zero total", 0, 10, 1},
		{"zero limit", 100, 0, 1},
		{"exact division", 100, 10, 10},
		{"with remainder", 101, 10, 11},
		{"single page", 5, 10, 1},
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
		FullName string `db:"full_name"`
		Status   string `db:"status"`
		Age      int    `db:"age"`
		NoTag    string
	}

	req := updateRequest{
		FullName: "Abebe Bikila",
		Age:      42,
		NoTag:    "ignored",
	}

	fields := shared.TransformFields(req)

	if fields["full_name"] != "Abebe Bikila" {
		t.Errorf("expected full_name to be set, got %v", fields["full_name"])
	}
	if fields["age"] != 42 {
		t.Errorf("expected age to be set, got %v", fields["age"])
	}
	if _, ok := fields["status"]; ok {
		t.Error("expected zero-value status to be skipped")
	}
	if _, ok := fields[constant.FieldUpdatedAt]; !ok {
		t.Error("expected updated_at to be stamped")
	}

	// full_name, age and the updated_at stamp
	if len(fields) != 3 {
		t.Errorf("expected 3 fields, got %d: %v", len(fields), fields)
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(42, "id", "bookings")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Table != "bookings" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}
	if filter.Value != int64(42) {
		t.Errorf("expected value 42, got %v", filter.Value)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking", "get", "42"); got != "booking:get:42" {
		t.Errorf("expected 'booking:get:42', got %s", got)
	}
}

func TestBuildCacheKeyWithQuery_Deterministic(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "bookings"},
			dto.Filter{Field: "email", Operator: dto.FilterOperatorEq, Value: "a@b.c", Table: "bookings"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	for range 10 {
		if got := shared.BuildCacheKeyWithQuery("booking:gets", params, filter); got != first {
			t.Fatalf("cache key is not deterministic: %s vs %s", first, got)
		}
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 3, Limit: 10}, filter)
	if other == first {
		t.Error("expected different params to produce a different key")
	}
}

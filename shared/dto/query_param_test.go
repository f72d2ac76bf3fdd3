package dto_test

import (
	"net/http/httptest"
	"testing"
	"tourdesk/shared/constant"
	"tourdesk/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		useDefaults bool
		expected    dto.QueryParams
	}{
		{
			name:        "no params with defaults",
			url:         "/v1/bookings",
			useDefaults: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "no params without defaults",
			url:         "/v1/bookings",
			useDefaults: false,
			expected:    dto.QueryParams{},
		},
		{
			name:        "explicit params",
			url:         "/v1/bookings?page=3&limit=25&sort_by=email&sort_dir=asc",
			useDefaults: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   25,
				SortBy:  "email",
				SortDir: dto.SortDirAsc,
			},
		},
		{
			name:        "invalid page and limit fall back to defaults",
			url:         "/v1/bookings?page=zero&limit=-5",
			useDefaults: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:        "invalid sort direction is ignored",
			url:         "/v1/bookings?sort_dir=sideways",
			useDefaults: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			var params dto.QueryParams
			params.FromRequest(r, tt.useDefaults)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

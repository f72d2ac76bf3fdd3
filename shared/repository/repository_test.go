package repository

import (
	"testing"
	"tourdesk/infras/otel/mocks"
	"tourdesk/shared/dto"
	"tourdesk/shared/model"
)

type testEntity struct {
	ID     int64  `db:"id"`
	Email  string `db:"email"`
	Status string `db:"status"`
	model.Metadata
}

func newTestRepository() Repository[testEntity] {
	return NewRepository[testEntity]("booking", "bookings", "id", nil, mocks.NewOtel())
}

func TestSortColumn(t *testing.T) {
	repo := newTestRepository()

	tests := []struct {
		name     string
		sortBy   string
		expected string
	}{
		{"mapped column", "created_at", "created_at"},
		{"primary column", "id", "id"},
		{"embedded metadata column", "updated_at", "updated_at"},
		{"unmapped column", "password_hash", ""},
		{"empty", "", ""},
		{"injection attempt", "email; DROP TABLE bookings--", ""},
		{"expression", "1=1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repo.sortColumn(tt.sortBy); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIsSortDir(t *testing.T) {
	if !isSortDir(dto.SortDirAsc) || !isSortDir(dto.SortDirDesc) {
		t.Error("expected ASC and DESC to be accepted")
	}

	for _, dir := range []string{"", "desc", "DESC; DROP TABLE bookings--", "RANDOM()"} {
		if isSortDir(dir) {
			t.Errorf("expected %q to be rejected", dir)
		}
	}
}

func TestGetColumns_ExcludesPrimaryFromInsert(t *testing.T) {
	repo := newTestRepository()

	for _, col := range repo.InsertColumns {
		if col == "id" {
			t.Error("expected primary column to be excluded from insert columns")
		}
	}

	if len(repo.InsertColumns) != 4 {
		t.Errorf("expected 4 insert columns, got %d: %v", len(repo.InsertColumns), repo.InsertColumns)
	}
}

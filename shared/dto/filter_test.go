package dto_test

import (
	"testing"
	"tourdesk/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	t.Run("eq with table prefix", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "status",
			Operator: dto.FilterOperatorEq,
			Value:    "pending",
			Table:    "bookings",
		}

		where, args := filter.GetWhereClause()

		if where != "bookings.status = :status" {
			t.Errorf("unexpected where clause: %s", where)
		}
		if args["status"] != "pending" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("eq without table", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "email",
			Operator: dto.FilterOperatorEq,
			Value:    "a@b.c",
		}

		where, args := filter.GetWhereClause()

		if where != "email = :email" {
			t.Errorf("unexpected where clause: %s", where)
		}
		if args["email"] != "a@b.c" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("custom arg name", func(t *testing.T) {
		filter := dto.Filter{
			ArgName:  "status_filter",
			Field:    "status",
			Operator: dto.FilterOperatorEq,
			Value:    "pending",
		}

		where, args := filter.GetWhereClause()

		if where != "status = :status_filter" {
			t.Errorf("unexpected where clause: %s", where)
		}
		if args["status_filter"] != "pending" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("in with slice", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "status",
			Operator: dto.FilterOperatorIn,
			Value:    []string{"pending", "confirmed"},
		}

		where, args := filter.GetWhereClause()

		if where != "status IN (:status_0, :status_1) " {
			t.Errorf("unexpected where clause: %s", where)
		}
		if args["status_0"] != "pending" || args["status_1"] != "confirmed" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("unknown operator", func(t *testing.T) {
		filter := dto.Filter{Field: "status", Operator: "between"}

		where, args := filter.GetWhereClause()

		if where != "" {
			t.Errorf("expected empty where clause, got %s", where)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("and group joins filters", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "email", Operator: dto.FilterOperatorEq, Value: "a@b.c", Table: "bookings"},
				dto.Filter{Field: "selected_package", Operator: dto.FilterOperatorEq, Value: "omo-valley", Table: "bookings"},
			},
		}

		where, args := group.GetWhereClause()

		expected := "(bookings.email = :email AND bookings.selected_package = :selected_package)"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}
		if args["email"] != "a@b.c" || args["selected_package"] != "omo-valley" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("empty group produces no clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		if where != "" {
			t.Errorf("expected empty where clause, got %q", where)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorAnd,
					Filters: []any{
						dto.Filter{Field: "country", Operator: dto.FilterOperatorEq, Value: "Ethiopia"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		expected := "(status = :status OR (country = :country))"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %v", args)
		}
	})
}

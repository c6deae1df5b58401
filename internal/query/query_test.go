package query

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseParams(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"both valid", "2", "5", 2, 5},
		{"missing", "", "", 1, 10},
		{"garbage page", "abc", "5", 1, 5},
		{"garbage limit", "3", "xyz", 3, 10},
		{"zero page", "0", "5", 1, 5},
		{"negative page", "-4", "5", 1, 5},
		{"zero limit", "2", "0", 2, 10},
		{"float page", "1.5", "5", 1, 5},
		{"large page", "100000", "5", 100000, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParseParams(tc.page, tc.limit, 10)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit {
				t.Fatalf("ParseParams(%q, %q) = %+v, want page %d limit %d",
					tc.page, tc.limit, p, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	cases := []struct {
		page, limit int
		want        int64
	}{
		{1, 5, 0},
		{2, 5, 5},
		{3, 10, 20},
		{100, 7, 693},
	}
	for _, tc := range cases {
		p := Params{Page: tc.page, Limit: tc.limit}
		if got := p.Skip(); got != tc.want {
			t.Errorf("Params{%d, %d}.Skip() = %d, want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{2, 10, 1},
		{10, 1, 10},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
	// totalPages is zero exactly when the count is zero
	for total := int64(0); total <= 30; total++ {
		got := TotalPages(total, 5)
		if (got == 0) != (total == 0) {
			t.Errorf("TotalPages(%d, 5) = %d, zero-iff-zero violated", total, got)
		}
	}
}

func TestFilterOmitsEmptyConstraints(t *testing.T) {
	f := NewFilter().
		Eq("role", "").
		ContainsFold("userEmail", "").
		DateRange("date", time.Time{}, time.Time{}).
		Build()
	if len(f) != 0 {
		t.Fatalf("expected empty filter, got %v", f)
	}
}

func TestFilterEq(t *testing.T) {
	f := NewFilter().Eq("role", "agent").Eq("status", "Approved").Build()
	if f["role"] != "agent" || f["status"] != "Approved" {
		t.Fatalf("unexpected filter %v", f)
	}
}

func TestFilterContainsFoldEscapesMetacharacters(t *testing.T) {
	f := NewFilter().ContainsFold("userEmail", "a.b+c@example.com").Build()
	re, ok := f["userEmail"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex constraint, got %T", f["userEmail"])
	}
	if re.Options != "i" {
		t.Errorf("expected case-insensitive option, got %q", re.Options)
	}
	want := `a\.b\+c@example\.com`
	if re.Pattern != want {
		t.Errorf("pattern = %q, want %q", re.Pattern, want)
	}
}

func TestFilterDateRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	f := NewFilter().DateRange("date", start, end).Build()
	rng, ok := f["date"].(bson.M)
	if !ok {
		t.Fatalf("expected range constraint, got %T", f["date"])
	}
	if !rng["$gte"].(time.Time).Equal(start) || !rng["$lte"].(time.Time).Equal(end) {
		t.Fatalf("unexpected range %v", rng)
	}

	// one-sided bounds do not apply
	half := NewFilter().DateRange("date", start, time.Time{}).Build()
	if len(half) != 0 {
		t.Fatalf("expected one-sided range to be omitted, got %v", half)
	}
}

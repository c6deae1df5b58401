// Package query implements the pagination and filtering layer shared by the
// list endpoints: page/limit parsing with explicit defaults, skip/limit
// arithmetic, total-page computation, and a typed filter builder that turns
// request parameters into a Mongo filter document.
package query

import (
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Params is a parsed page request. Both fields are always positive.
type Params struct {
	Page  int
	Limit int
}

// ParseParams reads page and limit from their raw query values. Anything
// that is not a positive integer falls back to the default, so a malformed
// page never turns a list request into a 400.
func ParseParams(page, limit string, defaultLimit int) Params {
	return Params{
		Page:  parsePositive(page, 1),
		Limit: parsePositive(limit, defaultLimit),
	}
}

func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages returns ceil(total/limit), and 0 when nothing matched.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Filter builds a Mongo filter as a conjunction of optional constraints.
// Constraints with empty values are omitted rather than matched against the
// empty string, so absent request parameters leave the filter untouched.
type Filter struct {
	clauses bson.M
}

// NewFilter returns an empty filter that matches every document.
func NewFilter() *Filter {
	return &Filter{clauses: bson.M{}}
}

// Eq adds an exact-match constraint when value is non-empty.
func (f *Filter) Eq(field, value string) *Filter {
	if value != "" {
		f.clauses[field] = value
	}
	return f
}

// ContainsFold adds a case-insensitive substring constraint when value is
// non-empty. The value is matched literally: metacharacters are escaped
// before the pattern is compiled, so caller input cannot smuggle in a
// pathological expression.
func (f *Filter) ContainsFold(field, value string) *Filter {
	if value != "" {
		f.clauses[field] = primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
	}
	return f
}

// DateRange adds an inclusive range constraint on a time field. Zero bounds
// leave the filter untouched; callers apply the range only when both ends
// were supplied.
func (f *Filter) DateRange(field string, start, end time.Time) *Filter {
	if !start.IsZero() && !end.IsZero() {
		f.clauses[field] = bson.M{"$gte": start, "$lte": end}
	}
	return f
}

// Build returns the filter document. An empty filter matches everything.
func (f *Filter) Build() bson.M {
	return f.clauses
}

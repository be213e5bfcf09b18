// Package query turns request query strings into a filtered, sorted,
// field-limited, paginated description that the repositories apply to the
// database. Parsing is pure, the four stages always run in the same order:
// filter, sort, field selection, pagination.
package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// operators is the only comparison-suffix allow-list, anything else stays a
// plain equality key.
var operators = map[string]string{
	"gte": ">=",
	"gt":  ">",
	"lte": "<=",
	"lt":  "<",
}

// reserved keys control the pipeline itself and never become filters.
var reserved = map[string]bool{
	"page":   true,
	"sort":   true,
	"limit":  true,
	"fields": true,
	"q":      true,
}

// Spec declares, per entity, which API fields may be filtered, sorted and
// selected, and which columns they map to. Keys absent from the maps are
// ignored at parse time, so unknown or hostile keys never reach the database.
type Spec struct {
	Filterable   map[string]string
	Sortable     map[string]string
	Selectable   map[string]string
	SearchColumn string
	DefaultSort  string
}

// Condition is a single comparison against a resolved column.
type Condition struct {
	Column   string
	Operator string
	Value    string
}

// Options is the refined query produced by Parse.
type Options struct {
	Conditions []Condition
	Sort       []string
	Fields     []string
	Page       int
	Limit      int
}

// Offset computes the skip for the requested page. Pages past the end of the
// data produce an empty result set, never an error.
func (o Options) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Parse runs the four stages over the raw query values.
func Parse(values url.Values, spec Spec) Options {
	opts := Options{
		Conditions: parseFilter(values, spec),
		Sort:       parseSort(values.Get("sort"), spec),
		Fields:     parseFields(values.Get("fields"), spec),
		Page:       parsePositive(values.Get("page"), DefaultPage),
		Limit:      parsePositive(values.Get("limit"), DefaultLimit),
	}
	return opts
}

func parseFilter(values url.Values, spec Spec) []Condition {
	var conds []Condition
	for key, vals := range values {
		if len(vals) == 0 || reserved[key] {
			continue
		}

		field, op := splitOperator(key)
		column, ok := spec.Filterable[field]
		if !ok {
			continue
		}
		conds = append(conds, Condition{Column: column, Operator: op, Value: vals[0]})
	}

	// url.Values iteration order is random, keep the output stable
	sort.Slice(conds, func(i, j int) bool {
		if conds[i].Column != conds[j].Column {
			return conds[i].Column < conds[j].Column
		}
		return conds[i].Operator < conds[j].Operator
	})
	return conds
}

// splitOperator handles the "price[gte]" form. Suffixes outside the operator
// allow-list leave the whole key untouched, which then fails the Filterable
// lookup and is dropped.
func splitOperator(key string) (field, op string) {
	open := strings.IndexByte(key, '[')
	if open > 0 && strings.HasSuffix(key, "]") {
		if sqlOp, ok := operators[key[open+1:len(key)-1]]; ok {
			return key[:open], sqlOp
		}
	}
	return key, "="
}

func parseSort(raw string, spec Spec) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")

		column, ok := spec.Sortable[field]
		if !ok {
			continue
		}
		if desc {
			out = append(out, column+" DESC")
		} else {
			out = append(out, column+" ASC")
		}
	}

	if len(out) == 0 {
		if spec.DefaultSort != "" {
			return []string{spec.DefaultSort}
		}
		return []string{"created_at DESC"}
	}
	return out
}

func parseFields(raw string, spec Spec) []string {
	if raw == "" {
		return nil
	}

	seen := map[string]bool{"id": true}
	out := []string{"id"}
	for _, part := range strings.Split(raw, ",") {
		column, ok := spec.Selectable[strings.TrimSpace(part)]
		if !ok || seen[column] {
			continue
		}
		seen[column] = true
		out = append(out, column)
	}

	if len(out) == 1 {
		// nothing survived the allow-list, fall back to all columns
		return nil
	}
	return out
}

// parsePositive fails closed to the default on malformed or non-positive
// numerics, the list endpoints must never error on bad pagination input.
func parsePositive(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

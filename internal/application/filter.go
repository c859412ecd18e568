package application

import (
	"regexp"
	"strconv"
	"strings"
)

var thresholdPattern = regexp.MustCompile(`^(<=|>=|<|>|=)?([0-9]+)$`)

// Threshold is a parsed comparator+bound predicate for a traffic counter.
// A nil Threshold means the filter was not requested and matches everything.
type Threshold struct {
	Op    string
	Bound int64
}

// ParseFilterParameter parses an optional threshold expression of the form
// [<|>|<=|>=|=]<integer>. An empty raw value yields a nil Threshold. A value
// that does not match the grammar fails with a *FilterSyntaxError naming the
// offending field.
func ParseFilterParameter(raw, field string) (*Threshold, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	m := thresholdPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, &FilterSyntaxError{Field: field, Value: raw}
	}
	bound, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return nil, &FilterSyntaxError{Field: field, Value: raw}
	}
	op := m[1]
	if op == "" {
		op = "="
	}
	return &Threshold{Op: op, Bound: bound}, nil
}

// Matches reports whether actual satisfies the threshold. A nil receiver
// always matches.
func (t *Threshold) Matches(actual int64) bool {
	if t == nil {
		return true
	}
	switch t.Op {
	case "<":
		return actual < t.Bound
	case ">":
		return actual > t.Bound
	case "<=":
		return actual <= t.Bound
	case ">=":
		return actual >= t.Bound
	default:
		return actual == t.Bound
	}
}

// Criteria is the full filter set applied to a topic listing.
type Criteria struct {
	Name            string
	Enqueued        *Threshold
	Dequeued        *Threshold
	IncludeInternal bool
}

// ParseCriteria builds Criteria from the raw flag values, failing fast with
// a *FilterSyntaxError before any broker call.
func ParseCriteria(name, enqueued, dequeued string) (Criteria, error) {
	enq, err := ParseFilterParameter(enqueued, "enqueued")
	if err != nil {
		return Criteria{}, err
	}
	deq, err := ParseFilterParameter(dequeued, "dequeued")
	if err != nil {
		return Criteria{}, err
	}
	return Criteria{Name: name, Enqueued: enq, Dequeued: deq}, nil
}

// matchesName is the case-insensitive substring test for the name filter.
func (c Criteria) matchesName(topic string) bool {
	if c.Name == "" {
		return true
	}
	return strings.Contains(strings.ToLower(topic), strings.ToLower(c.Name))
}

package domain

// Topic is a broker-side topic together with its traffic counters.
// Instances are fetched fresh on every command invocation and never cached.
type Topic struct {
	Name     string
	Enqueued int64
	Dequeued int64
}

// SortKey selects the ordering applied to listed topics.
type SortKey int

const (
	// SortByName orders lexicographically by topic name (default).
	SortByName SortKey = iota
	SortByEnqueued
	SortByDequeued
)

// SortKeyFromString maps the configuration value to a SortKey.
// Recognized values are "Enqueued" and "Dequeued"; anything else
// falls back to name ordering.
func SortKeyFromString(s string) SortKey {
	switch s {
	case "Enqueued":
		return SortByEnqueued
	case "Dequeued":
		return SortByDequeued
	default:
		return SortByName
	}
}

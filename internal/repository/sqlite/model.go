package sqlite

import "time"

// Entry is one row of the kv table: a named slot and its serialized value.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

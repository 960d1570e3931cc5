package types

// Status is the lifecycle state of a row in the database. It is independent of
// the per-entity workflow status (e.g. a change order's draft/approved) and is
// only used to keep rows addressable after they stop being used.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

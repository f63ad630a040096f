package ports

// FetchMode selects which soft-delete view a repository read operates on.
// Every mutation picks the mode matching its operation: delete and
// status-change load active records only, restore loads deleted records only.
type FetchMode int

const (
	// FetchActiveOnly returns records whose deletion marker is unset.
	FetchActiveOnly FetchMode = iota

	// FetchDeletedOnly returns soft-deleted records only.
	FetchDeletedOnly

	// FetchAll returns records regardless of their deletion marker.
	FetchAll
)

package constants

// Pagination limits for task listing.
const (
	DefaultPageLimit = 20
	MinPageLimit     = 1
	MaxPageLimit     = 100
)

// Completion filter values accepted by the task list endpoint.
const (
	FilterAll         = "all"
	FilterCompleted   = "completed"
	FilterIncompleted = "incompleted"
)

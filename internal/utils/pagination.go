package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskloop/task-tracker-api/internal/constants"
)

// ListParams holds the cursor-pagination parameters of a task list request
type ListParams struct {
	Limit  int
	Cursor uint64
	Filter string
}

// GetListParams extracts and validates list parameters from the request.
// The offset query parameter is the id of the last task the client has seen,
// not a positional offset.
func GetListParams(c *gin.Context) ListParams {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageLimit)))
	if err != nil || limit < constants.MinPageLimit {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}

	cursor, err := strconv.ParseUint(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil {
		cursor = 0
	}

	return ListParams{
		Limit:  limit,
		Cursor: cursor,
		Filter: c.DefaultQuery("filter", constants.FilterAll),
	}
}

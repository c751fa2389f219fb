package watchlist

import (
	"time"

	"movieflow/errs"
)

var (
	ErrTitleRequired = errs.Errorf(errs.EINVALID, "watchlist: a title is required")
	ErrAlreadyInList = errs.Errorf(errs.ECONFLICT, "This title is already in your list")
	ErrEntryNotFound = errs.Errorf(errs.ENOTFOUND, "watchlist: entry not found")
)

// Entry links a user to a title they want to track. The title's display name
// is the join key against the external catalog; for each user it is unique,
// enforced by the storage layer.
type Entry struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"added_at"`
}

package httpadapter

import (
	"errors"
	"net/http"

	"github.com/small-engineer/recados-api/internal/domain"
)

// Response messages. Failures carrying a domain error use the error text.
const (
	msgHealthy          = "healthy"
	msgUsersFound       = "users found"
	msgNoUsers          = "no users registered yet"
	msgUserFound        = "user found"
	msgUserCreated      = "user created"
	msgNoteCreated      = "note created"
	msgNotesFound       = "notes found"
	msgNoNotes          = "no notes registered yet for this user"
	msgNoteFound        = "note found"
	msgNoteUpdated      = "note updated"
	msgNoteDeleted      = "note deleted"
	msgRouteNotFound    = "route not found"
	msgMethodNotAllowed = "method not allowed"
	msgInternal         = "internal error"
)

var errBadBody = errors.New("invalid request body")

// errStatus is the status for each error that maps to a client failure.
var errStatus = map[error]int{
	domain.ErrEmailExists:  http.StatusBadRequest,
	domain.ErrNoteIDExists: http.StatusBadRequest,
	errBadBody:             http.StatusBadRequest,
	domain.ErrUserNotFound: http.StatusNotFound,
	domain.ErrNoteNotFound: http.StatusNotFound,
}

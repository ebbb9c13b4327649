package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/errors"
	"github.com/inkwell-dev/inkwell/internal/middleware"
)

// parseIdParam parses an int64 route variable and returns a meaningful error.
func parseIdParam(r *http.Request, name string) (int64, error) {
	val, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, errors.Validation(fmt.Sprintf("invalid %s: must be an integer", name))
	}
	return val, nil
}

// requireUser returns the authenticated user from the context. The auth
// middleware guarantees its presence on protected routes; a nil user here
// means the route was wired without it.
func requireUser(r *http.Request) (*domain.User, error) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		return nil, errors.Unauthorized("Not authorized, no token")
	}
	return user, nil
}

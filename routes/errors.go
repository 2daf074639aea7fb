package routes

import (
	"errors"
	"net/http"

	"github.com/Araryarch/senopost-be/controllers"
	"github.com/Araryarch/senopost-be/util"
)

// buildErrHTTPErr maps the controller failure taxonomy onto responses:
// NotFound and Conflict mean nothing happened, 503 means try again, anything
// else is an internal failure.
func buildErrHTTPErr(err error) *util.HTTPError {
	switch {
	case errors.Is(err, controllers.ErrNotFound):
		return &util.HTTPError{Status: http.StatusNotFound, Message: "not found"}
	case errors.Is(err, controllers.ErrConflict):
		return &util.HTTPError{Status: http.StatusConflict, Message: "already exists"}
	case errors.Is(err, controllers.ErrTxConflict):
		return &util.HTTPError{Status: http.StatusServiceUnavailable, Message: "conflicting operation in progress, try again"}
	}
	return util.BuildDbHTTPErr(err)
}

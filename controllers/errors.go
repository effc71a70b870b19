package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkurnia/tabledesk/engine"
	"github.com/dkurnia/tabledesk/utils"
)

// respondEngineError maps the engine's error taxonomy onto HTTP
// statuses: unknown ids to 404, booking conflicts to 409, validation
// and unsupported transitions to 400.
func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrTableNotFound), errors.Is(err, engine.ErrReservationNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, engine.ErrSlotTaken), errors.Is(err, engine.ErrTableNotAvailable):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, engine.ErrValidation), errors.Is(err, engine.ErrUnsupportedTransition):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

func errMissingQuery(name string) error {
	return fmt.Errorf("query parameter %q is required", name)
}

func errBadQuery(name string) error {
	return fmt.Errorf("query parameter %q is invalid", name)
}

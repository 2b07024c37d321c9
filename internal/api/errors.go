package api

import (
	"errors"
	"net/http"

	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrCannotFriendSelf):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrProgramNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrFriendNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrExerciseAccessDenied),
		errors.Is(err, service.ErrClientNotRole),
		errors.Is(err, service.ErrClientNotManaged):
		return http.StatusForbidden
	case errors.Is(err, service.ErrSessionAlreadyCompleted),
		errors.Is(err, service.ErrClientAlreadyAssigned),
		errors.Is(err, service.ErrAlreadyFriends):
		return http.StatusConflict
	case errors.Is(err, service.ErrNoTemplateAvailable):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondWithError aborts with the mapped status. Unexpected errors are logged and answered with
// the generic message only.
func respondWithError(c *gin.Context, err error, message string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.WithField("request_id", c.GetString(ContextRequestIDKey)).Errorf("%s: %s", message, err)
		abortWithError(c, status, message)
		return
	}
	abortWithError(c, status, err.Error())
}

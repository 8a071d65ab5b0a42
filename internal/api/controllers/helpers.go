package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dealflow/pkg/utils"
)

// callerID reads the authenticated user id the JWT middleware stored on the
// context. A missing or malformed id aborts with 401.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "You must be logged in")
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a uuid path parameter, responding 404 on garbage so bad
// ids are indistinguishable from missing records.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Record not found")
		return uuid.Nil, false
	}
	return id, true
}

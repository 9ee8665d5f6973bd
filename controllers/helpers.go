package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

// salonIDFromQuery reads the mandatory salon_id query parameter. A missing or
// malformed value is a validation error and the handler should return.
func salonIDFromQuery(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("salon_id")
	if raw == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "salon_id is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon_id format")
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a uuid path parameter.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// userIDFromContext reads the authenticated user id set by the JWT
// middleware. The claim value is attacker-supplied until verified, so a
// missing, non-string or malformed claim yields uuid.Nil rather than a
// panic.
func userIDFromContext(c *gin.Context) uuid.UUID {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

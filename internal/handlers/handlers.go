package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
	"expodir/internal/managers"
	"expodir/internal/middleware"
)

func registryFrom(c *gin.Context) (*managers.Registry, bool) {
	registry := middleware.GetRegistry(c)
	if registry == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Manager registry not found.")
		return nil, false
	}
	return registry, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := helpers.StringToID(c.Param(name))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return 0, false
	}
	return raw.(uint), true
}

func Health(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	stats, err := registry.Stats(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage unreachable.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "stats": stats})
}

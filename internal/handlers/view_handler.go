package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
	"expodir/internal/models"
)

type RecordViewRequest struct {
	UserID     *uint  `json:"user_id"`
	TargetType string `json:"target_type" binding:"required"`
	TargetID   uint   `json:"target_id" binding:"required"`
}

type StartSessionRequest struct {
	UserID *uint `json:"user_id"`
}

func clientMeta(c *gin.Context) (*string, *string) {
	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()
	var ipPtr, uaPtr *string
	if ip != "" {
		ipPtr = &ip
	}
	if userAgent != "" {
		uaPtr = &userAgent
	}
	return ipPtr, uaPtr
}

func RecordView(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	ip, userAgent := clientMeta(c)
	view, err := registry.Views.AddView(c.Request.Context(), req.UserID, models.ViewTarget(req.TargetType), req.TargetID, ip, userAgent)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func PopularItems(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	targetType := models.ViewTarget(c.Query("target_type"))
	if targetType == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing target_type.")
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := helpers.StringToInt(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
			return
		}
		limit = parsed
	}

	items, err := registry.Views.GetPopularItems(c.Request.Context(), targetType, limit)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func ViewsByPeriod(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	targetType := models.ViewTarget(c.Query("target_type"))
	if targetType == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing target_type.")
		return
	}
	targetID, err := helpers.StringToID(c.Query("target_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid target_id.")
		return
	}
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := helpers.StringToInt(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid days.")
			return
		}
		days = parsed
	}

	buckets, err := registry.Views.GetViewsByPeriod(c.Request.Context(), targetType, targetID, days)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func StartSession(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	ip, userAgent := clientMeta(c)
	session, err := registry.Views.StartSession(c.Request.Context(), req.UserID, ip, userAgent)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func RecordPageView(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req struct {
		PageURL string `json:"page_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	pageView, err := registry.Views.RecordPageView(c.Request.Context(), c.Param("session_id"), req.PageURL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pageView)
}

func EndSession(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Views.EndSession(c.Request.Context(), c.Param("session_id")); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session ended."})
}

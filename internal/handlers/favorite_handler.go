package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
	"expodir/internal/models"
)

type FavoriteRequest struct {
	Type     string `json:"type" binding:"required"`
	TargetID uint   `json:"target_id" binding:"required"`
}

func AddFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	favorite, err := registry.Favorites.AddFavorite(c.Request.Context(), userID, models.FavoriteType(req.Type), req.TargetID)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

func RemoveFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	removed, err := registry.Favorites.RemoveFavorite(c.Request.Context(), userID, models.FavoriteType(req.Type), req.TargetID)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	favorites, err := registry.Favorites.GetUserFavorites(c.Request.Context(), userID, models.FavoriteType(c.Query("type")))
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func CountFavorites(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	targetID, err := helpers.StringToID(c.Query("target_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid target_id.")
		return
	}
	favoriteType := models.FavoriteType(c.Query("type"))
	if favoriteType == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing type.")
		return
	}

	count, err := registry.Favorites.CountFavorites(c.Request.Context(), favoriteType, targetID)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": favoriteType, "target_id": targetID, "count": count})
}

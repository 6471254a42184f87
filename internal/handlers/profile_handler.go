package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
)

type ProfileRequest struct {
	FullName *string `json:"full_name"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Country  *string `json:"country"`
	City     *string `json:"city"`
}

type PreferredCategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
}

func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	profile, err := registry.Profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if profile == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Profile not found.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpsertProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.City != nil {
		fields["city"] = *req.City
	}

	profile, err := registry.Profiles.CreateOrUpdate(c.Request.Context(), userID, fields)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func AddPreferredCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req PreferredCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	category, err := registry.Profiles.AddPreferredCategory(c.Request.Context(), userID, req.CategoryName)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func AddSocialLink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	link, err := registry.Profiles.AddSocialLink(c.Request.Context(), userID, req.Platform, req.URL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
	"expodir/internal/models"
)

const dateLayout = "2006-01-02"

type ExhibitionCreateRequest struct {
	OrganizerID   *uint   `json:"organizer_id"`
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
	CategoryLevel *string `json:"category_level"`
	Status        *string `json:"status"`
}

type ExhibitionUpdateRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	CategoryLevel *string `json:"category_level"`
	Status        *string `json:"status"`
}

type RegisterCompanyRequest struct {
	CompanyID   uint    `json:"company_id" binding:"required"`
	BoothNumber *string `json:"booth_number"`
	HallName    *string `json:"hall_name"`
	VipLevel    *string `json:"vip_level"`
}

type BoothUpdateRequest struct {
	BoothNumber *string `json:"booth_number"`
	HallName    *string `json:"hall_name"`
	VipLevel    *string `json:"vip_level"`
}

func CreateExhibition(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req ExhibitionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD.")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD.")
		return
	}

	exhibition := &models.Exhibition{
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		CategoryLevel: req.CategoryLevel,
	}
	if req.Status != nil {
		exhibition.Status = models.ExpoStatus(*req.Status)
	}

	created, err := registry.Exhibitions.Create(c.Request.Context(), req.OrganizerID, exhibition)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetExhibition(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	exhibition, err := registry.Exhibitions.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if exhibition == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Exhibition not found.")
		return
	}
	c.JSON(http.StatusOK, exhibition)
}

func SearchExhibitions(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	query := c.Query("q")
	category := c.Query("category")
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := helpers.StringToInt(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid year.")
			return
		}
		year = parsed
	}
	status := models.ExpoStatus(c.Query("status"))

	if c.Query("upcoming") == "true" {
		exhibitions, err := registry.Exhibitions.GetUpcoming(c.Request.Context())
		if err != nil {
			helpers.RespondManagerError(c, err)
			return
		}
		c.JSON(http.StatusOK, exhibitions)
		return
	}

	exhibitions, err := registry.Exhibitions.Search(c.Request.Context(), query, category, year, status)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, exhibitions)
}

func UpdateExhibition(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req ExhibitionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD.")
			return
		}
		fields["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD.")
			return
		}
		fields["end_date"] = endDate
	}
	if req.CategoryLevel != nil {
		fields["category_level"] = *req.CategoryLevel
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	exhibition, err := registry.Exhibitions.Update(c.Request.Context(), id, fields)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, exhibition)
}

func DeleteExhibition(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Exhibitions.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exhibition deleted successfully."})
}

func UploadExhibitionBanner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("banner")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Banner file missing.")
		return
	}

	previous, err := registry.Exhibitions.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if previous == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Exhibition not found.")
		return
	}

	bannerPath, err := helpers.UploadFile(c, fileHeader, helpers.UploadExhibitionBanner)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	exhibition, err := registry.Exhibitions.Update(c.Request.Context(), id, map[string]interface{}{"banner_image": bannerPath})
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if previous.BannerImage != nil {
		helpers.DeleteFile(*previous.BannerImage)
	}
	c.JSON(http.StatusOK, exhibition)
}

func AddExhibitionTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	tag, err := registry.Exhibitions.AddTag(c.Request.Context(), id, req.Tag)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func RemoveExhibitionTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := idParam(c, "tag_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Exhibitions.RemoveTag(c.Request.Context(), id, tagID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag removed successfully."})
}

func AddExhibitionMedia(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req struct {
		MediaURL string `json:"media_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	media, err := registry.Exhibitions.AddMedia(c.Request.Context(), id, req.MediaURL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func RemoveExhibitionMedia(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	mediaID, ok := idParam(c, "media_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Exhibitions.RemoveMedia(c.Request.Context(), id, mediaID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media removed successfully."})
}

func RegisterExhibitionCompany(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	vipLevel := models.VipNormal
	if req.VipLevel != nil {
		vipLevel = models.VipLevel(*req.VipLevel)
	}

	registration, err := registry.ExpoCompanies.RegisterCompany(c.Request.Context(), id, req.CompanyID, req.BoothNumber, req.HallName, vipLevel)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registration)
}

func UpdateBoothInfo(c *gin.Context) {
	registrationID, ok := idParam(c, "registration_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req BoothUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	var vipLevel *models.VipLevel
	if req.VipLevel != nil {
		level := models.VipLevel(*req.VipLevel)
		vipLevel = &level
	}

	registration, err := registry.ExpoCompanies.UpdateBoothInfo(c.Request.Context(), registrationID, req.BoothNumber, req.HallName, vipLevel)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, registration)
}

func ListExhibitionCompanies(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if hall := c.Query("hall"); hall != "" {
		companies, err := registry.ExpoCompanies.GetCompaniesInHall(c.Request.Context(), id, hall)
		if err != nil {
			helpers.RespondManagerError(c, err)
			return
		}
		c.JSON(http.StatusOK, companies)
		return
	}

	exhibitors, err := registry.ExpoCompanies.ListCompaniesWithDetails(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, exhibitors)
}

func ListExhibitionYears(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	years, err := registry.Exhibitions.ListExhibitionYears(c.Request.Context())
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

func ListExhibitionCategories(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	categories, err := registry.Exhibitions.ListCategories(c.Request.Context())
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

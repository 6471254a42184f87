package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
	"expodir/internal/models"
)

type CompanyCreateRequest struct {
	CompanyName      string  `json:"company_name" binding:"required"`
	Logo             *string `json:"logo"`
	Website          *string `json:"website"`
	IndustryCategory *string `json:"industry_category"`
	Description      *string `json:"description"`
}

type CompanyUpdateRequest struct {
	CompanyName      *string `json:"company_name"`
	Logo             *string `json:"logo"`
	Website          *string `json:"website"`
	IndustryCategory *string `json:"industry_category"`
	Description      *string `json:"description"`
	ApprovalStatus   *string `json:"approval_status"`
}

type NameURLRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

type AddressRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type PhoneRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type TagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type MediaItemRequest struct {
	Title        string `json:"title" binding:"required"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url" binding:"required"`
}

func CreateCompany(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	company, err := registry.Companies.Create(c.Request.Context(), userID, &models.CompanyProfile{
		CompanyName:      req.CompanyName,
		Logo:             req.Logo,
		Website:          req.Website,
		IndustryCategory: req.IndustryCategory,
		Description:      req.Description,
	})
	if err != nil {
		// The unique index on user_id surfaces a second company for the
		// same user as a storage error.
		helpers.RespondWithError(c, http.StatusConflict, "User already has a company profile.")
		return
	}
	c.JSON(http.StatusCreated, company)
}

func GetCompany(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	company, err := registry.Companies.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if company == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Company not found.")
		return
	}
	c.JSON(http.StatusOK, company)
}

// ListCompanies is the public directory listing. A user_id query looks
// up the single company of that user; otherwise the status query picks
// the moderation bucket, approved by default.
func ListCompanies(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := helpers.StringToID(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user_id.")
			return
		}
		company, err := registry.Companies.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			helpers.RespondManagerError(c, err)
			return
		}
		if company == nil {
			helpers.RespondWithError(c, http.StatusNotFound, "Company not found.")
			return
		}
		c.JSON(http.StatusOK, company)
		return
	}

	var companies []models.CompanyProfile
	var err error
	switch c.DefaultQuery("status", "approved") {
	case "pending":
		companies, err = registry.Companies.GetPendingCompanies(c.Request.Context())
	case "approved":
		companies, err = registry.Companies.GetApprovedCompanies(c.Request.Context())
	default:
		helpers.RespondWithError(c, http.StatusBadRequest, "Unknown status filter.")
		return
	}
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func UpdateCompany(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	fields := make(map[string]interface{})
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.Logo != nil {
		fields["logo"] = *req.Logo
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.IndustryCategory != nil {
		fields["industry_category"] = *req.IndustryCategory
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ApprovalStatus != nil {
		fields["approval_status"] = *req.ApprovalStatus
	}

	company, err := registry.Companies.Update(c.Request.Context(), id, fields)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func DeleteCompany(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Companies.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully."})
}

func UploadCompanyLogo(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Logo file missing.")
		return
	}

	previous, err := registry.Companies.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if previous == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Company not found.")
		return
	}

	logoPath, err := helpers.UploadFile(c, fileHeader, helpers.UploadCompanyLogo)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	company, err := registry.Companies.Update(c.Request.Context(), id, map[string]interface{}{"logo": logoPath})
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if previous.Logo != nil {
		helpers.DeleteFile(*previous.Logo)
	}
	c.JSON(http.StatusOK, company)
}


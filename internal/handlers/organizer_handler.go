package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
	"expodir/internal/models"
)

type OrganizerCreateRequest struct {
	OrganizationName  string  `json:"organization_name" binding:"required"`
	Website           *string `json:"website"`
	Country           *string `json:"country"`
	ResponsiblePerson *string `json:"responsible_person"`
	VerificationDoc   *string `json:"verification_doc"`
}

func CreateOrganizer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req OrganizerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	organizer, err := registry.Organizers.Create(c.Request.Context(), userID, &models.OrganizerProfile{
		OrganizationName:  req.OrganizationName,
		Website:           req.Website,
		Country:           req.Country,
		ResponsiblePerson: req.ResponsiblePerson,
		VerificationDoc:   req.VerificationDoc,
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "User already has an organizer profile.")
		return
	}
	c.JSON(http.StatusCreated, organizer)
}

func GetOrganizer(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	organizer, err := registry.Organizers.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if organizer == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Organizer not found.")
		return
	}
	c.JSON(http.StatusOK, organizer)
}

func SearchOrganizers(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	organizers, err := registry.Organizers.Search(c.Request.Context(), c.Query("q"), c.Query("country"))
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, organizers)
}

func VerifyOrganizer(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	organizer, err := registry.Organizers.Verify(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, organizer)
}

func ListOrganizerExhibitions(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	exhibitions, err := registry.Exhibitions.GetByOrganizer(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, exhibitions)
}

func UploadVerificationDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Document file missing.")
		return
	}
	filePath, err := helpers.UploadFile(c, fileHeader, helpers.UploadVerificationDocument)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	document, err := registry.Organizers.AddVerificationDocument(c.Request.Context(), userID, fileHeader.Filename, filePath)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

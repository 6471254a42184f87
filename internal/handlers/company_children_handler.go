package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
)

// The eight company child collections share one add/list/delete shape;
// each handler trio only differs in its request payload and manager
// call.

func AddCompanyDocument(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	var req NameURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	document, err := registry.Companies.AddDocument(c.Request.Context(), id, req.Name, req.URL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

func ListCompanyDocuments(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	documents, err := registry.Companies.ListDocuments(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

func DeleteCompanyDocument(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeleteDocument(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document removed successfully."})
}

func AddCompanyWebsite(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	var req NameURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	website, err := registry.Companies.AddWebsite(c.Request.Context(), id, req.Name, req.URL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, website)
}

func ListCompanyWebsites(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	websites, err := registry.Companies.ListWebsites(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, websites)
}

func DeleteCompanyWebsite(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeleteWebsite(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Website removed successfully."})
}

func AddCompanyAddress(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	address, err := registry.Companies.AddAddress(c.Request.Context(), id, req.Name, req.Address)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

func ListCompanyAddresses(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	addresses, err := registry.Companies.ListAddresses(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func DeleteCompanyAddress(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeleteAddress(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address removed successfully."})
}

func AddCompanyPhone(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	phone, err := registry.Companies.AddPhone(c.Request.Context(), id, req.Name, req.PhoneNumber)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, phone)
}

func ListCompanyPhones(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	phones, err := registry.Companies.ListPhones(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, phones)
}

func DeleteCompanyPhone(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeletePhone(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Phone removed successfully."})
}

func AddCompanyTag(c *gin.Context) {
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
	tag, err := registry.Companies.AddTag(c.Request.Context(), id, req.Tag)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func ListCompanyTags(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	tags, err := registry.Companies.ListTags(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func DeleteCompanyTag(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeleteTag(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag removed successfully."})
}

func AddCompanyVideo(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	var req MediaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	video, err := registry.Companies.AddVideo(c.Request.Context(), id, req.Title, req.OriginalName, req.URL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

func ListCompanyVideos(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	videos, err := registry.Companies.ListVideos(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func DeleteCompanyVideo(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeleteVideo(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video removed successfully."})
}

func AddCompanyBrochure(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	var req MediaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	brochure, err := registry.Companies.AddBrochure(c.Request.Context(), id, req.Title, req.OriginalName, req.URL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brochure)
}

func ListCompanyBrochures(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	brochures, err := registry.Companies.ListBrochures(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, brochures)
}

func DeleteCompanyBrochure(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeleteBrochure(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brochure removed successfully."})
}

func AddCompanyKnowledgeFile(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	var req MediaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	file, err := registry.Companies.AddKnowledgeFile(c.Request.Context(), id, req.Title, req.URL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

func ListCompanyKnowledgeFiles(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	files, err := registry.Companies.ListKnowledgeFiles(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

func DeleteCompanyKnowledgeFile(c *gin.Context) {
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	if err := registry.Companies.DeleteKnowledgeFile(c.Request.Context(), itemID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Knowledge file removed successfully."})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/helpers"
	"expodir/internal/models"
)

type ProductCreateRequest struct {
	CompanyID       uint     `json:"company_id" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Summary         *string  `json:"summary"`
	LongDescription *string  `json:"long_description"`
	VideoPitchURL   *string  `json:"video_pitch_url"`
	PriceRange      *string  `json:"price_range"`
	Tags            []string `json:"tags"`
}

type ProductUpdateRequest struct {
	Title           *string  `json:"title"`
	Summary         *string  `json:"summary"`
	LongDescription *string  `json:"long_description"`
	VideoPitchURL   *string  `json:"video_pitch_url"`
	PriceRange      *string  `json:"price_range"`
	Tags            []string `json:"tags"`
}

type ProductImageRequest struct {
	URL          string `json:"url" binding:"required"`
	OriginalName string `json:"original_name"`
	IsPrimary    bool   `json:"is_primary"`
}

func CreateProduct(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	product, err := registry.Products.Create(c.Request.Context(), req.CompanyID, &models.Product{
		Title:           req.Title,
		Summary:         req.Summary,
		LongDescription: req.LongDescription,
		VideoPitchURL:   req.VideoPitchURL,
		PriceRange:      req.PriceRange,
	}, req.Tags)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func GetProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	product, err := registry.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if product == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Product not found.")
		return
	}
	c.JSON(http.StatusOK, product)
}

func SearchProducts(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var companyID uint
	if raw := c.Query("company_id"); raw != "" {
		parsed, err := helpers.StringToID(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid company_id.")
			return
		}
		companyID = parsed
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := helpers.StringToInt(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
			return
		}
		limit = parsed
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := helpers.StringToInt(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid offset.")
			return
		}
		offset = parsed
	}

	products, err := registry.Products.Search(c.Request.Context(), c.Query("q"), companyID, limit, offset)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetCompanyProducts(c *gin.Context) {
	companyID, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	products, err := registry.Products.GetByCompany(c.Request.Context(), companyID)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Summary != nil {
		fields["summary"] = *req.Summary
	}
	if req.LongDescription != nil {
		fields["long_description"] = *req.LongDescription
	}
	if req.VideoPitchURL != nil {
		fields["video_pitch_url"] = *req.VideoPitchURL
	}
	if req.PriceRange != nil {
		fields["price_range"] = *req.PriceRange
	}

	product, err := registry.Products.Update(c.Request.Context(), id, fields, req.Tags)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Products.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
}

func AddProductImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req ProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	image, err := registry.Products.AddImage(c.Request.Context(), id, req.URL, req.OriginalName, req.IsPrimary)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func RemoveProductImage(c *gin.Context) {
	imageID, ok := idParam(c, "image_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Products.RemoveImage(c.Request.Context(), imageID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully."})
}

func ListProductImages(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	images, err := registry.Products.ListImages(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func AddProductBrochure(c *gin.Context) {
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

	brochure, err := registry.Products.AddBrochure(c.Request.Context(), id, req.Title, req.OriginalName, req.URL)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brochure)
}

func RemoveProductBrochure(c *gin.Context) {
	brochureID, ok := idParam(c, "brochure_id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Products.RemoveBrochure(c.Request.Context(), brochureID); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brochure removed successfully."})
}

func ListProductBrochures(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	brochures, err := registry.Products.ListBrochures(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, brochures)
}

func AddProductTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if err := registry.Products.AddTag(c.Request.Context(), id, req.Name); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tag attached successfully."})
}

func RemoveProductTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	if err := registry.Products.RemoveTag(c.Request.Context(), id, c.Param("name")); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag detached successfully."})
}

func ListProductTags(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	tags, err := registry.Products.ListTags(c.Request.Context(), id)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

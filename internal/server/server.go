package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"expodir/config"
	"expodir/internal/handlers"
	"expodir/internal/managers"
	"expodir/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	registry := managers.NewRegistry(db)

	r := gin.Default()

	setupRoutes(r, registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, registry *managers.Registry) {
	r.Use(middleware.RegistryMiddleware(registry))

	r.GET("/health", handlers.Health)

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
		public.POST("/forgot-password", handlers.ForgotPassword)
		public.POST("/reset-password", handlers.ResetPassword)

		public.GET("/exhibition-years", handlers.ListExhibitionYears)
		public.GET("/exhibition-categories", handlers.ListExhibitionCategories)

		exhibitions := public.Group("/exhibitions")
		{
			exhibitions.GET("", handlers.SearchExhibitions)
			exhibitions.GET("/:id", handlers.GetExhibition)
			exhibitions.GET("/:id/companies", handlers.ListExhibitionCompanies)
		}

		companies := public.Group("/companies")
		{
			companies.GET("", handlers.ListCompanies)
			companies.GET("/:id", handlers.GetCompany)
			companies.GET("/:id/products", handlers.GetCompanyProducts)
		}

		products := public.Group("/products")
		{
			products.GET("", handlers.SearchProducts)
			products.GET("/:id", handlers.GetProduct)
			products.GET("/:id/images", handlers.ListProductImages)
			products.GET("/:id/brochures", handlers.ListProductBrochures)
			products.GET("/:id/tags", handlers.ListProductTags)
		}

		organizers := public.Group("/organizers")
		{
			organizers.GET("", handlers.SearchOrganizers)
			organizers.GET("/:id", handlers.GetOrganizer)
			organizers.GET("/:id/exhibitions", handlers.ListOrganizerExhibitions)
		}

		views := public.Group("/views")
		{
			views.POST("", handlers.RecordView)
			views.GET("/popular", handlers.PopularItems)
			views.GET("/period", handlers.ViewsByPeriod)
			views.POST("/sessions", handlers.StartSession)
			views.POST("/sessions/:session_id/pages", handlers.RecordPageView)
			views.POST("/sessions/:session_id/end", handlers.EndSession)
		}

		public.GET("/favorites/count", handlers.CountFavorites)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/me", handlers.Me)
		protected.POST("/logout", handlers.Logout)

		users := protected.Group("/users")
		{
			users.PUT("/profile", handlers.UpsertProfile)
			users.GET("/profile", handlers.GetProfile)
			users.POST("/profile/categories", handlers.AddPreferredCategory)
			users.POST("/profile/social-links", handlers.AddSocialLink)
		}

		companies := protected.Group("/companies")
		{
			companies.POST("", handlers.CreateCompany)
			companies.PUT("/:id", handlers.UpdateCompany)
			companies.DELETE("/:id", handlers.DeleteCompany)
			companies.POST("/:id/logo", handlers.UploadCompanyLogo)
			companies.POST("/:id/documents", handlers.AddCompanyDocument)
			companies.GET("/:id/documents", handlers.ListCompanyDocuments)
			companies.DELETE("/:id/documents/:item_id", handlers.DeleteCompanyDocument)
			companies.POST("/:id/websites", handlers.AddCompanyWebsite)
			companies.GET("/:id/websites", handlers.ListCompanyWebsites)
			companies.DELETE("/:id/websites/:item_id", handlers.DeleteCompanyWebsite)
			companies.POST("/:id/addresses", handlers.AddCompanyAddress)
			companies.GET("/:id/addresses", handlers.ListCompanyAddresses)
			companies.DELETE("/:id/addresses/:item_id", handlers.DeleteCompanyAddress)
			companies.POST("/:id/phones", handlers.AddCompanyPhone)
			companies.GET("/:id/phones", handlers.ListCompanyPhones)
			companies.DELETE("/:id/phones/:item_id", handlers.DeleteCompanyPhone)
			companies.POST("/:id/tags", handlers.AddCompanyTag)
			companies.GET("/:id/tags", handlers.ListCompanyTags)
			companies.DELETE("/:id/tags/:item_id", handlers.DeleteCompanyTag)
			companies.POST("/:id/videos", handlers.AddCompanyVideo)
			companies.GET("/:id/videos", handlers.ListCompanyVideos)
			companies.DELETE("/:id/videos/:item_id", handlers.DeleteCompanyVideo)
			companies.POST("/:id/brochures", handlers.AddCompanyBrochure)
			companies.GET("/:id/brochures", handlers.ListCompanyBrochures)
			companies.DELETE("/:id/brochures/:item_id", handlers.DeleteCompanyBrochure)
			companies.POST("/:id/knowledge-files", handlers.AddCompanyKnowledgeFile)
			companies.GET("/:id/knowledge-files", handlers.ListCompanyKnowledgeFiles)
			companies.DELETE("/:id/knowledge-files/:item_id", handlers.DeleteCompanyKnowledgeFile)
		}

		exhibitions := protected.Group("/exhibitions")
		{
			exhibitions.POST("", handlers.CreateExhibition)
			exhibitions.PUT("/:id", handlers.UpdateExhibition)
			exhibitions.DELETE("/:id", handlers.DeleteExhibition)
			exhibitions.POST("/:id/banner", handlers.UploadExhibitionBanner)
			exhibitions.POST("/:id/tags", handlers.AddExhibitionTag)
			exhibitions.DELETE("/:id/tags/:tag_id", handlers.RemoveExhibitionTag)
			exhibitions.POST("/:id/media", handlers.AddExhibitionMedia)
			exhibitions.DELETE("/:id/media/:media_id", handlers.RemoveExhibitionMedia)
			exhibitions.POST("/:id/companies", handlers.RegisterExhibitionCompany)
			exhibitions.PUT("/:id/companies/:registration_id", handlers.UpdateBoothInfo)
		}

		organizers := protected.Group("/organizers")
		{
			organizers.POST("", handlers.CreateOrganizer)
			organizers.PUT("/:id/verify", handlers.VerifyOrganizer)
			organizers.POST("/documents", handlers.UploadVerificationDocument)
		}

		products := protected.Group("/products")
		{
			products.POST("", handlers.CreateProduct)
			products.PUT("/:id", handlers.UpdateProduct)
			products.DELETE("/:id", handlers.DeleteProduct)
			products.POST("/:id/images", handlers.AddProductImage)
			products.DELETE("/:id/images/:image_id", handlers.RemoveProductImage)
			products.POST("/:id/brochures", handlers.AddProductBrochure)
			products.DELETE("/:id/brochures/:brochure_id", handlers.RemoveProductBrochure)
			products.POST("/:id/tags", handlers.AddProductTag)
			products.DELETE("/:id/tags/:name", handlers.RemoveProductTag)
		}

		favorites := protected.Group("/favorites")
		{
			favorites.POST("", handlers.AddFavorite)
			favorites.DELETE("", handlers.RemoveFavorite)
			favorites.GET("", handlers.ListFavorites)
		}
	}
}

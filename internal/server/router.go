package server

import (
	auction "gallery-auction/internal/auctionService"
	"gallery-auction/internal/auth"
	gallery "gallery-auction/internal/galleryService"
	social "gallery-auction/internal/socialService"
	user "gallery-auction/internal/userService"
	auctionhandler "gallery-auction/services/auction/handler"
	galleryhandler "gallery-auction/services/gallery/handler"
	socialhandler "gallery-auction/services/social/handler"
	userhandler "gallery-auction/services/user/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs
type Services struct {
	Tokens  *auth.Manager
	Users   *user.UserService
	Gallery *gallery.GalleryService
	Social  *social.SocialService
	Auction *auction.AuctionService
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(s Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	userHandler := userhandler.NewUserHandler(s.Users)
	galleryHandler := galleryhandler.NewGalleryHandler(s.Gallery)
	socialHandler := socialhandler.NewSocialHandler(s.Social)
	auctionHandler := auctionhandler.NewAuctionHandler(s.Auction, s.Social)

	authed := RequireAuth(s.Tokens)

	users := router.Group("/users")
	{
		users.POST("/signup", userHandler.SignupHandler)
		users.POST("/login", userHandler.LoginHandler)
		users.POST("/logout", authed, userHandler.LogoutHandler)
		users.GET("/me", authed, userHandler.MeHandler)
		users.PUT("/profile", authed, userHandler.EditProfileHandler)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", socialHandler.ListPostsHandler)
		posts.POST("", authed, socialHandler.CreatePostHandler)
		posts.GET("/report", authed, socialHandler.PostsReportHandler)
		posts.POST("/:post_id/toggle-like", authed, socialHandler.ToggleLikeHandler)
		posts.DELETE("/:post_id", authed, socialHandler.DeletePostHandler)
		posts.POST("/:post_id/comments", authed, socialHandler.CreateCommentHandler)
		posts.GET("/:post_id/comments", socialHandler.ListCommentsHandler)
	}

	router.POST("/follow", authed, socialHandler.FollowHandler)

	admin := router.Group("/admin", authed, RequireAdmin)
	{
		admin.POST("/pictures", galleryHandler.UploadPictureHandler)
		admin.GET("/pictures", galleryHandler.ListPicturesHandler)
		admin.PUT("/pictures/:picture_id", galleryHandler.UpdatePictureHandler)
		admin.DELETE("/pictures/:picture_id", galleryHandler.DeletePictureHandler)
		admin.POST("/categories", galleryHandler.AddCategoryHandler)
		admin.GET("/categories", galleryHandler.ListCategoriesHandler)
		admin.DELETE("/categories/:category_id", galleryHandler.DeleteCategoryHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("", authed, RequireAdmin, auctionHandler.CreateAuctionHandler)
		auctions.GET("/bids", authed, RequireAdmin, auctionHandler.ListBidSummariesHandler)
		auctions.GET("/analytics", authed, auctionHandler.UserAnalyticsHandler)
		auctions.POST("/:auction_id/bids", authed, auctionHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsHandler)
	}

	return router
}

package router

import (
	"splash-go/internal/api/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 所有业务 handler
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Photo      *handler.PhotoHandler
	Collection *handler.CollectionHandler
	Topic      *handler.TopicHandler
	Search     *handler.SearchHandler
}

// Setup 注册所有业务路由。loginRequired 用于需要登录态的写操作
func Setup(r *gin.Engine, h Handlers, loginRequired gin.HandlerFunc) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.GET("/authorize", h.Auth.Authorize)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/session", h.Auth.Session)
	}

	// --- 当前账户 ---
	me := v1.Group("/me", loginRequired)
	{
		me.GET("", h.User.GetMe)
		me.PUT("", h.User.UpdateMe)
	}

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		users.GET("/:username", h.User.GetUser)
		users.GET("/:username/photos", h.User.Photos)
		users.GET("/:username/likes", h.User.Likes)
		users.GET("/:username/collections", h.User.Collections)
	}

	// --- 图片模块 ---
	photos := v1.Group("/photos")
	{
		photos.GET("", h.Photo.List)
		photos.GET("/random", h.Photo.Random)
		photos.GET("/:id", h.Photo.Get)
		photos.POST("/:id/download", h.Photo.Download)

		photosAuth := photos.Group("", loginRequired)
		{
			photosAuth.POST("/:id/like", h.Photo.Like)
			photosAuth.DELETE("/:id/like", h.Photo.Unlike)
		}
	}

	// --- 合集模块 ---
	collections := v1.Group("/collections")
	{
		collections.GET("", h.Collection.List)
		collections.GET("/:id", h.Collection.Get)
		collections.GET("/:id/photos", h.Collection.Photos)
		collections.GET("/:id/related", h.Collection.Related)

		collectionsAuth := collections.Group("", loginRequired)
		{
			collectionsAuth.POST("", h.Collection.Create)
			collectionsAuth.PUT("/:id", h.Collection.Update)
			collectionsAuth.DELETE("/:id", h.Collection.Delete)
			collectionsAuth.POST("/:id/photos", h.Collection.AddPhoto)
			collectionsAuth.DELETE("/:id/photos/:photo_id", h.Collection.RemovePhoto)
		}
	}

	// --- 专题模块 ---
	topics := v1.Group("/topics")
	{
		topics.GET("", h.Topic.List)
		topics.GET("/:slug", h.Topic.Get)
		topics.GET("/:slug/photos", h.Topic.Photos)
	}

	// --- 搜索模块 ---
	search := v1.Group("/search")
	{
		search.GET("/photos", h.Search.SearchPhotos)
		search.GET("/collections", h.Search.SearchCollections)
		search.GET("/users", h.Search.SearchUsers)
		search.GET("/suggest", h.Search.Suggest)

		search.GET("/history", h.Search.ListHistory)
		search.DELETE("/history", h.Search.ClearHistory)
		search.PUT("/history/:id", h.Search.UpdateHistory)
		search.DELETE("/history/:id", h.Search.DeleteHistory)

		search.GET("/recent", h.Search.RecentSearches)
		search.DELETE("/recent", h.Search.ClearRecentSearches)
		search.PUT("/recent/:id", h.Search.UpdateRecentSearch)
		search.DELETE("/recent/:id", h.Search.DeleteRecentSearch)
	}
}

package api

import (
	"github.com/gin-gonic/gin"

	"newsreader/internal/logger"
)

// NewRouter wires the control API routes.
func NewRouter(h *Handler, log *logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log.WithComponent("http")))

	engine.GET("/healthz", h.Health)

	sess := engine.Group("/session")
	{
		sess.GET("", h.GetSession)
		sess.POST("/retry", h.Retry)
		sess.POST("/offline-articles", h.ViewOfflineArticles)
		sess.POST("/logout", h.Logout)
	}

	engine.POST("/login", h.Login)
	engine.POST("/register", h.Register)

	articles := engine.Group("/articles")
	{
		articles.GET("", h.ListArticles)
		articles.POST("", h.CreateArticle)
		articles.POST("/refresh", h.RefreshArticles)
		articles.GET("/:id/comments", h.ListComments)
		articles.POST("/:id/comments", h.CreateComment)
	}

	downloads := engine.Group("/downloads")
	{
		downloads.GET("", h.GetDownloads)
		downloads.POST("", h.StartDownload)
		downloads.POST("/:id", h.DownloadOne)
		downloads.DELETE("", h.CancelDownload)
	}

	return engine
}

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
	"newsreader/internal/service"
	"newsreader/internal/session"
)

type Session interface {
	Snapshot() session.Snapshot
	Retry(ctx context.Context) bool
	ViewOfflineArticles() error
	LoginSucceeded() domain.Route
	RegisterSucceeded() domain.Route
	Logout(ctx context.Context) error
}

type Home interface {
	Snapshot() service.HomeState
	Refresh(ctx context.Context, offlineMode bool) error
	DownloadOne(id string) error
	DownloadAll(visibleIDs []string) error
	CancelDownload() error
}

type Downloads interface {
	Current() domain.DownloadBatch
	Last() *domain.DownloadBatch
}

type Articles interface {
	Create(ctx context.Context, req domain.CreateArticleRequest) (*domain.Article, error)
	LastRefresh(ctx context.Context) (*domain.RefreshState, error)
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Credentials, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Credentials, error)
}

type Comments interface {
	Comments(ctx context.Context, articleID string, offline bool) ([]domain.Comment, error)
	CreateComment(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error)
}

// HealthChecker reports whether the local cache is usable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthFunc adapts a plain function to HealthChecker.
type HealthFunc func(ctx context.Context) error

func (f HealthFunc) HealthCheck(ctx context.Context) error { return f(ctx) }

type Connectivity interface {
	State() domain.ConnectivityState
}

// Handler serves the local control API.
type Handler struct {
	session      Session
	home         Home
	downloads    Downloads
	articles     Articles
	auth         Authenticator
	comments     Comments
	connectivity Connectivity
	health       HealthChecker
	logger       *logger.Logger
}

func NewHandler(
	sess Session,
	home Home,
	downloads Downloads,
	articles Articles,
	auth Authenticator,
	comments Comments,
	connectivity Connectivity,
	health HealthChecker,
	log *logger.Logger,
) *Handler {
	return &Handler{
		session:      sess,
		home:         home,
		downloads:    downloads,
		articles:     articles,
		auth:         auth,
		comments:     comments,
		connectivity: connectivity,
		health:       health,
		logger:       log.WithComponent("api"),
	}
}

type sessionResponse struct {
	session.Snapshot
	Connectivity domain.ConnectivityState `json:"connectivity"`
	LastRefresh  *domain.RefreshState     `json:"last_refresh,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

type downloadRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.health.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) GetSession(c *gin.Context) {
	resp := sessionResponse{
		Snapshot:     h.session.Snapshot(),
		Connectivity: h.connectivity.State(),
	}

	last, err := h.articles.LastRefresh(c.Request.Context())
	if err != nil {
		h.logger.Warn("read refresh state", "error", err)
	} else if !last.LastRefreshedAt.IsZero() {
		resp.LastRefresh = last
	}

	success(c, http.StatusOK, resp)
}

func (h *Handler) Retry(c *gin.Context) {
	ctx := c.Request.Context()
	if h.session.Retry(ctx) {
		if err := h.home.Refresh(ctx, false); err != nil {
			h.logger.Warn("refresh after retry", "error", err)
		}
	}
	success(c, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) ViewOfflineArticles(c *gin.Context) {
	if err := h.session.ViewOfflineArticles(); err != nil {
		fail(c, http.StatusConflict, err.Error())
		return
	}
	if err := h.home.Refresh(c.Request.Context(), true); err != nil {
		h.logger.Warn("load offline articles", "error", err)
	}
	success(c, http.StatusOK, h.home.Snapshot())
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", "error", err)
		failWith(c, err)
		return
	}
	success(c, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	creds, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failWith(c, err)
		return
	}

	route := h.session.LoginSucceeded()
	success(c, http.StatusOK, gin.H{
		"route":   route,
		"user_id": creds.UserID,
		"name":    creds.Name,
		"email":   creds.Email,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name, email and a password of at least 6 characters are required")
		return
	}

	creds, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		failWith(c, err)
		return
	}

	route := h.session.RegisterSucceeded()
	success(c, http.StatusCreated, gin.H{
		"route":   route,
		"user_id": creds.UserID,
		"name":    creds.Name,
		"email":   creds.Email,
	})
}

func (h *Handler) ListArticles(c *gin.Context) {
	success(c, http.StatusOK, h.home.Snapshot())
}

// RefreshArticles reloads the list, from the cache only when offline.
func (h *Handler) RefreshArticles(c *gin.Context) {
	offline, ok := h.offlineParam(c)
	if !ok {
		return
	}

	if err := h.home.Refresh(c.Request.Context(), offline); err != nil {
		h.logger.Warn("refresh articles", "offline", offline, "error", err)
	}
	success(c, http.StatusOK, h.home.Snapshot())
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var req domain.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.articles.Create(c.Request.Context(), req)
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusCreated, article)
}

func (h *Handler) ListComments(c *gin.Context) {
	offline, ok := h.offlineParam(c)
	if !ok {
		return
	}

	comments, err := h.comments.Comments(c.Request.Context(), c.Param("id"), offline)
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusOK, comments)
}

func (h *Handler) CreateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "content is required")
		return
	}

	comment, err := h.comments.CreateComment(c.Request.Context(), domain.CreateCommentRequest{
		ArticleID: c.Param("id"),
		Content:   req.Content,
	})
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusCreated, comment)
}

func (h *Handler) StartDownload(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "ids must be a non-empty list")
		return
	}

	if err := h.home.DownloadAll(req.IDs); err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusAccepted, h.downloads.Current())
}

func (h *Handler) DownloadOne(c *gin.Context) {
	if err := h.home.DownloadOne(c.Param("id")); err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusAccepted, h.downloads.Current())
}

func (h *Handler) CancelDownload(c *gin.Context) {
	if err := h.home.CancelDownload(); err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusAccepted, gin.H{"status": "cancelling"})
}

func (h *Handler) GetDownloads(c *gin.Context) {
	snapshot := h.home.Snapshot()
	success(c, http.StatusOK, gin.H{
		"current":  h.downloads.Current(),
		"last":     h.downloads.Last(),
		"progress": snapshot.DownloadProgress,
		"message":  snapshot.DownloadStatusMessage,
	})
}

// offlineParam reads ?offline=. Without it the session decides: offline mode
// or no connectivity means cached data only.
func (h *Handler) offlineParam(c *gin.Context) (bool, bool) {
	raw := c.Query("offline")
	if raw == "" {
		return h.session.Snapshot().OfflineMode || !h.connectivity.State().IsOnline, true
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, "offline must be a boolean")
		return false, false
	}
	return v, true
}

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

const (
	SourceName = "news-api"

	newsPath         = "/api/news"
	loginPath        = "/api/auth/login"
	registerPath     = "/api/auth/register"
	commentsPath     = "/api/comments"
	newsCommentsPath = "/api/comments/news/{newsId}"
)

// Config holds remote API configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// TokenStore provides and persists the bearer token.
type TokenStore interface {
	GetToken(ctx context.Context) (string, bool, error)
	SetToken(ctx context.Context, token string) error
}

// Source talks to the news REST API.
type Source struct {
	client   *resty.Client
	tokens   TokenStore
	sanitize *bluemonday.Policy
	logger   *logger.Logger
}

func New(cfg Config, tokens TokenStore, log *logger.Logger) *Source {
	s := &Source{
		tokens:   tokens,
		sanitize: bluemonday.UGCPolicy(),
		logger:   log.WithComponent("remote").With("source", SourceName),
	}

	retries := max(cfg.MaxAttempts-1, 0)
	s.client = resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "NewsReader/1.0").
		SetRetryCount(retries).
		SetRetryWaitTime(cfg.InitialBackoff).
		SetRetryMaxWaitTime(cfg.MaxBackoff).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r == nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		AddRetryHook(func(r *resty.Response, err error) {
			if r == nil {
				return
			}
			s.logger.Warn("request failed, retrying",
				"attempt", r.Request.Attempt,
				"status", r.StatusCode(),
				"error", err,
			)
		}).
		OnBeforeRequest(s.authorize)

	return s
}

func (s *Source) Name() string {
	return SourceName
}

// FetchAll returns every article the API knows about.
func (s *Source) FetchAll(ctx context.Context) ([]domain.Article, error) {
	var items []NewsDTO

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get(newsPath)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			s.logger.Warn("skipping article without id", "title", item.Title)
			continue
		}
		articles = append(articles, s.transform(item))
	}

	s.logger.Debug("fetched articles", "count", len(articles))
	return articles, nil
}

// Create publishes a new article and returns the server's copy.
func (s *Source) Create(ctx context.Context, title, content string) (*domain.Article, error) {
	var created NewsDTO

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(createNewsRequest{Title: title, Content: content}).
		SetResult(&created).
		Post(newsPath)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	article := s.transform(created)
	return &article, nil
}

// Login exchanges credentials for a token and stores it.
func (s *Source) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	return s.authenticate(ctx, loginPath, loginRequest{Email: email, Password: password})
}

// Register creates an account and stores the token it comes with.
func (s *Source) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Credentials, error) {
	return s.authenticate(ctx, registerPath, registerRequest{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
}

func (s *Source) authenticate(ctx context.Context, path string, body any) (*domain.Credentials, error) {
	var user UserDTO

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&user).
		Post(path)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	if user.Token == "" {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode(), Message: "response carried no token"}
	}

	if err := s.tokens.SetToken(ctx, user.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	s.logger.Info("authenticated", "path", path, "user_id", user.ID)
	return &domain.Credentials{
		Token:  user.Token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}

func (s *Source) authorize(_ *resty.Client, req *resty.Request) error {
	if req.URL == loginPath || req.URL == registerPath {
		return nil
	}

	token, ok, err := s.tokens.GetToken(req.Context())
	if err != nil {
		s.logger.Warn("read token", "error", err)
		return nil
	}
	if ok && token != "" {
		req.SetAuthToken(token)
	}
	return nil
}

func (s *Source) transform(item NewsDTO) domain.Article {
	article := item.toDomain()
	article.Title = strings.TrimSpace(article.Title)
	article.Content = s.sanitize.Sanitize(article.Content)
	return article
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &domain.RemoteError{Message: "request timed out", Err: err}
		}
		return &domain.RemoteError{Message: "could not reach the server", Err: errors.Join(domain.ErrNetworkUnavailable, err)}
	}

	if resp.IsSuccess() {
		return nil
	}

	return &domain.RemoteError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp),
	}
}

func errorMessage(resp *resty.Response) string {
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}

	if text := strings.TrimSpace(string(resp.Body())); text != "" && len(text) < 200 {
		return text
	}
	return http.StatusText(resp.StatusCode())
}

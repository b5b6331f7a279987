package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsreader/internal/domain"
)

// ArticleCache is the durable local store of articles.
//
// UpsertMany never clears an existing downloaded flag and SetDownloaded never
// creates a record.
type ArticleCache interface {
	GetAll(ctx context.Context) ([]domain.Article, error)
	GetDownloaded(ctx context.Context) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	UpsertMany(ctx context.Context, articles []domain.Article) error
	SetDownloaded(ctx context.Context, id string, downloaded bool) error
	DeleteAllNotDownloaded(ctx context.Context) (int, error)
}

type RefreshStateStore interface {
	Get(ctx context.Context, source string) (*domain.RefreshState, error)
	Update(ctx context.Context, state *domain.RefreshState) error
}

type RemoteSource interface {
	Name() string
	FetchAll(ctx context.Context) ([]domain.Article, error)
	Create(ctx context.Context, title, content string) (*domain.Article, error)
}

type CredentialStore interface {
	GetToken(ctx context.Context) (string, bool, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// ProgressNotifier surfaces download progress outside the process, e.g. a
// persistent notification or a message queue.
type ProgressNotifier interface {
	Notify(ctx context.Context, event domain.DownloadEvent) error
	Close() error
}

// CommentCache keeps the last fetched comment thread of each article.
// Threads of evicted articles go with them.
type CommentCache interface {
	GetByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	ReplaceForArticle(ctx context.Context, articleID string, comments []domain.Comment) error
	Upsert(ctx context.Context, comment domain.Comment) error
}

type CommentSource interface {
	Comments(ctx context.Context, articleID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, articleID, content string) (*domain.Comment, error)
}

package domain

// Article is a news item cached locally. Timestamps are kept exactly as the
// remote API delivers them (ISO-8601 strings).
type Article struct {
	ID              string `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Content         string `json:"content" db:"content"`
	PublicationDate string `json:"publication_date" db:"publication_date"`
	AuthorID        string `json:"author_id" db:"author_id"`
	CreatedAt       string `json:"created_at" db:"created_at"`
	UpdatedAt       string `json:"updated_at" db:"updated_at"`
	Version         int    `json:"version" db:"version"`
	// Downloaded is local-only: the article is guaranteed readable offline.
	Downloaded bool `json:"downloaded" db:"downloaded"`
}

// CreateArticleRequest is the payload for authoring a new post.
type CreateArticleRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// Credentials is what a successful login yields.
type Credentials struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// IDs returns the ids of the given articles in order.
func IDs(articles []Article) []string {
	ids := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}
	return ids
}

package domain

// Comment is a reader comment on an article. The cached copy of a thread is
// replaced wholesale each time it is fetched.
type Comment struct {
	ID        string `json:"id" db:"id"`
	ArticleID string `json:"article_id" db:"article_id"`
	UserID    string `json:"user_id" db:"user_id"`
	UserName  string `json:"user_name" db:"user_name"`
	UserEmail string `json:"user_email" db:"user_email"`
	Content   string `json:"content" db:"content"`
	CreatedAt string `json:"created_at" db:"created_at"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}

type CreateCommentRequest struct {
	ArticleID string `json:"article_id" validate:"required"`
	Content   string `json:"content" validate:"required,max=1000"`
}

// RegisterRequest creates an account. A successful registration logs the
// user in.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,min=6" validate:"required,min=6"`
}

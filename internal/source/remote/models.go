package remote

import (
	"bytes"
	"encoding/json"

	"newsreader/internal/domain"
)

// NewsDTO is an article as served by /api/news.
type NewsDTO struct {
	ID              string `json:"_id"`
	UserID          string `json:"userId"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	PublicationDate string `json:"publicationDate"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
	Version         int    `json:"__v"`
}

type createNewsRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CommentDTO is a comment as served by /api/comments. userId is either a
// bare id or the populated user document.
type CommentDTO struct {
	ID        string  `json:"_id"`
	NewsID    string  `json:"newsId"`
	User      userRef `json:"userId"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Version   int     `json:"__v"`
}

type userRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *userRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*u = userRef{}
		return nil
	case len(data) > 0 && data[0] == '"':
		*u = userRef{}
		return json.Unmarshal(data, &u.ID)
	}

	type plain userRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = userRef(p)
	return nil
}

type createCommentRequest struct {
	NewsID  string `json:"newsId"`
	Comment string `json:"comment"`
}

// UserDTO is the login and register response.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (d NewsDTO) toDomain() domain.Article {
	return domain.Article{
		ID:              d.ID,
		Title:           d.Title,
		Content:         d.Content,
		PublicationDate: d.PublicationDate,
		AuthorID:        d.UserID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Version:         d.Version,
	}
}

func (d CommentDTO) toDomain() domain.Comment {
	return domain.Comment{
		ID:        d.ID,
		ArticleID: d.NewsID,
		UserID:    d.User.ID,
		UserName:  d.User.Name,
		UserEmail: d.User.Email,
		Content:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

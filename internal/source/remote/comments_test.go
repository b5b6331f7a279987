package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsreader/internal/domain"
)

func TestComments_BothUserShapes(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/comments/news/n1", r.URL.Path)
		auth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"c1","newsId":"n1","userId":{"_id":"u1","name":"Ana","email":"ana@example.com"},"comment":" first <script>x</script>","createdAt":"2024-03-01T10:00:00Z","__v":0},
			{"_id":"c2","newsId":"n1","userId":"u2","comment":"second","createdAt":"2024-03-01T11:00:00Z"},
			{"_id":"","newsId":"n1","userId":null,"comment":"broken"}
		]`))
	}))
	defer srv.Close()

	src := newTestSource(srv.URL, &memTokens{token: "tok"})

	comments, err := src.Comments(context.Background(), "n1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Bearer tok", auth)

	assert.Equal(t, "u1", comments[0].UserID)
	assert.Equal(t, "Ana", comments[0].UserName)
	assert.Equal(t, "ana@example.com", comments[0].UserEmail)
	assert.Equal(t, "first ", comments[0].Content)
	assert.Equal(t, "n1", comments[0].ArticleID)

	assert.Equal(t, "u2", comments[1].UserID)
	assert.Equal(t, "Anonymous", comments[1].UserName)
}

func TestCreateComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/comments", r.URL.Path)

		var req createCommentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Comment == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "El comentario es obligatorio"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"_id": "c9", "newsId": req.NewsID, "userId": "u1", "comment": req.Comment,
		})
	}))
	defer srv.Close()

	src := newTestSource(srv.URL, &memTokens{token: "tok"})

	comment, err := src.CreateComment(context.Background(), "n1", "Nice read")
	require.NoError(t, err)
	assert.Equal(t, "c9", comment.ID)
	assert.Equal(t, "n1", comment.ArticleID)
	assert.Equal(t, "Nice read", comment.Content)

	_, err = src.CreateComment(context.Background(), "n1", "")
	var remoteErr *domain.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "El comentario es obligatorio", remoteErr.Message)
}

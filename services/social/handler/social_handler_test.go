package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallery-auction/internal/auth"
	model "gallery-auction/internal/models"
	"gallery-auction/internal/repository"
	social "gallery-auction/internal/socialService"
	"gallery-auction/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// asUser fakes the auth middleware by planting claims in the gin context
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextUserID, userID)
		c.Next()
	}
}

type fixture struct {
	router *gin.Engine
	users  *repository.MemoryUserStore
}

func newFixture(t *testing.T, actingUser string) *fixture {
	t.Helper()

	gin.SetMode(gin.TestMode)

	users := repository.NewMemoryUserStore()
	svc := social.NewSocialService(repository.NewMemorySocialStore(), users, storage.NewMemoryStore())
	h := NewSocialHandler(svc)

	router := gin.New()
	posts := router.Group("/posts", asUser(actingUser))
	{
		posts.POST("", h.CreatePostHandler)
		posts.GET("", h.ListPostsHandler)
		posts.POST("/:post_id/toggle-like", h.ToggleLikeHandler)
		posts.DELETE("/:post_id", h.DeletePostHandler)
		posts.POST("/:post_id/comments", h.CreateCommentHandler)
		posts.GET("/:post_id/comments", h.ListCommentsHandler)
		posts.GET("/report", h.PostsReportHandler)
	}
	router.POST("/follow", asUser(actingUser), h.FollowHandler)

	return &fixture{router: router, users: users}
}

func (f *fixture) addUser(t *testing.T, userID, username string) {
	t.Helper()
	require.NoError(t, f.users.AddUser(model.User{
		UserID:   userID,
		Fullname: "User " + username,
		Username: username,
		Email:    username + "@example.com",
		Phone:    "0912" + userID,
	}))
}

func (f *fixture) createPost(t *testing.T, description, hashtags string) string {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("description", description))
	require.NoError(t, w.WriteField("hashtags", hashtags))
	part, err := w.CreateFormFile("image", "post.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp["data"].(map[string]any)["post_id"].(string)
}

func TestCreateAndListPosts(t *testing.T) {
	f := newFixture(t, "user1")
	f.addUser(t, "user1", "alice")

	postID := f.createPost(t, "first post", "art, gallery ,modern")
	require.NotEmpty(t, postID)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	posts := resp["data"].([]any)
	require.Len(t, posts, 1)

	post := posts[0].(map[string]any)
	require.Equal(t, "first post", post["description"])
	tags := post["hash_tags"].([]any)
	require.Equal(t, []any{"art", "gallery", "modern"}, tags)
	require.Equal(t, "alice", post["author"].(map[string]any)["username"])
	require.Equal(t, 0.0, post["number_of_comments"])
}

func TestCreatePostWithoutImage(t *testing.T) {
	f := newFixture(t, "user1")
	f.addUser(t, "user1", "alice")

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("description", "no image"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleLikeHandler(t *testing.T) {
	f := newFixture(t, "user1")
	f.addUser(t, "user1", "alice")
	postID := f.createPost(t, "likeable", "")

	toggle := func(t *testing.T) (int, bool, string) {
		req := httptest.NewRequest(http.MethodPost, "/posts/"+postID+"/toggle-like", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		return int(data["likes"].(float64)), data["liked"].(bool), resp["message"].(string)
	}

	likes, liked, msg := toggle(t)
	require.Equal(t, 1, likes)
	require.True(t, liked)
	require.Contains(t, msg, "post liked successfully")

	likes, liked, msg = toggle(t)
	require.Equal(t, 0, likes)
	require.False(t, liked)
	require.Contains(t, msg, "post unliked successfully")

	req := httptest.NewRequest(http.MethodPost, "/posts/ghost/toggle-like", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentHandlers(t *testing.T) {
	f := newFixture(t, "user1")
	f.addUser(t, "user1", "alice")
	postID := f.createPost(t, "discuss", "")

	payload, _ := json.Marshal(map[string]string{"text": "nice work"})
	req := httptest.NewRequest(http.MethodPost, "/posts/"+postID+"/comments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// empty text is rejected at binding
	payload, _ = json.Marshal(map[string]string{"text": ""})
	req = httptest.NewRequest(http.MethodPost, "/posts/"+postID+"/comments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// comment on a missing post
	payload, _ = json.Marshal(map[string]string{"text": "hello"})
	req = httptest.NewRequest(http.MethodPost, "/posts/ghost/comments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/posts/"+postID+"/comments", nil)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	comments := resp["data"].([]any)
	require.Len(t, comments, 1)
	require.Equal(t, "nice work", comments[0].(map[string]any)["text"])
}

func TestDeletePostHandler(t *testing.T) {
	f := newFixture(t, "user1")
	f.addUser(t, "user1", "alice")
	postID := f.createPost(t, "temporary", "")

	req := httptest.NewRequest(http.MethodDelete, "/posts/"+postID, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/posts/"+postID, nil)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowHandler(t *testing.T) {
	f := newFixture(t, "user1")
	f.addUser(t, "user1", "alice")
	f.addUser(t, "user2", "bob")

	follow := func(t *testing.T, targetID string) *httptest.ResponseRecorder {
		payload, _ := json.Marshal(map[string]string{"user_id": targetID})
		req := httptest.NewRequest(http.MethodPost, "/follow", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusCreated, follow(t, "user2").Code)
	require.Equal(t, http.StatusConflict, follow(t, "user2").Code)
	require.Equal(t, http.StatusBadRequest, follow(t, "user1").Code)
	require.Equal(t, http.StatusNotFound, follow(t, "ghost").Code)
}

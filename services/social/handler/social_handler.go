package handler

import (
	"context"
	"fmt"
	"net/http"

	"gallery-auction/internal/auth"
	model "gallery-auction/internal/models"
	social "gallery-auction/internal/socialService"
	"gallery-auction/services/social/helpers"
	"gallery-auction/utils"

	"github.com/gin-gonic/gin"
)

type SocialServiceInterface interface {
	CreatePost(ctx context.Context, userID, description, hashTags string, image []byte, contentType string) (model.Post, error)
	ListPosts() ([]social.PostView, error)
	ToggleLike(postID, userID string) (int, bool, error)
	DeletePost(ctx context.Context, postID string) error
	CreateComment(postID, userID, text string) (model.Comment, error)
	ListComments(postID string) ([]social.CommentView, error)
	FollowUser(followerID, targetID string) (model.Follow, error)
	PostsReport(userID string) (social.PostsReport, error)
}

type SocialHandler struct {
	service SocialServiceInterface
}

func NewSocialHandler(service SocialServiceInterface) *SocialHandler {
	return &SocialHandler{service: service}
}

// CreatePostHandler handles POST /posts (multipart form)
func (h *SocialHandler) CreatePostHandler(c *gin.Context) {
	userID := c.GetString(auth.ContextUserID)
	description := c.PostForm("description")
	hashTags := c.PostForm("hashtags")

	image, contentType, err := utils.ReadFormFile(c, "image")
	if err != nil {
		helpers.HandleBindError(c, "CreatePostHandler", fmt.Errorf("image file is required: %w", err))
		return
	}

	created, err := h.service.CreatePost(c.Request.Context(), userID, description, hashTags, image, contentType)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreatePostHandler: failed to create post", map[string]any{
			"handler": "CreatePostHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "post created successfully")
	helpers.LogSuccess("CreatePostHandler", "post created successfully", map[string]any{
		"post_id": created.PostID,
		"user_id": userID,
	})
}

// ListPostsHandler handles GET /posts
func (h *SocialHandler) ListPostsHandler(c *gin.Context) {
	posts, err := h.service.ListPosts()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListPostsHandler: error retrieving posts", map[string]any{"error": err.Error()})
		return
	}

	if posts == nil {
		posts = []social.PostView{}
	}

	utils.JSONResponse(c, http.StatusOK, posts, "posts retrieved successfully")
	helpers.LogSuccess("ListPostsHandler", "posts retrieved successfully", map[string]any{
		"count": len(posts),
	})
}

// ToggleLikeHandler handles POST /posts/:post_id/toggle-like
func (h *SocialHandler) ToggleLikeHandler(c *gin.Context) {
	postID := c.Param("post_id")
	userID := c.GetString(auth.ContextUserID)

	likes, liked, err := h.service.ToggleLike(postID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ToggleLikeHandler: error toggling like", map[string]any{
			"post_id": postID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.ToggleLikeResponse{PostID: postID, Likes: likes, Liked: liked}
	message := "post unliked successfully"
	if liked {
		message = "post liked successfully"
	}

	utils.JSONResponse(c, http.StatusOK, resp, message)
	helpers.LogSuccess("ToggleLikeHandler", message, map[string]any{
		"post_id": postID,
		"user_id": userID,
		"likes":   likes,
	})
}

// DeletePostHandler handles DELETE /posts/:post_id
func (h *SocialHandler) DeletePostHandler(c *gin.Context) {
	postID := c.Param("post_id")
	if err := h.service.DeletePost(c.Request.Context(), postID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeletePostHandler: failed to delete post", map[string]any{
			"handler": "DeletePostHandler",
			"post_id": postID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "post deleted successfully")
	helpers.LogSuccess("DeletePostHandler", "post deleted successfully", map[string]any{
		"post_id": postID,
	})
}

// CreateCommentHandler handles POST /posts/:post_id/comments
func (h *SocialHandler) CreateCommentHandler(c *gin.Context) {
	var req helpers.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCommentHandler", err)
		return
	}

	postID := c.Param("post_id")
	userID := c.GetString(auth.ContextUserID)

	created, err := h.service.CreateComment(postID, userID, req.Text)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateCommentHandler: error creating comment", map[string]any{
			"post_id": postID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "comment created successfully")
	helpers.LogSuccess("CreateCommentHandler", "comment created successfully", map[string]any{
		"comment_id": created.CommentID,
		"post_id":    postID,
	})
}

// ListCommentsHandler handles GET /posts/:post_id/comments
func (h *SocialHandler) ListCommentsHandler(c *gin.Context) {
	postID := c.Param("post_id")
	comments, err := h.service.ListComments(postID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListCommentsHandler: error retrieving comments", map[string]any{"post_id": postID, "error": err.Error()})
		return
	}

	if comments == nil {
		comments = []social.CommentView{}
	}

	utils.JSONResponse(c, http.StatusOK, comments, "comments retrieved successfully")
	helpers.LogSuccess("ListCommentsHandler", "comments retrieved successfully", map[string]any{
		"post_id": postID,
		"count":   len(comments),
	})
}

// FollowHandler handles POST /follow
func (h *SocialHandler) FollowHandler(c *gin.Context) {
	var req helpers.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FollowHandler", err)
		return
	}

	followerID := c.GetString(auth.ContextUserID)
	follow, err := h.service.FollowUser(followerID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("FollowHandler: error following user", map[string]any{
			"follower_id": followerID,
			"target_id":   req.UserID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, follow, "user followed successfully")
	helpers.LogSuccess("FollowHandler", "user followed successfully", map[string]any{
		"follower_id": followerID,
		"target_id":   req.UserID,
	})
}

// PostsReportHandler handles GET /posts/report
func (h *SocialHandler) PostsReportHandler(c *gin.Context) {
	userID := c.GetString(auth.ContextUserID)
	report, err := h.service.PostsReport(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PostsReportHandler: error building report", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "posts report retrieved successfully")
	helpers.LogSuccess("PostsReportHandler", "posts report retrieved successfully", map[string]any{
		"user_id": userID,
	})
}

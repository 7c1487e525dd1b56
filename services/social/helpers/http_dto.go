package helpers

// Request/Response DTOs
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type FollowRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ToggleLikeResponse struct {
	PostID string `json:"post_id"`
	Likes  int    `json:"likes"`
	Liked  bool   `json:"liked"`
}

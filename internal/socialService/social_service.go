package social

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
	"gallery-auction/internal/repository"
	"gallery-auction/internal/storage"
	"gallery-auction/utils"
)

// UserInfo is the public author projection attached to posts and comments
type UserInfo struct {
	UserID   string `json:"user_id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PostView is a post with author projection and comment count
type PostView struct {
	model.Post
	NumberOfComments int           `json:"number_of_comments"`
	Comments         []CommentView `json:"comments"`
	Author           UserInfo      `json:"author"`
}

// CommentView is a comment with its commenter projection
type CommentView struct {
	model.Comment
	Commenter UserInfo `json:"commenter"`
}

// PostsReport is the posts half of the user analytics response
type PostsReport struct {
	PostCount     int `json:"post_count"`
	LikesReceived int `json:"likes_received"`
}

// SocialService owns posts, comments and follows
type SocialService struct {
	social  repository.SocialStore
	users   repository.UserStore
	objects storage.ObjectStore
}

// NewSocialService creates a new SocialService instance
func NewSocialService(social repository.SocialStore, users repository.UserStore, objects storage.ObjectStore) *SocialService {
	return &SocialService{
		social:  social,
		users:   users,
		objects: objects,
	}
}

// CreatePost uploads the post image and stores the post. Hashtags arrive as
// a comma-separated string.
func (s *SocialService) CreatePost(ctx context.Context, userID, description, hashTags string, image []byte, contentType string) (model.Post, error) {
	if userID == "" {
		return model.Post{}, fmt.Errorf("service: %w - missing user ID", apperrors.ErrInvalidInput)
	}
	if len(image) == 0 {
		return model.Post{}, fmt.Errorf("service: %w - no file uploaded", apperrors.ErrInvalidInput)
	}

	postID := utils.GenerateID()
	url, err := s.objects.Upload(ctx, postObjectName(postID), image, contentType)
	if err != nil {
		return model.Post{}, fmt.Errorf("service: failed to upload post image: %w", err)
	}

	post := model.Post{
		PostID:      postID,
		PictureURL:  url,
		Description: description,
		HashTags:    splitHashTags(hashTags),
		PostedBy:    userID,
		Likes:       []string{},
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.social.AddPost(post); err != nil {
		return model.Post{}, fmt.Errorf("service: failed to store post: %w", err)
	}
	return post, nil
}

// ListPosts returns all posts newest first, with authors and comments
func (s *SocialService) ListPosts() ([]PostView, error) {
	posts, err := s.social.ListPosts()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list posts: %w", err)
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		comments, err := s.social.ListCommentsByPost(p.PostID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to list comments for post %s: %w", p.PostID, err)
		}
		views = append(views, PostView{
			Post:             p,
			NumberOfComments: len(comments),
			Comments:         s.commentViews(comments),
			Author:           s.userInfo(p.PostedBy),
		})
	}
	return views, nil
}

// ToggleLike flips the user's like on a post and returns the new like count
// along with whether the post is now liked by the user.
func (s *SocialService) ToggleLike(postID, userID string) (int, bool, error) {
	if postID == "" || userID == "" {
		return 0, false, fmt.Errorf("service: %w - missing postID or userID", apperrors.ErrInvalidInput)
	}

	post, err := s.social.GetPost(postID)
	if err != nil {
		return 0, false, fmt.Errorf("service: failed to get post %s: %w", postID, err)
	}

	liked := false
	likes := post.Likes[:0]
	for _, id := range post.Likes {
		if id == userID {
			liked = true
			continue
		}
		likes = append(likes, id)
	}
	if !liked {
		likes = append(likes, userID)
	}
	post.Likes = likes

	if err := s.social.UpdatePost(post); err != nil {
		return 0, false, fmt.Errorf("service: failed to update post %s: %w", postID, err)
	}
	return len(post.Likes), !liked, nil
}

// DeletePost removes the post, its comments and its stored image
func (s *SocialService) DeletePost(ctx context.Context, postID string) error {
	if postID == "" {
		return fmt.Errorf("service: %w - empty post ID", apperrors.ErrInvalidInput)
	}
	if err := s.social.DeletePost(postID); err != nil {
		return fmt.Errorf("service: failed to delete post %s: %w", postID, err)
	}
	if err := s.objects.Delete(ctx, postObjectName(postID)); err != nil {
		utils.Warn("failed to delete post image", map[string]any{"post_id": postID, "error": err.Error()})
	}
	return nil
}

// CreateComment adds a comment to an existing post
func (s *SocialService) CreateComment(postID, userID, text string) (model.Comment, error) {
	if postID == "" || userID == "" || text == "" {
		return model.Comment{}, fmt.Errorf("service: %w - postID, userID and text are required", apperrors.ErrInvalidInput)
	}

	comment := model.Comment{
		CommentID:   utils.GenerateID(),
		PostID:      postID,
		Text:        text,
		CommentedBy: userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.social.AddComment(comment); err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to add comment to post %s: %w", postID, err)
	}
	return comment, nil
}

// ListComments returns a post's comments with commenter projections
func (s *SocialService) ListComments(postID string) ([]CommentView, error) {
	if postID == "" {
		return nil, fmt.Errorf("service: %w - empty post ID", apperrors.ErrInvalidInput)
	}
	comments, err := s.social.ListCommentsByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list comments for post %s: %w", postID, err)
	}
	return s.commentViews(comments), nil
}

// FollowUser records a follow edge from follower to target
func (s *SocialService) FollowUser(followerID, targetID string) (model.Follow, error) {
	if followerID == "" || targetID == "" {
		return model.Follow{}, fmt.Errorf("service: %w - missing user IDs", apperrors.ErrInvalidInput)
	}
	if followerID == targetID {
		return model.Follow{}, fmt.Errorf("service: %w", apperrors.ErrSelfFollow)
	}
	if _, err := s.users.GetUser(targetID); err != nil {
		return model.Follow{}, fmt.Errorf("service: failed to find user to follow %s: %w", targetID, err)
	}

	follow := model.Follow{
		FollowID:  utils.GenerateID(),
		Follower:  followerID,
		Following: targetID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.social.AddFollow(follow); err != nil {
		return model.Follow{}, fmt.Errorf("service: failed to follow user %s: %w", targetID, err)
	}
	return follow, nil
}

// PostsReport aggregates the user's posting activity for analytics
func (s *SocialService) PostsReport(userID string) (PostsReport, error) {
	if userID == "" {
		return PostsReport{}, fmt.Errorf("service: %w - empty user ID", apperrors.ErrInvalidInput)
	}

	posts, err := s.social.ListPostsByUser(userID)
	if err != nil {
		return PostsReport{}, fmt.Errorf("service: failed to list posts for user %s: %w", userID, err)
	}

	report := PostsReport{PostCount: len(posts)}
	for _, p := range posts {
		report.LikesReceived += len(p.Likes)
	}
	return report, nil
}

func (s *SocialService) userInfo(userID string) UserInfo {
	info := UserInfo{UserID: userID}
	if account, err := s.users.GetUser(userID); err == nil {
		info.Fullname = account.Fullname
		info.Username = account.Username
		info.Email = account.Email
	}
	return info
}

func (s *SocialService) commentViews(comments []model.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{Comment: c, Commenter: s.userInfo(c.CommentedBy)})
	}
	return views
}

func splitHashTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func postObjectName(postID string) string {
	return "posts/" + postID
}

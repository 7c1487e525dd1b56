package repository

import (
	"fmt"
	"sort"
	"sync"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
)

// SocialStore defines storage for posts, comments and follows
type SocialStore interface {
	AddPost(post model.Post) error
	GetPost(postID string) (model.Post, error)
	ListPosts() ([]model.Post, error)
	ListPostsByUser(userID string) ([]model.Post, error)
	UpdatePost(post model.Post) error
	DeletePost(postID string) error
	AddComment(comment model.Comment) error
	ListCommentsByPost(postID string) ([]model.Comment, error)
	AddFollow(follow model.Follow) error
	IsFollowing(followerID, followingID string) (bool, error)
}

// MemorySocialStore is a concurrency-safe in-memory implementation of SocialStore
type MemorySocialStore struct {
	mu       sync.RWMutex
	posts    map[string]model.Post      // key: postID
	comments map[string][]model.Comment // key: postID -> comments
	follows  map[string][]string        // key: followerID -> followed userIDs
}

// NewMemorySocialStore creates an empty social store
func NewMemorySocialStore() *MemorySocialStore {
	return &MemorySocialStore{
		posts:    make(map[string]model.Post),
		comments: make(map[string][]model.Comment),
		follows:  make(map[string][]string),
	}
}

// AddPost stores a new post
func (s *MemorySocialStore) AddPost(post model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.PostID] = clonePost(post)
	return nil
}

// GetPost returns the post by ID
func (s *MemorySocialStore) GetPost(postID string) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postID]
	if !ok {
		return model.Post{}, fmt.Errorf("post %s: %w", postID, apperrors.ErrPostNotFound)
	}
	return clonePost(post), nil
}

// ListPosts returns all posts, newest first
func (s *MemorySocialStore) ListPosts() ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, clonePost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// ListPostsByUser returns the user's posts, newest first
func (s *MemorySocialStore) ListPostsByUser(userID string) ([]model.Post, error) {
	all, err := s.ListPosts()
	if err != nil {
		return nil, err
	}

	var posts []model.Post
	for _, p := range all {
		if p.PostedBy == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

// UpdatePost replaces the stored post
func (s *MemorySocialStore) UpdatePost(post model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.PostID]; !ok {
		return fmt.Errorf("update post %s: %w", post.PostID, apperrors.ErrPostNotFound)
	}
	s.posts[post.PostID] = clonePost(post)
	return nil
}

// DeletePost removes the post and its comments
func (s *MemorySocialStore) DeletePost(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return fmt.Errorf("delete post %s: %w", postID, apperrors.ErrPostNotFound)
	}
	delete(s.posts, postID)
	delete(s.comments, postID)
	return nil
}

// AddComment appends a comment to an existing post
func (s *MemorySocialStore) AddComment(comment model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[comment.PostID]; !ok {
		return fmt.Errorf("comment on post %s: %w", comment.PostID, apperrors.ErrPostNotFound)
	}
	s.comments[comment.PostID] = append(s.comments[comment.PostID], comment)
	return nil
}

// ListCommentsByPost returns the post's comments in insertion order
func (s *MemorySocialStore) ListCommentsByPost(postID string) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, fmt.Errorf("comments for post %s: %w", postID, apperrors.ErrPostNotFound)
	}
	return append([]model.Comment(nil), s.comments[postID]...), nil
}

// AddFollow records a follow edge, rejecting duplicates
func (s *MemorySocialStore) AddFollow(follow model.Follow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.follows[follow.Follower] {
		if id == follow.Following {
			return fmt.Errorf("follow %s -> %s: %w", follow.Follower, follow.Following, apperrors.ErrAlreadyFollowing)
		}
	}
	s.follows[follow.Follower] = append(s.follows[follow.Follower], follow.Following)
	return nil
}

// IsFollowing reports whether the follow edge exists
func (s *MemorySocialStore) IsFollowing(followerID, followingID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.follows[followerID] {
		if id == followingID {
			return true, nil
		}
	}
	return false, nil
}

// clonePost deep-copies a post so callers never share like/hashtag slices
func clonePost(p model.Post) model.Post {
	out := p
	out.HashTags = append([]string(nil), p.HashTags...)
	out.Likes = append([]string(nil), p.Likes...)
	return out
}

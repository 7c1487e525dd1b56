package social

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
	"gallery-auction/internal/repository"
	"gallery-auction/internal/storage"
)

func newService(t *testing.T) (*SocialService, *repository.MemoryUserStore) {
	t.Helper()
	users := repository.NewMemoryUserStore()
	svc := NewSocialService(repository.NewMemorySocialStore(), users, storage.NewMemoryStore())
	return svc, users
}

func addUser(t *testing.T, users *repository.MemoryUserStore, userID string) {
	t.Helper()
	require.NoError(t, users.AddUser(model.User{
		UserID:   userID,
		Fullname: "Full " + userID,
		Username: userID,
		Email:    userID + "@example.com",
	}))
}

func createPost(t *testing.T, svc *SocialService, userID string) model.Post {
	t.Helper()
	post, err := svc.CreatePost(context.Background(), userID, "a post", "art, gallery", []byte{0x01}, "image/jpeg")
	require.NoError(t, err)
	return post
}

func TestSocialService_CreatePost(t *testing.T) {
	t.Parallel()

	t.Run("success_splits_hashtags", func(t *testing.T) {
		t.Parallel()

		svc, users := newService(t)
		addUser(t, users, "user1")

		post := createPost(t, svc, "user1")
		require.Equal(t, []string{"art", "gallery"}, post.HashTags)
		require.NotEmpty(t, post.PictureURL)
		require.Empty(t, post.Likes)
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t)
		_, err := svc.CreatePost(context.Background(), "user1", "desc", "", nil, "")
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestSocialService_ListPosts(t *testing.T) {
	t.Parallel()

	svc, users := newService(t)
	addUser(t, users, "user1")
	addUser(t, users, "user2")

	post := createPost(t, svc, "user1")
	_, err := svc.CreateComment(post.PostID, "user2", "nice")
	require.NoError(t, err)

	views, err := svc.ListPosts()
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, 1, views[0].NumberOfComments)
	require.Equal(t, "Full user1", views[0].Author.Fullname)
	require.Equal(t, "Full user2", views[0].Comments[0].Commenter.Fullname)
}

func TestSocialService_ToggleLike(t *testing.T) {
	t.Parallel()

	svc, users := newService(t)
	addUser(t, users, "user1")
	post := createPost(t, svc, "user1")

	count, liked, err := svc.ToggleLike(post.PostID, "user2")
	require.NoError(t, err)
	require.True(t, liked)
	require.Equal(t, 1, count)

	count, liked, err = svc.ToggleLike(post.PostID, "user2")
	require.NoError(t, err)
	require.False(t, liked)
	require.Equal(t, 0, count)

	_, _, err = svc.ToggleLike("ghost", "user2")
	require.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestSocialService_Comments(t *testing.T) {
	t.Parallel()

	svc, users := newService(t)
	addUser(t, users, "user1")
	post := createPost(t, svc, "user1")

	_, err := svc.CreateComment("ghost", "user1", "text")
	require.ErrorIs(t, err, apperrors.ErrPostNotFound)

	_, err = svc.CreateComment(post.PostID, "user1", "")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	created, err := svc.CreateComment(post.PostID, "user1", "first!")
	require.NoError(t, err)
	require.NotEmpty(t, created.CommentID)

	comments, err := svc.ListComments(post.PostID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "first!", comments[0].Text)
}

func TestSocialService_DeletePost(t *testing.T) {
	t.Parallel()

	svc, users := newService(t)
	addUser(t, users, "user1")
	post := createPost(t, svc, "user1")

	require.NoError(t, svc.DeletePost(context.Background(), post.PostID))
	require.ErrorIs(t, svc.DeletePost(context.Background(), post.PostID), apperrors.ErrPostNotFound)

	views, err := svc.ListPosts()
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestSocialService_FollowUser(t *testing.T) {
	t.Parallel()

	svc, users := newService(t)
	addUser(t, users, "user1")
	addUser(t, users, "user2")

	follow, err := svc.FollowUser("user1", "user2")
	require.NoError(t, err)
	require.Equal(t, "user1", follow.Follower)
	require.Equal(t, "user2", follow.Following)

	_, err = svc.FollowUser("user1", "user2")
	require.ErrorIs(t, err, apperrors.ErrAlreadyFollowing)

	_, err = svc.FollowUser("user1", "user1")
	require.ErrorIs(t, err, apperrors.ErrSelfFollow)

	_, err = svc.FollowUser("user1", "ghost")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSocialService_PostsReport(t *testing.T) {
	t.Parallel()

	svc, users := newService(t)
	addUser(t, users, "user1")

	p1 := createPost(t, svc, "user1")
	createPost(t, svc, "user1")

	_, _, err := svc.ToggleLike(p1.PostID, "fan1")
	require.NoError(t, err)
	_, _, err = svc.ToggleLike(p1.PostID, "fan2")
	require.NoError(t, err)

	report, err := svc.PostsReport("user1")
	require.NoError(t, err)
	require.Equal(t, 2, report.PostCount)
	require.Equal(t, 2, report.LikesReceived)

	empty, err := svc.PostsReport("nobody")
	require.NoError(t, err)
	require.Zero(t, empty.PostCount)
}

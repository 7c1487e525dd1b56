package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "gallery-auction/internal/auctionService"
	"gallery-auction/internal/auth"
	gallery "gallery-auction/internal/galleryService"
	model "gallery-auction/internal/models"
	"gallery-auction/internal/repository"
	"gallery-auction/internal/server"
	social "gallery-auction/internal/socialService"
	"gallery-auction/internal/storage"
	user "gallery-auction/internal/userService"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testAdminEmail = "admin@gallery.test"

// TestEnv bundles the router with direct store access for seeding.
type TestEnv struct {
	Router   *gin.Engine
	Tokens   *auth.Manager
	Users    *repository.MemoryUserStore
	Catalog  *repository.MemoryCatalogStore
	Auctions *repository.MemoryAuctionStore
}

// SetupTestEnv wires the full application against in-memory stores.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewManagerWithSecret("integration-secret")
	objects := storage.NewMemoryStore()

	userStore := repository.NewMemoryUserStore()
	catalogStore := repository.NewMemoryCatalogStore()
	socialStore := repository.NewMemorySocialStore()
	auctionStore := repository.NewMemoryAuctionStore()

	auctionSvc := auction.NewAuctionService(auctionStore, catalogStore, userStore)

	router := server.SetupRouter(server.Services{
		Tokens:  tokens,
		Users:   user.NewUserService(userStore, objects, tokens, testAdminEmail),
		Gallery: gallery.NewGalleryService(catalogStore, objects, auctionSvc),
		Social:  social.NewSocialService(socialStore, userStore, objects),
		Auction: auctionSvc,
	})

	return &TestEnv{
		Router:   router,
		Tokens:   tokens,
		Users:    userStore,
		Catalog:  catalogStore,
		Auctions: auctionStore,
	}
}

// SeedUser stores an account and returns a valid token for it.
func (e *TestEnv) SeedUser(t *testing.T, userID, username string, isAdmin bool) string {
	t.Helper()

	require.NoError(t, e.Users.AddUser(model.User{
		UserID:   userID,
		Fullname: "User " + username,
		Username: username,
		Email:    username + "@example.com",
		Phone:    "0912-" + userID,
		IsAdmin:  isAdmin,
	}))

	token, err := e.Tokens.IssueToken(userID, isAdmin)
	require.NoError(t, err)
	return token
}

// SeedPicture stores a catalog picture eligible for auction.
func (e *TestEnv) SeedPicture(t *testing.T, pictureID string, price float64) {
	t.Helper()

	require.NoError(t, e.Catalog.AddPicture(model.Picture{
		PictureID:   pictureID,
		Title:       "Picture " + pictureID,
		Description: "seeded",
		Price:       price,
		Type:        "auction",
		PictureURL:  "memory://pictures/" + pictureID,
		CreatedAt:   time.Now().UTC(),
	}))
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope. An empty token leaves the request anonymous.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data unwraps the envelope's data object, failing the test when absent.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}

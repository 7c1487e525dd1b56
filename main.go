package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	auction "gallery-auction/internal/auctionService"
	"gallery-auction/internal/auth"
	gallery "gallery-auction/internal/galleryService"
	"gallery-auction/internal/repository"
	"gallery-auction/internal/server"
	social "gallery-auction/internal/socialService"
	"gallery-auction/internal/storage"
	user "gallery-auction/internal/userService"
	"gallery-auction/utils"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	tokens, err := auth.NewManager()
	if err != nil {
		utils.Fatal("failed to initialize token manager", map[string]any{"error": err.Error()})
	}

	objects := newObjectStore()

	userStore := repository.NewMemoryUserStore()
	catalogStore := repository.NewMemoryCatalogStore()
	socialStore := repository.NewMemorySocialStore()
	auctionStore := repository.NewMemoryAuctionStore()

	auctionSvc := auction.NewAuctionService(auctionStore, catalogStore, userStore)

	services := server.Services{
		Tokens:  tokens,
		Users:   user.NewUserService(userStore, objects, tokens, utils.GetEnv("ADMIN_EMAIL", "")),
		Gallery: gallery.NewGalleryService(catalogStore, objects, auctionSvc),
		Social:  social.NewSocialService(socialStore, userStore, objects),
		Auction: auctionSvc,
	}

	router := server.SetupRouter(services)

	port := getPort()
	fmt.Printf("Starting gallery auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newObjectStore picks MinIO when an endpoint is configured, otherwise
// falls back to the in-memory store
func newObjectStore() storage.ObjectStore {
	if os.Getenv("MINIO_ENDPOINT") == "" {
		utils.Warn("MINIO_ENDPOINT not set, using in-memory object storage", nil)
		return storage.NewMemoryStore()
	}

	store, err := storage.NewMinioStore()
	if err != nil {
		utils.Fatal("failed to initialize object storage", map[string]any{"error": err.Error()})
	}
	return store
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

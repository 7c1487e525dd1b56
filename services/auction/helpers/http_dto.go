package helpers

import (
	"time"

	auction "gallery-auction/internal/auctionService"
	social "gallery-auction/internal/socialService"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	PictureID string    `json:"picture_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// UserAnalyticsResponse joins the caller's posts aggregate with their
// cross-auction standing
type UserAnalyticsResponse struct {
	Posts    social.PostsReport        `json:"posts"`
	Auctions auction.UserAuctionReport `json:"auctions"`
}

type AuctionResponse struct {
	AuctionID   string  `json:"auction_id"`
	PictureID   string  `json:"picture_id"`
	StartingBid float64 `json:"starting_bid"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	BidCount    int     `json:"bid_count"`
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	auction "gallery-auction/internal/auctionService"
	"gallery-auction/internal/auth"
	model "gallery-auction/internal/models"
	social "gallery-auction/internal/socialService"
	"gallery-auction/services/auction/helpers"
	"gallery-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(pictureID string, startDate, endDate time.Time) (model.Auction, error)
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Auction, error)
	ListAuctions() ([]auction.AuctionView, error)
	GetBidsAndHighest(auctionID string) (auction.BidsAndHighest, error)
	ListBidSummaries() ([]auction.AuctionSummary, error)
	UserAuctionReport(userID string) (auction.UserAuctionReport, error)
}

// PostsReportServiceInterface supplies the posts side of the analytics
// response; in production it is the social service.
type PostsReportServiceInterface interface {
	PostsReport(userID string) (social.PostsReport, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	posts   PostsReportServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface, posts PostsReportServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service, posts: posts}
}

// CreateAuctionHandler handles POST /auctions (admin only)
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, err := h.service.CreateAuction(req.PictureID, req.StartDate, req.EndDate)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler":    "CreateAuctionHandler",
			"picture_id": req.PictureID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.AuctionResponse{
		AuctionID:   created.AuctionID,
		PictureID:   created.PictureID,
		StartingBid: created.StartingBid,
		StartDate:   created.StartDate.UTC().Format(time.RFC3339),
		EndDate:     created.EndDate.UTC().Format(time.RFC3339),
		BidCount:    len(created.Bids),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.AuctionID,
		"picture_id": created.PictureID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	bidderID := c.GetString(auth.ContextUserID)

	updated, err := h.service.PlaceBid(c.Request.Context(), auctionID, bidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"user_id":    bidderID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.AuctionResponse{
		AuctionID:   updated.AuctionID,
		PictureID:   updated.PictureID,
		StartingBid: updated.StartingBid,
		StartDate:   updated.StartDate.UTC().Format(time.RFC3339),
		EndDate:     updated.EndDate.UTC().Format(time.RFC3339),
		BidCount:    len(updated.Bids),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": updated.AuctionID,
		"user_id":    bidderID,
		"amount":     req.Amount,
		"bid_count":  len(updated.Bids),
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []auction.AuctionView{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsAndHighest(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	if bids.AllBids == nil {
		bids.AllBids = []auction.BidView{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids.AllBids),
	})
}

// ListBidSummariesHandler handles GET /auctions/bids (admin only)
func (h *AuctionHandler) ListBidSummariesHandler(c *gin.Context) {
	summaries, err := h.service.ListBidSummaries()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidSummariesHandler: error building report", map[string]any{"error": err.Error()})
		return
	}

	if summaries == nil {
		summaries = []auction.AuctionSummary{}
	}

	utils.JSONResponse(c, http.StatusOK, summaries, "auction report retrieved successfully")
	helpers.LogSuccess("ListBidSummariesHandler", "auction report retrieved successfully", map[string]any{
		"count": len(summaries),
	})
}

// UserAnalyticsHandler handles GET /auctions/analytics, joining the
// caller's auction standing with their posts aggregate
func (h *AuctionHandler) UserAnalyticsHandler(c *gin.Context) {
	userID := c.GetString(auth.ContextUserID)

	auctionReport, err := h.service.UserAuctionReport(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UserAnalyticsHandler: error building auction report", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}
	if auctionReport.Auctions == nil {
		auctionReport.Auctions = []auction.UserAuctionDetail{}
	}

	postsReport, err := h.posts.PostsReport(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UserAnalyticsHandler: error building posts report", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := helpers.UserAnalyticsResponse{
		Posts:    postsReport,
		Auctions: auctionReport,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "analytics retrieved successfully")
	helpers.LogSuccess("UserAnalyticsHandler", "analytics retrieved successfully", map[string]any{
		"user_id":          userID,
		"auctions_entered": auctionReport.AuctionsEntered,
		"post_count":       postsReport.PostCount,
	})
}

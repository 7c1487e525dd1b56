package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery-auction/internal/apperrors"
	auction "gallery-auction/internal/auctionService"
	"gallery-auction/internal/auth"
	model "gallery-auction/internal/models"
	social "gallery-auction/internal/socialService"
	"gallery-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// asUser fakes the auth middleware by planting claims in the gin context
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextUserID, userID)
		c.Next()
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockPosts := NewMockPostsReportServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockPosts)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/bids", asUser("user1"), handler.PlaceBidHandler)

	now := time.Now().UTC()
	openAuction := model.Auction{
		AuctionID:   "auction1",
		PictureID:   "picture1",
		StartingBid: 100,
		StartDate:   now.Add(-time.Hour),
		EndDate:     now.Add(time.Hour),
		Bids: []model.Bid{
			{BidderID: "user1", Amount: 150, PlacedAt: now},
		},
		CreatedAt: now,
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{Amount: 150},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 150.0).
					Return(openAuction, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, "picture1", data["picture_id"])
				require.Equal(t, 1.0, data["bid_count"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_amount",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_amount",
			requestBody:    helpers.PlaceBidRequest{Amount: -10},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_bid_too_low",
			requestBody: helpers.PlaceBidRequest{Amount: 50},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 50.0).
					Return(model.Auction{}, apperrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "service_duplicate_amount",
			requestBody: helpers.PlaceBidRequest{Amount: 150},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 150.0).
					Return(model.Auction{}, apperrors.ErrDuplicateAmount)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount already placed",
		},
		{
			name:        "service_auction_ended",
			requestBody: helpers.PlaceBidRequest{Amount: 150},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 150.0).
					Return(model.Auction{}, apperrors.ErrAuctionEnded)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "auction has ended",
		},
		{
			name:        "service_auction_not_found",
			requestBody: helpers.PlaceBidRequest{Amount: 150},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 150.0).
					Return(model.Auction{}, apperrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.PlaceBidRequest{Amount: 150},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 150.0).
					Return(model.Auction{}, errors.New("storage failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/auction1/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockPosts := NewMockPostsReportServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockPosts)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/auctions", asUser("admin1"), handler.CreateAuctionHandler)

	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.CreateAuctionRequest{
				PictureID: "picture1",
				StartDate: start,
				EndDate:   end,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("picture1", start, end).
					Return(model.Auction{
						AuctionID:   "auction1",
						PictureID:   "picture1",
						StartingBid: 100,
						StartDate:   start,
						EndDate:     end,
						CreatedAt:   time.Now().UTC(),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
		},
		{
			name:           "missing_picture_id",
			requestBody:    map[string]any{"start_date": start, "end_date": end},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "picture_not_found",
			requestBody: helpers.CreateAuctionRequest{
				PictureID: "ghost",
				StartDate: start,
				EndDate:   end,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("ghost", start, end).
					Return(model.Auction{}, apperrors.ErrPictureNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "picture not found",
		},
		{
			name: "already_auctioned",
			requestBody: helpers.CreateAuctionRequest{
				PictureID: "picture1",
				StartDate: start,
				EndDate:   end,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("picture1", start, end).
					Return(model.Auction{}, apperrors.ErrAlreadyAuctioned)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "picture is already up for auction",
		},
		{
			name: "invalid_window",
			requestBody: helpers.CreateAuctionRequest{
				PictureID: "picture1",
				StartDate: end,
				EndDate:   start,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("picture1", end, start).
					Return(model.Auction{}, apperrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid auction details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/admin/auctions", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test GetBidsHandler
func TestGetBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockPosts := NewMockPostsReportServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockPosts)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/bids", handler.GetBidsHandler)

	now := time.Now().UTC()
	highest := auction.BidView{BidderID: "user2", Fullname: "User Two", Amount: 200, PlacedAt: now}

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:      "success_with_bids",
			auctionID: "auction1",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidsAndHighest("auction1").
					Return(auction.BidsAndHighest{
						AllBids: []auction.BidView{{BidderID: "user1", Amount: 150, PlacedAt: now}},
						Highest: &highest,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				all := data["all_bids"].([]any)
				require.Len(t, all, 1)
				top := data["highest_bid"].(map[string]any)
				require.Equal(t, "user2", top["bidder_id"])
				require.Equal(t, 200.0, top["amount"])
			},
		},
		{
			name:      "success_no_bids",
			auctionID: "auction2",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidsAndHighest("auction2").
					Return(auction.BidsAndHighest{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Len(t, data["all_bids"].([]any), 0)
				require.Nil(t, data["highest_bid"])
			},
		},
		{
			name:      "auction_not_found",
			auctionID: "ghost",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidsAndHighest("ghost").
					Return(auction.BidsAndHighest{}, apperrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions/"+tc.auctionID+"/bids", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test UserAnalyticsHandler
func TestUserAnalyticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockPosts := NewMockPostsReportServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService, mockPosts)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/analytics", asUser("user1"), handler.UserAnalyticsHandler)

	mockService.EXPECT().
		UserAuctionReport("user1").
		Return(auction.UserAuctionReport{
			AuctionsEntered: 2,
			AuctionsWinning: 1,
			Auctions: []auction.UserAuctionDetail{
				{AuctionID: "auction1", OwnAmount: 200, HighestAmount: 200, Winning: true},
				{AuctionID: "auction2", OwnAmount: 80, HighestAmount: 120, Winning: false},
			},
		}, nil)
	mockPosts.EXPECT().
		PostsReport("user1").
		Return(social.PostsReport{PostCount: 3, LikesReceived: 7}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auctions/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["message"], "analytics retrieved successfully")

	data := resp["data"].(map[string]any)
	posts := data["posts"].(map[string]any)
	require.Equal(t, 3.0, posts["post_count"])
	require.Equal(t, 7.0, posts["likes_received"])
	auctions := data["auctions"].(map[string]any)
	require.Equal(t, 2.0, auctions["auctions_entered"])
	require.Equal(t, 1.0, auctions["auctions_winning"])
	require.Len(t, auctions["auctions"].([]any), 2)
}

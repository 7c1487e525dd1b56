package auction

import (
	"context"
	"fmt"
	"time"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
	"gallery-auction/internal/ranking"
	"gallery-auction/internal/repository"
	"gallery-auction/utils"
)

// PictureInfo is the catalog projection attached to auction reads
type PictureInfo struct {
	PictureID    string  `json:"picture_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	PictureURL   string  `json:"picture_url"`
	CategoryName string  `json:"category_name"`
}

// AuctionView is an auction with its picture projection
type AuctionView struct {
	model.Auction
	Picture PictureInfo `json:"picture"`
}

// BidView is a bid slot with the bidder's public details
type BidView struct {
	BidderID string    `json:"bidder_id"`
	Fullname string    `json:"fullname"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Amount   float64   `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// BidsAndHighest splits an auction's ranked bids for presentation
type BidsAndHighest struct {
	AllBids []BidView `json:"all_bids"` // descending, excluding the highest
	Highest *BidView  `json:"highest_bid"`
}

// AuctionSummary is the admin projection over one auction
type AuctionSummary struct {
	AuctionID         string    `json:"auction_id"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	StartingBid       float64   `json:"starting_bid"`
	NumberOfBidders   int       `json:"number_of_bidders"`
	HighestBid        *float64  `json:"highest_bid"`
	HighestBidderName string    `json:"highest_bidder_name"`
	HighestBidderMail string    `json:"highest_bidder_email"`
	OtherBids         []BidView `json:"other_bids"`
	PictureURL        string    `json:"picture"`
}

// UserAuctionDetail describes one auction the user has bid in
type UserAuctionDetail struct {
	AuctionID         string    `json:"auction_id"`
	Title             string    `json:"title"`
	PictureURL        string    `json:"picture_url"`
	StartingBid       float64   `json:"starting_bid"`
	EndDate           time.Time `json:"end_date"`
	HighestAmount     float64   `json:"highest_amount"`
	HighestBidder     string    `json:"highest_bidder"`
	OwnAmount         float64   `json:"own_amount"`
	OtherParticipants int       `json:"other_participants"`
	Winning           bool      `json:"winning"`
}

// UserAuctionReport aggregates a user's standing across all auctions
type UserAuctionReport struct {
	AuctionsEntered int                 `json:"auctions_entered"`
	AuctionsWinning int                 `json:"auctions_winning"`
	Auctions        []UserAuctionDetail `json:"auctions"`
}

// AuctionService owns the auction lifecycle and the bid-acceptance protocol
type AuctionService struct {
	auctions repository.AuctionStore
	catalog  repository.CatalogStore
	users    repository.UserStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(auctions repository.AuctionStore, catalog repository.CatalogStore, users repository.UserStore) *AuctionService {
	return &AuctionService{
		auctions: auctions,
		catalog:  catalog,
		users:    users,
	}
}

// CreateAuction opens an auction for a picture. The starting bid is copied
// from the picture's listed price at this moment and never changes.
func (s *AuctionService) CreateAuction(pictureID string, startDate, endDate time.Time) (model.Auction, error) {
	if pictureID == "" || startDate.IsZero() || endDate.IsZero() {
		return model.Auction{}, fmt.Errorf("service: %w - missing pictureID or date range", apperrors.ErrInvalidInput)
	}
	if !startDate.Before(endDate) {
		return model.Auction{}, fmt.Errorf("service: %w - endDate must be after startDate", apperrors.ErrInvalidInput)
	}

	picture, err := s.catalog.GetPicture(pictureID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load picture %s: %w", pictureID, err)
	}

	auction := model.Auction{
		AuctionID:   utils.GenerateID(),
		PictureID:   pictureID,
		StartingBid: picture.Price,
		StartDate:   startDate,
		EndDate:     endDate,
		Bids:        []model.Bid{},
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.auctions.CreateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction for picture %s: %w", pictureID, err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id":   auction.AuctionID,
		"picture_id":   pictureID,
		"starting_bid": auction.StartingBid,
	})
	return auction, nil
}

// PlaceBid validates and applies a bid under the auction's exclusive lock.
// The read of the current bids, every check and the write-back happen as
// one atomic step; concurrent bids on the same auction serialize here.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Auction, error) {
	if auctionID == "" || bidderID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing auctionID or bidderID", apperrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Auction{}, fmt.Errorf("service: %w - non-positive bid amount", apperrors.ErrInvalidInput)
	}

	now := time.Now().UTC()

	updated, err := s.auctions.Update(ctx, auctionID, func(a *model.Auction) error {
		if !now.Before(a.EndDate) {
			return fmt.Errorf("auction %s: %w", auctionID, apperrors.ErrAuctionEnded)
		}

		// tie amounts are rejected outright, before the floor check, so
		// matching the current highest reports the tie rather than the
		// ordering failure and the maximum always has a unique holder
		for _, b := range a.Bids {
			if b.Amount == amount {
				return fmt.Errorf("%w - %.2f is already taken", apperrors.ErrDuplicateAmount, amount)
			}
		}

		current := ranking.CurrentHighestAmount(*a)
		if amount <= current {
			return fmt.Errorf("%w - current highest bid is %.2f", apperrors.ErrBidTooLow, current)
		}

		// a repeat bidder amends their slot in place; amount > current
		// already implies it beats their previous amount
		for i := range a.Bids {
			if a.Bids[i].BidderID == bidderID {
				a.Bids[i].Amount = amount
				a.Bids[i].PlacedAt = now
				return nil
			}
		}

		a.Bids = append(a.Bids, model.Bid{BidderID: bidderID, Amount: amount, PlacedAt: now})
		return nil
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to place bid on auction %s by user %s: %w", auctionID, bidderID, err)
	}

	utils.Info("bid accepted", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount,
	})
	return updated, nil
}

// ListAuctions returns every auction with its picture projection, newest first
func (s *AuctionService) ListAuctions() ([]AuctionView, error) {
	auctions, err := s.auctions.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	views := make([]AuctionView, 0, len(auctions))
	for _, a := range auctions {
		views = append(views, AuctionView{Auction: a, Picture: s.pictureInfo(a.PictureID)})
	}
	return views, nil
}

// GetBidsAndHighest returns the auction's bids sorted descending with the
// unique highest split out, bidder details attached.
func (s *AuctionService) GetBidsAndHighest(auctionID string) (BidsAndHighest, error) {
	if auctionID == "" {
		return BidsAndHighest{}, fmt.Errorf("service: %w - empty auction ID", apperrors.ErrInvalidInput)
	}

	auction, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return BidsAndHighest{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	highest, rest := ranking.RankBids(auction)
	result := BidsAndHighest{AllBids: s.bidViews(rest)}
	if highest != nil {
		v := s.bidView(*highest)
		result.Highest = &v
	}
	return result, nil
}

// ListBidSummaries computes the admin projection over every auction
func (s *AuctionService) ListBidSummaries() ([]AuctionSummary, error) {
	auctions, err := s.auctions.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	summaries := make([]AuctionSummary, 0, len(auctions))
	for _, a := range auctions {
		summary := AuctionSummary{
			AuctionID:       a.AuctionID,
			StartDate:       a.StartDate,
			EndDate:         a.EndDate,
			StartingBid:     a.StartingBid,
			NumberOfBidders: len(a.Bids), // slot count equals distinct bidders
			PictureURL:      s.pictureInfo(a.PictureID).PictureURL,
			OtherBids:       []BidView{},
		}

		if highest, rest := ranking.RankBids(a); highest != nil {
			amount := highest.Amount
			summary.HighestBid = &amount
			bidder, err := s.users.GetUser(highest.BidderID)
			if err == nil {
				summary.HighestBidderName = bidder.Fullname
				summary.HighestBidderMail = bidder.Email
			}
			summary.OtherBids = s.bidViews(rest)
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// UserAuctionReport aggregates the user's standing over every auction they
// hold a bid slot in.
func (s *AuctionService) UserAuctionReport(userID string) (UserAuctionReport, error) {
	if userID == "" {
		return UserAuctionReport{}, fmt.Errorf("service: %w - empty user ID", apperrors.ErrInvalidInput)
	}

	auctions, err := s.auctions.ListAuctionsByBidder(userID)
	if err != nil {
		return UserAuctionReport{}, fmt.Errorf("service: failed to list auctions for user %s: %w", userID, err)
	}

	report := UserAuctionReport{Auctions: []UserAuctionDetail{}}
	for _, a := range auctions {
		info := s.pictureInfo(a.PictureID)
		detail := UserAuctionDetail{
			AuctionID:         a.AuctionID,
			Title:             info.Title,
			PictureURL:        info.PictureURL,
			StartingBid:       a.StartingBid,
			EndDate:           a.EndDate,
			OtherParticipants: len(a.Bids) - 1,
		}

		for _, b := range a.Bids {
			if b.BidderID == userID {
				detail.OwnAmount = b.Amount
				break
			}
		}

		if highest, ok := ranking.HighestBid(a); ok {
			detail.HighestAmount = highest.Amount
			if bidder, err := s.users.GetUser(highest.BidderID); err == nil {
				detail.HighestBidder = bidder.Fullname
			}
			detail.Winning = highest.BidderID == userID
		}

		if detail.Winning {
			report.AuctionsWinning++
		}
		report.Auctions = append(report.Auctions, detail)
	}
	report.AuctionsEntered = len(report.Auctions)

	return report, nil
}

// DeleteAuctionForPicture cascades a picture deletion into the ledger.
// Called synchronously by the gallery service.
func (s *AuctionService) DeleteAuctionForPicture(pictureID string) error {
	if err := s.auctions.DeleteAuctionForPicture(pictureID); err != nil {
		return fmt.Errorf("service: failed to cascade delete for picture %s: %w", pictureID, err)
	}
	return nil
}

// pictureInfo resolves the catalog projection; a missing picture yields a
// zero projection rather than failing the whole read
func (s *AuctionService) pictureInfo(pictureID string) PictureInfo {
	picture, err := s.catalog.GetPicture(pictureID)
	if err != nil {
		return PictureInfo{PictureID: pictureID}
	}

	info := PictureInfo{
		PictureID:   picture.PictureID,
		Title:       picture.Title,
		Description: picture.Description,
		Price:       picture.Price,
		PictureURL:  picture.PictureURL,
	}
	if category, err := s.catalog.GetCategory(picture.CategoryID); err == nil {
		info.CategoryName = category.Name
	}
	return info
}

func (s *AuctionService) bidView(b model.Bid) BidView {
	view := BidView{
		BidderID: b.BidderID,
		Amount:   b.Amount,
		PlacedAt: b.PlacedAt,
	}
	if bidder, err := s.users.GetUser(b.BidderID); err == nil {
		view.Fullname = bidder.Fullname
		view.Username = bidder.Username
		view.Email = bidder.Email
	}
	return view
}

func (s *AuctionService) bidViews(bids []model.Bid) []BidView {
	views := make([]BidView, 0, len(bids))
	for _, b := range bids {
		views = append(views, s.bidView(b))
	}
	return views
}

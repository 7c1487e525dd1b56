package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
)

// AuctionStore defines storage for auctions and their bid slots.
// Update runs its mutation atomically with respect to other updates
// of the same auction; updates of different auctions run in parallel.
type AuctionStore interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	ListAuctionsByBidder(userID string) ([]model.Auction, error)
	Update(ctx context.Context, auctionID string, fn func(*model.Auction) error) (model.Auction, error)
	DeleteAuctionForPicture(pictureID string) error
}

// auctionEntry pairs an auction with its own mutex so that the
// read-validate-write cycle of a bid is serialized per auction.
type auctionEntry struct {
	mu      sync.Mutex
	auction model.Auction
	deleted bool
}

// MemoryAuctionStore is a concurrency-safe in-memory implementation of
// AuctionStore. The outer lock guards only the maps; bid traffic on one
// auction never blocks bid traffic on another.
type MemoryAuctionStore struct {
	mu        sync.RWMutex
	auctions  map[string]*auctionEntry // key: auctionID
	byPicture map[string]string        // key: pictureID -> auctionID
}

// NewMemoryAuctionStore creates an empty auction store
func NewMemoryAuctionStore() *MemoryAuctionStore {
	return &MemoryAuctionStore{
		auctions:  make(map[string]*auctionEntry),
		byPicture: make(map[string]string),
	}
}

// CreateAuction inserts a new auction, enforcing at most one auction per picture
func (s *MemoryAuctionStore) CreateAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byPicture[auction.PictureID]; ok {
		return fmt.Errorf("create auction for picture %s: %w", auction.PictureID, apperrors.ErrAlreadyAuctioned)
	}

	s.auctions[auction.AuctionID] = &auctionEntry{auction: cloneAuction(auction)}
	s.byPicture[auction.PictureID] = auction.AuctionID
	return nil
}

// GetAuction returns a copy of the auction
func (s *MemoryAuctionStore) GetAuction(auctionID string) (model.Auction, error) {
	entry, err := s.entry(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}
	return cloneAuction(entry.auction), nil
}

// ListAuctions returns copies of all auctions, newest first
func (s *MemoryAuctionStore) ListAuctions() ([]model.Auction, error) {
	s.mu.RLock()
	entries := make([]*auctionEntry, 0, len(s.auctions))
	for _, e := range s.auctions {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.deleted {
			auctions = append(auctions, cloneAuction(e.auction))
		}
		e.mu.Unlock()
	}

	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].CreatedAt.After(auctions[j].CreatedAt)
	})
	return auctions, nil
}

// ListAuctionsByBidder returns all auctions holding a bid slot for the user
func (s *MemoryAuctionStore) ListAuctionsByBidder(userID string) ([]model.Auction, error) {
	all, err := s.ListAuctions()
	if err != nil {
		return nil, err
	}

	var auctions []model.Auction
	for _, a := range all {
		for _, b := range a.Bids {
			if b.BidderID == userID {
				auctions = append(auctions, a)
				break
			}
		}
	}
	return auctions, nil
}

// Update applies fn to a copy of the auction under the auction's own lock
// and commits the copy back only when fn returns nil. The context is
// checked before the commit point; once the write-back starts it runs to
// completion.
func (s *MemoryAuctionStore) Update(ctx context.Context, auctionID string, fn func(*model.Auction) error) (model.Auction, error) {
	entry, err := s.entry(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.deleted {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}
	if err := ctx.Err(); err != nil {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", auctionID, err)
	}

	updated := cloneAuction(entry.auction)
	if err := fn(&updated); err != nil {
		return model.Auction{}, err
	}

	entry.auction = updated
	return cloneAuction(updated), nil
}

// DeleteAuctionForPicture removes the auction referencing the picture, if any.
// Deleting a picture with no auction is not an error.
func (s *MemoryAuctionStore) DeleteAuctionForPicture(pictureID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auctionID, ok := s.byPicture[pictureID]
	if !ok {
		return nil
	}

	entry := s.auctions[auctionID]
	entry.mu.Lock()
	entry.deleted = true
	entry.mu.Unlock()

	delete(s.auctions, auctionID)
	delete(s.byPicture, pictureID)
	return nil
}

// entry looks up the live entry for an auction
func (s *MemoryAuctionStore) entry(auctionID string) (*auctionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}
	return entry, nil
}

// cloneAuction deep-copies an auction so callers never share bid slices
func cloneAuction(a model.Auction) model.Auction {
	out := a
	out.Bids = append([]model.Bid(nil), a.Bids...)
	return out
}

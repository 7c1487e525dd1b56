// Package ranking holds the pure read-side bid aggregation: highest bid,
// descending rankings and per-auction summaries. It never mutates an
// auction; amounts are unique within one auction so every maximum has a
// single holder.
package ranking

import (
	"sort"

	model "gallery-auction/internal/models"
)

// HighestBid returns the bid slot with the maximum amount and whether any
// bid exists at all.
func HighestBid(auction model.Auction) (model.Bid, bool) {
	if len(auction.Bids) == 0 {
		return model.Bid{}, false
	}

	highest := auction.Bids[0]
	for _, b := range auction.Bids[1:] {
		if b.Amount > highest.Amount {
			highest = b
		}
	}
	return highest, true
}

// CurrentHighestAmount is the floor a new bid must exceed: the maximum
// slot amount, or the starting bid when no slots exist.
func CurrentHighestAmount(auction model.Auction) float64 {
	if highest, ok := HighestBid(auction); ok {
		return highest.Amount
	}
	return auction.StartingBid
}

// RankBids splits the auction's bid slots into the unique highest bid and
// the remaining slots sorted by amount descending.
func RankBids(auction model.Auction) (highest *model.Bid, rest []model.Bid) {
	sorted := append([]model.Bid(nil), auction.Bids...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if len(sorted) == 0 {
		return nil, []model.Bid{}
	}
	return &sorted[0], sorted[1:]
}

// IsWinning reports whether the user holds the current highest slot
func IsWinning(auction model.Auction, userID string) bool {
	highest, ok := HighestBid(auction)
	return ok && highest.BidderID == userID
}

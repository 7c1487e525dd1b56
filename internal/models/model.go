package models

import "time"

// User represents a registered account, admin or regular
type User struct {
	UserID   string `json:"user_id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Profile  string `json:"profile"` // profile image URL
	Password string `json:"-"`       // bcrypt hash, never serialized
	IsAdmin  bool   `json:"is_admin"`
}

// Category groups pictures in the catalog
type Category struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Picture is a catalog item eligible for auction
type Picture struct {
	PictureID   string    `json:"picture_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Type        string    `json:"type"` // "auction", "homePage" or "both"
	PictureURL  string    `json:"picture_url"`
	CategoryID  string    `json:"category_id"`
	UploadedBy  string    `json:"uploaded_by"`
	IsBanner    bool      `json:"is_banner"`
	CreatedAt   time.Time `json:"created_at"`
}

// PictureUpdate carries optional field patches for a picture;
// nil pointers leave the stored value untouched
type PictureUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Type        *string
	CategoryID  *string
}

// Bid is the single current amount a bidder holds within one auction.
// A bidder's second submission amends the slot, it never adds another.
type Bid struct {
	BidderID string    `json:"bidder_id"`
	Amount   float64   `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// Auction is a time-boxed bidding process for one picture
type Auction struct {
	AuctionID   string    `json:"auction_id"`
	PictureID   string    `json:"picture_id"`
	StartingBid float64   `json:"starting_bid"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Bids        []Bid     `json:"bids"` // insertion order, not sorted by amount
	CreatedAt   time.Time `json:"created_at"`
}

// Post is a social feed entry
type Post struct {
	PostID      string    `json:"post_id"`
	PictureURL  string    `json:"picture_url"`
	Description string    `json:"description"`
	HashTags    []string  `json:"hash_tags"`
	PostedBy    string    `json:"posted_by"`
	Likes       []string  `json:"likes"` // user IDs
	CreatedAt   time.Time `json:"created_at"`
}

// Comment belongs to exactly one post
type Comment struct {
	CommentID   string    `json:"comment_id"`
	PostID      string    `json:"post_id"`
	Text        string    `json:"text"`
	CommentedBy string    `json:"commented_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Follow records one user following another
type Follow struct {
	FollowID  string    `json:"follow_id"`
	Follower  string    `json:"follower"`
	Following string    `json:"following"`
	CreatedAt time.Time `json:"created_at"`
}

package models

// Category groups inventory items ("dairy / milk" style major/sub pair).
type Category struct {
	CategoryID        int64  `json:"category_id"`
	CategoryMajorName string `json:"category_major_name"`
	CategorySubName   string `json:"category_sub_name"`
}

// Item is a single product in the user's fridge inventory.
// ExpiryDate is an ISO date ("2006-01-02"); CreatedAt is an ISO timestamp.
// Both are kept as strings because the client only displays and sorts them.
type Item struct {
	ItemID     int64     `json:"item_id"`
	UserID     int64     `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	ItemName   string    `json:"item_name"`
	ExpiryDate string    `json:"expiry_date"`
	CreatedAt  string    `json:"created_at"`
	Category   *Category `json:"category,omitempty"`
}

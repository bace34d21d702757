package models

import "time"

type CartSnapshot struct {
	Lines              []CartLine `json:"lines"`
	IsOpen             bool       `json:"is_open"`
	AnimationTrigger   int        `json:"animation_trigger"`
	LastAddedProductID int        `json:"last_added_product_id,omitempty"`
}

// Snapshot is the persisted state of one storefront session.
type Snapshot struct {
	Cart      CartSnapshot `json:"cart"`
	Favorites []Product    `json:"favorites"`
	UpdatedAt time.Time    `json:"updated_at"`
}

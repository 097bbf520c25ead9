package models

// StoreItem represents a swag item that can be redeemed for tokens
type StoreItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TokenCost   int    `json:"tokenCost"`
}

// RedemptionResult is returned after a successful store redemption
type RedemptionResult struct {
	Item    StoreItem   `json:"item"`
	Entry   LedgerEntry `json:"entry"`
	Balance int         `json:"balance"`
}

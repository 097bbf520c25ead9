package catalog

import "github.com/blockseblock/backend/internal/models"

func defaultStoreItems() []models.StoreItem {
	return []models.StoreItem{
		{ID: 1, Name: "BlockseBlock T-Shirt", Description: "Organic cotton tee with the BlockseBlock logo", Category: "apparel", TokenCost: 500},
		{ID: 2, Name: "Sticker Pack", Description: "Ten laptop stickers", Category: "accessories", TokenCost: 150},
		{ID: 3, Name: "Coffee Mug", Description: "Ceramic mug, 350 ml", Category: "accessories", TokenCost: 300},
		{ID: 4, Name: "Hoodie", Description: "Heavyweight hoodie", Category: "apparel", TokenCost: 1200},
		{ID: 5, Name: "Hardware Wallet", Description: "Entry-level hardware wallet", Category: "hardware", TokenCost: 5000},
	}
}

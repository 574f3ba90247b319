package model

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

type NFT struct {
	ID          string
	UserID      string
	GoalID      string
	MintedAt    time.Time
	Rarity      Rarity
	Name        string
	Description string
	ImageURL    string
	Listed      bool
}

// ListedNFT is a marketplace entry: an NFT joined with the public
// identity of its current owner.
type ListedNFT struct {
	NFT
	Owner PublicUser
}

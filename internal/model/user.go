package model

import "time"

type User struct {
	ID            string
	WalletAddress string
	Username      *string
	CreatedAt     time.Time
	NFTs          []string
}

// PublicUser is the projection of a user shown to other users,
// e.g. as the owner of a marketplace listing.
type PublicUser struct {
	ID            string
	WalletAddress string
}

package model

import "time"

// PlayerRecord represents a player account row stored in the database.
// SteamID is the identity; HeroID names the active hero ("" until one
// is granted).
type PlayerRecord struct {
	SteamID   string
	Gold      int32
	HeroID    string
	CreatedAt time.Time
	LastSeen  time.Time
}

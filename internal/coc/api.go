package coc

import (
	"context"

	"clashberry_api/internal/app"
)

// CocAPI defines the interface for interacting with the Clash of Clans API
// This separates infrastructure concerns from request handling
type CocAPI interface {
	GetClan(ctx context.Context, clanTag string) (*app.Clan, error)
	GetCurrentWar(ctx context.Context, clanTag string) (*app.CurrentWar, error)
}

var _ CocAPI = (*Client)(nil)

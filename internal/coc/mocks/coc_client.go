package mocks

import (
	"context"

	"clashberry_api/internal/app"
)

// MockCocClient is a test double for coc.Client
type MockCocClient struct {
	// Responses to return
	ClanResponse       *app.Clan
	CurrentWarResponse *app.CurrentWar

	// Errors to return
	ClanError       error
	CurrentWarError error

	// Panic to raise from GetClan, for exercising recovery
	ClanPanic any

	// Call tracking
	GetClanCalled           bool
	GetClanCalledWith       string
	GetCurrentWarCalled     bool
	GetCurrentWarCalledWith string
}

// NewMockCocClient creates a new mock clash client
func NewMockCocClient() *MockCocClient {
	return &MockCocClient{}
}

func (m *MockCocClient) GetClan(ctx context.Context, clanTag string) (*app.Clan, error) {
	m.GetClanCalled = true
	m.GetClanCalledWith = clanTag
	if m.ClanPanic != nil {
		panic(m.ClanPanic)
	}
	return m.ClanResponse, m.ClanError
}

func (m *MockCocClient) GetCurrentWar(ctx context.Context, clanTag string) (*app.CurrentWar, error) {
	m.GetCurrentWarCalled = true
	m.GetCurrentWarCalledWith = clanTag
	return m.CurrentWarResponse, m.CurrentWarError
}

// Reset clears all call tracking and responses
func (m *MockCocClient) Reset() {
	*m = MockCocClient{}
}

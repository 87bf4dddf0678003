package usecase

import (
	"context"

	"ledger-reconciler/internal/domain"
)

// FeedRepository defines the interface for fetching feed data.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -source=interface.go FeedRepository,EnrichmentClient
type FeedRepository interface {
	GetBankTransactions(ctx context.Context, path string) ([]domain.BankTransaction, error)
	GetBookEntries(ctx context.Context, path string) ([]domain.BookEntry, error)
}

// EnrichmentClient is the external AI collaborator that annotates discrepant
// items. A failed call leaves the reconciliation result untouched.
type EnrichmentClient interface {
	Annotate(ctx context.Context, items []domain.EnrichmentItem) (map[string]domain.Annotation, error)
}

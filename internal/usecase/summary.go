package usecase

import "ledger-reconciler/internal/domain"

// BuildStats derives dashboard totals and rates from a reconciled item
// sequence. Pure function; recompute it whenever the sequence changes.
func BuildStats(items []domain.ReconciliationItem) domain.DashboardStats {
	var stats domain.DashboardStats
	for _, item := range items {
		if item.BankTransaction != nil {
			stats.TotalBank += item.BankTransaction.TotalAmount
		}
		if item.BookEntry != nil {
			stats.TotalBook += item.BookEntry.Amount
		}
		switch item.Status {
		case domain.StatusMatched:
			stats.MatchedCount++
		case domain.StatusDiscrepancyAmount:
			stats.DiscrepancyCount++
		case domain.StatusMissingInBook:
			stats.MissingInBookCount++
		}
	}
	if len(items) > 0 {
		stats.MatchRate = float64(stats.MatchedCount) / float64(len(items)) * 100
	}
	return stats
}

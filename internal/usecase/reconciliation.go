package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ledger-reconciler/internal/amount"
	"ledger-reconciler/internal/domain"
)

// matchTolerance is the largest rounded difference still treated as zero.
const matchTolerance = 0.01

// ReconciliationUseCase orchestrates the reconciliation process.
type ReconciliationUseCase struct {
	repo      FeedRepository
	enricher  EnrichmentClient
	maxEnrich int
	log       zerolog.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase. enricher may
// be nil, in which case no enrichment is attempted. maxEnrich caps the number
// of items sent per enrichment call; zero selects the default.
func NewReconciliationUseCase(repo FeedRepository, enricher EnrichmentClient, maxEnrich int, log zerolog.Logger) *ReconciliationUseCase {
	if maxEnrich <= 0 {
		maxEnrich = DefaultEnrichmentCap
	}
	return &ReconciliationUseCase{repo: repo, enricher: enricher, maxEnrich: maxEnrich, log: log}
}

// Reconcile loads both feeds, pairs and classifies every record, and computes
// dashboard stats. When an enrichment client is configured, discrepant items
// are sent out for annotation; an enrichment failure is logged and the
// unenriched result returned.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, bankPath, bookPath string) (*domain.ReconciliationReport, error) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()

	bankTransactions, err := uc.repo.GetBankTransactions(ctx, bankPath)
	if err != nil {
		return nil, fmt.Errorf("could not get bank transactions: %w", err)
	}

	bookEntries, err := uc.repo.GetBookEntries(ctx, bookPath)
	if err != nil {
		return nil, fmt.Errorf("could not get book entries: %w", err)
	}

	uc.log.Info().
		Str("run_id", runID).
		Int("bank_transactions", len(bankTransactions)).
		Int("book_entries", len(bookEntries)).
		Msg("feeds loaded")

	items := ReconcileRecords(bankTransactions, bookEntries)

	if uc.enricher != nil {
		items = uc.enrich(ctx, runID, items)
	}

	stats := BuildStats(items)
	uc.log.Info().
		Str("run_id", runID).
		Int("items", len(items)).
		Int("matched", stats.MatchedCount).
		Int("discrepancies", stats.DiscrepancyCount).
		Msg("reconciliation complete")

	return &domain.ReconciliationReport{
		RunID:       runID,
		StartedAt:   startedAt,
		CompletedAt: time.Now().UTC(),
		Stats:       stats,
		Items:       items,
	}, nil
}

// enrich sends the capped discrepant subset to the collaborator and merges any
// annotations it returns. The reconciled items survive every failure mode.
func (uc *ReconciliationUseCase) enrich(ctx context.Context, runID string, items []domain.ReconciliationItem) []domain.ReconciliationItem {
	payload := SelectForEnrichment(items, uc.maxEnrich)
	if len(payload) == 0 {
		return items
	}

	annotations, err := uc.enricher.Annotate(ctx, payload)
	if err != nil {
		uc.log.Warn().Err(err).Str("run_id", runID).Msg("enrichment failed; continuing without annotations")
		return items
	}
	uc.log.Info().Str("run_id", runID).Int("annotations", len(annotations)).Msg("enrichment applied")
	return ApplyAnnotations(items, annotations)
}

// ReconcileRecords pairs bank transactions with book entries by invoice
// number / description equality and classifies every record into exactly one
// ReconciliationItem. Pure: two calls over the same input yield identical
// output, identifiers included.
//
// Matching is greedy first-match in input order. Book entries are indexed by
// description up front; each bank transaction pops the earliest unconsumed
// entry for its invoice number. A book entry is consumed by at most one item.
// Output order is all bank-derived items (bank input order) followed by all
// unmatched book entries (book input order).
func ReconcileRecords(bank []domain.BankTransaction, book []domain.BookEntry) []domain.ReconciliationItem {
	// Ordered queues of book positions per description. Popping the head
	// preserves the original linear scan's earliest-first tie-break.
	byKey := make(map[string][]int, len(book))
	for i := range book {
		byKey[book[i].Description] = append(byKey[book[i].Description], i)
	}
	consumed := make([]bool, len(book))

	items := make([]domain.ReconciliationItem, 0, len(bank)+len(book))
	seq := 0

	for i := range bank {
		tx := &bank[i]
		item := domain.ReconciliationItem{
			ID:              itemID("BANK", tx.InvoiceNumber, seq),
			BankTransaction: tx,
		}
		seq++

		if queue := byKey[tx.InvoiceNumber]; len(queue) > 0 {
			pos := queue[0]
			byKey[tx.InvoiceNumber] = queue[1:]
			consumed[pos] = true

			entry := &book[pos]
			item.BookEntry = entry
			item.Difference = amount.Round2(math.Abs(tx.TotalAmount - entry.Amount))
			if item.Difference < matchTolerance {
				item.Status = domain.StatusMatched
			} else {
				item.Status = domain.StatusDiscrepancyAmount
			}
		} else {
			// The whole bank amount is unexplained on the book side.
			item.Status = domain.StatusMissingInBook
			item.Difference = tx.TotalAmount
		}

		items = append(items, item)
	}

	for i := range book {
		if consumed[i] {
			continue
		}
		items = append(items, domain.ReconciliationItem{
			ID:         itemID("BOOK", book[i].DocumentNo, seq),
			BookEntry:  &book[i],
			Status:     domain.StatusMissingInBank,
			Difference: book[i].Amount,
		})
		seq++
	}

	return items
}

// itemID derives a stable identifier from the source side, the matching key,
// and the item's position in the pass. Deterministic so that enrichment
// round-trips and repeated passes line up.
func itemID(source, key string, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", source, key, seq)
}

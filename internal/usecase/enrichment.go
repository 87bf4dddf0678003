package usecase

import "ledger-reconciler/internal/domain"

// DefaultEnrichmentCap bounds how many items are sent to the enrichment
// collaborator in one call.
const DefaultEnrichmentCap = 20

// SelectForEnrichment reduces the discrepant and missing items to the fields
// the enrichment collaborator needs, in item order, capped at max (zero or
// negative selects the default).
func SelectForEnrichment(items []domain.ReconciliationItem, max int) []domain.EnrichmentItem {
	if max <= 0 {
		max = DefaultEnrichmentCap
	}

	var selected []domain.EnrichmentItem
	for _, item := range items {
		switch item.Status {
		case domain.StatusDiscrepancyAmount, domain.StatusMissingInBook, domain.StatusMissingInBank:
		default:
			continue
		}

		e := domain.EnrichmentItem{
			ID:         item.ID,
			Status:     item.Status,
			Difference: item.Difference,
		}
		if tx := item.BankTransaction; tx != nil {
			e.BankInvoice = tx.InvoiceNumber
			e.BankAmount = tx.TotalAmount
			e.BankMerchant = tx.MerchantID
		}
		if entry := item.BookEntry; entry != nil {
			e.BookDescription = entry.Description
			e.BookAmount = entry.Amount
		}

		selected = append(selected, e)
		if len(selected) == max {
			break
		}
	}
	return selected
}

// ApplyAnnotations merges collaborator annotations into the item sequence by
// identifier, promoting annotated items to POTENTIAL_ERROR. It returns a new
// slice and never mutates its input; reapplying the same annotations yields
// the same result. Identifiers with no matching item are ignored.
func ApplyAnnotations(items []domain.ReconciliationItem, annotations map[string]domain.Annotation) []domain.ReconciliationItem {
	if len(annotations) == 0 {
		return items
	}

	merged := make([]domain.ReconciliationItem, len(items))
	copy(merged, items)
	for i := range merged {
		ann, ok := annotations[merged[i].ID]
		if !ok {
			continue
		}
		merged[i].AIAnalysis = ann.Analysis
		merged[i].SuggestedFix = ann.SuggestedFix
		merged[i].Confidence = ann.Confidence
		merged[i].Status = domain.StatusPotentialError
	}
	return merged
}

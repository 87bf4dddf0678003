package domain

import "time"

// MatchStatus classifies one reconciliation item.
type MatchStatus string

const (
	StatusMatched           MatchStatus = "MATCHED"
	StatusDiscrepancyAmount MatchStatus = "DISCREPANCY_AMOUNT"
	StatusMissingInBook     MatchStatus = "MISSING_IN_BOOK"
	StatusMissingInBank     MatchStatus = "MISSING_IN_BANK"
	// StatusPotentialError is only ever assigned by the enrichment merge,
	// never by the matching engine itself.
	StatusPotentialError MatchStatus = "POTENTIAL_ERROR"
)

// ReconciliationItem is the unit of engine output: one bank transaction, one
// book entry, or a matched pair, with its classification and the absolute
// amount difference. Exactly one of BankTransaction/BookEntry is nil only for
// the MISSING_IN_* statuses.
//
// After creation only the enrichment fields and the status (to
// POTENTIAL_ERROR) ever change, and only through the annotation merge.
type ReconciliationItem struct {
	ID              string           `json:"id"`
	BankTransaction *BankTransaction `json:"bankTransaction,omitempty"`
	BookEntry       *BookEntry       `json:"bookEntry,omitempty"`
	Status          MatchStatus      `json:"status"`
	Difference      float64          `json:"difference"`
	AIAnalysis      string           `json:"aiAnalysis,omitempty"`
	SuggestedFix    string           `json:"suggestedFix,omitempty"`
	Confidence      float64          `json:"confidence,omitempty"`
}

// Annotation is the enrichment collaborator's verdict on one item.
type Annotation struct {
	Analysis     string  `json:"analysis"`
	SuggestedFix string  `json:"suggestedFix"`
	Confidence   float64 `json:"confidence"`
}

// EnrichmentItem is the reduced view of one discrepant item sent to the
// enrichment collaborator.
type EnrichmentItem struct {
	ID              string      `json:"id"`
	Status          MatchStatus `json:"status"`
	BankInvoice     string      `json:"bank_invoice,omitempty"`
	BankAmount      float64     `json:"bank_amount,omitempty"`
	BankMerchant    string      `json:"bank_merchant,omitempty"`
	BookDescription string      `json:"book_description,omitempty"`
	BookAmount      float64     `json:"book_amount,omitempty"`
	Difference      float64     `json:"diff"`
}

// DashboardStats provides dashboard-level totals and rates for one reconciled
// item sequence.
type DashboardStats struct {
	TotalBank          float64 `json:"total_bank"`
	TotalBook          float64 `json:"total_book"`
	MatchedCount       int     `json:"matched_count"`
	DiscrepancyCount   int     `json:"discrepancy_count"`
	MissingInBookCount int     `json:"missing_in_book_count"`
	MatchRate          float64 `json:"match_rate"` // percent, 0 for an empty sequence
}

// ReconciliationReport is the top-level structure for the final JSON output.
type ReconciliationReport struct {
	RunID       string               `json:"run_id"`
	StartedAt   time.Time            `json:"started_at"`
	CompletedAt time.Time            `json:"completed_at"`
	Stats       DashboardStats       `json:"stats"`
	Items       []ReconciliationItem `json:"items"`
}

package domain

import "ledger-reconciler/internal/tabular"

// BankTransaction represents one line of a bank statement export.
// The amount fields are normalized at construction time; Raw keeps the
// original parsed row for traceability. Values are never mutated after
// construction.
type BankTransaction struct {
	AccountNo       string      `json:"account_no"`
	TransactionDate string      `json:"transaction_date"`
	Time            string      `json:"time"`
	InvoiceNumber   string      `json:"invoice_number"` // matching key
	Product         string      `json:"product"`
	AmountBeforeVAT float64     `json:"amount_before_vat"`
	VAT             float64     `json:"vat"`
	TotalAmount     float64     `json:"total_amount"`
	MerchantID      string      `json:"merchant_id"`
	FuelBrand       string      `json:"fuel_brand"`
	Raw             tabular.Row `json:"original_row"`
}

// BookEntry represents one general-ledger line. Description is the matching
// key, conceptually equivalent to the bank's invoice number.
type BookEntry struct {
	DocumentNo  string      `json:"document_no"` // unique within the book feed
	PostingDate string      `json:"posting_date"`
	Description string      `json:"description"` // matching key
	Amount      float64     `json:"amount"`
	Raw         tabular.Row `json:"original_row"`
}

package gateway

import (
	"context"
	"fmt"
	"os"

	"ledger-reconciler/internal/amount"
	"ledger-reconciler/internal/domain"
	"ledger-reconciler/internal/tabular"
)

// CSVFeedRepository implements the usecase.FeedRepository interface for CSV
// files on disk. Parsing is lenient (see the tabular package): short rows
// yield zero/empty fields rather than errors.
type CSVFeedRepository struct{}

// NewCSVFeedRepository creates a new repository instance.
func NewCSVFeedRepository() *CSVFeedRepository {
	return &CSVFeedRepository{}
}

// GetBankTransactions reads and types the bank statement CSV file.
func (r *CSVFeedRepository) GetBankTransactions(ctx context.Context, path string) ([]domain.BankTransaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank statement file %s: %w", path, err)
	}

	var transactions []domain.BankTransaction
	for _, row := range tabular.Parse(string(data)) {
		transactions = append(transactions, typeBankRow(row))
	}
	return transactions, nil
}

// GetBookEntries reads and types the general-ledger CSV file.
func (r *CSVFeedRepository) GetBookEntries(ctx context.Context, path string) ([]domain.BookEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book feed file %s: %w", path, err)
	}

	var entries []domain.BookEntry
	for _, row := range tabular.Parse(string(data)) {
		entries = append(entries, typeBookRow(row))
	}
	return entries, nil
}

// typeBankRow builds an immutable BankTransaction from one parsed row,
// normalizing the amount-bearing fields and retaining the raw row.
func typeBankRow(row tabular.Row) domain.BankTransaction {
	return domain.BankTransaction{
		AccountNo:       row["account_no"],
		TransactionDate: row["transaction_date"],
		Time:            row["time"],
		InvoiceNumber:   row["invoice_number"],
		Product:         row["product"],
		AmountBeforeVAT: amount.Normalize(row["amount_before_vat"]),
		VAT:             amount.Normalize(row["vat"]),
		TotalAmount:     amount.Normalize(row["total_amount"]),
		MerchantID:      row["merchant_id"],
		FuelBrand:       row["fuel_brand"],
		Raw:             row,
	}
}

func typeBookRow(row tabular.Row) domain.BookEntry {
	return domain.BookEntry{
		DocumentNo:  row["document_no"],
		PostingDate: row["posting_date"],
		Description: row["description"],
		Amount:      amount.Normalize(row["amount"]),
		Raw:         row,
	}
}

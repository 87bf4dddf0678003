package gateway

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ledger-reconciler/internal/domain"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp CSV file: %v", err)
	}
	return path
}

func TestCSVFeedRepository_GetBankTransactions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  string
		expected []domain.BankTransaction
	}{
		{
			name: "valid bank transactions",
			csvData: "account_no,transaction_date,time,invoice_number,product,amount_before_vat,vat,total_amount,merchant_id,fuel_brand\n" +
				"123-4,2025-09-01,08:15,INV001,Diesel,934.58,65.42,\"1,000.00\",M001,Alpha\n" +
				"123-4,2025-09-02,12:30,INV002,Gasohol,467.29,32.71,500.00,M002,Beta\n",
			expected: []domain.BankTransaction{
				{
					AccountNo:       "123-4",
					TransactionDate: "2025-09-01",
					Time:            "08:15",
					InvoiceNumber:   "INV001",
					Product:         "Diesel",
					AmountBeforeVAT: 934.58,
					VAT:             65.42,
					TotalAmount:     1000.00,
					MerchantID:      "M001",
					FuelBrand:       "Alpha",
				},
				{
					AccountNo:       "123-4",
					TransactionDate: "2025-09-02",
					Time:            "12:30",
					InvoiceNumber:   "INV002",
					Product:         "Gasohol",
					AmountBeforeVAT: 467.29,
					VAT:             32.71,
					TotalAmount:     500.00,
					MerchantID:      "M002",
					FuelBrand:       "Beta",
				},
			},
		},
		{
			name:     "header only",
			csvData:  "account_no,transaction_date,time,invoice_number,product,amount_before_vat,vat,total_amount,merchant_id,fuel_brand\n",
			expected: nil,
		},
		{
			name:    "short row yields zero amounts and empty strings",
			csvData: "invoice_number,total_amount,amount_before_vat,vat\nINV003\n",
			expected: []domain.BankTransaction{
				{InvoiceNumber: "INV003"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.csvData)

			repo := NewCSVFeedRepository()
			got, err := repo.GetBankTransactions(context.Background(), path)

			assert.NoError(t, err)
			assert.Len(t, got, len(tt.expected))
			for i, want := range tt.expected {
				// Raw holds whatever the parser produced; compare the
				// typed fields only.
				got[i].Raw = nil
				assert.Equal(t, want, got[i])
			}
		})
	}
}

func TestCSVFeedRepository_GetBankTransactionsRetainsRawRow(t *testing.T) {
	path := writeTempCSV(t, "invoice_number,total_amount,note\nINV001,100.00,paid\n")

	repo := NewCSVFeedRepository()
	got, err := repo.GetBankTransactions(context.Background(), path)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "paid", got[0].Raw["note"])
	assert.Equal(t, "100.00", got[0].Raw["total_amount"])
}

func TestCSVFeedRepository_GetBankTransactionsGarbageAmount(t *testing.T) {
	path := writeTempCSV(t, "invoice_number,total_amount\nINV001,not-a-number\n")

	repo := NewCSVFeedRepository()
	got, err := repo.GetBankTransactions(context.Background(), path)

	// A corrupt amount is not a read error; the NaN travels with the record.
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, math.IsNaN(got[0].TotalAmount))
}

func TestCSVFeedRepository_GetBookEntries(t *testing.T) {
	tests := []struct {
		name     string
		csvData  string
		expected []domain.BookEntry
	}{
		{
			name: "valid book entries",
			csvData: "document_no,posting_date,description,amount\n" +
				"D001,2025-09-01,INV001,\"1,000.00\"\n" +
				"D002,2025-09-02,INV002,495.00\n",
			expected: []domain.BookEntry{
				{DocumentNo: "D001", PostingDate: "2025-09-01", Description: "INV001", Amount: 1000.00},
				{DocumentNo: "D002", PostingDate: "2025-09-02", Description: "INV002", Amount: 495.00},
			},
		},
		{
			name:     "empty file",
			csvData:  "",
			expected: nil,
		},
		{
			name: "blank lines skipped",
			csvData: "document_no,posting_date,description,amount\n" +
				"D001,2025-09-01,INV001,100.00\n\n   \n" +
				"D002,2025-09-02,INV002,200.00\n",
			expected: []domain.BookEntry{
				{DocumentNo: "D001", PostingDate: "2025-09-01", Description: "INV001", Amount: 100.00},
				{DocumentNo: "D002", PostingDate: "2025-09-02", Description: "INV002", Amount: 200.00},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.csvData)

			repo := NewCSVFeedRepository()
			got, err := repo.GetBookEntries(context.Background(), path)

			assert.NoError(t, err)
			assert.Len(t, got, len(tt.expected))
			for i, want := range tt.expected {
				got[i].Raw = nil
				assert.Equal(t, want, got[i])
			}
		})
	}
}

func TestCSVFeedRepository_MissingFile(t *testing.T) {
	repo := NewCSVFeedRepository()

	_, err := repo.GetBankTransactions(context.Background(), "/no/such/file.csv")
	assert.Error(t, err)

	_, err = repo.GetBookEntries(context.Background(), "/no/such/file.csv")
	assert.Error(t, err)
}

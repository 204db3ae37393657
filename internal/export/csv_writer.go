package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"transaction-seeder/internal/models"
)

// DefaultFileName is the output file written when no path is configured
const DefaultFileName = "transactions.csv"

var (
	ErrWriteFailed = errors.New("failed to write transactions")
)

// Header is the literal column row written before the records
func Header() []string {
	return []string{"date", "transaction details", "amount", "bank account", "category"}
}

// Options controls CSV formatting
type Options struct {
	// UseCRLF terminates lines with \r\n instead of \n
	UseCRLF bool
}

// CSVWriter serializes transactions as CSV
type CSVWriter struct {
	options Options
}

// NewCSVWriter creates a CSV writer with the given options
func NewCSVWriter(options Options) *CSVWriter {
	return &CSVWriter{options: options}
}

// Write emits the header followed by one row per transaction, in slice order
func (w *CSVWriter) Write(out io.Writer, transactions []*models.Transaction) error {
	writer := csv.NewWriter(out)
	writer.UseCRLF = w.options.UseCRLF

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("%w: header: %v", ErrWriteFailed, err)
	}
	for _, t := range transactions {
		if err := writer.Write(t.CSVRecord()); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// WriteFile creates or truncates path and writes the transactions to it.
// The file is closed on every path; a close failure is reported alongside
// any write failure.
func (w *CSVWriter) WriteFile(path string, transactions []*models.Transaction) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, closeErr))
		}
	}()

	if err := w.Write(file, transactions); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"filinglens/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by every export format.
var columns = []string{
	"Document URL",
	"Summary",
	"Insights",
	"Insight Count",
	"Cached At",
	"Cache Key",
}

// insightSeparator joins insights within a single cell.
const insightSeparator = " | "

// CSVWriter wraps csv.Writer for exporting cache entries as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEntries converts a batch of entries to CSV rows and writes them.
func (w *CSVWriter) WriteEntries(entries []domain.CachedEntry) error {
	for i := range entries {
		if err := w.csv.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.CachedEntry) []string {
	return []string{
		e.DocumentURL,
		e.Summary,
		strings.Join(e.Insights, insightSeparator),
		strconv.Itoa(len(e.Insights)),
		e.Timestamp.UTC().Format(time.RFC3339),
		e.Key,
	}
}

// Package export renders cached analyses as CSV or XLSX downloads.
package export

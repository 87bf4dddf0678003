// Package tabular parses delimited text into header-keyed rows.
//
// The parser is deliberately lenient rather than RFC 4180 compliant: a bare
// quote character toggles literal mode (no escaped-quote support), rows with
// fewer fields than the header yield partial rows, rows with more fields are
// truncated to the header width, and blank lines are skipped.
package tabular

import "strings"

// Row maps a header name to the string value of one data line.
type Row map[string]string

const (
	separator = ','
	quote     = '"'
)

// Headers returns the trimmed header names of the first line of text.
func Headers(text string) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil
	}
	parts := strings.Split(lines[0], string(separator))
	headers := make([]string, len(parts))
	for i, p := range parts {
		headers[i] = strings.TrimSpace(p)
	}
	return headers
}

// Parse turns delimited text with a header line into one Row per non-blank
// data line, in input order. Input with fewer than two lines yields nil.
func Parse(text string) []Row {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := Headers(text)

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, parseLine(line, headers))
	}
	return rows
}

// parseLine scans one data line rune by rune. The separator is literal while
// inside quotes. Only fields at a recognized header index are stored; trailing
// extra segments are dropped.
func parseLine(line string, headers []string) Row {
	row := make(Row)
	inQuotes := false
	var field strings.Builder
	fieldIndex := 0

	for _, ch := range line {
		switch {
		case ch == quote:
			inQuotes = !inQuotes
		case ch == separator && !inQuotes:
			if fieldIndex < len(headers) {
				row[headers[fieldIndex]] = strings.TrimSpace(field.String())
			}
			field.Reset()
			fieldIndex++
		default:
			field.WriteRune(ch)
		}
	}
	// last field
	if fieldIndex < len(headers) {
		row[headers[fieldIndex]] = strings.TrimSpace(field.String())
	}

	return row
}

package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
)

const ContractVersion = "1.0"

var Formats = []string{"json", "jsonl", "table", "csv"}

type Envelope struct {
	ContractVersion string     `json:"contract_version"`
	Command         string     `json:"command"`
	Timestamp       string     `json:"timestamp"`
	RequestID       string     `json:"request_id"`
	Success         bool       `json:"success"`
	Data            any        `json:"data,omitempty"`
	Error           *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Type        string       `json:"type"`
	Message     string       `json:"message"`
	Retryable   bool         `json:"retryable"`
	Remediation *Remediation `json:"remediation,omitempty"`
}

type Remediation struct {
	Category string   `json:"category"`
	Summary  string   `json:"summary"`
	Actions  []string `json:"actions,omitempty"`
}

// Tabular is implemented by command payloads that know how to flatten
// themselves for table and csv output.
type Tabular interface {
	Rows() []map[string]any
}

// Itemized payloads are split into one jsonl line per item.
type Itemized interface {
	Items() []any
}

func NewEnvelope(command string, success bool, data any, errorInfo *ErrorInfo) Envelope {
	return Envelope{
		ContractVersion: ContractVersion,
		Command:         command,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		RequestID:       uuid.NewString(),
		Success:         success,
		Data:            data,
		Error:           errorInfo,
	}
}

func IsSupportedFormat(format string) bool {
	normalized := strings.ToLower(strings.TrimSpace(format))
	for _, candidate := range Formats {
		if candidate == normalized {
			return true
		}
	}
	return false
}

func Write(w io.Writer, format string, envelope Envelope) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return writeJSON(w, envelope)
	case "jsonl":
		return writeJSONL(w, envelope)
	case "table":
		return writeTable(w, envelope)
	case "csv":
		return writeCSV(w, envelope)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeJSON(w io.Writer, envelope Envelope) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(envelope)
}

func writeJSONL(w io.Writer, envelope Envelope) error {
	var items []any
	switch data := envelope.Data.(type) {
	case Itemized:
		items = data.Items()
	case []map[string]any:
		for _, item := range data {
			items = append(items, item)
		}
	case []any:
		items = data
	default:
		return writeJSONLine(w, envelope)
	}

	for _, item := range items {
		line := envelope
		line.Data = item
		if err := writeJSONLine(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONLine(w io.Writer, envelope Envelope) error {
	encoded, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

func writeTable(w io.Writer, envelope Envelope) error {
	rows, headers, err := normalizeRows(envelope)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		values := make([]string, 0, len(headers))
		for _, header := range headers {
			values = append(values, formatCell(row[header]))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(values, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, envelope Envelope) error {
	rows, headers, err := normalizeRows(envelope)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, 0, len(headers))
		for _, header := range headers {
			record = append(record, formatCell(row[header]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func normalizeRows(envelope Envelope) ([]map[string]any, []string, error) {
	if envelope.Error != nil {
		row := map[string]any{
			"type":    envelope.Error.Type,
			"message": envelope.Error.Message,
		}
		return []map[string]any{row}, orderedHeaders([]map[string]any{row}), nil
	}

	switch typed := envelope.Data.(type) {
	case Tabular:
		rows := typed.Rows()
		return rows, orderedHeaders(rows), nil
	case []map[string]any:
		return typed, orderedHeaders(typed), nil
	case map[string]any:
		return []map[string]any{typed}, orderedHeaders([]map[string]any{typed}), nil
	default:
		return nil, nil, errors.New("table/csv output requires map or []map data")
	}
}

func orderedHeaders(rows []map[string]any) []string {
	set := map[string]struct{}{}
	for _, row := range rows {
		for key := range row {
			set[key] = struct{}{}
		}
	}
	headers := make([]string, 0, len(set))
	for key := range set {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	return headers
}

func formatCell(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(typed, "; ")
	case float64:
		return fmt.Sprintf("%.1f", typed)
	default:
		return fmt.Sprint(typed)
	}
}

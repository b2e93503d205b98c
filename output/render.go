package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/wordnik/wordnik"
)

// Format selects how a result is printed
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// noResults is printed for absent or empty results in table mode
const noResults = "No results found"

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (must be table, json or yaml)", s)
	}
}

// Render writes v to w in the given format.
func Render(w io.Writer, v wordnik.JSON, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, v)
	case FormatYAML:
		return renderYAML(w, v)
	case FormatTable, "":
		return renderTable(w, v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderJSON(w io.Writer, v wordnik.JSON) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result as JSON: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v wordnik.JSON) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result as YAML: %w", err)
	}
	return encoder.Close()
}

func renderTable(w io.Writer, v wordnik.JSON) error {
	switch val := v.(type) {
	case nil:
		_, err := fmt.Fprintln(w, noResults)
		return err
	case []any:
		if len(val) == 0 {
			_, err := fmt.Fprintln(w, noResults)
			return err
		}
		return renderRows(w, val)
	case map[string]any:
		return renderProperties(w, val)
	default:
		_, err := fmt.Fprintln(w, formatCell(val))
		return err
	}
}

// Table prints rows under header. An empty table prints the no results
// message instead.
func Table(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, noResults)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to append rows: %w", err)
	}
	return table.Render()
}

// renderRows prints an array as one row per element. Object elements get a
// column per key that holds a scalar in at least one element.
func renderRows(w io.Writer, rows []any) error {
	columns := scalarColumns(rows)

	table := tablewriter.NewWriter(w)
	if len(columns) == 0 {
		table.Header("Value")
		for _, row := range rows {
			if err := table.Append([]string{formatCell(row)}); err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}
		return table.Render()
	}

	table.Header(toAny(columns)...)
	for _, row := range rows {
		obj, _ := row.(map[string]any)
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = formatCell(obj[col])
		}
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	return table.Render()
}

// renderProperties prints an object as a two-column property table
func renderProperties(w io.Writer, obj map[string]any) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if err := table.Append([]string{k, formatCell(obj[k])}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	return table.Render()
}

func scalarColumns(rows []any) []string {
	seen := map[string]bool{}
	var columns []string
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		for k, v := range obj {
			if seen[k] || !isScalar(v) {
				continue
			}
			seen[k] = true
			columns = append(columns, k)
		}
	}
	slices.Sort(columns)
	return columns
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, bool, int, int64:
		return true
	default:
		return false
	}
}

// formatCell renders a value for a table cell; nested values are compact JSON
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

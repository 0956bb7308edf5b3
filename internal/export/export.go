// Package export writes check results as CSV or XLSX tables.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"domainscout/internal/domain"
)

type Format string

const (
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
)

const sheetName = "Results"

var Columns = []string{"domain", "name", "tld", "length", "status", "price", "price_usd", "premium", "error"}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatNDJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to
// NDJSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatNDJSON
	}
}

// Table collects streamed outcomes for a tabular export. It is a sink for
// one job and is read only after the job has finished.
type Table struct {
	rows   []domain.Outcome
	filter func(domain.Outcome) bool
	done   bool
}

func NewTable(availableOnly bool) *Table {
	t := &Table{}
	if availableOnly {
		t.filter = func(o domain.Outcome) bool { return o.Status() == domain.StatusAvailable }
	}
	return t
}

func (t *Table) Emit(ctx context.Context, o domain.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.filter == nil || t.filter(o) {
		t.rows = append(t.rows, o)
	}
	return nil
}

func (t *Table) Done() error {
	t.done = true
	return nil
}

func (t *Table) Finished() bool { return t.done }

func (t *Table) Rows() []domain.Outcome { return t.rows }

// Row renders one outcome in Columns order.
func Row(o domain.Outcome) []string {
	name, suffix, _ := strings.Cut(o.Domain, ".")
	if suffix != "" {
		suffix = "." + suffix
	}

	row := []string{o.Domain, name, suffix, strconv.Itoa(len(name)), string(o.Status()), "", "", "", o.Error}
	if o.Price != nil {
		row[5] = *o.Price
	}
	if o.PriceUSD != nil {
		row[6] = strconv.FormatFloat(*o.PriceUSD, 'f', 2, 64)
	}
	if o.Premium != nil {
		row[7] = strconv.FormatBool(*o.Premium)
	}
	return row
}

func WriteCSV(w io.Writer, rows []domain.Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, o := range rows {
		if err := cw.Write(Row(o)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteXLSX(w io.Writer, rows []domain.Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, o := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := xlsxRow(o)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return err
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// xlsxRow keeps numbers and booleans typed so spreadsheets can sort them.
func xlsxRow(o domain.Outcome) []any {
	row := Row(o)
	values := make([]any, len(row))
	for i, v := range row {
		values[i] = v
	}
	values[3] = len(strings.SplitN(o.Domain, ".", 2)[0])
	if o.PriceUSD != nil {
		values[6] = *o.PriceUSD
	}
	if o.Premium != nil {
		values[7] = *o.Premium
	}
	return values
}

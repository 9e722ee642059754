package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName      = "Report"
	columnWidth    = 15
	headerFill     = "E6F3FF"
	cellTimeLayout = "2006-01-02 15:04"
)

// File is a fully rendered export, ready to be sent as an attachment.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Exporter struct {
	clock Clock
}

func NewExporter(clock Clock) *Exporter {
	return &Exporter{clock: clock}
}

// Export renders records into a single-sheet workbook with one column per field.
// The workbook is built entirely in memory so a failure never yields a partial file.
func (e *Exporter) Export(records []*Record, fields []string, title string) (*File, error) {
	if fields == nil {
		return nil, InvalidField("fields", "required")
	}
	if len(fields) == 0 {
		return nil, InvalidField("fields", "must name at least one field")
	}
	if records == nil {
		return nil, InvalidField("data", "required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, ExportError("rename sheet", err)
	}

	headerRow := make([]interface{}, len(fields))
	for i, field := range fields {
		headerRow[i] = Header(field)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, ExportError("write header", err)
	}

	for i, r := range records {
		row := make([]interface{}, len(fields))
		for j, field := range fields {
			row[j] = e.CellValue(r, field)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, ExportError("address row", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, ExportError("write row", err)
		}
	}

	if err := e.styleSheet(f, len(fields)); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, ExportError("encode workbook", err)
	}

	return &File{
		Filename:    e.Filename(title),
		ContentType: ContentTypeXLSX,
		Data:        buf.Bytes(),
	}, nil
}

func (e *Exporter) styleSheet(f *excelize.File, columns int) error {
	lastCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return ExportError("address column", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return ExportError("create header style", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", style); err != nil {
		return ExportError("style header", err)
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, columnWidth); err != nil {
		return ExportError("size columns", err)
	}
	return nil
}

// CellValue is the rendered cell for a record field. Missing values are "".
func (e *Exporter) CellValue(r *Record, field string) interface{} {
	value := Lookup(r, field)
	if value == nil {
		return ""
	}

	isDate := strings.Contains(field, "Date") || strings.Contains(Header(field), "Date")

	switch v := value.(type) {
	case Timestamp:
		if isDate {
			return v.In(e.clock.Location()).Format(cellTimeLayout)
		}
		return v.In(e.clock.Location()).Format(time.RFC3339)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return v
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// Filename is "<title>_<YYYY-MM-DD>.xlsx", falling back to "report" for an empty title.
func (e *Exporter) Filename(title string) string {
	name := sanitizeTitle(title)
	if name == "" {
		name = "report"
	}
	return fmt.Sprintf("%s_%s.xlsx", name, e.clock.Now().In(e.clock.Location()).Format(dayLayout))
}

func sanitizeTitle(title string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case strings.ContainsRune(`"\/:*?<>|;`, r):
			return '_'
		}
		return r
	}, title))
}

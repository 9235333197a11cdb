package export

import (
	"bytes"
	"fmt"

	"therapist-management-saas/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	timelineSheet = "Timeline"
	entitySheet   = "Entities"
	// columns before the first slot: therapist, shift
	leadingCols = 2
)

// XLSXTimelineExporter renders a day timeline as a workbook: one grid sheet
// with a row per therapist and a column per slot, and one flat entity list.
type XLSXTimelineExporter struct{}

func NewXLSXTimelineExporter() *XLSXTimelineExporter {
	return &XLSXTimelineExporter{}
}

type sheetStyles struct {
	header      int
	shift       int
	reservation int
	conflict    int
}

func (e *XLSXTimelineExporter) Export(view *queries.DayTimelineView) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// the default sheet becomes the grid
	if err := f.SetSheetName("Sheet1", timelineSheet); err != nil {
		return nil, err
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeGrid(f, view, styles); err != nil {
		return nil, fmt.Errorf("write timeline sheet: %w", err)
	}
	if err := writeEntities(f, view, styles); err != nil {
		return nil, fmt.Errorf("write entity sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.shift, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0F2FE"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	if s.reservation, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#86EFAC"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	if s.conflict, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FCA5A5"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	return s, nil
}

func writeGrid(f *excelize.File, view *queries.DayTimelineView, styles sheetStyles) error {
	header := []any{"Therapist", "Shift"}
	for _, slot := range view.Slots {
		header = append(header, slot.Label)
	}
	if err := setRow(f, timelineSheet, 1, header); err != nil {
		return err
	}
	if err := styleRange(f, timelineSheet, 1, 1, len(header), 1, styles.header); err != nil {
		return err
	}

	for i, t := range view.Therapists {
		row := i + 2
		if err := setRow(f, timelineSheet, row, []any{t.Name, shiftLabel(t)}); err != nil {
			return err
		}

		for slot, inShift := range t.Mask {
			if !inShift {
				continue
			}
			col := leadingCols + slot + 1
			if err := styleRange(f, timelineSheet, col, row, col, row, styles.shift); err != nil {
				return err
			}
		}

		for _, ent := range t.Entities {
			if ent.Kind != "reservation" || ent.SlotSpan == 0 {
				continue
			}
			first := leadingCols + ent.StartSlot + 1
			last := first + ent.SlotSpan - 1
			cell, err := excelize.CoordinatesToCellName(first, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(timelineSheet, cell, ent.Label); err != nil {
				return err
			}
			style := styles.reservation
			if ent.Overlapping || ent.OutsideShift {
				style = styles.conflict
			}
			if err := styleRange(f, timelineSheet, first, row, last, row, style); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(timelineSheet, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(timelineSheet, "B", "B", 14); err != nil {
		return err
	}
	if len(view.Slots) > 0 {
		firstSlot, _ := excelize.ColumnNumberToName(leadingCols + 1)
		lastSlot, _ := excelize.ColumnNumberToName(leadingCols + len(view.Slots))
		if err := f.SetColWidth(timelineSheet, firstSlot, lastSlot, 6); err != nil {
			return err
		}
	}
	return f.SetPanes(timelineSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      leadingCols,
		YSplit:      1,
		TopLeftCell: "C2",
		ActivePane:  "bottomRight",
	})
}

func writeEntities(f *excelize.File, view *queries.DayTimelineView, styles sheetStyles) error {
	if _, err := f.NewSheet(entitySheet); err != nil {
		return err
	}

	header := []any{"Therapist", "Kind", "Label", "Start", "End", "Customer", "Designation", "Status", "Overlap", "Outside shift"}
	if err := setRow(f, entitySheet, 1, header); err != nil {
		return err
	}
	if err := styleRange(f, entitySheet, 1, 1, len(header), 1, styles.header); err != nil {
		return err
	}

	row := 2
	for _, t := range view.Therapists {
		for _, ent := range t.Entities {
			values := []any{
				t.Name,
				ent.Kind,
				ent.Label,
				ent.StartTime,
				ent.EndTime,
				ent.Metadata["customer"],
				ent.Metadata["designation"],
				ent.Metadata["status"],
				yesNo(ent.Overlapping),
				yesNo(ent.OutsideShift),
			}
			if err := setRow(f, entitySheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetColWidth(entitySheet, "A", "J", 14)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleRange(f *excelize.File, sheet string, fromCol, fromRow, toCol, toRow, style int) error {
	start, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, style)
}

func shiftLabel(t queries.TherapistTimelineView) string {
	switch {
	case t.ShiftStart != nil && t.ShiftEnd != nil:
		return *t.ShiftStart + "-" + *t.ShiftEnd
	case t.HasShift:
		return "open"
	default:
		return "-"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"itemsBack/internal/models"
	"itemsBack/internal/repositories"
)

const (
	templateSheet = "Items Template"
	dataSheet     = "Items Data"

	// bannerMarker identifies a non-data first row meant for humans. Its
	// presence shifts the first data row from 2 to 4.
	bannerMarker = "INSTRUCTIONS"

	bannerTemplateColor = "FF6B35"
	bannerDataColor     = "4CAF50"
	headerColor         = "366092"

	maxColumnWidth = 50
)

// importStore is the slice of the item store the row reconciler needs. The
// repository's transaction-scoped store satisfies it; tests substitute a
// map-backed fake.
type importStore interface {
	ItemByID(ctx context.Context, id int) (models.Item, error)
	ItemByName(ctx context.Context, name string) (models.Item, error)
	InsertItem(ctx context.Context, item models.Item) (models.Item, error)
	InsertItemWithID(ctx context.Context, item models.Item) error
	UpdateItem(ctx context.Context, item models.Item) error
	UpdateItemDescription(ctx context.Context, id int, description string) error
}

type ExcelService struct {
	ItemRepo *repositories.ItemRepository
	InfoLog  *log.Logger
	ErrorLog *log.Logger
}

// BuildTemplate produces the empty bulk-editing workbook: instructions
// banner, header row and a few sample rows showing the id conventions.
func (s *ExcelService) BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", templateSheet)

	widths := newColumnWidths()

	banner := []string{
		bannerMarker + ":",
		"Leave ID empty for new items",
		"Use existing ID to edit that item",
		"Invalid IDs fall back to name matching",
	}
	if err := writeBanner(f, templateSheet, banner, bannerTemplateColor, widths); err != nil {
		return nil, err
	}
	if err := writeHeader(f, templateSheet, widths); err != nil {
		return nil, err
	}

	samples := [][]string{
		{"", "New Item", "This will create a new item"},
		{"1", "Existing Item", "This will update item with ID=1"},
		{"", "Another New Item", "This will create another new item"},
	}
	for i, sample := range samples {
		for col, value := range sample {
			cell, err := excelize.CoordinatesToCellName(col+1, i+4)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(templateSheet, cell, value); err != nil {
				return nil, err
			}
			widths.observe(col+1, value)
		}
	}

	if err := widths.apply(f, templateSheet); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildDataWorkbook exports the given items in the same layout as the
// template so the file can be edited and uploaded back.
func (s *ExcelService) BuildDataWorkbook(items []models.Item) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", dataSheet)

	widths := newColumnWidths()

	banner := []string{
		"EDITING " + bannerMarker + ":",
		"Edit Name/Description to update existing items",
		"Leave ID empty for new items",
		"Upload back to apply changes",
	}
	if err := writeBanner(f, dataSheet, banner, bannerDataColor, widths); err != nil {
		return nil, err
	}
	if err := writeHeader(f, dataSheet, widths); err != nil {
		return nil, err
	}

	for i, item := range items {
		row := i + 4
		cells := []interface{}{item.ID, item.Name, item.Description}
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(dataSheet, cell, value); err != nil {
				return nil, err
			}
			widths.observe(col+1, fmt.Sprint(value))
		}
	}

	if err := widths.apply(f, dataSheet); err != nil {
		return nil, err
	}
	return f, nil
}

// ExportItems builds the data workbook for every item currently stored.
func (s *ExcelService) ExportItems(ctx context.Context) (*excelize.File, error) {
	items, err := s.ItemRepo.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	return s.BuildDataWorkbook(items)
}

// ImportFile reads an uploaded .xlsx from disk and applies every accepted
// row inside one database transaction.
func (s *ExcelService) ImportFile(ctx context.Context, path string) (models.ImportSummary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.ImportSummary{}, err
	}
	defer f.Close()

	rows, err := parseImportRows(f)
	if err != nil {
		return models.ImportSummary{}, err
	}

	var summary models.ImportSummary
	err = s.ItemRepo.RunImport(ctx, func(store *repositories.TxItemStore) error {
		var rerr error
		summary, rerr = s.reconcileRows(ctx, store, rows)
		return rerr
	})
	if err != nil {
		return models.ImportSummary{}, err
	}
	return summary, nil
}

// reconcileRows classifies and applies each row: skip on missing fields,
// match by numeric id with explicit-id creation for unknown ids, fall back
// to name matching when the id cell is absent or not a number.
func (s *ExcelService) reconcileRows(ctx context.Context, store importStore, rows []models.ImportRow) (models.ImportSummary, error) {
	var summary models.ImportSummary

	for _, row := range rows {
		if row.Name == "" || row.Description == "" {
			s.logf("Row %d: missing name or description, skipping", row.Line)
			summary.Skipped++
			continue
		}

		if row.RawID == "" {
			if err := s.applyByName(ctx, store, row, &summary); err != nil {
				return summary, err
			}
			continue
		}

		id, ok := parseRowID(row.RawID)
		if !ok {
			s.logf("Row %d: invalid ID %q, falling back to name matching", row.Line, row.RawID)
			if err := s.applyByName(ctx, store, row, &summary); err != nil {
				return summary, err
			}
			continue
		}

		existing, err := store.ItemByID(ctx, id)
		switch {
		case err == nil:
			update := models.Item{ID: existing.ID, Name: row.Name, Description: row.Description}
			if err := store.UpdateItem(ctx, update); err != nil {
				return summary, err
			}
			summary.Updated++
			s.logf("Updated item by ID %d: %s", id, row.Name)
		case errors.Is(err, models.ErrItemNotFound):
			insertErr := store.InsertItemWithID(ctx, models.Item{ID: id, Name: row.Name, Description: row.Description})
			if insertErr != nil {
				if !repositories.IsDuplicateKeyError(insertErr) {
					return summary, insertErr
				}
				s.logf("Could not assign ID %d, creating with auto-generated ID", id)
				if _, err := store.InsertItem(ctx, models.Item{Name: row.Name, Description: row.Description}); err != nil {
					return summary, err
				}
			} else {
				s.logf("Created new item with ID %d: %s", id, row.Name)
			}
			summary.Imported++
		default:
			return summary, err
		}
	}

	return summary, nil
}

// applyByName handles the no-id and non-numeric-id branches: an existing
// item with the same name gets only its description overwritten, otherwise
// a new item is created with a store-assigned id.
func (s *ExcelService) applyByName(ctx context.Context, store importStore, row models.ImportRow, summary *models.ImportSummary) error {
	existing, err := store.ItemByName(ctx, row.Name)
	switch {
	case err == nil:
		if err := store.UpdateItemDescription(ctx, existing.ID, row.Description); err != nil {
			return err
		}
		summary.Updated++
		s.logf("Updated existing item by name: %s", row.Name)
	case errors.Is(err, models.ErrItemNotFound):
		if _, err := store.InsertItem(ctx, models.Item{Name: row.Name, Description: row.Description}); err != nil {
			return err
		}
		summary.Imported++
		s.logf("Created new item: %s", row.Name)
	default:
		return err
	}
	return nil
}

// parseImportRows extracts trimmed 3-column rows from the active sheet.
// Data starts at row 4 when the first cell carries the instructions banner,
// at row 2 otherwise. Fully blank rows are dropped without counting.
func parseImportRows(f *excelize.File) ([]models.ImportRow, error) {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	start := 2
	if len(rows) > 0 && len(rows[0]) > 0 && strings.Contains(rows[0][0], bannerMarker) {
		start = 4
	}

	var result []models.ImportRow
	for i := start - 1; i < len(rows); i++ {
		// Blankness is decided on the raw cells: a whitespace-only cell
		// still makes the row present, and it then counts as skipped
		// once the trimmed fields turn out empty.
		if rowBlank(rows[i]) {
			continue
		}
		result = append(result, models.ImportRow{
			Line:        i + 1,
			RawID:       cellAt(rows[i], 0),
			Name:        cellAt(rows[i], 1),
			Description: cellAt(rows[i], 2),
		})
	}
	return result, nil
}

func rowBlank(row []string) bool {
	for idx := 0; idx < 3; idx++ {
		if idx < len(row) && row[idx] != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRowID reports whether the id cell holds a usable integer. A false
// result routes the row to name matching instead of failing it.
func parseRowID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

// ImportMessage renders the upload response in the original wording, only
// mentioning the counters that are non-zero.
func ImportMessage(summary models.ImportSummary) string {
	var parts []string
	if summary.Imported > 0 {
		parts = append(parts, fmt.Sprintf("%d new items created", summary.Imported))
	}
	if summary.Updated > 0 {
		parts = append(parts, fmt.Sprintf("%d existing items updated", summary.Updated))
	}
	if summary.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d rows skipped", summary.Skipped))
	}
	if len(parts) == 0 {
		parts = append(parts, "no changes")
	}
	return "Successfully processed Excel file: " + strings.Join(parts, ", ")
}

func (s *ExcelService) logf(format string, args ...interface{}) {
	if s.InfoLog != nil {
		s.InfoLog.Printf(format, args...)
	}
}

func writeBanner(f *excelize.File, sheet string, cells []string, color string, widths *columnWidths) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
		widths.observe(col+1, value)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cells), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeHeader(f *excelize.File, sheet string, widths *columnWidths) error {
	headers := []string{"ID", "Name", "Description"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		widths.observe(col+1, header)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A3", "C3", style)
}

// columnWidths tracks the longest content per column so exported sheets are
// readable without manual resizing. Width is content length + 2, capped.
type columnWidths struct {
	max map[int]int
}

func newColumnWidths() *columnWidths {
	return &columnWidths{max: make(map[int]int)}
}

func (w *columnWidths) observe(col int, value string) {
	if n := len(value); n > w.max[col] {
		w.max[col] = n
	}
}

func (w *columnWidths) apply(f *excelize.File, sheet string) error {
	for col, length := range w.max {
		width := float64(length + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

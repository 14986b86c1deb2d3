package expense

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/ratnesh1929/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var columns = []string{"date", "amount", "category", "description"}

// Document is a rendered export.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

// ExportedExpense is an expense as it appears in a JSON export.
// It never contains the owner.
type ExportedExpense struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        types.Date      `json:"date"`
	Description string          `json:"description"`
}

// JSONExport is the structured export of one month.
type JSONExport struct {
	Month         string            `json:"month"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	Expenses      []ExportedExpense `json:"expenses"`
}

// MarshalJSON writes the amount as a JSON number.
func (e ExportedExpense) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          uuid.UUID   `json:"id"`
		Amount      json.Number `json:"amount"`
		Category    string      `json:"category"`
		Date        types.Date  `json:"date"`
		Description string      `json:"description"`
	}{e.ID, json.Number(e.Amount.String()), e.Category, e.Date, e.Description})
}

// MarshalJSON writes the total as a JSON number.
func (e JSONExport) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month         string            `json:"month"`
		TotalExpenses json.Number       `json:"totalExpenses"`
		Expenses      []ExportedExpense `json:"expenses"`
	}{e.Month, json.Number(e.TotalExpenses.String()), e.Expenses})
}

// Document renders the export as a JSON file.
func (e JSONExport) Document() (Document, error) {
	body, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return Document{}, fmt.Errorf("rendering JSON export: %w", err)
	}

	return Document{
		ContentType: ContentTypeJSON,
		Filename:    filename(e.Month, "json"),
		Body:        body,
	}, nil
}

// ExportJSON returns all expenses of the month together with their total.
//
// A month without expenses is exported with a total of zero.
func (s Service) ExportJSON(ctx context.Context, owner uuid.UUID, month string) (JSONExport, error) {
	m, err := parseMonth(month)
	if err != nil {
		return JSONExport{}, err
	}

	expenses, err := s.List(ctx, owner, m.String())
	if err != nil {
		return JSONExport{}, err
	}

	export := JSONExport{
		Month:         m.String(),
		TotalExpenses: decimal.Zero,
		Expenses:      make([]ExportedExpense, 0, len(expenses)),
	}

	for _, e := range expenses {
		export.TotalExpenses = export.TotalExpenses.Add(e.Amount)
		export.Expenses = append(export.Expenses, ExportedExpense{
			ID:          e.ID,
			Amount:      e.Amount,
			Category:    e.Category,
			Date:        types.DateOf(e.Date),
			Description: e.Description,
		})
	}

	return export, nil
}

// ExportCSV renders the expenses of the month as CSV with a header row.
// A month without expenses is a not found error.
func (s Service) ExportCSV(ctx context.Context, owner uuid.UUID, month string) (Document, error) {
	m, rows, err := s.exportRows(ctx, owner, month)
	if err != nil {
		return Document{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	err = w.WriteAll(append([][]string{columns}, rows...))
	if err != nil {
		return Document{}, fmt.Errorf("rendering CSV export: %w", err)
	}

	return Document{
		ContentType: ContentTypeCSV,
		Filename:    filename(m.String(), "csv"),
		Body:        buf.Bytes(),
	}, nil
}

// ExportXLSX renders the expenses of the month as a spreadsheet with
// the same columns as ExportCSV.
func (s Service) ExportXLSX(ctx context.Context, owner uuid.UUID, month string) (Document, error) {
	m, expenses, err := s.exportExpenses(ctx, owner, month)
	if err != nil {
		return Document{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Expenses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return Document{}, fmt.Errorf("rendering XLSX export: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return Document{}, fmt.Errorf("rendering XLSX export: %w", err)
	}

	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return Document{}, fmt.Errorf("rendering XLSX export: %w", err)
		}

		row := []any{types.DateOf(e.Date).String(), e.Amount.InexactFloat64(), e.Category, e.Description}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return Document{}, fmt.Errorf("rendering XLSX export: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Document{}, fmt.Errorf("rendering XLSX export: %w", err)
	}

	return Document{
		ContentType: ContentTypeXLSX,
		Filename:    filename(m.String(), "xlsx"),
		Body:        buf.Bytes(),
	}, nil
}

// exportExpenses lists the expenses for tabular exports, which
// fail for months without expenses.
func (s Service) exportExpenses(ctx context.Context, owner uuid.UUID, month string) (types.Month, []models.Expense, error) {
	m, err := parseMonth(month)
	if err != nil {
		return types.Month{}, nil, err
	}

	expenses, err := s.List(ctx, owner, m.String())
	if err != nil {
		return types.Month{}, nil, err
	}

	if len(expenses) == 0 {
		return types.Month{}, nil, errNoDataForMonth
	}

	return m, expenses, nil
}

func (s Service) exportRows(ctx context.Context, owner uuid.UUID, month string) (types.Month, [][]string, error) {
	m, expenses, err := s.exportExpenses(ctx, owner, month)
	if err != nil {
		return types.Month{}, nil, err
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			types.DateOf(e.Date).String(),
			e.Amount.String(),
			e.Category,
			e.Description,
		})
	}

	return m, rows, nil
}

func filename(month, extension string) string {
	return fmt.Sprintf("expenses-%s.%s", month, extension)
}

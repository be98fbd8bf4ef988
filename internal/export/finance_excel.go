package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// BuildFinanceYearReport renders the yearly finance report as an xlsx
// workbook with a summary sheet, the monthly series and the full
// transaction list for the year.
func BuildFinanceYearReport(year int, summary domain.FinanceSummary, series []domain.MonthlyBucket, txns []domain.FinancialTransaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummarySheet(f, headerStyle, year, summary, series); err != nil {
		return nil, err
	}
	if err := writeTransactionsSheet(f, headerStyle, txns); err != nil {
		return nil, err
	}

	if idx, err := f.GetSheetIndex("Summary"); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, headerStyle int, year int, summary domain.FinanceSummary, series []domain.MonthlyBucket) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{fmt.Sprintf("Finance Report %d", year)},
		{},
		{"Total In", summary.TotalIn.String()},
		{"Total Out", summary.TotalOut.String()},
		{"Balance", summary.Balance.String()},
		{"Transactions", summary.TransactionCount},
		{},
		{"Month", "In", "Out"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", headerStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A8", "C8", headerStyle); err != nil {
		return err
	}

	for i, bucket := range series {
		name := fmt.Sprintf("%d", bucket.Month)
		if bucket.Month >= 1 && bucket.Month <= 12 {
			name = monthNames[bucket.Month-1]
		}
		row := []interface{}{name, bucket.In.String(), bucket.Out.String()}
		cell, _ := excelize.CoordinatesToCellName(1, 9+i)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write month row %d: %w", bucket.Month, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "C", 16)
}

func writeTransactionsSheet(f *excelize.File, headerStyle int, txns []domain.FinancialTransaction) error {
	const sheet = "Transactions"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []interface{}{"Date", "Direction", "Category", "Amount", "Description"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write transactions header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, txn := range txns {
		row := []interface{}{
			txn.TransactionDate.Format(time.DateOnly),
			string(txn.Direction),
			txn.Category,
			txn.Amount.String(),
			txn.Description,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write transaction row %d: %w", i+2, err)
		}
	}

	widths := map[string]float64{"A": 12, "B": 10, "C": 20, "D": 14, "E": 40}
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

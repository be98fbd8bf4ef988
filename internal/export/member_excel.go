package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// BuildMemberListReport renders the member roster as an xlsx workbook with
// one row per member, including the derived standing columns.
func BuildMemberListReport(members []domain.Member) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	const sheet = "Members"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []interface{}{
		"Academic ID", "Name", "Email", "Department", "Position",
		"Join Year", "Status", "Absences", "SP Level", "SP Note",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write members header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return nil, err
	}

	for i, m := range members {
		row := []interface{}{
			m.AcademicID,
			m.Name,
			m.Email,
			m.Department,
			m.Position,
			m.JoinYear,
			string(m.Status),
			m.AbsenceCount,
			m.SPLevel,
			m.SPNote,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write member row %d: %w", i+2, err)
		}
	}

	widths := map[string]float64{"A": 14, "B": 24, "C": 28, "D": 18, "E": 16, "F": 10, "G": 10, "H": 10, "I": 10, "J": 30}
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	if idx, err := f.GetSheetIndex(sheet); err == nil {
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

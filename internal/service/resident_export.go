package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const residentSheetName = "Residents"

// ExportResidents writes every resident to an Excel workbook and returns its
// bytes together with a timestamped file name
func (s *residentService) ExportResidents() ([]byte, string, error) {
	residents, err := s.residentRepo.FindAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get residents for export")
		return nil, "", fmt.Errorf("failed to get resident data: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	index, err := f.NewSheet(residentSheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Name", "Last Name", "National ID", "Income", "Date of Birth", "Birth Month", "Email"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(residentSheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(residentSheetName, "A1", lastHeader, headerStyle)
	}

	for i, r := range residents {
		row := i + 2
		income, _ := r.Income.Float64()

		f.SetCellValue(residentSheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(residentSheetName, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(residentSheetName, fmt.Sprintf("C%d", row), r.LastName)
		f.SetCellValue(residentSheetName, fmt.Sprintf("D%d", row), r.NationalID)
		f.SetCellValue(residentSheetName, fmt.Sprintf("E%d", row), income)
		f.SetCellValue(residentSheetName, fmt.Sprintf("F%d", row), r.DateOfBirth.String())
		f.SetCellValue(residentSheetName, fmt.Sprintf("G%d", row), s.months.Name(r.DateOfBirth.Month()))
		f.SetCellValue(residentSheetName, fmt.Sprintf("H%d", row), r.Email)
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(residentSheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	filename := fmt.Sprintf("residents_export_%s.xlsx", s.now().In(s.location).Format("20060102_150405"))

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"count":    len(residents),
		"filename": filename,
	}).Info("Residents exported successfully")

	return buffer.Bytes(), filename, nil
}

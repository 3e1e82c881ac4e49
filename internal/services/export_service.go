package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

// ExportService produces spreadsheet exports for administrators.
type ExportService interface {
	// ExportDrives renders the drive catalog as an .xlsx workbook.
	ExportDrives(ctx context.Context) ([]byte, error)

	// ExportMockTests renders a student's mock-test history as an .xlsx
	// workbook, newest first.
	ExportMockTests(ctx context.Context, uid string) ([]byte, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *exportService) ExportDrives(ctx context.Context) ([]byte, error) {
	drives, err := s.repo.Drive().List(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	headers := []string{"ID", "Company", "Role", "Description", "Date", "Apply URL"}
	rows := make([][]interface{}, 0, len(drives))
	for _, drive := range drives {
		rows = append(rows, []interface{}{
			drive.ID, drive.CompanyName, drive.Role, drive.Description, drive.Date, drive.ApplyURL,
		})
	}

	s.logger.Info("Exporting drive catalog", "count", len(drives))
	return buildWorkbook("Drives", headers, rows)
}

func (s *exportService) ExportMockTests(ctx context.Context, uid string) ([]byte, error) {
	results, err := s.repo.MockTest().ListByUser(ctx, uid)
	if err != nil {
		return nil, storeError(err)
	}

	headers := []string{"ID", "Topic", "Score", "Total Questions", "Date"}
	rows := make([][]interface{}, 0, len(results))
	for _, result := range results {
		rows = append(rows, []interface{}{
			result.ID, result.Topic, result.Score, result.TotalQuestions, result.Date.Format("2006-01-02"),
		})
	}

	s.logger.Info("Exporting mock test history", "uid", uid, "count", len(results))
	return buildWorkbook("Mock Tests", headers, rows)
}

func buildWorkbook(sheetName string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

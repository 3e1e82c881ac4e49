package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

func TestExportService_ExportDrives(t *testing.T) {
	repo := newFakeRepository()
	svc := NewExportService(repo, newTestLogger())
	ctx := context.Background()

	require.NoError(t, repo.Drive().Create(ctx, &models.Drive{
		ID:          "drive_1",
		CompanyName: "Google",
		Role:        "SWE Intern",
		Description: "Join our team",
		Date:        "2026-09-15",
		ApplyURL:    "#",
	}))
	require.NoError(t, repo.Drive().Create(ctx, &models.Drive{
		ID:          "drive_2",
		CompanyName: "Stripe",
		Role:        "Backend Engineer",
		Description: "Payments infra",
		Date:        "2026-10-01",
		ApplyURL:    "#",
	}))

	data, err := svc.ExportDrives(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Drives", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Company", header)

	// Newest first.
	company, err := f.GetCellValue("Drives", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Stripe", company)

	company, err = f.GetCellValue("Drives", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Google", company)
}

func TestExportService_ExportMockTests(t *testing.T) {
	repo := newFakeRepository()
	svc := NewExportService(repo, newTestLogger())
	ctx := context.Background()

	require.NoError(t, repo.User().Create(ctx, &models.User{
		ID:    "user_1",
		Email: "alice@example.com",
		Role:  models.RoleStudent,
	}))

	persisted, err := repo.MockTest().Append(ctx, &models.MockTestResult{
		ID:             "test_1",
		UserID:         "user_1",
		Topic:          "Arrays",
		Score:          7,
		TotalQuestions: 10,
		Date:           time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, persisted)

	data, err := svc.ExportMockTests(ctx, "user_1")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	topic, err := f.GetCellValue("Mock Tests", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Arrays", topic)

	date, err := f.GetCellValue("Mock Tests", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", date)
}

func TestExportService_ExportMockTestsEmptyHistory(t *testing.T) {
	repo := newFakeRepository()
	svc := NewExportService(repo, newTestLogger())

	data, err := svc.ExportMockTests(context.Background(), "user_unknown")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Mock Tests", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
}

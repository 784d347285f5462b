package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kirkclark82/UGCC-APP/internal/repository"
	pkgerrors "github.com/kirkclark82/UGCC-APP/pkg/errors"
)

const MsgExportFailed = "Failed to generate export"

const exportSheet = "Registrations"

var exportHeaders = []string{"ID", "Full Name", "Email", "Student USI", "Registered At"}

// ExportService registrations export
//
// The workbook holds one sheet, newest registration first. The content is
// returned as a buffer; the handler sets the download headers.
type ExportService interface {
	// ExportRegistrations returns the xlsx content and a suggested filename.
	ExportRegistrations(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

func (s *exportService) ExportRegistrations(ctx context.Context) (*bytes.Buffer, string, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list registrations for export", zap.Error(err))
		return nil, "", pkgerrors.Internal(MsgDatabaseError, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	fail := func(err error) (*bytes.Buffer, string, error) {
		s.logger.Error("build export workbook", zap.Error(err))
		return nil, "", pkgerrors.Internal(MsgExportFailed, err)
	}

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fail(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fail(err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return fail(err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle); err != nil {
		return fail(err)
	}

	for i, u := range users {
		row := []interface{}{
			u.ID,
			u.FullName,
			u.Email,
			u.USI,
			u.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fail(err)
		}
	}

	widths := map[string]float64{"A": 8, "B": 28, "C": 34, "D": 14, "E": 22}
	for col, w := range widths {
		if err := f.SetColWidth(exportSheet, col, col, w); err != nil {
			return fail(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fail(err)
	}

	filename := fmt.Sprintf("ugcc-registrations-%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/SawSimonLinn/BizBoost/internal/config"
	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
)

const reportRange = "AnnualReport!A:F"

// Exporter pushes annual-report rows into a Google spreadsheet so owners can
// share the year's numbers outside the app.
type Exporter interface {
	ExportAnnualReport(ctx context.Context, userID string, report models.AnnualReport) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ExportAnnualReport appends one row per period plus a totals row.
func (e *GoogleSheetExporter) ExportAnnualReport(ctx context.Context, userID string, report models.AnnualReport) error {
	values := make([][]interface{}, 0, len(report.Rows)+1)
	for _, row := range report.Rows {
		values = append(values, []interface{}{userID, row.Name, row.Sales, row.GrossProfit, row.NetProfit, row.OwnerCut})
	}
	values = append(values, []interface{}{userID, "TOTAL", report.TotalSales, report.TotalGrossProfit, report.TotalNetProfit, ""})

	payload := &sheetsapi.ValueRange{Values: values}
	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, reportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append annual report rows: %w", err)
	}

	e.logger.Debug("annual report exported",
		zap.String("user_id", userID),
		zap.Int("rows", len(values)))
	return nil
}

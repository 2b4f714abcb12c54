package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/monitoring"
)

// ExportService writes filtered views as CSV.
type ExportService struct {
	logger *logging.ChanneledLogger
}

// NewExportService creates an export service.
func NewExportService(logger *logging.ChanneledLogger) *ExportService {
	return &ExportService{logger: logger}
}

// WriteCSV streams the view to w as CSV, header first, preserving row
// order. Prices are formatted with two decimal places.
func (s *ExportService) WriteCSV(w io.Writer, view []events.Event) error {
	start := time.Now()
	cw := csv.NewWriter(w)

	if err := cw.Write(events.CSVHeader); err != nil {
		return err
	}

	for _, ev := range view {
		record := []string{
			strconv.Itoa(ev.EventID),
			strconv.Itoa(ev.UserID),
			ev.Date.Format("2006-01-02"),
			string(ev.Event),
			strconv.FormatFloat(ev.Price, 'f', 2, 64),
			ev.Month,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	monitoring.ExportedRows.Add(float64(len(view)))
	s.logger.Export().Info("CSV export written",
		"rows", len(view),
		"duration", time.Since(start))
	return nil
}

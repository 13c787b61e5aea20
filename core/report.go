package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/outwriter"
	"github.com/huangsam/moodtrack/internal/report"
	"github.com/huangsam/moodtrack/internal/upload"
	"github.com/huangsam/moodtrack/schema"
)

// ErrNoReportData is returned when the report week holds no entries.
var ErrNoReportData = errors.New("no data for report")

// GenerateReport writes the weekly PDF, uploads it to every destination and announces it.
// Uploads only start once the file exists; any upload or publish failure is returned.
func GenerateReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, uploaders []contract.Uploader, notifier contract.Notifier) (schema.ReportOutput, error) {
	logHeader(ctx, cfg, "weekly report")

	series, err := loadSeries(ctx, cfg, mgr)
	if err != nil {
		return schema.ReportOutput{}, err
	}
	summary, ok := series.WeeklySummary(cfg.EndDate)
	if !ok {
		return schema.ReportOutput{}, ErrNoReportData
	}
	points, err := series.RollingTrend(cfg.WindowDays)
	if err != nil {
		return schema.ReportOutput{}, err
	}
	notes := series.TopNotes(cfg.EndDate, cfg.NotesLimit)

	path, err := report.NewGenerator(cfg.ReportDir).WriteWeeklyReport(report.Data{
		Summary:    summary,
		TopNotes:   notes,
		Points:     points,
		WindowDays: cfg.WindowDays,
		Precision:  cfg.Precision,
	})
	if err != nil {
		return schema.ReportOutput{}, err
	}

	out := schema.ReportOutput{
		Path:     path,
		Summary:  summary,
		TopNotes: notes,
		Points:   len(points),
		Uploaded: []string{},
	}

	uploaded, err := upload.Fanout(ctx, uploaders, path)
	if err != nil {
		return out, fmt.Errorf("report written to %s but upload failed: %w", path, err)
	}
	if uploaded != nil {
		out.Uploaded = uploaded
	}

	if notifier != nil {
		if err := notifier.PublishReport(ctx, out); err != nil {
			return out, fmt.Errorf("report written to %s but notification failed: %w", path, err)
		}
		out.Notified = cfg.AMQPURL != ""
	}
	return out, nil
}

// ExecuteReport generates the weekly report and prints where it went.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, uploaders []contract.Uploader, notifier contract.Notifier) error {
	start := time.Now()
	out, err := GenerateReport(ctx, cfg, mgr, uploaders, notifier)
	if err != nil {
		return err
	}
	fmt.Printf("Report ready: %s\n", out.Path)
	for _, loc := range out.Uploaded {
		fmt.Printf("Uploaded: %s\n", loc)
	}
	outwriter.LogDuration(os.Stderr, "Report generated", time.Since(start))
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/config"
	"github.com/puwasa/pos-terminal/internal/domain/entity"
	"github.com/puwasa/pos-terminal/internal/domain/repository"
	"github.com/puwasa/pos-terminal/internal/events"
	"github.com/puwasa/pos-terminal/pkg/apperror"
	"github.com/puwasa/pos-terminal/pkg/printhelper"
)

// PrinterService is the print bridge: it serialises a bill snapshot to the
// fixed-path JSON artifact and hands it to the external helper process. The
// JSON write is the primary success signal; whether the helper actually
// produced the rendered PDF is reported independently as Printed.
type PrinterService struct {
	mu      sync.Mutex // at most one print or save in flight
	cfg     *config.PrintingConfig
	runner  printhelper.Runner
	hub     *events.Hub
	journal repository.JournalRepository
	logger  *zap.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	cfg *config.PrintingConfig,
	runner printhelper.Runner,
	hub *events.Hub,
	journal repository.JournalRepository,
	logger *zap.Logger,
) *PrinterService {
	return &PrinterService{
		cfg:     cfg,
		runner:  runner,
		hub:     hub,
		journal: journal,
		logger:  logger,
	}
}

func (s *PrinterService) jsonPath() string {
	return filepath.Join(s.cfg.Dir, s.cfg.JSONFile)
}

func (s *PrinterService) pdfPath() string {
	return filepath.Join(s.cfg.Dir, s.cfg.PDFFile)
}

// normalize fills the defaults the helper contract requires: a generated
// bill id, the formatted local timestamp, "Unknown" item names and minimum
// quantities.
func (s *PrinterService) normalize(job *entity.PrintJob) {
	if job.BillID == "" {
		now := time.Now()
		job.BillID = fmt.Sprintf("INV-%d-%d", now.Year(), now.UnixMilli())
	}
	if job.Date == "" {
		job.Date = time.Now().Format("2006-01-02 15:04:05")
	}
	if job.CashierID == "" {
		job.CashierID = "1"
	}
	if job.CustomerName == "" {
		job.CustomerName = "Unknown"
	}
	for i := range job.Details {
		if job.Details[i].ItemName == "" {
			job.Details[i].ItemName = "Unknown"
		}
		if job.Details[i].Quantity < 1 {
			job.Details[i].Quantity = 1
		}
	}
}

// writeArtifact writes the bill JSON to the fixed path, overwriting any
// previous content, and returns the artifact's modification time.
func (s *PrinterService) writeArtifact(job *entity.PrintJob) (time.Time, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return time.Time{}, err
	}

	payload, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return time.Time{}, err
	}
	if err := os.WriteFile(s.jsonPath(), payload, 0o644); err != nil {
		return time.Time{}, err
	}

	info, err := os.Stat(s.jsonPath())
	if err != nil {
		return time.Time{}, nil
	}
	return info.ModTime(), nil
}

// notifySaved emits the bill-saved event. Best effort: a failure to deliver
// is logged, never propagated.
func (s *PrinterService) notifySaved(job *entity.PrintJob) {
	stage := events.StageInterim
	if job.Balance != 0 {
		stage = events.StageFinal
	}
	delivered := s.hub.Publish(events.BillSaved{
		BillID:     job.BillID,
		Balance:    job.Balance,
		WriteStage: stage,
	})
	s.logger.Info("bill artifact saved",
		zap.String("bill_id", job.BillID),
		zap.String("stage", stage),
		zap.Int("subscribers", delivered),
	)
}

func (s *PrinterService) record(ctx context.Context, job *entity.PrintJob, mode string, res *entity.PrintResult) {
	if s.journal == nil {
		return
	}
	err := s.journal.RecordPrintAttempt(ctx, &entity.PrintAttempt{
		BillID:  job.BillID,
		Mode:    mode,
		Success: res.Success,
		Printed: res.Printed,
		Message: res.Message,
	})
	if err != nil {
		s.logger.Warn("failed to journal print attempt", zap.Error(err))
	}
}

// Save is the write-only mode: persist the bill JSON without invoking the
// helper, then notify observers whether this was an interim or final write.
func (s *PrinterService) Save(ctx context.Context, job *entity.PrintJob) (*entity.PrintResult, error) {
	if !s.mu.TryLock() {
		return nil, apperror.ErrBusy
	}
	defer s.mu.Unlock()

	s.normalize(job)

	res := &entity.PrintResult{
		Bill:     job,
		JSONPath: s.jsonPath(),
	}

	mtime, err := s.writeArtifact(job)
	if err != nil {
		s.logger.Error("failed to write bill artifact", zap.Error(err))
		res.Message = fmt.Sprintf("failed to write %s: %v", s.cfg.JSONFile, err)
	} else {
		res.Success = true
		res.WriteSuccess = true
		if !mtime.IsZero() {
			res.WrittenAt = mtime.Format(time.RFC3339)
		}
	}

	s.notifySaved(job)
	s.record(ctx, job, "write-only", res)
	return res, nil
}

// Print writes the bill JSON and then runs the helper to render it. Success
// tracks the write; helper problems only keep Printed false.
func (s *PrinterService) Print(ctx context.Context, job *entity.PrintJob) (*entity.PrintResult, error) {
	if !s.mu.TryLock() {
		return nil, apperror.ErrBusy
	}
	defer s.mu.Unlock()

	s.normalize(job)

	res := &entity.PrintResult{
		Bill:     job,
		JSONPath: s.jsonPath(),
	}

	if _, err := s.writeArtifact(job); err != nil {
		s.logger.Error("failed to write bill artifact", zap.Error(err))
		res.Message = fmt.Sprintf("failed to write %s: %v", s.cfg.JSONFile, err)
		s.record(ctx, job, "render", res)
		return res, nil
	}
	res.Success = true

	s.render(ctx, res)
	s.record(ctx, job, "render", res)
	return res, nil
}

// Reprint re-runs the helper against the existing JSON artifact without
// rewriting it (the artifact is whatever the last save or print left
// behind).
func (s *PrinterService) Reprint(ctx context.Context) (*entity.PrintResult, error) {
	if !s.mu.TryLock() {
		return nil, apperror.ErrBusy
	}
	defer s.mu.Unlock()

	res := &entity.PrintResult{
		Success:  true,
		JSONPath: s.jsonPath(),
	}

	if _, err := os.Stat(s.jsonPath()); err != nil {
		res.Success = false
		res.Message = fmt.Sprintf("%s not found, save a bill first", s.cfg.JSONFile)
		return res, nil
	}

	s.render(ctx, res)
	return res, nil
}

// render invokes the helper process and fills in the print outcome. The
// rendered PDF's existence, not the exit code, is the success signal.
func (s *PrinterService) render(ctx context.Context, res *entity.PrintResult) {
	if !s.cfg.Enabled {
		res.Message = "printing is disabled"
		return
	}

	helperPath, ok := s.runner.Resolve()
	if !ok {
		res.Message = fmt.Sprintf("print helper not found in %s", s.cfg.Dir)
		s.logger.Warn(res.Message)
		return
	}

	logoPath := filepath.Join(s.cfg.Dir, s.cfg.LogoFile)
	if _, err := os.Stat(logoPath); err != nil {
		s.logger.Warn("logo not found, continuing without it", zap.String("path", logoPath))
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	s.logger.Info("invoking print helper",
		zap.String("helper", helperPath),
		zap.String("artifact", res.JSONPath),
	)

	inv, err := s.runner.Run(runCtx, res.JSONPath)
	if inv != nil {
		res.Stdout = inv.Stdout
		res.Stderr = inv.Stderr
	}
	if err != nil {
		res.Message = fmt.Sprintf("print helper failed: %v", err)
		s.logger.Warn("print helper failed", zap.Error(err))
		return
	}

	if _, err := os.Stat(s.pdfPath()); err == nil {
		res.Printed = true
		res.PDFPath = s.pdfPath()
	} else {
		res.Message = "print helper completed but PDF was not created"
	}
}

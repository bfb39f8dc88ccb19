package services

import (
	"context"
	"time"

	"festfusion/internal/domain/archive"
	"festfusion/pkg/logger"
)

// TestRowMarker is written into the file_name column of diagnostics rows so
// cleanup can find them.
const TestRowMarker = "diagnostic_test"

// RowCleaner is the diagnostics side of the recorder.
type RowCleaner interface {
	Recorder
	CleanupTestRows(ctx context.Context, marker string) (int, error)
}

// DiagnosticsService verifies the archive's external surfaces: credential
// resolution, and worksheet access by appending a marked test row and
// removing it again.
type DiagnosticsService struct {
	recorder  RowCleaner
	credCheck func() error
	log       *logger.Logger
}

type DiagnosticsReport struct {
	TabularOK   bool   `json:"tabular_ok"`
	TabularErr  string `json:"tabular_error,omitempty"`
	RowsCleaned int    `json:"rows_cleaned"`
	CheckedAt   string `json:"checked_at"`
}

// StatusReport is the passive half of diagnostics: configuration state only,
// no writes.
type StatusReport struct {
	CredentialsOK     bool   `json:"credentials_ok"`
	CredentialErr     string `json:"credential_error,omitempty"`
	TabularConfigured bool   `json:"tabular_configured"`
	CheckedAt         string `json:"checked_at"`
}

func NewDiagnosticsService(recorder RowCleaner, credCheck func() error, log *logger.Logger) *DiagnosticsService {
	return &DiagnosticsService{recorder: recorder, credCheck: credCheck, log: log}
}

// Status reports whether the service identity resolves and the worksheet is
// wired, without touching either.
func (s *DiagnosticsService) Status() StatusReport {
	report := StatusReport{
		TabularConfigured: s.recorder != nil,
		CheckedAt:         time.Now().Format(time.RFC3339),
	}
	if s.credCheck == nil {
		report.CredentialErr = "credential check not configured"
		return report
	}
	if err := s.credCheck(); err != nil {
		report.CredentialErr = err.Error()
		return report
	}
	report.CredentialsOK = true
	return report
}

// CheckTabular appends a marked row and cleans every marked row back out,
// proving both write and delete access.
func (s *DiagnosticsService) CheckTabular(ctx context.Context) DiagnosticsReport {
	report := DiagnosticsReport{CheckedAt: time.Now().Format(time.RFC3339)}
	if s.recorder == nil {
		report.TabularErr = "tabular store not configured"
		return report
	}

	rec := archive.Record{
		Timestamp:      time.Now(),
		FileName:       TestRowMarker,
		DistrictName:   TestRowMarker,
		EnglishSummary: "diagnostics write check",
	}
	if err := s.recorder.Append(ctx, rec); err != nil {
		report.TabularErr = err.Error()
		return report
	}

	cleaned, err := s.recorder.CleanupTestRows(ctx, TestRowMarker)
	report.RowsCleaned = cleaned
	if err != nil {
		report.TabularErr = err.Error()
		if s.log != nil {
			s.log.Warnf("diagnostics cleanup incomplete: %s", err)
		}
		return report
	}

	report.TabularOK = true
	return report
}

package services

import (
	"context"
	"strings"
	"time"

	"festfusion/internal/districts"
	"festfusion/internal/domain/archive"
	"festfusion/internal/domain/submission"
	"festfusion/internal/intake"
	festfusion_errors "festfusion/pkg/errors"
	"festfusion/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// retryAttempts bounds every external call: one initial try plus two
// backoff retries. Local intake is never retried.
const retryAttempts = 2

// FileStore is the local intake contract.
type FileStore interface {
	Validate(att *submission.Attachment, district string) error
	Save(att *submission.Attachment, district string) (intake.StoredFile, error)
}

// Archiver mirrors an attachment to the object store. Failures are soft.
type Archiver interface {
	Archive(ctx context.Context, att *submission.Attachment, district string) (submission.RemoteRef, error)
}

// Recorder appends one row per confirmed submission to the tabular store.
type Recorder interface {
	Append(ctx context.Context, rec archive.Record) error
}

// SummaryGenerator seeds the editable summaries.
type SummaryGenerator interface {
	Generate(ctx context.Context, sub *submission.Submission) (submission.Summary, error)
}

// Transcriber turns audio attachments into story text. Failures are soft.
type Transcriber interface {
	Transcribe(ctx context.Context, data []byte, mimeType string) (string, error)
}

// DraftStore persists drafts between the upload and confirm steps.
type DraftStore interface {
	Save(ctx context.Context, d *submission.Draft) error
	Get(ctx context.Context, id uuid.UUID) (*submission.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubmissionService struct {
	files       FileStore
	archiver    Archiver
	recorder    Recorder
	summaries   SummaryGenerator
	transcriber Transcriber
	drafts      DraftStore
	log         *logger.Logger
}

type CreateInput struct {
	District     string
	FestivalName string
	StoryText    string
	Language     string
	Attachment   *submission.Attachment
}

func NewSubmissionService(
	files FileStore,
	archiver Archiver,
	recorder Recorder,
	summaries SummaryGenerator,
	transcriber Transcriber,
	drafts DraftStore,
	log *logger.Logger,
) *SubmissionService {
	return &SubmissionService{
		files:       files,
		archiver:    archiver,
		recorder:    recorder,
		summaries:   summaries,
		transcriber: transcriber,
		drafts:      drafts,
		log:         log,
	}
}

// Create runs intake, best-effort remote archival, and summary generation,
// and parks the result as a draft awaiting the edit/confirm steps. Intake
// failures are fatal; archival and transcription degrade to warnings.
func (s *SubmissionService) Create(ctx context.Context, input CreateInput) (*submission.Draft, error) {
	sub := submission.Submission{
		District:     input.District,
		FestivalName: strings.TrimSpace(input.FestivalName),
		StoryText:    strings.TrimSpace(input.StoryText),
		Language:     submission.ParseLanguageMode(input.Language),
		Attachment:   input.Attachment,
		CreatedAt:    time.Now(),
	}

	if err := s.validate(&sub); err != nil {
		return nil, err
	}

	draft := &submission.Draft{
		ID:         uuid.New(),
		State:      submission.StateEmpty,
		Submission: sub,
	}

	if sub.Attachment != nil {
		stored, err := s.files.Save(sub.Attachment, sub.District)
		if err != nil {
			return nil, err
		}
		sub.Attachment.StoredName = stored.Name
		sub.Attachment.LocalPath = stored.Path

		s.archive(ctx, draft)
		s.transcribe(ctx, draft)
	}

	if err := draft.Transition(submission.StateUploaded); err != nil {
		return nil, err
	}

	summary, err := s.summaries.Generate(ctx, &draft.Submission)
	if err != nil {
		// Summary generation has its own template fallback; an error here
		// still must not sink the submission.
		draft.Warn("summary generation failed: " + err.Error())
	}
	draft.Summary = summary

	if err := draft.Transition(submission.StateSummarized); err != nil {
		return nil, err
	}

	draft.Submission = *cloneWithoutBytes(&draft.Submission)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get returns the draft in its current state.
func (s *SubmissionService) Get(ctx context.Context, id uuid.UUID) (*submission.Draft, error) {
	return s.drafts.Get(ctx, id)
}

// EditSummaries replaces the seeded summaries with the contributor's edits.
func (s *SubmissionService) EditSummaries(ctx context.Context, id uuid.UUID, english, telugu string) (*submission.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := draft.Transition(submission.StateEdited); err != nil {
		return nil, err
	}
	draft.Summary.English = english
	draft.Summary.Telugu = telugu
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Confirm appends the draft as one archive row. Append failure is fatal to
// this step and reported as such: file copies may already exist even when
// the row does not, and that asymmetry is surfaced, not hidden.
func (s *SubmissionService) Confirm(ctx context.Context, id uuid.UUID) (*submission.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !draft.State.CanTransition(submission.StateSaved) {
		return nil, festfusion_errors.ErrInvalidTransition
	}
	if s.recorder == nil {
		return nil, festfusion_errors.ErrCredentialUnavailable
	}

	rec := recordFromDraft(draft)
	err = backoff.Retry(func() error {
		return s.recorder.Append(ctx, rec)
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retryAttempts), ctx))
	if err != nil {
		if s.log != nil {
			s.log.Errorf("record append failed for draft %s: %s", draft.ID, err)
		}
		return nil, festfusion_errors.ErrRecordAppend
	}

	if err := draft.Transition(submission.StateSaved); err != nil {
		return nil, err
	}
	draft.SavedAt = festfusion_errors.NowPtr()
	if err := s.drafts.Save(ctx, draft); err != nil && s.log != nil {
		s.log.Warnf("could not persist saved draft %s: %s", draft.ID, err)
	}
	return draft, nil
}

func (s *SubmissionService) validate(sub *submission.Submission) error {
	if !districts.Valid(sub.District) {
		return festfusion_errors.ErrInvalidCategory
	}
	if sub.FestivalName == "" {
		return festfusion_errors.ErrInvalidInput
	}
	if sub.Attachment != nil {
		return s.files.Validate(sub.Attachment, sub.District)
	}
	if sub.StoryText == "" {
		return festfusion_errors.ErrInvalidInput
	}
	return nil
}

// archive mirrors the attachment to the object store under retry; any
// residual error becomes a warning on the draft.
func (s *SubmissionService) archive(ctx context.Context, draft *submission.Draft) {
	if s.archiver == nil {
		draft.Warn("remote archival skipped: object store not configured")
		return
	}
	att := draft.Submission.Attachment

	var ref submission.RemoteRef
	err := backoff.Retry(func() error {
		var archiveErr error
		ref, archiveErr = s.archiver.Archive(ctx, att, draft.Submission.District)
		return archiveErr
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retryAttempts), ctx))
	if err != nil {
		if s.log != nil {
			s.log.Warnf("remote archival failed for %s: %s", att.StoredName, err)
		}
		draft.Warn("remote archival failed; local copy kept")
		return
	}
	att.RemoteRef = ref
}

// transcribe feeds audio attachments into the story text. Best effort only.
func (s *SubmissionService) transcribe(ctx context.Context, draft *submission.Draft) {
	att := draft.Submission.Attachment
	if s.transcriber == nil || !strings.HasPrefix(att.MimeType, "audio/") {
		return
	}
	text, err := s.transcriber.Transcribe(ctx, att.RawBytes, att.MimeType)
	if err != nil {
		if s.log != nil {
			s.log.Warnf("transcription failed for %s: %s", att.StoredName, err)
		}
		draft.Warn("audio transcription failed")
		return
	}
	if text != "" {
		draft.Submission.StoryText = strings.TrimSpace(draft.Submission.StoryText + "\n" + text)
	}
}

func recordFromDraft(d *submission.Draft) archive.Record {
	rec := archive.Record{
		Timestamp:      time.Now(),
		DistrictName:   d.Submission.District,
		EnglishSummary: d.Summary.English,
		FestivalName:   d.Submission.FestivalName,
		TeluguSummary:  d.Summary.Telugu,
	}
	if att := d.Submission.Attachment; att != nil {
		rec.FileName = att.OriginalName
		rec.StorageReference = att.RemoteRef.ViewLink
	}
	return rec
}

// cloneWithoutBytes drops the raw payload before the draft goes to the
// draft store; only metadata survives intake.
func cloneWithoutBytes(sub *submission.Submission) *submission.Submission {
	out := *sub
	if sub.Attachment != nil {
		att := *sub.Attachment
		att.RawBytes = nil
		out.Attachment = &att
	}
	return &out
}

package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"festfusion/internal/domain/archive"
	"festfusion/internal/domain/submission"
	"festfusion/internal/intake"
	"festfusion/internal/summarizer"
	festfusion_errors "festfusion/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArchiver struct {
	fail  bool
	calls int
}

func (f *fakeArchiver) Archive(ctx context.Context, att *submission.Attachment, district string) (submission.RemoteRef, error) {
	f.calls++
	if f.fail {
		return submission.RemoteRef{}, errors.New("object store unreachable")
	}
	return submission.RemoteRef{ID: district + "/" + att.StoredName, ViewLink: "https://files.example.com/" + att.StoredName}, nil
}

type fakeRecorder struct {
	fail bool
	rows []archive.Record
}

func (f *fakeRecorder) Append(ctx context.Context, rec archive.Record) error {
	if f.fail {
		return errors.New("worksheet unavailable")
	}
	f.rows = append(f.rows, rec)
	return nil
}

type memDrafts struct {
	m map[uuid.UUID]*submission.Draft
}

func newMemDrafts() *memDrafts {
	return &memDrafts{m: make(map[uuid.UUID]*submission.Draft)}
}

func (s *memDrafts) Save(ctx context.Context, d *submission.Draft) error {
	copied := *d
	s.m[d.ID] = &copied
	return nil
}

func (s *memDrafts) Get(ctx context.Context, id uuid.UUID) (*submission.Draft, error) {
	d, ok := s.m[id]
	if !ok {
		return nil, festfusion_errors.ErrDraftExpired
	}
	copied := *d
	return &copied, nil
}

func (s *memDrafts) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.m, id)
	return nil
}

type fixture struct {
	svc      *SubmissionService
	uploads  string
	archiver *fakeArchiver
	recorder *fakeRecorder
	drafts   *memDrafts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	arch := &fakeArchiver{}
	rec := &fakeRecorder{}
	drafts := newMemDrafts()
	svc := NewSubmissionService(
		intake.NewStore(dir, 16*1024*1024),
		arch,
		rec,
		summarizer.NewService(summarizer.StrategyTemplate, nil, nil),
		nil,
		drafts,
		nil,
	)
	return &fixture{svc: svc, uploads: dir, archiver: arch, recorder: rec, drafts: drafts}
}

func jpegInput() CreateInput {
	return CreateInput{
		District:     "Hyderabad",
		FestivalName: "Bonalu",
		Language:     "EN_TE",
		Attachment: &submission.Attachment{
			RawBytes:     bytes.Repeat([]byte{0xFF}, 10*1024),
			MimeType:     "image/jpeg",
			OriginalName: "bonalu.jpg",
		},
	}
}

func TestCreateAndConfirmFullWorkflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, jpegInput())
	require.NoError(t, err)
	assert.Equal(t, submission.StateSummarized, draft.State)
	assert.Empty(t, draft.Warnings)

	// Exactly one file under the district folder.
	entries, err := os.ReadDir(filepath.Join(f.uploads, "Hyderabad"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Contains(t, draft.Summary.English, "Bonalu is a traditional festival celebrated in Hyderabad district")
	assert.NotEmpty(t, draft.Summary.Telugu)
	assert.NotEmpty(t, draft.Submission.Attachment.RemoteRef.ViewLink)

	saved, err := f.svc.Confirm(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StateSaved, saved.State)
	require.NotNil(t, saved.SavedAt)

	require.Len(t, f.recorder.rows, 1)
	row := f.recorder.rows[0].Row()
	require.Len(t, row, len(archive.Header))
	assert.Equal(t, "bonalu.jpg", row[1])
	assert.Equal(t, "Hyderabad", row[2])
	assert.Equal(t, draft.Summary.English, row[3])
	assert.Equal(t, "Bonalu", row[4])
	assert.Equal(t, draft.Summary.Telugu, row[5])
}

func TestEmptyDistrictIsRejectedWithoutSideEffects(t *testing.T) {
	f := newFixture(t)

	input := jpegInput()
	input.District = ""
	_, err := f.svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, festfusion_errors.ErrInvalidCategory)

	entries, readErr := os.ReadDir(f.uploads)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	assert.Zero(t, f.archiver.calls)
	assert.Empty(t, f.recorder.rows)
}

func TestOversizeAttachmentRejectedBeforeStorage(t *testing.T) {
	dir := t.TempDir()
	svc := NewSubmissionService(
		intake.NewStore(dir, 1024),
		&fakeArchiver{},
		&fakeRecorder{},
		summarizer.NewService(summarizer.StrategyTemplate, nil, nil),
		nil,
		newMemDrafts(),
		nil,
	)

	input := jpegInput()
	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, festfusion_errors.ErrTooLarge)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestMissingFestivalNameIsRejected(t *testing.T) {
	f := newFixture(t)
	input := jpegInput()
	input.FestivalName = "  "
	_, err := f.svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, festfusion_errors.ErrInvalidInput)
}

func TestArchivalFailureDoesNotPreventRecordAppend(t *testing.T) {
	f := newFixture(t)
	f.archiver.fail = true
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, jpegInput())
	require.NoError(t, err, "remote archival is a soft failure")
	assert.NotEmpty(t, draft.Warnings)
	assert.Empty(t, draft.Submission.Attachment.RemoteRef.ViewLink)

	saved, err := f.svc.Confirm(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StateSaved, saved.State)
	require.Len(t, f.recorder.rows, 1)
	assert.Empty(t, f.recorder.rows[0].StorageReference)
}

func TestRecordAppendFailureIsSurfaced(t *testing.T) {
	f := newFixture(t)
	f.recorder.fail = true
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, jpegInput())
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, draft.ID)
	assert.ErrorIs(t, err, festfusion_errors.ErrRecordAppend)

	// The local file still exists: the asymmetry is reported, not rolled back.
	entries, readErr := os.ReadDir(filepath.Join(f.uploads, "Hyderabad"))
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestEditedSummariesWinOverSeeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, jpegInput())
	require.NoError(t, err)

	edited, err := f.svc.EditSummaries(ctx, draft.ID, "my english", "my telugu")
	require.NoError(t, err)
	assert.Equal(t, submission.StateEdited, edited.State)

	_, err = f.svc.Confirm(ctx, draft.ID)
	require.NoError(t, err)

	require.Len(t, f.recorder.rows, 1)
	assert.Equal(t, "my english", f.recorder.rows[0].EnglishSummary)
	assert.Equal(t, "my telugu", f.recorder.rows[0].TeluguSummary)
}

func TestConfirmTwiceIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, jpegInput())
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, draft.ID)
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, draft.ID)
	assert.ErrorIs(t, err, festfusion_errors.ErrInvalidTransition)
	assert.Len(t, f.recorder.rows, 1)
}

func TestStoryOnlySubmissionNeedsNoAttachment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, CreateInput{
		District:     "Warangal",
		FestivalName: "Bathukamma",
		StoryText:    "Women arrange flowers in concentric layers.",
		Language:     "EN",
	})
	require.NoError(t, err)
	assert.Equal(t, submission.StateSummarized, draft.State)
	assert.Zero(t, f.archiver.calls)

	_, err = f.svc.Confirm(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, f.recorder.rows, 1)
	assert.Empty(t, f.recorder.rows[0].FileName)
}

func TestAttachmentlessSubmissionWithoutStoryIsRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), CreateInput{
		District:     "Warangal",
		FestivalName: "Bathukamma",
	})
	assert.ErrorIs(t, err, festfusion_errors.ErrInvalidInput)
}

func TestExpiredDraftIsNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Confirm(context.Background(), uuid.New())
	assert.ErrorIs(t, err, festfusion_errors.ErrDraftExpired)
}

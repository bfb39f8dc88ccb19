package submission

import (
	"time"

	"github.com/google/uuid"
)

// LanguageMode selects which summary variants a submission produces.
type LanguageMode string

const (
	LanguageEN   LanguageMode = "EN"
	LanguageTE   LanguageMode = "TE"
	LanguageENTE LanguageMode = "EN_TE"
)

// ParseLanguageMode maps a client-supplied mode string, defaulting to
// bilingual output.
func ParseLanguageMode(s string) LanguageMode {
	switch LanguageMode(s) {
	case LanguageEN, LanguageTE, LanguageENTE:
		return LanguageMode(s)
	default:
		return LanguageENTE
	}
}

// Submission is one user-initiated story. It is transient: built per request
// and discarded once the workflow completes.
type Submission struct {
	District     string       `json:"district"`
	FestivalName string       `json:"festival_name"`
	StoryText    string       `json:"story_text"`
	Language     LanguageMode `json:"language"`
	Attachment   *Attachment  `json:"attachment,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Attachment is the optional uploaded media file. RawBytes is not serialized
// into drafts; only metadata survives the intake step.
type Attachment struct {
	RawBytes     []byte    `json:"-"`
	MimeType     string    `json:"mime_type"`
	OriginalName string    `json:"original_name"`
	StoredName   string    `json:"stored_name,omitempty"`
	LocalPath    string    `json:"local_path,omitempty"`
	RemoteRef    RemoteRef `json:"remote_ref,omitempty"`
}

// RemoteRef is the durable reference returned by the object store. It is kept
// for human reference only and never re-parsed.
type RemoteRef struct {
	ID       string `json:"id,omitempty"`
	ViewLink string `json:"view_link,omitempty"`
}

// Summary carries the generated (and later user-edited) texts. In template
// mode the Telugu text is a parallel template, not a translation.
type Summary struct {
	English string `json:"english"`
	Telugu  string `json:"telugu"`
}

// Draft is the server-side submission in flight between upload and the final
// confirm. It replaces ambient session flags with explicit state.
type Draft struct {
	ID         uuid.UUID  `json:"id"`
	State      State      `json:"state"`
	Submission Submission `json:"submission"`
	Summary    Summary    `json:"summary"`
	Warnings   []string   `json:"warnings,omitempty"`
	SavedAt    *time.Time `json:"saved_at,omitempty"`
}

func (d *Draft) Warn(msg string) {
	d.Warnings = append(d.Warnings, msg)
}

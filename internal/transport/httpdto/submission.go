package httpdto

import "festfusion/internal/domain/submission"

// SubmissionResponse is the draft as handed back to the client after each
// workflow step.
type SubmissionResponse struct {
	ID             string `json:"id"`
	State          string `json:"state"`
	District       string `json:"district"`
	FestivalName   string `json:"festival_name"`
	Language       string `json:"language"`
	StoredFilename string `json:"stored_filename,omitempty"`
	OriginalName   string `json:"original_filename,omitempty"`
	StorageLink    string `json:"storage_link,omitempty"`
	EnglishSummary string `json:"english_summary"`
	TeluguSummary  string `json:"telugu_summary"`
	SavedAt        string `json:"saved_at,omitempty"`
}

type EditSummariesRequest struct {
	EnglishSummary string `json:"english_summary"`
	TeluguSummary  string `json:"telugu_summary"`
}

func FromDraft(d *submission.Draft) SubmissionResponse {
	resp := SubmissionResponse{
		ID:             d.ID.String(),
		State:          string(d.State),
		District:       d.Submission.District,
		FestivalName:   d.Submission.FestivalName,
		Language:       string(d.Submission.Language),
		EnglishSummary: d.Summary.English,
		TeluguSummary:  d.Summary.Telugu,
	}
	if att := d.Submission.Attachment; att != nil {
		resp.StoredFilename = att.StoredName
		resp.OriginalName = att.OriginalName
		resp.StorageLink = att.RemoteRef.ViewLink
	}
	if d.SavedAt != nil {
		resp.SavedAt = d.SavedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

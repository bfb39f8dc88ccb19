package storage

import (
	"context"

	"festfusion/internal/domain/submission"
)

// Archiver mirrors a locally stored attachment into the object store. It is
// the best-effort half of archival: callers downgrade its errors to warnings.
type Archiver struct {
	client *Client
}

func NewArchiver(client *Client) *Archiver {
	return &Archiver{client: client}
}

// Archive ensures the district prefix exists and uploads the attachment
// under it, returning the durable reference.
func (a *Archiver) Archive(ctx context.Context, att *submission.Attachment, district string) (submission.RemoteRef, error) {
	if err := a.client.EnsureFolder(ctx, district); err != nil {
		return submission.RemoteRef{}, err
	}

	key := district + "/" + att.StoredName
	if err := a.client.Upload(ctx, key, att.MimeType, att.RawBytes); err != nil {
		return submission.RemoteRef{}, err
	}

	return submission.RemoteRef{
		ID:       key,
		ViewLink: a.client.ViewLink(ctx, key),
	}, nil
}

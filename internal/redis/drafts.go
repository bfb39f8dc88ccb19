package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"festfusion/internal/domain/submission"
	festfusion_errors "festfusion/pkg/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Draft key pattern:
// - draft:{draft_id} - JSON draft, TTL-bound so abandoned submissions expire

// DraftStore keeps submission drafts between the upload step and the final
// confirm. The TTL bounds how long a contributor may sit on the edit step.
type DraftStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewDraftStore(client *goredis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(id uuid.UUID) string {
	return fmt.Sprintf("draft:%s", id)
}

// Save writes the draft and refreshes its TTL.
func (s *DraftStore) Save(ctx context.Context, d *submission.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(d.ID), data, s.ttl).Err()
}

// Get returns the draft or ErrDraftExpired when it is gone.
func (s *DraftStore) Get(ctx context.Context, id uuid.UUID) (*submission.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, festfusion_errors.ErrDraftExpired
		}
		return nil, err
	}
	var d submission.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, draftKey(id)).Err()
}

package autosave

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps drafts as JSON strings in Redis. Expiry is delegated to
// Redis key TTLs.
type RedisStore struct {
	client redis.UniversalClient
	opts   options
}

func NewRedisStore(client redis.UniversalClient, opts ...Option) *RedisStore {
	return &RedisStore{client: client, opts: newOptions(opts)}
}

func (s *RedisStore) Save(ctx context.Context, d Draft) error {
	if d.FormID == "" {
		return ErrEmptyFormID
	}
	d = cloneDraft(d)
	d.SavedAt = s.opts.clock.Now().UTC()

	payload, err := json.Marshal(d)
	if err != nil {
		return errors.Join(ErrInvalidDraft, err)
	}
	if err := s.client.Set(ctx, s.opts.key(d.FormID), payload, s.opts.ttl).Err(); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, formID string) (Draft, error) {
	if formID == "" {
		return Draft{}, ErrEmptyFormID
	}
	payload, err := s.client.Get(ctx, s.opts.key(formID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return Draft{}, errors.Join(ErrStorage, err)
	}

	var d Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return Draft{}, errors.Join(ErrInvalidDraft, err)
	}
	if d.Values == nil {
		d.Values = map[string]string{}
	}
	return d, nil
}

func (s *RedisStore) Delete(ctx context.Context, formID string) error {
	if formID == "" {
		return ErrEmptyFormID
	}
	if err := s.client.Del(ctx, s.opts.key(formID)).Err(); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

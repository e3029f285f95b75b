package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/Hamza-Shahid10/ENotebook-Backend/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyNotes = "notes:user:"

// NoteCache caches per-user note lists in Redis.
type NoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewNoteCache returns a new NoteCache.
func NewNoteCache(rdb *redis.Client, ttl time.Duration) *NoteCache {
	return &NoteCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached note list for a user, or nil if miss.
func (c *NoteCache) GetList(ctx context.Context, userID uuid.UUID) ([]dom.Note, error) {
	b, err := c.rdb.Get(ctx, keyNotes+userID.String()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Note
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the note list for a user. A nil list is stored as "[]",
// so a user with zero notes still reads back a non-nil hit.
func (c *NoteCache) SetList(ctx context.Context, userID uuid.UUID, list []dom.Note) error {
	if list == nil {
		list = []dom.Note{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyNotes+userID.String(), b, c.ttl).Err()
}

// Invalidate drops the cached list for a user after a mutation.
func (c *NoteCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, keyNotes+userID.String()).Err()
}

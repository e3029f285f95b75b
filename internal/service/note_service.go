package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/cache"
	dom "github.com/Hamza-Shahid10/ENotebook-Backend/internal/domain"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// Minimum lengths apply to the trimmed value, so whitespace padding
// cannot smuggle an empty field past the request binding.
const (
	minTitleLen       = 4
	minDescriptionLen = 6
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("not authorized")
	ErrInvalidID          = errors.New("invalid note id")
	ErrInvalidTitle       = errors.New("invalid title")
	ErrInvalidDescription = errors.New("invalid description")
)

// NoteService handles ownership-checked CRUD over notes.
type NoteService struct {
	repo  repo.NoteRepo
	cache *cache.NoteCache
	sf    singleflight.Group
}

// NewNoteService creates a NoteService. If c is nil, caching is disabled.
func NewNoteService(r repo.NoteRepo, c *cache.NoteCache) *NoteService {
	return &NoteService{repo: r, cache: c}
}

// ListMine returns all notes owned by userID, newest first.
func (s *NoteService) ListMine(ctx context.Context, userID uuid.UUID) ([]dom.Note, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do(userID.String(), func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Note), nil
	}
	return s.repo.ListByUser(ctx, userID)
}

// Add creates a note owned by userID. An empty tag falls back to the default.
func (s *NoteService) Add(ctx context.Context, userID uuid.UUID, title, desc, tag string) (dom.Note, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	tag = strings.TrimSpace(tag)
	if utf8.RuneCountInString(title) < minTitleLen {
		return dom.Note{}, ErrInvalidTitle
	}
	if utf8.RuneCountInString(desc) < minDescriptionLen {
		return dom.Note{}, ErrInvalidDescription
	}
	if tag == "" {
		tag = dom.DefaultTag
	}

	n, err := s.repo.Create(ctx, dom.Note{
		UserID:      userID,
		Title:       title,
		Description: desc,
		Tag:         tag,
	})
	if err != nil {
		return dom.Note{}, err
	}
	s.invalidateCache(ctx, userID)
	return n, nil
}

// Update applies the provided fields to a note owned by userID.
// Omitted fields keep their stored values.
func (s *NoteService) Update(ctx context.Context, userID uuid.UUID, rawID string, title, desc, tag *string) (dom.Note, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return dom.Note{}, ErrNotFound
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	if existing.UserID != userID {
		return dom.Note{}, ErrNotOwner
	}
	patch := existing
	if title != nil {
		t := strings.TrimSpace(*title)
		if utf8.RuneCountInString(t) < minTitleLen {
			return dom.Note{}, ErrInvalidTitle
		}
		patch.Title = t
	}
	if desc != nil {
		d := strings.TrimSpace(*desc)
		if utf8.RuneCountInString(d) < minDescriptionLen {
			return dom.Note{}, ErrInvalidDescription
		}
		patch.Description = d
	}
	if tag != nil {
		tg := strings.TrimSpace(*tag)
		if tg == "" {
			tg = dom.DefaultTag
		}
		patch.Tag = tg
	}
	n, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	s.invalidateCache(ctx, userID)
	return n, nil
}

// Delete removes a note owned by userID and returns the deleted record.
// A malformed id fails with ErrInvalidID before any store access.
func (s *NoteService) Delete(ctx context.Context, userID uuid.UUID, rawID string) (dom.Note, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return dom.Note{}, ErrInvalidID
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	if existing.UserID != userID {
		return dom.Note{}, ErrNotOwner
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	s.invalidateCache(ctx, userID)
	return n, nil
}

func (s *NoteService) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/cache"
	dom "github.com/Hamza-Shahid10/ENotebook-Backend/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNoteRepo struct {
	notes     map[uuid.UUID]dom.Note
	getCalls  int
	listCalls int
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{notes: make(map[uuid.UUID]dom.Note)}
}

func (m *memNoteRepo) Create(ctx context.Context, n dom.Note) (dom.Note, error) {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	m.notes[n.ID] = n
	return n, nil
}

func (m *memNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (dom.Note, error) {
	m.getCalls++
	n, ok := m.notes[id]
	if !ok {
		return dom.Note{}, pgx.ErrNoRows
	}
	return n, nil
}

func (m *memNoteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dom.Note, error) {
	m.listCalls++
	var out []dom.Note
	for _, n := range m.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNoteRepo) Update(ctx context.Context, id uuid.UUID, patch dom.Note) (dom.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return dom.Note{}, pgx.ErrNoRows
	}
	n.Title = patch.Title
	n.Description = patch.Description
	n.Tag = patch.Tag
	n.UpdatedAt = time.Now()
	m.notes[id] = n
	return n, nil
}

func (m *memNoteRepo) Delete(ctx context.Context, id uuid.UUID) (dom.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return dom.Note{}, pgx.ErrNoRows
	}
	delete(m.notes, id)
	return n, nil
}

func TestAddNote_DefaultTag(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)

	n, err := svc.Add(context.Background(), uuid.New(), "Shop", "Buy milk", "")
	require.NoError(t, err)
	assert.Equal(t, "General", n.Tag)
}

func TestAddNote_ExplicitTag(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)

	n, err := svc.Add(context.Background(), uuid.New(), "Shop", "Buy milk", "errands")
	require.NoError(t, err)
	assert.Equal(t, "errands", n.Tag)
}

func TestAddNote_WhitespaceTitle(t *testing.T) {
	repo := newMemNoteRepo()
	svc := NewNoteService(repo, nil)

	// Whitespace padding satisfies the raw length check but trims to empty.
	_, err := svc.Add(context.Background(), uuid.New(), "    ", "Buy milk", "")
	assert.ErrorIs(t, err, ErrInvalidTitle)
	assert.Empty(t, repo.notes)
}

func TestAddNote_WhitespaceDescription(t *testing.T) {
	repo := newMemNoteRepo()
	svc := NewNoteService(repo, nil)

	_, err := svc.Add(context.Background(), uuid.New(), "Shop", "      ", "")
	assert.ErrorIs(t, err, ErrInvalidDescription)
	assert.Empty(t, repo.notes)
}

func TestAddNote_PaddedTitleTrimmed(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)

	n, err := svc.Add(context.Background(), uuid.New(), "  Shop list  ", "Buy milk", "")
	require.NoError(t, err)
	assert.Equal(t, "Shop list", n.Title)
}

func TestListMine_OwnershipIsolation(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Add(context.Background(), alice, "Shop", "Buy milk", "")
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Shop", mine[0].Title)

	theirs, err := svc.ListMine(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestUpdateNote_Partial(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	owner := uuid.New()
	n, err := svc.Add(context.Background(), owner, "Shop", "Buy milk", "")
	require.NoError(t, err)

	tag := "errands"
	got, err := svc.Update(context.Background(), owner, n.ID.String(), nil, nil, &tag)
	require.NoError(t, err)
	assert.Equal(t, "Shop", got.Title)
	assert.Equal(t, "Buy milk", got.Description)
	assert.Equal(t, "errands", got.Tag)
}

func TestUpdateNote_WhitespaceTitle(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	owner := uuid.New()
	n, err := svc.Add(context.Background(), owner, "Shop", "Buy milk", "")
	require.NoError(t, err)

	title := "    "
	_, err = svc.Update(context.Background(), owner, n.ID.String(), &title, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidTitle)

	mine, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Shop", mine[0].Title)
}

func TestUpdateNote_WhitespaceTagFallsBack(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	owner := uuid.New()
	n, err := svc.Add(context.Background(), owner, "Shop", "Buy milk", "errands")
	require.NoError(t, err)

	tag := "   "
	got, err := svc.Update(context.Background(), owner, n.ID.String(), nil, nil, &tag)
	require.NoError(t, err)
	assert.Equal(t, dom.DefaultTag, got.Tag)
}

func TestUpdateNote_NotOwner(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	owner, intruder := uuid.New(), uuid.New()
	n, err := svc.Add(context.Background(), owner, "Shop", "Buy milk", "")
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(context.Background(), intruder, n.ID.String(), &title, nil, nil)
	assert.ErrorIs(t, err, ErrNotOwner)

	// The note is untouched.
	mine, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Shop", mine[0].Title)
}

func TestUpdateNote_NotFound(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	title := "x"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New().String(), &title, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNote_MalformedID(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	title := "x"
	_, err := svc.Update(context.Background(), uuid.New(), "not-a-uuid", &title, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNote(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	owner := uuid.New()
	n, err := svc.Add(context.Background(), owner, "Shop", "Buy milk", "")
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), owner, n.ID.String())
	require.NoError(t, err)
	assert.Equal(t, n.ID, deleted.ID)
	assert.Equal(t, "Shop", deleted.Title)

	mine, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestDeleteNote_MalformedID(t *testing.T) {
	repo := newMemNoteRepo()
	svc := NewNoteService(repo, nil)

	_, err := svc.Delete(context.Background(), uuid.New(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
	// Rejected before any store lookup.
	assert.Zero(t, repo.getCalls)
}

func TestDeleteNote_NotOwner(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	owner, intruder := uuid.New(), uuid.New()
	n, err := svc.Add(context.Background(), owner, "Shop", "Buy milk", "")
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), intruder, n.ID.String())
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDeleteNote_NotFound(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo(), nil)
	_, err := svc.Delete(context.Background(), uuid.New(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMine_CachesEmptyList(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := newMemNoteRepo()
	svc := NewNoteService(repo, cache.NewNoteCache(rdb, time.Minute))
	owner := uuid.New()

	list, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The empty result is a cache hit too: no second store read.
	list, err = svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 1, repo.listCalls)
}

func TestListMine_CacheInvalidatedOnAdd(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := newMemNoteRepo()
	svc := NewNoteService(repo, cache.NewNoteCache(rdb, time.Minute))
	owner := uuid.New()

	_, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), owner, "Shop", "Buy milk", "")
	require.NoError(t, err)

	list, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Shop", list[0].Title)
}

package repo

import (
	"context"

	dom "github.com/Hamza-Shahid10/ENotebook-Backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NoteRepo provides note persistence.
type NoteRepo interface {
	Create(ctx context.Context, n dom.Note) (dom.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (dom.Note, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dom.Note, error)
	Update(ctx context.Context, id uuid.UUID, patch dom.Note) (dom.Note, error)
	Delete(ctx context.Context, id uuid.UUID) (dom.Note, error)
}

// PGNoteRepo implements NoteRepo with Postgres.
type PGNoteRepo struct {
	db *pgxpool.Pool
}

// NewPGNoteRepo returns a new PGNoteRepo.
func NewPGNoteRepo(db *pgxpool.Pool) *PGNoteRepo {
	return &PGNoteRepo{db: db}
}

func (r *PGNoteRepo) Create(ctx context.Context, n dom.Note) (dom.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, description, tag)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, tag, created_at, updated_at`
	var out dom.Note
	err := r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Description, n.Tag).Scan(
		&out.ID, &out.UserID, &out.Title, &out.Description, &out.Tag,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (dom.Note, error) {
	query := `
		SELECT id, user_id, title, description, tag, created_at, updated_at
		FROM notes WHERE id = $1`
	var n dom.Note
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag,
		&n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func (r *PGNoteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dom.Note, error) {
	query := `
		SELECT id, user_id, title, description, tag, created_at, updated_at
		FROM notes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Note
	for rows.Next() {
		var n dom.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNoteRepo) Update(ctx context.Context, id uuid.UUID, patch dom.Note) (dom.Note, error) {
	query := `
		UPDATE notes SET title = $2, description = $3, tag = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, title, description, tag, created_at, updated_at`
	var n dom.Note
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.Description, patch.Tag).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag,
		&n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

// Delete removes the note and returns the deleted row.
func (r *PGNoteRepo) Delete(ctx context.Context, id uuid.UUID) (dom.Note, error) {
	query := `
		DELETE FROM notes WHERE id = $1
		RETURNING id, user_id, title, description, tag, created_at, updated_at`
	var n dom.Note
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag,
		&n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

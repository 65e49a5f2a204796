package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=bookmark_repository.go -destination=../mocks/store/mock_bookmark_repository.go -package=mock_store

// BookmarkRepository defines operations for managing bookmarks and their
// review schedule fields.
type BookmarkRepository interface {
	Find(ctx context.Context, id int64) (Bookmark, error)
	FindAll(ctx context.Context) ([]Bookmark, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]Bookmark, error)
	Create(ctx context.Context, bookmark *Bookmark) error
	Delete(ctx context.Context, id int64) error
	UpdateReviewSchedule(ctx context.Context, id int64, lastReviewedAt, nextReviewAt time.Time) error
	// ListDue returns bookmarks whose next review is at or before now, plus
	// bookmarks that have never been reviewed. Never-reviewed bookmarks sort
	// first, then ascending next review time, then ascending creation time.
	// A limit of 0 means no limit.
	ListDue(ctx context.Context, now time.Time, limit int) ([]Bookmark, error)
}

// DBBookmarkRepository implements BookmarkRepository using MySQL.
type DBBookmarkRepository struct {
	db *sqlx.DB
}

func NewDBBookmarkRepository(db *sqlx.DB) *DBBookmarkRepository {
	return &DBBookmarkRepository{db: db}
}

func (r *DBBookmarkRepository) Find(ctx context.Context, id int64) (Bookmark, error) {
	var bookmark Bookmark
	err := r.db.GetContext(ctx, &bookmark, "SELECT * FROM bookmarks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Bookmark{}, fmt.Errorf("bookmark %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Bookmark{}, fmt.Errorf("load bookmark %d: %w", id, err)
	}
	return bookmark, nil
}

func (r *DBBookmarkRepository) FindAll(ctx context.Context) ([]Bookmark, error) {
	var bookmarks []Bookmark
	if err := r.db.SelectContext(ctx, &bookmarks, "SELECT * FROM bookmarks ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("load all bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *DBBookmarkRepository) FindByCategory(ctx context.Context, categoryID int64) ([]Bookmark, error) {
	var bookmarks []Bookmark
	err := r.db.SelectContext(ctx, &bookmarks,
		"SELECT * FROM bookmarks WHERE category_id = ? ORDER BY created_at, id", categoryID)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks for category %d: %w", categoryID, err)
	}
	return bookmarks, nil
}

func (r *DBBookmarkRepository) Create(ctx context.Context, bookmark *Bookmark) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO bookmarks (title, url, content, category_id, created_at) VALUES (?, ?, ?, ?, ?)",
		bookmark.Title, bookmark.URL, bookmark.Content, bookmark.CategoryID, bookmark.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bookmark: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("bookmark insert id: %w", err)
	}
	bookmark.ID = id
	return nil
}

// Delete removes a bookmark; questions, attempts and answers cascade.
func (r *DBBookmarkRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark %d rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("bookmark %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *DBBookmarkRepository) UpdateReviewSchedule(ctx context.Context, id int64, lastReviewedAt, nextReviewAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bookmarks SET last_reviewed_at = ?, next_review_at = ? WHERE id = ?",
		lastReviewedAt, nextReviewAt, id,
	)
	if err != nil {
		return fmt.Errorf("update review schedule for bookmark %d: %w", id, err)
	}
	if _, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("update review schedule rows affected: %w", err)
	}
	return nil
}

func (r *DBBookmarkRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]Bookmark, error) {
	query := `SELECT * FROM bookmarks
		WHERE next_review_at <= ? OR (next_review_at IS NULL AND last_reviewed_at IS NULL)
		ORDER BY (next_review_at IS NULL) DESC, next_review_at ASC, created_at ASC, id ASC`
	args := []interface{}{now}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var bookmarks []Bookmark
	if err := r.db.SelectContext(ctx, &bookmarks, query, args...); err != nil {
		return nil, fmt.Errorf("load due bookmarks: %w", err)
	}
	return bookmarks, nil
}

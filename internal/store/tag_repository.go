package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=tag_repository.go -destination=../mocks/store/mock_tag_repository.go -package=mock_store

// TagRepository defines lookups over tags and their bookmark links.
type TagRepository interface {
	FindAll(ctx context.Context) ([]Tag, error)
	FindByBookmark(ctx context.Context, bookmarkID int64) ([]Tag, error)
	Ensure(ctx context.Context, name string) (Tag, error)
	Attach(ctx context.Context, bookmarkID, tagID int64) error
}

// DBTagRepository implements TagRepository using MySQL.
type DBTagRepository struct {
	db *sqlx.DB
}

func NewDBTagRepository(db *sqlx.DB) *DBTagRepository {
	return &DBTagRepository{db: db}
}

func (r *DBTagRepository) FindAll(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := r.db.SelectContext(ctx, &tags, "SELECT * FROM tags ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all tags: %w", err)
	}
	return tags, nil
}

func (r *DBTagRepository) FindByBookmark(ctx context.Context, bookmarkID int64) ([]Tag, error) {
	var tags []Tag
	err := r.db.SelectContext(ctx, &tags,
		`SELECT t.id, t.name FROM tags t
		JOIN bookmark_tags bt ON bt.tag_id = t.id
		WHERE bt.bookmark_id = ? ORDER BY t.id`, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("load tags for bookmark %d: %w", bookmarkID, err)
	}
	return tags, nil
}

// Ensure returns the tag with the given name, creating it if needed.
func (r *DBTagRepository) Ensure(ctx context.Context, name string) (Tag, error) {
	var tag Tag
	err := r.db.GetContext(ctx, &tag, "SELECT * FROM tags WHERE name = ?", name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Tag{}, fmt.Errorf("load tag %q: %w", name, err)
	}

	result, err := r.db.ExecContext(ctx, "INSERT INTO tags (name) VALUES (?)", name)
	if err != nil {
		return Tag{}, fmt.Errorf("insert tag %q: %w", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Tag{}, fmt.Errorf("tag insert id: %w", err)
	}
	return Tag{ID: id, Name: name}, nil
}

func (r *DBTagRepository) Attach(ctx context.Context, bookmarkID, tagID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO bookmark_tags (bookmark_id, tag_id) VALUES (?, ?)", bookmarkID, tagID)
	if err != nil {
		return fmt.Errorf("attach tag %d to bookmark %d: %w", tagID, bookmarkID, err)
	}
	return nil
}

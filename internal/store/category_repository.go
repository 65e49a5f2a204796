package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=category_repository.go -destination=../mocks/store/mock_category_repository.go -package=mock_store

// CategoryRepository defines lookups over categories. Categories matter to
// the core only as grouping keys for analytics.
type CategoryRepository interface {
	Find(ctx context.Context, id int64) (Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Ensure(ctx context.Context, name string) (Category, error)
}

// DBCategoryRepository implements CategoryRepository using MySQL.
type DBCategoryRepository struct {
	db *sqlx.DB
}

func NewDBCategoryRepository(db *sqlx.DB) *DBCategoryRepository {
	return &DBCategoryRepository{db: db}
}

func (r *DBCategoryRepository) Find(ctx context.Context, id int64) (Category, error) {
	var category Category
	err := r.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Category{}, fmt.Errorf("load category %d: %w", id, err)
	}
	return category, nil
}

func (r *DBCategoryRepository) FindAll(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.SelectContext(ctx, &categories, "SELECT * FROM categories ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all categories: %w", err)
	}
	return categories, nil
}

// Ensure returns the category with the given name, creating it if needed.
func (r *DBCategoryRepository) Ensure(ctx context.Context, name string) (Category, error) {
	var category Category
	err := r.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE name = ?", name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Category{}, fmt.Errorf("load category %q: %w", name, err)
	}

	result, err := r.db.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return Category{}, fmt.Errorf("insert category %q: %w", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Category{}, fmt.Errorf("category insert id: %w", err)
	}
	return Category{ID: id, Name: name}, nil
}

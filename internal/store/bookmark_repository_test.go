package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookmarkRepository(t *testing.T) (*DBBookmarkRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDBBookmarkRepository(sqlx.NewDb(db, "mysql")), mock
}

func bookmarkColumns() []string {
	return []string{"id", "title", "url", "content", "category_id", "last_reviewed_at", "next_review_at", "created_at"}
}

func TestDBBookmarkRepository_Find(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      Bookmark
		wantErr   error
	}{
		{
			name: "returns the bookmark",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(bookmarkColumns()).
					AddRow(1, "Indexes", "https://example.com/indexes", nil, nil, nil, nil, now)
				mock.ExpectQuery("SELECT \\* FROM bookmarks WHERE id = \\?").
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			want: Bookmark{ID: 1, Title: "Indexes", URL: "https://example.com/indexes", CreatedAt: now},
		},
		{
			name: "missing bookmark",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM bookmarks WHERE id = \\?").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows(bookmarkColumns()))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newBookmarkRepository(t)
			tt.setupMock(mock)

			got, err := repo.Find(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBBookmarkRepository_ListDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	overdue := time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		limit     int
		setupMock func(mock sqlmock.Sqlmock)
		wantIDs   []int64
		wantErr   bool
	}{
		{
			name:  "never reviewed sorts before overdue",
			limit: 5,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(bookmarkColumns()).
					AddRow(2, "New", "https://example.com/new", nil, nil, nil, nil, created).
					AddRow(1, "Overdue", "https://example.com/overdue", nil, nil, overdue, overdue, created)
				mock.ExpectQuery("SELECT \\* FROM bookmarks\\s+WHERE next_review_at <= \\? OR \\(next_review_at IS NULL AND last_reviewed_at IS NULL\\)\\s+ORDER BY \\(next_review_at IS NULL\\) DESC, next_review_at ASC, created_at ASC, id ASC LIMIT \\?").
					WithArgs(now, 5).
					WillReturnRows(rows)
			},
			wantIDs: []int64{2, 1},
		},
		{
			name:  "zero limit queries without LIMIT",
			limit: 0,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM bookmarks\\s+WHERE next_review_at <= \\? OR \\(next_review_at IS NULL AND last_reviewed_at IS NULL\\)\\s+ORDER BY \\(next_review_at IS NULL\\) DESC, next_review_at ASC, created_at ASC, id ASC$").
					WithArgs(now).
					WillReturnRows(sqlmock.NewRows(bookmarkColumns()))
			},
			wantIDs: nil,
		},
		{
			name:  "db error",
			limit: 5,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM bookmarks").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newBookmarkRepository(t)
			tt.setupMock(mock)

			got, err := repo.ListDue(context.Background(), now, tt.limit)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			gotIDs := make([]int64, 0, len(got))
			for _, bookmark := range got {
				gotIDs = append(gotIDs, bookmark.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, gotIDs)
			} else {
				assert.Equal(t, tt.wantIDs, gotIDs)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBBookmarkRepository_Create(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	repo, mock := newBookmarkRepository(t)
	mock.ExpectExec("INSERT INTO bookmarks \\(title, url, content, category_id, created_at\\) VALUES \\(\\?, \\?, \\?, \\?, \\?\\)").
		WithArgs("Indexes", "https://example.com/indexes", nil, nil, now).
		WillReturnResult(sqlmock.NewResult(7, 1))

	bookmark := &Bookmark{Title: "Indexes", URL: "https://example.com/indexes", CreatedAt: now}
	require.NoError(t, repo.Create(context.Background(), bookmark))
	assert.Equal(t, int64(7), bookmark.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBBookmarkRepository_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "deletes the bookmark",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM bookmarks WHERE id = \\?").
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing bookmark",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM bookmarks WHERE id = \\?").
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newBookmarkRepository(t)
			tt.setupMock(mock)

			err := repo.Delete(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBBookmarkRepository_UpdateReviewSchedule(t *testing.T) {
	lastReviewed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	nextReview := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	repo, mock := newBookmarkRepository(t)
	mock.ExpectExec("UPDATE bookmarks SET last_reviewed_at = \\?, next_review_at = \\? WHERE id = \\?").
		WithArgs(lastReviewed, nextReview, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateReviewSchedule(context.Background(), 1, lastReviewed, nextReview)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

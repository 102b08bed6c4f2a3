package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// ListNotices returns one page of notices matching the optional category
// and keyword filters, plus the total number of matches for pagination.
// Pinned notices sort first, then newest first.
func (r *Repository) ListNotices(
	ctx context.Context,
	page, size int,
	category, keyword string,
) ([]models.Notice, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM public.notices
		WHERE ($1 = '' OR category = $1)
			AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%');
	`

	var total int
	if err := r.db.QueryRow(ctx, countQuery, category, keyword).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}

	listQuery := `
		SELECT notice_id, title, content, category, pinned, created_at, updated_at
		FROM public.notices
		WHERE ($1 = '' OR category = $1)
			AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
		ORDER BY pinned DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`

	offset := (page - 1) * size
	rows, err := r.db.Query(ctx, listQuery, category, keyword, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	notices, err := scanNotices(rows)
	if err != nil {
		return nil, 0, err
	}

	return notices, total, nil
}

// PinnedNotices returns the notices pinned to the top of the site,
// newest first.
func (r *Repository) PinnedNotices(ctx context.Context) ([]models.Notice, error) {
	query := `
		SELECT notice_id, title, content, category, pinned, created_at, updated_at
		FROM public.notices
		WHERE pinned = true
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pinned notices: %w", err)
	}
	defer rows.Close()

	return scanNotices(rows)
}

// GetNotice returns a single notice by id, or ErrNotFound.
func (r *Repository) GetNotice(ctx context.Context, noticeID int) (models.Notice, error) {
	query := `
		SELECT notice_id, title, content, category, pinned, created_at, updated_at
		FROM public.notices
		WHERE notice_id = $1;
	`

	var notice models.Notice
	err := r.db.QueryRow(ctx, query, noticeID).Scan(
		&notice.ID, &notice.Title, &notice.Content, &notice.Category,
		&notice.Pinned, &notice.CreatedAt, &notice.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Notice{}, ErrNotFound
		}
		return models.Notice{}, fmt.Errorf("failed to get notice: %w", err)
	}

	return notice, nil
}

// CreateNotice inserts a notice and returns its generated id.
func (r *Repository) CreateNotice(ctx context.Context, notice models.Notice) (int, error) {
	query := `
		INSERT INTO public.notices (title, content, category, pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING notice_id;
	`

	var noticeID int
	err := r.db.QueryRow(ctx, query, notice.Title, notice.Content, notice.Category, notice.Pinned).
		Scan(&noticeID)
	if err != nil {
		return 0, fmt.Errorf("failed to create notice: %w", err)
	}

	return noticeID, nil
}

// UpdateNotice replaces the editable fields of a notice.
func (r *Repository) UpdateNotice(ctx context.Context, notice models.Notice) error {
	query := `
		UPDATE public.notices
		SET title = $1, content = $2, category = $3, updated_at = NOW()
		WHERE notice_id = $4;
	`

	tag, err := r.db.Exec(ctx, query, notice.Title, notice.Content, notice.Category, notice.ID)
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteNotice removes a notice by id.
func (r *Repository) DeleteNotice(ctx context.Context, noticeID int) error {
	query := `DELETE FROM public.notices WHERE notice_id = $1;`

	tag, err := r.db.Exec(ctx, query, noticeID)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SetNoticePinned pins or unpins a notice.
func (r *Repository) SetNoticePinned(ctx context.Context, noticeID int, pinned bool) error {
	query := `
		UPDATE public.notices
		SET pinned = $1, updated_at = NOW()
		WHERE notice_id = $2;
	`

	tag, err := r.db.Exec(ctx, query, pinned, noticeID)
	if err != nil {
		return fmt.Errorf("failed to update notice pin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanNotices(rows pgx.Rows) ([]models.Notice, error) {
	var notices []models.Notice
	for rows.Next() {
		var notice models.Notice
		err := rows.Scan(
			&notice.ID, &notice.Title, &notice.Content, &notice.Category,
			&notice.Pinned, &notice.CreatedAt, &notice.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return notices, nil
}

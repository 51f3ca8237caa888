package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/models"
)

// tagRepository is the PostgreSQL-backed implementation of [TagRepository].
type tagRepository struct {
	*DB
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	return &tagRepository{
		DB:     db,
		logger: logger,
	}
}

// ListTags retrieves all tags owned by userID, ordered by name.
func (r *tagRepository) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listTags, userID)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.ListTags").
			Int64("user_id", userID).
			Msg("failed to execute query for listing tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, 20)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Name); err != nil {
			log.Err(err).
				Str("func", "tagRepository.ListTags").
				Int64("user_id", userID).
				Msg("failed to scan tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// GetOrCreateTag atomically finds or inserts the (userID, name) tag row.
//
// The INSERT carries ON CONFLICT (user_id, name) DO NOTHING with a
// RETURNING clause: the winning writer gets the new row back in one
// statement, a losing (or repeat) caller gets no row and falls back to
// re-reading the existing one. Name matching is exact — no trimming or
// case folding is applied at any layer.
func (r *tagRepository) GetOrCreateTag(ctx context.Context, userID int64, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	err := r.DB.QueryRowContext(ctx, insertTagIfAbsent, userID, name).
		Scan(&tag.ID, &tag.UserID, &tag.Name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "tagRepository.GetOrCreateTag").
			Int64("user_id", userID).
			Str("name", name).
			Msg("failed conditional tag insert")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// insert was a no-op: the row already exists, fetch it
	err = r.DB.QueryRowContext(ctx, findTagByName, userID, name).
		Scan(&tag.ID, &tag.UserID, &tag.Name)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.GetOrCreateTag").
			Int64("user_id", userID).
			Str("name", name).
			Msg("failed to re-read existing tag")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tag, nil
}

// UpdateTag renames the tag keyed by (tag.ID, tag.UserID).
//
// Returns [ErrTagNotFound] when the keyed row does not exist.
func (r *tagRepository) UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var updated models.Tag
	err := r.DB.QueryRowContext(ctx, updateTag, tag.Name, tag.ID, tag.UserID).
		Scan(&updated.ID, &updated.UserID, &updated.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}
		log.Err(err).
			Str("func", "tagRepository.UpdateTag").
			Int64("user_id", tag.UserID).
			Int64("tag_id", tag.ID).
			Msg("failed to update tag")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteTag removes the tag keyed by (tagID, userID). Attached join rows
// are removed by the cascade constraint.
//
// Returns [ErrTagNotFound] when no row was deleted.
func (r *tagRepository) DeleteTag(ctx context.Context, userID, tagID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteTag, tagID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.DeleteTag").
			Int64("user_id", userID).
			Int64("tag_id", tagID).
			Msg("failed to delete tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}

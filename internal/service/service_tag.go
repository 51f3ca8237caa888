package service

import (
	"context"
	"fmt"

	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/models"
)

// tagService is the concrete implementation of TagService.
type tagService struct {
	tagRepository store.TagRepository
	logger        *logger.Logger
}

// NewTagService constructs a TagService over the given repository.
func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

// ListTags returns the caller's tags ordered by name.
func (t *tagService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	tags, err := t.tagRepository.ListTags(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("tag listing ended with error")
		return nil, fmt.Errorf("tag listing ended with error: %w", err)
	}

	return tags, nil
}

// RenameTag changes the name of one owned tag. The rename is visible in
// every recipe the tag is attached to.
//
// Returns ErrInvalidDataProvided for an empty name and
// store.ErrTagNotFound when (tagID, userID) matches no row.
func (t *tagService) RenameTag(ctx context.Context, userID, tagID int64, name string) (models.Tag, error) {
	if name == "" {
		return models.Tag{}, ErrInvalidDataProvided
	}

	return t.tagRepository.UpdateTag(ctx, models.Tag{
		ID:     tagID,
		UserID: userID,
		Name:   name,
	})
}

// DeleteTag removes one owned tag; join rows referencing it are detached by
// the storage layer.
func (t *tagService) DeleteTag(ctx context.Context, userID, tagID int64) error {
	return t.tagRepository.DeleteTag(ctx, userID, tagID)
}

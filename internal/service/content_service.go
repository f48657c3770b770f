package service

import (
	"context"
	"fmt"

	"github.com/outliner-coach/letmeknowme/internal/cache"
	"github.com/outliner-coach/letmeknowme/internal/logger"
	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/repository"
)

// ContentService serves the display content table with a Redis read-through cache
type ContentService struct {
	contentRepo  repository.ContentRepo
	contentCache cache.ContentCache
	log          *logger.Logger
}

// NewContentService creates a new content service
func NewContentService(contentRepo repository.ContentRepo, contentCache cache.ContentCache, log *logger.Logger) *ContentService {
	return &ContentService{
		contentRepo:  contentRepo,
		contentCache: contentCache,
		log:          log.Component("service.content"),
	}
}

// Get returns the content table. Cache failures are logged and bypassed.
func (s *ContentService) Get(ctx context.Context) (model.Content, error) {
	content, err := s.contentCache.Get(ctx)
	if err != nil {
		s.log.WithError(err).Warn("content cache read failed")
	}
	if content != nil {
		return content, nil
	}

	content, err = s.contentRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := s.contentCache.Set(ctx, content); err != nil {
		s.log.WithError(err).Warn("content cache write failed")
	}
	return content, nil
}

// Update upserts keys and drops the cached copy
func (s *ContentService) Update(ctx context.Context, content model.Content) error {
	if err := s.contentRepo.Upsert(ctx, content); err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	if err := s.contentCache.Invalidate(ctx); err != nil {
		s.log.WithError(err).Warn("content cache invalidate failed")
	}
	s.log.WithField("keys", len(content)).Info("content updated")
	return nil
}

package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "devhub-server/internal/domain/catalog"
	"devhub-server/internal/infrastructure/database/entities"
	"devhub-server/internal/utils/platformerrors"
)

// Repository handles catalog persistence through gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SearchResults returns records whose title, description or category contains
// the query case-insensitively, newest first. Ties keep storage order, which
// is stable within a single query.
func (r *Repository) SearchResults(ctx context.Context, query string) ([]domain.SearchResult, error) {
	pattern := "%" + query + "%"
	var rows []entities.SearchResult
	err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to search catalog",
			err,
			"8c1f4a7b-2d3e-4f5a-9b0c-1d2e3f4a5b6c",
		)
	}
	return mapSearchResults(rows), nil
}

// AllResults lists every catalog record, newest first.
func (r *Repository) AllResults(ctx context.Context) ([]domain.SearchResult, error) {
	var rows []entities.SearchResult
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list catalog",
			err,
			"2b4d6e8f-0a1c-4e5d-8f9a-3c5e7a9b1d2f",
		)
	}
	return mapSearchResults(rows), nil
}

// Resources lists catalog resources, newest first.
func (r *Repository) Resources(ctx context.Context) ([]domain.Resource, error) {
	var rows []entities.Resource
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list resources",
			err,
			"5a7c9e1b-3d5f-4a6b-8c0d-2e4f6a8b0c1d",
		)
	}

	resources := make([]domain.Resource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, domain.Resource{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			URL:         row.URL,
			Category:    row.Category,
			CreatedAt:   row.CreatedAt,
		})
	}
	return resources, nil
}

// LearningPaths lists all paths with steps ordered ascending, newest first.
func (r *Repository) LearningPaths(ctx context.Context) ([]domain.LearningPath, error) {
	var rows []entities.LearningPath
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list learning paths",
			err,
			"9d1f3a5c-7e9b-4c2d-8a4f-6b8d0e2f4a5c",
		)
	}

	paths := make([]domain.LearningPath, 0, len(rows))
	for _, row := range rows {
		paths = append(paths, mapLearningPath(row))
	}
	return paths, nil
}

// LearningPathBySkill finds the first path matching the skill
// case-insensitively. Returns nil, nil when no path matches.
func (r *Repository) LearningPathBySkill(ctx context.Context, skill string) (*domain.LearningPath, error) {
	var row entities.LearningPath
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Where("skill ILIKE ?", skill).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find learning path by skill",
			err,
			"4e6a8c0d-2f4b-4d6e-9a1c-5b7d9f1a3c5e",
		)
	}

	path := mapLearningPath(row)
	return &path, nil
}

func mapSearchResults(rows []entities.SearchResult) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domain.SearchResult{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			URL:         row.URL,
			Category:    row.Category,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return results
}

func mapLearningPath(row entities.LearningPath) domain.LearningPath {
	steps := make([]domain.LearningStep, 0, len(row.Steps))
	for _, step := range row.Steps {
		steps = append(steps, domain.LearningStep{
			ID:             step.ID,
			Title:          step.Title,
			Description:    step.Description,
			Order:          step.StepOrder,
			Resources:      step.Resources,
			EstimatedHours: step.EstimatedHours,
		})
	}
	return domain.LearningPath{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Skill:       row.Skill,
		Icon:        row.Icon,
		Difficulty:  row.Difficulty,
		Duration:    row.Duration,
		Steps:       steps,
		CreatedAt:   row.CreatedAt,
	}
}

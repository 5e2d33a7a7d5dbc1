package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"golfpoi/internal/models/db_models"
	"golfpoi/internal/models/response_models"
	"golfpoi/internal/repositories"
	"golfpoi/pkg/utils"
)

type CategoryServiceInterface interface {
	// ResolveByProvince binds a submitted province string to its category.
	// Exact match only; unknown provinces fail with ErrCategoryNotFound.
	ResolveByProvince(ctx context.Context, province string) (*db_models.Category, error)

	Create(ctx context.Context, province, counties string, actorID uuid.UUID) (*db_models.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID, actorID uuid.UUID) error
	List(ctx context.Context, actorID uuid.UUID) ([]response_models.CategoryResponse, error)

	// ListAll is the ungated variant used to populate the course edit form.
	ListAll(ctx context.Context) ([]response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepo   repositories.CategoryRepository
	accountService AccountServiceInterface
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	accountService AccountServiceInterface) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo:   categoryRepo,
		accountService: accountService,
	}
}

func (s *CategoryService) ResolveByProvince(ctx context.Context, province string) (*db_models.Category, error) {
	category, err := s.categoryRepo.FindByProvince(ctx, province)
	if err != nil {
		log.Printf("Error resolving province %q: %v", province, err)
		return nil, utils.ErrDatabaseError
	}

	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, province, counties string, actorID uuid.UUID) (*db_models.Category, error) {
	actor, err := s.accountService.RequireAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}

	province = strings.TrimSpace(province)
	if province == "" {
		validation := utils.NewValidationError()
		validation.Add("province", "province is required")
		return nil, validation
	}

	existing, err := s.categoryRepo.FindByProvince(ctx, province)
	if err != nil {
		log.Printf("Error checking province %q: %v", province, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrProvinceAlreadyExists
	}

	category := &db_models.Category{
		Province:        province,
		ValidCounties:   strings.Fields(counties),
		LastUpdatedByID: actor.ID,
	}

	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		log.Printf("Error creating category: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return category, nil
}

// Delete removes the category only. Courses referencing it keep a now
// dangling category id; every read path tolerates the absent category.
func (s *CategoryService) Delete(ctx context.Context, categoryID uuid.UUID, actorID uuid.UUID) error {
	if _, err := s.accountService.RequireAdmin(ctx, actorID); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		log.Printf("Error deleting category: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *CategoryService) List(ctx context.Context, actorID uuid.UUID) ([]response_models.CategoryResponse, error) {
	if _, err := s.accountService.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.ListAll(ctx)
}

func (s *CategoryService) ListAll(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response_models.CategoryResponse{
			ID:            category.ID.String(),
			Province:      category.Province,
			ValidCounties: category.ValidCounties,
			LastUpdatedBy: category.LastUpdatedBy.Name,
		})
	}

	return responses, nil
}

package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"golfpoi/internal/repositories"
	"golfpoi/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(
	categoryRepo repositories.CategoryRepository,
	accountService services.AccountServiceInterface) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, accountService)
}

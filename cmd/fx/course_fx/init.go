package course_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"golfpoi/internal/infra"
	"golfpoi/internal/repositories"
	"golfpoi/internal/services"
)

var Module = fx.Provide(
	provideCourseRepo, provideCourseService)

func provideCourseRepo(db *gorm.DB) repositories.CourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideCourseService(
	courseRepo repositories.CourseRepository,
	categoryService services.CategoryServiceInterface,
	galleryService services.GalleryServiceInterface,
	weatherService services.WeatherServiceInterface,
	imageStore infra.ImageStore) services.CourseServiceInterface {
	return services.NewCourseService(courseRepo, categoryService, galleryService, weatherService, imageStore)
}

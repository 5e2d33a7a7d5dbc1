package controllers_fx

import (
	"go.uber.org/fx"

	"golfpoi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCourseController),
	fx.Provide(controllers.NewGalleryController),
	fx.Provide(controllers.NewCategoryController))

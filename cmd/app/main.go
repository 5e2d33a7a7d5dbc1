package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"golfpoi/cmd/fx/account_fx"
	"golfpoi/cmd/fx/category_fx"
	"golfpoi/cmd/fx/controllers_fx"
	"golfpoi/cmd/fx/course_fx"
	"golfpoi/cmd/fx/db_fx"
	"golfpoi/cmd/fx/gallery_fx"
	"golfpoi/cmd/fx/weather_fx"
	"golfpoi/internal/api/controllers"
	"golfpoi/internal/infra"
	"golfpoi/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		category_fx.Module,
		gallery_fx.Module,
		weather_fx.Module,
		course_fx.Module,
		controllers_fx.Module,

		fx.Invoke(Migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	courseController *controllers.CourseController,
	galleryController *controllers.GalleryController,
	categoryController *controllers.CategoryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, courseController, galleryController, categoryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	courseController *controllers.CourseController,
	galleryController *controllers.GalleryController,
	categoryController *controllers.CategoryController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	courseGroup := r.Group("/courses")
	courseGroup.Use(middleware.JWTAuthMiddleware())
	courseGroup.GET("", courseController.Report)
	courseGroup.POST("", courseController.CreateCourse)
	courseGroup.GET("/:courseId", courseController.GetCourse)
	courseGroup.PUT("/:courseId", courseController.UpdateCourse)
	courseGroup.DELETE("/:courseId", courseController.DeleteCourse)
	courseGroup.POST("/:courseId/images", galleryController.UploadImage)
	courseGroup.DELETE("/:courseId/images/:imageId", galleryController.DeleteImage)

	// Admin capability is enforced in the services, not here; the
	// middleware only establishes identity.
	categoryGroup := r.Group("/categories")
	categoryGroup.Use(middleware.JWTAuthMiddleware())
	categoryGroup.GET("", categoryController.ListCategories)
	categoryGroup.POST("", categoryController.CreateCategory)
	categoryGroup.DELETE("/:categoryId", categoryController.DeleteCategory)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware())
	adminGroup.GET("/users", accountController.ManageUsers)
}

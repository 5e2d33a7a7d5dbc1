package gallery_fx

import (
	"os"

	"go.uber.org/fx"

	"golfpoi/internal/infra"
	"golfpoi/internal/repositories"
	"golfpoi/internal/services"
)

var Module = fx.Provide(
	provideImageStore, provideGalleryService)

// provideImageStore builds the explicit config here, in the composition
// root, so the client itself never reads the environment.
func provideImageStore() infra.ImageStore {
	return infra.NewImageStoreClient(infra.ImageStoreConfig{
		BaseURL: os.Getenv("IMAGE_STORE_URL"),
		APIKey:  os.Getenv("IMAGE_STORE_API_KEY"),
	})
}

func provideGalleryService(
	courseRepo repositories.CourseRepository,
	imageStore infra.ImageStore) services.GalleryServiceInterface {
	return services.NewGalleryService(courseRepo, imageStore)
}

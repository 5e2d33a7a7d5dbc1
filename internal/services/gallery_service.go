package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"golfpoi/internal/infra"
	"golfpoi/internal/models/db_models"
	"golfpoi/internal/models/response_models"
	"golfpoi/internal/repositories"
	"golfpoi/pkg/utils"
)

// GalleryServiceInterface reconciles a course's related_images list with
// the external blob store. Store failures are returned to the caller,
// never swallowed.
type GalleryServiceInterface interface {
	Attach(ctx context.Context, courseID uuid.UUID, upload []byte) (*db_models.Course, error)
	Detach(ctx context.Context, courseID uuid.UUID, imageID string) error
	Materialize(ctx context.Context, imageIDs []string, courseID uuid.UUID) ([]response_models.CourseImage, error)
}

type GalleryService struct {
	courseRepo repositories.CourseRepository
	imageStore infra.ImageStore
}

func NewGalleryService(
	courseRepo repositories.CourseRepository,
	imageStore infra.ImageStore) GalleryServiceInterface {
	return &GalleryService{
		courseRepo: courseRepo,
		imageStore: imageStore,
	}
}

// Attach uploads the binary and appends the minted identifier to the
// course's list. A zero-length upload is a successful no-op. If the append
// fails after the upload succeeded the blob is orphaned in the store; no
// course ever references it, so the course itself stays consistent.
func (g *GalleryService) Attach(ctx context.Context, courseID uuid.UUID, upload []byte) (*db_models.Course, error) {
	course, err := g.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if course == nil {
		return nil, utils.ErrCourseNotFound
	}

	if len(upload) == 0 {
		return course, nil
	}

	imageID, err := g.imageStore.Upload(ctx, upload)
	if err != nil {
		return nil, err
	}

	if err := g.courseRepo.AppendImage(ctx, courseID, imageID); err != nil {
		log.Printf("Orphaned image %s: course update failed: %v", imageID, err)
		return nil, utils.ErrDatabaseError
	}

	course.RelatedImages = append(course.RelatedImages, imageID)
	return course, nil
}

// Detach deletes the blob first, then drops the identifier from the list.
// If the second step fails the list keeps a dangling reference, which the
// next gallery view skips rather than failing on.
func (g *GalleryService) Detach(ctx context.Context, courseID uuid.UUID, imageID string) error {
	course, err := g.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return utils.ErrDatabaseError
	}
	if course == nil {
		return utils.ErrCourseNotFound
	}

	if err := g.imageStore.Delete(ctx, imageID); err != nil {
		return err
	}

	if err := g.courseRepo.RemoveImage(ctx, courseID, imageID); err != nil {
		log.Printf("Dangling image reference %s on course %s: %v", imageID, courseID, err)
		return utils.ErrDatabaseError
	}

	return nil
}

// Materialize fetches display metadata for each identifier. An empty or
// nil list yields an empty slice, never an error.
func (g *GalleryService) Materialize(ctx context.Context, imageIDs []string, courseID uuid.UUID) ([]response_models.CourseImage, error) {
	if len(imageIDs) == 0 {
		return []response_models.CourseImage{}, nil
	}

	infos, err := g.imageStore.GetImages(ctx, imageIDs)
	if err != nil {
		return nil, err
	}

	images := make([]response_models.CourseImage, 0, len(infos))
	for _, info := range infos {
		images = append(images, response_models.CourseImage{
			ID:       info.ID,
			CourseID: courseID.String(),
			URL:      info.URL,
			Width:    info.Width,
			Height:   info.Height,
		})
	}

	return images, nil
}

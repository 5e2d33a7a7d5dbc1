package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"golfpoi/internal/models/db_models"
	"golfpoi/internal/models/request_models"
	"golfpoi/internal/models/response_models"
	"golfpoi/internal/repositories"
	"golfpoi/pkg/utils"
)

// CourseServiceInterface is the aggregate root for golf-course records.
// Any resolvable identity may mutate courses; the author stamp records who
// acted, it is not a permission check.
type CourseServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateCourseRequest, actorID uuid.UUID) (*db_models.Course, error)
	Update(ctx context.Context, courseID uuid.UUID, req request_models.UpdateCourseRequest, actorID uuid.UUID) (*db_models.Course, error)
	Delete(ctx context.Context, courseID uuid.UUID) error
	ListAll(ctx context.Context) (response_models.CourseReport, error)
	GetDetail(ctx context.Context, courseID uuid.UUID) (*response_models.CourseDetail, error)
}

type CourseService struct {
	courseRepo      repositories.CourseRepository
	categoryService CategoryServiceInterface
	galleryService  GalleryServiceInterface
	weatherService  WeatherServiceInterface
	imageCleaner    ImageCleaner
}

// ImageCleaner is the slice of the image store that course deletion needs
// for best-effort blob cleanup.
type ImageCleaner interface {
	Delete(ctx context.Context, imageID string) error
}

func NewCourseService(
	courseRepo repositories.CourseRepository,
	categoryService CategoryServiceInterface,
	galleryService GalleryServiceInterface,
	weatherService WeatherServiceInterface,
	imageCleaner ImageCleaner) CourseServiceInterface {
	return &CourseService{
		courseRepo:      courseRepo,
		categoryService: categoryService,
		galleryService:  galleryService,
		weatherService:  weatherService,
		imageCleaner:    imageCleaner,
	}
}

func validateCoursePayload(name, description, province string, longitude, latitude *float64) error {
	validation := utils.NewValidationError()

	if strings.TrimSpace(name) == "" {
		validation.Add("name", "name is required")
	}
	if strings.TrimSpace(description) == "" {
		validation.Add("description", "description is required")
	}
	if strings.TrimSpace(province) == "" {
		validation.Add("province", "province is required")
	}

	// Coordinates are optional, but only as a pair.
	if (longitude == nil) != (latitude == nil) {
		validation.Add("location", "longitude and latitude must be supplied together")
	}

	if validation.HasErrors() {
		return validation
	}
	return nil
}

func (s *CourseService) Create(ctx context.Context, req request_models.CreateCourseRequest, actorID uuid.UUID) (*db_models.Course, error) {
	if err := validateCoursePayload(req.Name, req.Description, req.Province, req.Longitude, req.Latitude); err != nil {
		return nil, err
	}

	category, err := s.categoryService.ResolveByProvince(ctx, req.Province)
	if err != nil {
		return nil, err
	}

	course := &db_models.Course{
		Name:            req.Name,
		Description:     req.Description,
		Longitude:       req.Longitude,
		Latitude:        req.Latitude,
		CategoryID:      &category.ID,
		LastUpdatedByID: actorID,
		RelatedImages:   []string{},
	}

	if _, err := s.courseRepo.Create(ctx, course); err != nil {
		log.Printf("Error creating course: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return course, nil
}

func (s *CourseService) Update(ctx context.Context, courseID uuid.UUID, req request_models.UpdateCourseRequest, actorID uuid.UUID) (*db_models.Course, error) {
	if err := validateCoursePayload(req.Name, req.Description, req.Province, req.Longitude, req.Latitude); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if course == nil {
		return nil, utils.ErrCourseNotFound
	}

	// Re-resolve the category only when the submitted province differs from
	// the bound one, or no category is bound at all. A failed resolution
	// aborts before any field is overwritten.
	if course.Category == nil || course.Category.Province != req.Province {
		category, err := s.categoryService.ResolveByProvince(ctx, req.Province)
		if err != nil {
			return nil, err
		}
		course.CategoryID = &category.ID
		course.Category = category
	}

	course.Name = req.Name
	course.Description = req.Description
	course.Longitude = req.Longitude
	course.Latitude = req.Latitude
	course.LastUpdatedByID = actorID

	if err := s.courseRepo.Update(ctx, course); err != nil {
		log.Printf("Error updating course: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return course, nil
}

// Delete removes the record, then cleans the external blobs best-effort.
// A failed blob delete leaves an orphan in the store; it is logged rather
// than resurrecting the course.
func (s *CourseService) Delete(ctx context.Context, courseID uuid.UUID) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return utils.ErrDatabaseError
	}
	if course == nil {
		return utils.ErrCourseNotFound
	}

	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		log.Printf("Error deleting course: %v", err)
		return utils.ErrDatabaseError
	}

	for _, imageID := range course.RelatedImages {
		if err := s.imageCleaner.Delete(ctx, imageID); err != nil {
			log.Printf("Orphaned image %s after deleting course %s: %v", imageID, courseID, err)
		}
	}

	return nil
}

func (s *CourseService) ListAll(ctx context.Context) (response_models.CourseReport, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return response_models.CourseReport{}, utils.ErrDatabaseError
	}

	count, err := s.courseRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting courses: %v", err)
		return response_models.CourseReport{}, utils.ErrDatabaseError
	}

	summaries := make([]response_models.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summary := response_models.CourseSummary{
			ID:            course.ID.String(),
			Name:          course.Name,
			Description:   course.Description,
			Longitude:     course.Longitude,
			Latitude:      course.Latitude,
			LastUpdatedBy: course.LastUpdatedBy.Name,
			ImageCount:    len(course.RelatedImages),
		}
		if course.Category != nil {
			summary.Province = course.Category.Province
		}
		summaries = append(summaries, summary)
	}

	return response_models.CourseReport{
		Courses:     summaries,
		CourseCount: count,
	}, nil
}

// GetDetail composes the course, its tolerated-absent category, the
// materialized gallery, the category list for the edit form, and a
// best-effort weather snapshot when the course is located.
func (s *CourseService) GetDetail(ctx context.Context, courseID uuid.UUID) (*response_models.CourseDetail, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if course == nil {
		return nil, utils.ErrCourseNotFound
	}

	images, err := s.galleryService.Materialize(ctx, course.RelatedImages, course.ID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryService.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	detail := &response_models.CourseDetail{
		ID:            course.ID.String(),
		Name:          course.Name,
		Description:   course.Description,
		Longitude:     course.Longitude,
		Latitude:      course.Latitude,
		LastUpdatedBy: course.LastUpdatedBy.Name,
		Categories:    categories,
		Images:        images,
	}

	if course.Category != nil {
		detail.Category = &response_models.CategoryResponse{
			ID:            course.Category.ID.String(),
			Province:      course.Category.Province,
			ValidCounties: course.Category.ValidCounties,
		}
		detail.CurrentProvince = course.Category.Province
	}

	if course.HasLocation() {
		detail.Weather = s.weatherService.Fetch(ctx, *course.Longitude, *course.Latitude)
	}

	return detail, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"golfpoi/internal/models/db_models"
)

type CourseRepository interface {
	Create(ctx context.Context, course *db_models.Course) (uuid.UUID, error)
	Update(ctx context.Context, course *db_models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Course, error)
	List(ctx context.Context) ([]db_models.Course, error)
	Count(ctx context.Context) (int64, error)

	// AppendImage and RemoveImage mutate related_images in a single UPDATE
	// so two concurrent gallery edits on the same course cannot lose each
	// other's writes.
	AppendImage(ctx context.Context, courseID uuid.UUID, imageID string) error
	RemoveImage(ctx context.Context, courseID uuid.UUID, imageID string) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *db_models.Course) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return uuid.Nil, err
	}
	return course.ID, nil
}

func (r *courseRepository) Update(ctx context.Context, course *db_models.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The course arrives with Category and LastUpdatedBy preloaded. A
		// plain Save would re-save those associations and overwrite the
		// restamped foreign keys from their primary keys, so persist the
		// course row only.
		result := tx.Omit(clause.Associations).Save(course)
		if result.Error != nil {
			return fmt.Errorf("failed to update course: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Course{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return default value + nil error when no rows are found.

func (r *courseRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("LastUpdatedBy").
		First(&course, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("LastUpdatedBy").
		Order("created_at asc").
		Find(&courses).Error

	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Course{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *courseRepository) AppendImage(ctx context.Context, courseID uuid.UUID, imageID string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Course{}).
		Where("id = ?", courseID).
		Update("related_images", gorm.Expr(
			"array_append(coalesce(related_images, '{}'), ?)", imageID))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *courseRepository) RemoveImage(ctx context.Context, courseID uuid.UUID, imageID string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Course{}).
		Where("id = ?", courseID).
		Update("related_images", gorm.Expr("array_remove(related_images, ?)", imageID))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

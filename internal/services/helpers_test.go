package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"golfpoi/internal/infra"
	"golfpoi/internal/models/db_models"
	"golfpoi/internal/models/response_models"
)

type fakeCourseRepo struct {
	courses map[uuid.UUID]*db_models.Course
	order   []uuid.UUID

	createErr error
	updateErr error
	appendErr error
	removeErr error

	saves int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[uuid.UUID]*db_models.Course{}}
}

func (f *fakeCourseRepo) put(course *db_models.Course) {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	f.courses[course.ID] = course
	f.order = append(f.order, course.ID)
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *db_models.Course) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.put(course)
	f.saves++
	return course.ID, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *db_models.Course) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.courses[course.ID]; !ok {
		return fmt.Errorf("course %s not found", course.ID)
	}
	f.courses[course.ID] = course
	f.saves++
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.courses, id)
	return nil
}

// GetByID returns a copy, like a fresh row scan would.
func (f *fakeCourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, nil
	}
	copied := *course
	copied.RelatedImages = append([]string(nil), course.RelatedImages...)
	return &copied, nil
}

func (f *fakeCourseRepo) List(ctx context.Context) ([]db_models.Course, error) {
	courses := make([]db_models.Course, 0, len(f.courses))
	for _, id := range f.order {
		if course, ok := f.courses[id]; ok {
			courses = append(courses, *course)
		}
	}
	return courses, nil
}

func (f *fakeCourseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.courses)), nil
}

func (f *fakeCourseRepo) AppendImage(ctx context.Context, courseID uuid.UUID, imageID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	course, ok := f.courses[courseID]
	if !ok {
		return fmt.Errorf("course %s not found", courseID)
	}
	course.RelatedImages = append(course.RelatedImages, imageID)
	return nil
}

func (f *fakeCourseRepo) RemoveImage(ctx context.Context, courseID uuid.UUID, imageID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	course, ok := f.courses[courseID]
	if !ok {
		return fmt.Errorf("course %s not found", courseID)
	}
	kept := course.RelatedImages[:0]
	for _, id := range course.RelatedImages {
		if id != imageID {
			kept = append(kept, id)
		}
	}
	course.RelatedImages = kept
	return nil
}

type fakeCategoryRepo struct {
	categories []*db_models.Category
	findCalls  int
	insertErr  error
}

func (f *fakeCategoryRepo) Insert(ctx context.Context, category *db_models.Category) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.categories[:0]
	for _, category := range f.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	f.categories = kept
	return nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]db_models.Category, error) {
	categories := make([]db_models.Category, 0, len(f.categories))
	for _, category := range f.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) FindByProvince(ctx context.Context, province string) (*db_models.Category, error) {
	f.findCalls++
	for _, category := range f.categories {
		if category.Province == province {
			copied := *category
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeAccountRepo struct {
	accounts []*db_models.Account
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) List(ctx context.Context) ([]db_models.Account, error) {
	accounts := make([]db_models.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

type fakeImageStore struct {
	blobs   map[string]infra.ImageInfo
	nextID  int
	deleted []string

	uploadErr error
	deleteErr error
	getErr    error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{blobs: map[string]infra.ImageInfo{}}
}

func (f *fakeImageStore) Upload(ctx context.Context, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.nextID++
	id := fmt.Sprintf("img-%d", f.nextID)
	f.blobs[id] = infra.ImageInfo{
		ID:     id,
		URL:    "https://images.example/" + id,
		Width:  800,
		Height: 600,
	}
	return id, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, imageID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.blobs, imageID)
	f.deleted = append(f.deleted, imageID)
	return nil
}

func (f *fakeImageStore) GetImages(ctx context.Context, imageIDs []string) ([]infra.ImageInfo, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	infos := make([]infra.ImageInfo, 0, len(imageIDs))
	for _, id := range imageIDs {
		if info, ok := f.blobs[id]; ok {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

type stubWeatherService struct {
	report *response_models.WeatherReport
	calls  int
}

func (s *stubWeatherService) Fetch(ctx context.Context, longitude, latitude float64) *response_models.WeatherReport {
	s.calls++
	return s.report
}

// newTestAccounts seeds one admin and one regular account.
func newTestAccounts() (*fakeAccountRepo, *db_models.Account, *db_models.Account) {
	repo := &fakeAccountRepo{}
	admin := &db_models.Account{Name: "Maggie", Email: "maggie@example.com", AdminUser: true}
	regular := &db_models.Account{Name: "Homer", Email: "homer@example.com"}
	_ = repo.Insert(context.Background(), admin)
	_ = repo.Insert(context.Background(), regular)
	return repo, admin, regular
}

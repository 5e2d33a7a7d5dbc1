package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"golfpoi/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// One connection, or each pooled conn would see its own empty :memory: db.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&db_models.Account{}, &db_models.Category{}, &db_models.Course{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, name, email string, admin bool) *db_models.Account {
	t.Helper()
	account := &db_models.Account{Name: name, Email: email, AdminUser: admin}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return account
}

// The update path loads a course with its Category and LastUpdatedBy
// preloaded, restamps LastUpdatedByID, and saves. The restamped foreign key
// must win over the preloaded association structs.
func TestUpdatePersistsRestampedAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	alice := seedAccount(t, db, "Alice", "alice@example.com", true)
	bob := seedAccount(t, db, "Bob", "bob@example.com", false)

	leinster := &db_models.Category{Province: "Leinster", LastUpdatedByID: alice.ID}
	if err := db.Create(leinster).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	course := &db_models.Course{
		Name:            "Links End",
		Description:     "Seaside 18",
		CategoryID:      &leinster.ID,
		LastUpdatedByID: alice.ID,
		RelatedImages:   []string{},
	}
	if _, err := repo.Create(ctx, course); err != nil {
		t.Fatalf("create course: %v", err)
	}

	loaded, err := repo.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("load course: %v", err)
	}
	if loaded == nil || loaded.LastUpdatedBy.ID != alice.ID {
		t.Fatalf("expected preloaded prior author, got %+v", loaded)
	}

	loaded.Name = "Links End West"
	loaded.LastUpdatedByID = bob.ID
	if err := repo.Update(ctx, loaded); err != nil {
		t.Fatalf("update course: %v", err)
	}

	var persisted db_models.Course
	if err := db.First(&persisted, "id = ?", course.ID).Error; err != nil {
		t.Fatalf("reload course: %v", err)
	}
	if persisted.LastUpdatedByID != bob.ID {
		t.Fatalf("author stamp lost: expected %s, got %s", bob.ID, persisted.LastUpdatedByID)
	}
	if persisted.Name != "Links End West" {
		t.Fatalf("expected overwritten name, got %q", persisted.Name)
	}
	if persisted.CategoryID == nil || *persisted.CategoryID != leinster.ID {
		t.Fatalf("category reference must survive the update, got %v", persisted.CategoryID)
	}
}

func TestUpdateMissingCourse(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepository(db)

	ghost := &db_models.Course{Name: "Ghost", Description: "Gone"}
	ghost.ID = uuid.New()

	err := repo.Update(context.Background(), ghost)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

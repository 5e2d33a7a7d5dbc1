package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"golfpoi/internal/models/db_models"
	"golfpoi/pkg/utils"
)

func newCategoryFixture() (*fakeCategoryRepo, CategoryServiceInterface, *db_models.Account, *db_models.Account) {
	accountRepo, admin, regular := newTestAccounts()
	categoryRepo := &fakeCategoryRepo{}
	service := NewCategoryService(categoryRepo, NewAccountService(accountRepo))
	return categoryRepo, service, admin, regular
}

func TestResolveByProvinceExactMatch(t *testing.T) {
	categoryRepo, service, admin, _ := newCategoryFixture()
	leinster := &db_models.Category{Province: "Leinster", LastUpdatedByID: admin.ID}
	_ = categoryRepo.Insert(context.Background(), leinster)

	category, err := service.ResolveByProvince(context.Background(), "Leinster")
	if err != nil {
		t.Fatalf("resolve province: %v", err)
	}
	if category.ID != leinster.ID {
		t.Fatalf("expected category %s, got %s", leinster.ID, category.ID)
	}
}

func TestResolveByProvinceUnknown(t *testing.T) {
	_, service, _, _ := newCategoryFixture()

	_, err := service.ResolveByProvince(context.Background(), "Connacht")
	if !errors.Is(err, utils.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCreateCategorySplitsCounties(t *testing.T) {
	categoryRepo, service, admin, _ := newCategoryFixture()

	category, err := service.Create(context.Background(), "Leinster", "  Dublin   Wicklow Wexford ", admin.ID)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	want := []string{"Dublin", "Wicklow", "Wexford"}
	if !reflect.DeepEqual([]string(category.ValidCounties), want) {
		t.Fatalf("expected counties %v, got %v", want, category.ValidCounties)
	}
	if category.LastUpdatedByID != admin.ID {
		t.Fatalf("expected author %s, got %s", admin.ID, category.LastUpdatedByID)
	}
	if len(categoryRepo.categories) != 1 {
		t.Fatalf("expected 1 persisted category, got %d", len(categoryRepo.categories))
	}
}

func TestCreateCategoryDuplicateProvince(t *testing.T) {
	categoryRepo, service, admin, _ := newCategoryFixture()
	_ = categoryRepo.Insert(context.Background(), &db_models.Category{Province: "Munster"})

	_, err := service.Create(context.Background(), "Munster", "Cork Kerry", admin.ID)
	if !errors.Is(err, utils.ErrProvinceAlreadyExists) {
		t.Fatalf("expected ErrProvinceAlreadyExists, got %v", err)
	}
	if len(categoryRepo.categories) != 1 {
		t.Fatalf("expected duplicate to be rejected, store has %d categories", len(categoryRepo.categories))
	}
}

func TestCreateCategoryBlankProvince(t *testing.T) {
	_, service, admin, _ := newCategoryFixture()

	_, err := service.Create(context.Background(), "   ", "Cork", admin.ID)
	var validation *utils.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := validation.Fields["province"]; !ok {
		t.Fatalf("expected province field detail, got %v", validation.Fields)
	}
}

func TestCategoryManagementRequiresAdmin(t *testing.T) {
	categoryRepo, service, _, regular := newCategoryFixture()
	existing := &db_models.Category{Province: "Ulster"}
	_ = categoryRepo.Insert(context.Background(), existing)

	if _, err := service.Create(context.Background(), "Leinster", "Dublin", regular.ID); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on create, got %v", err)
	}
	if err := service.Delete(context.Background(), existing.ID, regular.ID); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on delete, got %v", err)
	}
	if _, err := service.List(context.Background(), regular.ID); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on list, got %v", err)
	}

	if len(categoryRepo.categories) != 1 || categoryRepo.categories[0].ID != existing.ID {
		t.Fatal("category store must be unchanged after unauthorized attempts")
	}
}

func TestCategoryManagementUnknownActor(t *testing.T) {
	_, service, _, _ := newCategoryFixture()

	if _, err := service.Create(context.Background(), "Leinster", "Dublin", uuid.New()); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown actor, got %v", err)
	}
}

func TestDeleteCategoryDoesNotCascade(t *testing.T) {
	categoryRepo, service, admin, _ := newCategoryFixture()
	category := &db_models.Category{Province: "Leinster"}
	_ = categoryRepo.Insert(context.Background(), category)

	if err := service.Delete(context.Background(), category.ID, admin.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if len(categoryRepo.categories) != 0 {
		t.Fatalf("expected empty store, got %d categories", len(categoryRepo.categories))
	}
}

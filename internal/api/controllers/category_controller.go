package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"golfpoi/internal/models/request_models"
	"golfpoi/internal/services"
	"golfpoi/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	categories, err := cc.categoryService.List(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), req.Province, req.Counties, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": category.ID.String()}, "Category created successfully")
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := cc.categoryService.Delete(c.Request.Context(), categoryID, actor); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"golfpoi/internal/models/request_models"
	"golfpoi/internal/services"
	"golfpoi/pkg/utils"
)

type CourseController struct {
	courseService services.CourseServiceInterface
}

func NewCourseController(courseService services.CourseServiceInterface) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// actorID pulls the authenticated identity the JWT middleware stored.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid identity")
		return uuid.Nil, false
	}
	return id, true
}

func courseParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid course id")
		return uuid.Nil, false
	}
	return id, true
}

func (cc *CourseController) Report(c *gin.Context) {
	report, err := cc.courseService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Courses fetched successfully")
}

func (cc *CourseController) CreateCourse(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	course, err := cc.courseService.Create(c.Request.Context(), req, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": course.ID.String()}, "Course created successfully")
}

func (cc *CourseController) GetCourse(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}

	detail, err := cc.courseService.GetDetail(c.Request.Context(), courseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Course fetched successfully")
}

func (cc *CourseController) UpdateCourse(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	courseID, ok := courseParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	course, err := cc.courseService.Update(c.Request.Context(), courseID, req, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": course.ID.String()}, "Course updated successfully")
}

func (cc *CourseController) DeleteCourse(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}

	if err := cc.courseService.Delete(c.Request.Context(), courseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Course deleted successfully")
}

package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"golfpoi/internal/services"
	"golfpoi/pkg/utils"
)

// maxUploadBytes caps a single image upload at 200MB.
const maxUploadBytes = 200 << 20

type GalleryController struct {
	galleryService services.GalleryServiceInterface
}

func NewGalleryController(galleryService services.GalleryServiceInterface) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// UploadImage reads the multipart "imagefile" field and attaches it to the
// course. An empty file is a successful no-op, mirroring the form flow
// where the user submits without choosing a file.
func (gc *GalleryController) UploadImage(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}

	var upload []byte
	fileHeader, err := c.FormFile("imagefile")
	if err == nil && fileHeader.Size > 0 {
		if fileHeader.Size > maxUploadBytes {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, "Image exceeds the upload limit")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Could not read the uploaded file")
			return
		}
		defer file.Close()

		upload, err = io.ReadAll(file)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Could not read the uploaded file")
			return
		}
	}

	course, err := gc.galleryService.Attach(c.Request.Context(), courseID, upload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"id":             course.ID.String(),
		"related_images": course.RelatedImages,
	}, "Image uploaded successfully")
}

func (gc *GalleryController) DeleteImage(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}

	imageID := c.Param("imageId")
	if imageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Image id is required")
		return
	}

	if err := gc.galleryService.Detach(c.Request.Context(), courseID, imageID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Image deleted successfully")
}

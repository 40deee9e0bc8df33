// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-api/internal/services"
	"github.com/shopora/storefront-api/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /uploads/images (admin, multipart)
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "File upload failed", err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded", nil)
		return
	}

	folder := c.DefaultPostForm("folder", "products")
	options := h.storageService.GetDefaultUploadOptions(folder)

	var uploaded []services.UploadResult
	var failed []string

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			failed = append(failed, fileHeader.Filename)
			continue
		}

		result, err := h.storageService.UploadImage(file, fileHeader, options)
		file.Close()

		if err != nil {
			failed = append(failed, fileHeader.Filename)
			continue
		}

		uploaded = append(uploaded, *result)
	}

	utils.SuccessResponse(c, gin.H{
		"images": uploaded,
		"failed": failed,
	})
}

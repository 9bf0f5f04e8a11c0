package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/thefaderoom/faderoom-api/internal/audit"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/middleware"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// ======================================================
// HANDLER
// ======================================================

type GalleryHandler struct {
	db         *gorm.DB
	uploader   *storage.Uploader
	dispatcher *audit.Dispatcher
}

func NewGalleryHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	dispatcher *audit.Dispatcher,
) *GalleryHandler {
	return &GalleryHandler{db: db, uploader: uploader, dispatcher: dispatcher}
}

// ======================================================
// UPLOAD
// ======================================================

func (h *GalleryHandler) Upload(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the 10 MiB limit.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the uploaded file.")
		return
	}
	defer src.Close()

	key := fmt.Sprintf("gallery/%s.webp", uuid.NewString())

	url, err := h.uploader.UploadImage(c.Request.Context(), key, src)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("gallery upload failed")
		httperr.BadRequest(c, "upload_failed", "Could not process the image.")
		return
	}

	var position int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.GalleryImage{}).
		Count(&position)

	img := models.GalleryImage{
		ObjectKey: key,
		URL:       url,
		Title:     c.PostForm("title"),
		Position:  int(position),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&img).Error; err != nil {
		httperr.Internal(c, "upload_failed", "Could not save the image record.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "gallery_image_uploaded",
		Entity:   "gallery_image",
		EntityID: &img.ID,
		Metadata: gin.H{"object_key": key},
	})

	c.JSON(http.StatusCreated, img)
}

// ======================================================
// DELETE
// ======================================================

func (h *GalleryHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid image id.")
		return
	}

	var img models.GalleryImage
	if err := h.db.WithContext(c.Request.Context()).
		First(&img, uint(id)).Error; err != nil {

		httperr.NotFound(c, "image_not_found", "Image not found.")
		return
	}

	if err := h.uploader.Delete(c.Request.Context(), img.ObjectKey); err != nil {
		// The row is kept so the dashboard still shows the entry and the
		// delete can be retried.
		log.Error().Err(err).Str("key", img.ObjectKey).Msg("gallery object delete failed")
		httperr.Internal(c, "delete_failed", "Could not delete the stored image.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&img).Error; err != nil {
		httperr.Internal(c, "delete_failed", "Could not delete the image record.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "gallery_image_deleted",
		Entity:   "gallery_image",
		EntityID: &img.ID,
		Metadata: gin.H{"object_key": img.ObjectKey},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

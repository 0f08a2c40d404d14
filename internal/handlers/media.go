package handlers

import (
	"errors"
	"net/http"

	"github.com/vedp205/chronos-home/internal/auth"
	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/dto"
	"github.com/vedp205/chronos-home/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single media upload at 512 MiB.
const maxUploadBytes = 512 << 20

type MediaHandler struct {
	svc *service.MediaService
}

func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// Upload godoc
// @Summary      Upload a media file
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     CookieAuth
// @Param        file  formData  file  true  "Media file"
// @Success      201   {object}  dto.MediaResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	userID := auth.UserIDFromContext(c)
	m, err := h.svc.Upload(c.Request.Context(), userID, fh.Filename, contentType, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload media"})
		return
	}
	c.JSON(http.StatusCreated, h.mediaToResponse(m))
}

// List godoc
// @Summary      List media files
// @Tags         media
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListMediaResponse
// @Failure      500  {object}  map[string]string
// @Router       /media [get]
func (h *MediaHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list media"})
		return
	}
	out := make([]dto.MediaResponse, len(list))
	for i := range list {
		out[i] = h.mediaToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListMediaResponse{Items: out})
}

// Stream godoc
// @Summary      Stream a media file with Range support
// @Tags         media
// @Produce      octet-stream
// @Security     CookieAuth
// @Param        id   path  int  true  "Media ID"
// @Success      200
// @Success      206
// @Failure      404  {object}  map[string]string
// @Router       /media/{id}/stream [get]
func (h *MediaHandler) Stream(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	m, f, err := h.svc.Open(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stream media"})
		return
	}
	defer f.Close()

	// ServeContent handles Range requests, which is what lets a media
	// element seek without downloading the whole file.
	c.Header("Content-Type", m.ContentType)
	http.ServeContent(c.Writer, c.Request, m.Name, m.CreatedAt, f)
}

// Delete godoc
// @Summary      Delete a media file
// @Tags         media
// @Security     CookieAuth
// @Param        id   path  int  true  "Media ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /media/{id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete media"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MediaHandler) mediaToResponse(m dom.MediaFile) dto.MediaResponse {
	return dto.MediaResponse{
		ID:          m.ID,
		Name:        m.Name,
		ContentType: m.ContentType,
		Size:        m.Size,
		URL:         h.svc.PublicURL(m),
		CreatedAt:   m.CreatedAt,
	}
}

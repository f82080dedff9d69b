package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/gallery"
	"devhub-server/internal/infrastructure/metrics"
	"devhub-server/internal/interfaces/httpserver/responses"
)

// GalleryHandler exposes the image gallery endpoints.
type GalleryHandler struct {
	cfg     *config.Config
	service *gallery.Service
	proxy   *resty.Client
	log     zerolog.Logger
}

func NewGalleryHandler(cfg *config.Config, service *gallery.Service, log zerolog.Logger) *GalleryHandler {
	proxy := resty.New().
		SetTimeout(30 * time.Second).
		SetDoNotParseResponse(true)

	return &GalleryHandler{
		cfg:     cfg,
		service: service,
		proxy:   proxy,
		log:     log.With().Str("component", "gallery-handler").Logger(),
	}
}

// List returns all gallery images, newest first. Always 200; storage
// failures yield an empty list.
func (h *GalleryHandler) List(c *gin.Context) {
	images := h.service.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// Upload accepts a multipart image and stores it under a generated key.
func (h *GalleryHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxUploadBytes+1))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read upload body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	result, err := h.service.Upload(c.Request.Context(), header.Filename, data)
	if err != nil {
		metrics.RecordUpload(header.Header.Get("Content-Type"), "error", 0)
		if errors.Is(err, gallery.ErrNotImage) ||
			errors.Is(err, gallery.ErrEmptyFile) ||
			errors.Is(err, gallery.ErrTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("upload failed")
		responses.HandleError(c, err, "failed to store image")
		return
	}

	metrics.RecordUpload(result.ContentType, "success", int64(len(data)))
	c.JSON(http.StatusOK, gin.H{"url": result.URL, "key": result.Key})
}

type deleteImageRequest struct {
	Key      string `json:"key" binding:"required"`
	Password string `json:"password"`
}

// Delete removes an image. The client is expected to drop the image from its
// view optimistically; a non-2xx response tells it to restore.
func (h *GalleryHandler) Delete(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}
	if !passwordMatches(h.cfg.AdminPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.Key); err != nil {
		if errors.Is(err, gallery.ErrOutsideScope) || errors.Is(err, gallery.ErrEmptyKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("key", req.Key).Msg("delete failed")
		responses.HandleError(c, err, "failed to delete image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": req.Key})
}

type renameImageRequest struct {
	Key      string `json:"key" binding:"required"`
	NewKey   string `json:"newKey" binding:"required"`
	Password string `json:"password"`
}

// Rename copies the object to the new key, then deletes the old one. When
// the delete phase fails both keys still exist; the response says so, the
// client must not assume the old key is gone.
func (h *GalleryHandler) Rename(c *gin.Context) {
	var req renameImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key and newKey are required"})
		return
	}
	if !passwordMatches(h.cfg.AdminPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	result, err := h.service.Rename(c.Request.Context(), req.Key, req.NewKey)
	if err != nil {
		var renameErr *gallery.RenameError
		if errors.As(err, &renameErr) {
			status := http.StatusInternalServerError
			body := gin.H{
				"error":   renameErr.Error(),
				"phase":   string(renameErr.Phase),
				"copied":  result.Copied,
				"deleted": result.Deleted,
			}
			if renameErr.Phase == gallery.RenamePhaseDelete {
				body["warning"] = "copy succeeded but the original was not removed; both keys exist"
			}
			c.JSON(status, body)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":     result.NewKey,
		"url":     h.service.PublicURL(result.NewKey),
		"copied":  result.Copied,
		"deleted": result.Deleted,
	})
}

// Download serves an image as an attachment so the browser can save it
// without CORS restrictions. URLs under the gallery's public base are read
// from storage directly; anything else is proxied, propagating the upstream
// status on failure.
func (h *GalleryHandler) Download(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url must be absolute http or https"})
		return
	}

	// Objects in our own bucket are streamed straight from storage.
	if key, ok := h.bucketKey(rawURL); ok {
		h.downloadFromStorage(c, key)
		return
	}

	resp, err := h.proxy.R().SetContext(c.Request.Context()).Get(rawURL)
	if err != nil {
		h.log.Error().Err(err).Str("url", rawURL).Msg("download proxy failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch file"})
		return
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.JSON(resp.StatusCode(), gin.H{"error": fmt.Sprintf("upstream returned status %d", resp.StatusCode())})
		return
	}

	filename := path.Base(parsed.Path)
	if filename == "" || filename == "/" || filename == "." {
		filename = "download"
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		h.log.Error().Err(err).Msg("stream error")
	}
}

// bucketKey maps a public gallery URL back to its object key. Returns false
// for URLs outside the configured public base.
func (h *GalleryHandler) bucketKey(rawURL string) (string, bool) {
	base := h.cfg.S3PublicURL + "/"
	if h.cfg.S3PublicURL == "" || !strings.HasPrefix(rawURL, base) {
		return "", false
	}
	key := strings.TrimPrefix(rawURL, base)
	return key, key != ""
}

func (h *GalleryHandler) downloadFromStorage(c *gin.Context, key string) {
	body, contentType, err := h.service.Download(c.Request.Context(), key)
	if err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("storage download failed")
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	defer body.Close()

	filename := path.Base(key)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		h.log.Error().Err(err).Msg("stream error")
	}
}

// DownloadPreflight answers the CORS preflight for the download proxy.
func (h *GalleryHandler) DownloadPreflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Status(http.StatusNoContent)
}

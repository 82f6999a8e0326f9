package handlers

import (
	"gallery-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gallerySvc *services.GalleryService
}

func New(gallerySvc *services.GalleryService) *Handler {
	return &Handler{gallerySvc: gallerySvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Gallery
	r.GET("/gallery", h.GetGallery)

	// Exhibits
	r.GET("/exhibits", h.ListExhibits)
	r.POST("/pull", h.PullExhibit)
}

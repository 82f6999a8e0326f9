package handlers

import (
	"fmt"
	"net/http"

	"gallery-service/internal/adapters/primary/http/dto"
	"gallery-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetGallery(c *gin.Context) {
	info, err := h.gallerySvc.Info(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("get gallery failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGalleryReply(info))
}

func (h *Handler) ListExhibits(c *gin.Context) {
	exhibits, err := h.gallerySvc.ListExhibits(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list exhibits failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExhibitsReply(exhibits))
}

func (h *Handler) PullExhibit(c *gin.Context) {
	var req dto.PullRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidExhibitID.Error()})
		return
	}

	exhibit, action, err := h.gallerySvc.Pull(c.Request.Context(), *req.ExhibitID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PullReply{
		Message: pullMessage(exhibit.Source.Title, action),
		Exhibit: dto.ToExhibit(*exhibit),
	})
}

func pullMessage(title string, action domain.SyncAction) string {
	switch action {
	case domain.SyncCloned:
		return fmt.Sprintf("exhibit %q cloned", title)
	case domain.SyncUpdated:
		return fmt.Sprintf("exhibit %q updated", title)
	default:
		return fmt.Sprintf("exhibit %q is up to date", title)
	}
}

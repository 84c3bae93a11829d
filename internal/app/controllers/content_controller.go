package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ncc-portal/backend/internal/app/services"
	"github.com/ncc-portal/backend/internal/middleware"
)

// ContentController serves the public informational lists
type ContentController struct {
	contentService services.ContentService
	logger         zerolog.Logger
}

// NewContentController creates a new ContentController
func NewContentController(contentService services.ContentService, logger zerolog.Logger) *ContentController {
	return &ContentController{
		contentService: contentService,
		logger:         logger,
	}
}

// Events lists upcoming and past events, soonest first
// @Summary List events
// @Tags content
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (c *ContentController) Events(ctx *gin.Context) {
	events, err := c.contentService.Events(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list events")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// Gallery lists gallery items, newest first
// @Summary List gallery items
// @Tags content
// @Produce json
// @Success 200 {array} models.GalleryItem
// @Router /gallery [get]
func (c *ContentController) Gallery(ctx *gin.Context) {
	items, err := c.contentService.Gallery(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list gallery")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// News lists published news items, newest first
// @Summary List news
// @Tags content
// @Produce json
// @Success 200 {array} models.NewsItem
// @Router /news [get]
func (c *ContentController) News(ctx *gin.Context) {
	items, err := c.contentService.News(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list news")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// FAQs lists frequently asked questions in display order
// @Summary List FAQs
// @Tags content
// @Produce json
// @Success 200 {array} models.FAQ
// @Router /faqs [get]
func (c *ContentController) FAQs(ctx *gin.Context) {
	faqs, err := c.contentService.FAQs(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list faqs")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, faqs)
}

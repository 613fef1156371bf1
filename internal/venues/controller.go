package venues

import (
	"errors"
	"net/http"
	"strconv"

	"venuehub/internal/shared/utils/response"
	"venuehub/internal/shared/utils/validation"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) List(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := c.service.List(ctx.Request.Context(), page)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list venues")
		return
	}

	response.List(ctx, ToResponseList(result.Venues), response.Meta{
		CurrentPage: result.Page,
		PerPage:     result.PerPage,
		Total:       result.TotalCount,
		LastPage:    result.LastPage,
	})
}

func (c *Controller) Get(ctx *gin.Context) {
	venue, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get venue")
		return
	}

	response.Item(ctx, http.StatusOK, venue.ToResponse())
}

func (c *Controller) Create(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(ctx, validation.FieldErrors(err))
		return
	}

	venue, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create venue")
		return
	}

	response.Item(ctx, http.StatusCreated, venue.ToResponse())
}

func (c *Controller) Update(ctx *gin.Context) {
	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(ctx, validation.FieldErrors(err))
		return
	}

	venue, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update venue")
		return
	}

	response.Item(ctx, http.StatusOK, venue.ToResponse())
}

func (c *Controller) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete venue")
		return
	}

	response.NoContent(ctx)
}

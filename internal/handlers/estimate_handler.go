package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"wave-estimates-backend/internal/dto/request"
	"wave-estimates-backend/internal/dto/response"
	"wave-estimates-backend/internal/receipt"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	service IEstimateService
}

func NewEstimateHandler(service IEstimateService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

// List handles GET /estimates with optional status, type, customer, search,
// date_from and date_to filters.
func (h *EstimateHandler) List(c *gin.Context) {
	var q request.EstimateListQuery
	if !bindQuery(c, &q) {
		return
	}

	estimates, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// Get accepts either the numeric id or the estimate number.
func (h *EstimateHandler) Get(c *gin.Context) {
	est, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(*est))
}

func (h *EstimateHandler) Create(c *gin.Context) {
	var req request.EstimateCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	est, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(*est))
}

func (h *EstimateHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.EstimateUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	est, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(*est))
}

func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	var req request.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	est, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(*est))
}

func (h *EstimateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) Events(c *gin.Context) {
	events, err := h.service.Events(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateEvents(events))
}

// Receipt streams the estimate as a PDF attachment.
func (h *EstimateHandler) Receipt(c *gin.Context) {
	est, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}

	var buf bytes.Buffer
	if err := receipt.Render(&buf, est, time.Now()); err != nil {
		respondError(c, internalError(fmt.Errorf("render receipt %s: %w", est.Number, err)))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", receipt.Filename(est)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

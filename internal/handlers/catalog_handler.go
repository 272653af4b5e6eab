package handler

import (
	"net/http"

	"wave-estimates-backend/internal/dto/request"
	"wave-estimates-backend/internal/dto/response"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service ICustomerService
}

func NewCustomerHandler(service ICustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(*customer))
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CustomerCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(*customer))
}

type ItemHandler struct {
	service IItemService
}

func NewItemHandler(service IItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(*item))
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req request.ItemCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromItem(*item))
}

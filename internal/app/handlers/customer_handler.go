package handlers

import (
	"net/http"

	"supportapi/internal/pkg/models"
	"supportapi/internal/service/customers"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service *customers.CustomerService
}

func NewCustomerHandler(service *customers.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var body models.CreateCustomerRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.CreateCustomer(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID := c.Param("CustomerId")

	customer, err := h.service.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var body models.UpdateCustomerRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.service.UpdateCustomer(c.Request.Context(), body); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customerId": body.CustomerID})
}

package handler

import (
	"errors"
	"net/http"

	"trustmarket/scoring-service/internal/app/scoring/entity"
	"trustmarket/scoring-service/internal/app/scoring/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AdminHandler обрабатывает запросы панелей редактирования параметров
type AdminHandler struct {
	adminService service.AdminServiceInterface
	validator    *validator.Validate
}

// NewAdminHandler создает новый админ-handler
func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		validator:    validator.New(),
	}
}

// GetCustomer - GET /admin/customers/:customer_id
func (h *AdminHandler) GetCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	customer, err := h.adminService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomerParameters - PUT /admin/customers/:customer_id
func (h *AdminHandler) UpdateCustomerParameters(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	var params entity.CustomerParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(params); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	if err := h.adminService.UpdateCustomerParameters(c.Request.Context(), customerID, &params); err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to update customer parameters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer parameters updated"})
}

// GetMerchant - GET /admin/merchants/:merchant_id
func (h *AdminHandler) GetMerchant(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("merchant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid merchant ID"})
		return
	}

	merchant, err := h.adminService.GetMerchant(c.Request.Context(), merchantID)
	if err != nil {
		if errors.Is(err, service.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Merchant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get merchant"})
		return
	}

	c.JSON(http.StatusOK, merchant)
}

// UpdateMerchantMetrics - PUT /admin/merchants/:merchant_id
func (h *AdminHandler) UpdateMerchantMetrics(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("merchant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid merchant ID"})
		return
	}

	var metrics entity.MerchantMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(metrics); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	if err := h.adminService.UpdateMerchantMetrics(c.Request.Context(), merchantID, &metrics); err != nil {
		if errors.Is(err, service.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Merchant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to update merchant metrics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Merchant metrics updated"})
}

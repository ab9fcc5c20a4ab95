package handler

import (
	"errors"
	"net/http"

	"trustmarket/catalog-service/internal/app/catalog/entity"
	"trustmarket/catalog-service/internal/app/catalog/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler обрабатывает HTTP запросы витрины каталога
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// === CATEGORIES HANDLERS ===

// GetAllCategories обрабатывает GET /categories (с кешированием в Redis)
func (h *CatalogHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.catalogService.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetProductsByCategory обрабатывает GET /categories/:category_id/products
func (h *CatalogHandler) GetProductsByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid category ID"})
		return
	}

	products, err := h.catalogService.GetProductsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get products"})
		return
	}

	c.JSON(http.StatusOK, entity.ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// === PRODUCTS HANDLERS ===

// GetAllProducts обрабатывает GET /products
func (h *CatalogHandler) GetAllProducts(c *gin.Context) {
	products, err := h.catalogService.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get products"})
		return
	}

	c.JSON(http.StatusOK, entity.ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// GetProductDetail обрабатывает GET /products/:product_id
// Возвращает карточку товара с категорией и предложениями продавцов
func (h *CatalogHandler) GetProductDetail(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid product ID"})
		return
	}

	detail, err := h.catalogService.GetProductDetail(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get product"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// === MERCHANTS HANDLERS ===

// GetAllMerchants обрабатывает GET /merchants
func (h *CatalogHandler) GetAllMerchants(c *gin.Context) {
	merchants, err := h.catalogService.GetAllMerchants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get merchants"})
		return
	}

	c.JSON(http.StatusOK, entity.MerchantListResponse{
		Merchants: merchants,
		Total:     len(merchants),
	})
}

// GetMerchant обрабатывает GET /merchants/:merchant_id
func (h *CatalogHandler) GetMerchant(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("merchant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid merchant ID"})
		return
	}

	merchant, err := h.catalogService.GetMerchant(c.Request.Context(), merchantID)
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

// === CUSTOMERS HANDLERS ===

// GetCustomerProfile обрабатывает GET /customers/:customer_id
// Профиль включает credibility score и историю заказов
func (h *CatalogHandler) GetCustomerProfile(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	profile, err := h.catalogService.GetCustomerProfile(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get customer profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

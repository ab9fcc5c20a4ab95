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

// ScoringHandler обрабатывает HTTP запросы обоих пайплайнов пересчёта
type ScoringHandler struct {
	credibilityService service.CredibilityServiceInterface
	gradingService     service.GradingServiceInterface
	validator          *validator.Validate
}

// NewScoringHandler создает новый handler пайплайнов скоринга
func NewScoringHandler(
	credibilityService service.CredibilityServiceInterface,
	gradingService service.GradingServiceInterface,
) *ScoringHandler {
	return &ScoringHandler{
		credibilityService: credibilityService,
		gradingService:     gradingService,
		validator:          validator.New(),
	}
}

// RecomputeCredibility - POST /scoring/customer-credibility
// Валидация выполняется до любого обращения к базе или модели
// Режим выбирается явно: test_mode с manual_data либо обычный режим с review_id
func (h *ScoringHandler) RecomputeCredibility(c *gin.Context) {
	var req entity.CredibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.CustomerID == "" {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: service.ErrCustomerIDRequired.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid customer_id"})
		return
	}

	var result *entity.CredibilityResult

	if req.TestMode {
		// Тестовый режим: признаки заданы вручную, база не изменяется
		if req.ManualData == nil {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: service.ErrManualDataRequired.Error()})
			return
		}
		result, err = h.credibilityService.RecomputeManual(c.Request.Context(), customerID, req.ManualData, req.ProductPrice)
	} else {
		if req.ReviewID == "" {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: service.ErrReviewIDRequired.Error()})
			return
		}
		reviewID, parseErr := uuid.Parse(req.ReviewID)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid review_id"})
			return
		}
		result, err = h.credibilityService.RecomputeFromReview(c.Request.Context(), customerID, reviewID, req.ProductPrice)
	}

	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecomputeGrade - POST /scoring/merchant-grade
func (h *ScoringHandler) RecomputeGrade(c *gin.Context) {
	var req entity.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.MerchantID == "" {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: service.ErrMerchantIDRequired.Error()})
		return
	}

	merchantID, err := uuid.Parse(req.MerchantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid merchant_id"})
		return
	}

	result, err := h.gradingService.RecomputeGrade(c.Request.Context(), merchantID)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondPipelineError отображает таксономию ошибок пайплайна на HTTP статусы:
// не найдено -> 404, внешняя модель -> 502, остальное -> 500
func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrMerchantNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidMLResponse):
		c.JSON(http.StatusBadGateway, entity.ErrorResponse{Error: err.Error()})
	default:
		var mlErr *service.MLAPIError
		if errors.As(err, &mlErr) {
			c.JSON(http.StatusBadGateway, entity.ErrorResponse{Error: mlErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: err.Error()})
	}
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
	"github.com/kshitijs/currency_exchange_app/internal/middleware"
)

// conversionHandler handles currency conversion requests.
type conversionHandler struct {
	conversionService  portssvc.ConversionSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade, ts portssvc.TransactionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService:  cs,
		transactionService: ts,
	}
}

// registerConversionRoutes registers the conversion route. Requires auth.
func registerConversionRoutes(api *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newConversionHandler(conversionService, transactionService)

	api.POST("/currency/convert/", h.convert)
}

// convert performs a conversion with live rates and records the result in the
// caller's ledger. A failed conversion records nothing.
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "unauthorized", Message: "Unauthorized"}})
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), req, userID)
	if err != nil {
		logger.Warn("Conversion failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	_, err = h.transactionService.RecordTransaction(c.Request.Context(), userID, dto.CreateTransactionRequest{
		InputCurrency:  result.InputCurrency,
		OutputCurrency: result.OutputCurrency,
		InputAmount:    result.InputAmount,
		OutputAmount:   result.ConvertedAmount,
	})
	if err != nil {
		logger.Error("Failed to record conversion in ledger", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Conversion completed",
		slog.String("input_currency", result.InputCurrency),
		slog.String("output_currency", result.OutputCurrency),
	)
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

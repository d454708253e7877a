package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/dto"
	"github.com/kshitijs/currency_exchange_app/internal/middleware"
)

// preferenceHandler handles HTTP requests for the caller's own preferences.
// There is deliberately no user ID in the path or body: the subject is always
// taken from the authenticated token.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{
		preferenceService: ps,
	}
}

// registerPreferenceRoutes registers the preference routes. All require auth.
func registerPreferenceRoutes(api *gin.RouterGroup, preferenceService portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(preferenceService)

	prefs := api.Group("/preferences")
	{
		prefs.GET("/", h.getPreference)
		prefs.PUT("/", h.updatePreference)
	}
}

// getPreference returns the caller's preferences, creating defaults on first use.
func (h *preferenceHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "unauthorized", Message: "Unauthorized"}})
		return
	}

	pref, err := h.preferenceService.GetPreference(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get preference", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

// updatePreference applies a partial update to the caller's preferences.
func (h *preferenceHandler) updatePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "unauthorized", Message: "Unauthorized"}})
		return
	}

	pref, err := h.preferenceService.UpdatePreference(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("Failed to update preference", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Preference updated")
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

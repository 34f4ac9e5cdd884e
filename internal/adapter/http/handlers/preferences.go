package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/axlwolf/task-manager/internal/adapter/http/dto"
	"github.com/axlwolf/task-manager/internal/app/service"
	"github.com/axlwolf/task-manager/pkg/apierrors"
)

type PreferencesHandler struct {
	themes *service.ThemeService
	flags  *service.FeatureFlagService
}

func NewPreferencesHandler(themes *service.ThemeService, flags *service.FeatureFlagService) *PreferencesHandler {
	return &PreferencesHandler{themes: themes, flags: flags}
}

func (h *PreferencesHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: h.themes.Current()})
}

func (h *PreferencesHandler) ListThemes(c *gin.Context) {
	themes := h.themes.Themes()
	items := make([]dto.ThemeItem, 0, len(themes))
	for _, theme := range themes {
		items = append(items, dto.ThemeItem{Name: theme.Name, Label: theme.Label})
	}
	c.JSON(http.StatusOK, items)
}

// SetTheme applies the requested theme. Unknown names fall back to the default theme.
func (h *PreferencesHandler) SetTheme(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTheme)
		return
	}

	applied, err := h.themes.SetTheme(c.Request.Context(), req.Theme)
	if err != nil {
		zap.L().Error("failed to save theme", zap.String("theme", req.Theme), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailSaveTheme)
		return
	}

	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: applied})
}

func (h *PreferencesHandler) ListFlags(c *gin.Context) {
	c.JSON(http.StatusOK, h.flagItems())
}

func (h *PreferencesHandler) ToggleFlag(c *gin.Context) {
	name := c.Param("name")
	enabled, err := h.flags.Toggle(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFlag) {
			abortWithError(c, http.StatusNotFound, apierrors.MsgUnknownFlag)
			return
		}
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailSaveFlags)
		return
	}

	c.JSON(http.StatusOK, dto.FeatureFlagItem{Name: name, Enabled: enabled})
}

func (h *PreferencesHandler) ResetFlags(c *gin.Context) {
	if err := h.flags.Reset(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailSaveFlags)
		return
	}
	c.JSON(http.StatusOK, h.flagItems())
}

func (h *PreferencesHandler) flagItems() []dto.FeatureFlagItem {
	flags := h.flags.All()
	items := make([]dto.FeatureFlagItem, 0, len(flags))
	for _, name := range h.flags.Names() {
		items = append(items, dto.FeatureFlagItem{Name: name, Enabled: flags[name]})
	}
	return items
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trustmed/trustmed/internal/i18n"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/utils"
)

// I18nHandler serves the translation catalogs
type I18nHandler struct {
	resolver *i18n.Resolver
}

// NewI18nHandler creates a new i18n handler
func NewI18nHandler(resolver *i18n.Resolver) *I18nHandler {
	return &I18nHandler{resolver: resolver}
}

// Locales handles listing the available locales
// @Summary List locales
// @Tags I18n
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Locale codes"
// @Router /i18n [get]
func (h *I18nHandler) Locales(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"locales": h.resolver.Locales(),
		"default": i18n.DefaultLocale,
	})
}

// Catalog handles fetching a locale's full translation catalog
// @Summary Translation catalog
// @Description Return every key/value pair of a locale
// @Tags I18n
// @Produce json
// @Param locale path string true "Locale code"
// @Success 200 {object} utils.SuccessResponse "Flattened catalog"
// @Failure 404 {object} utils.ErrorResponse "Unknown locale"
// @Router /i18n/{locale} [get]
func (h *I18nHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	catalog := h.resolver.Catalog(locale)
	if catalog == nil {
		utils.WriteError(w, errors.NotFound("locale"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, catalog)
}

// Resolve handles resolving a single translation key
// @Summary Resolve key
// @Description Resolve a dot-separated key; missing keys fall back to the default locale, then the key itself
// @Tags I18n
// @Produce json
// @Param locale path string true "Locale code"
// @Param key query string true "Dot-separated translation key"
// @Success 200 {object} utils.SuccessResponse "Resolved message"
// @Failure 400 {object} utils.ErrorResponse "Missing key parameter"
// @Router /i18n/{locale}/resolve [get]
func (h *I18nHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	key := r.URL.Query().Get("key")
	if key == "" {
		utils.WriteError(w, errors.BadRequest("Missing key parameter"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"locale":  locale,
		"key":     key,
		"message": h.resolver.Resolve(locale, key),
	})
}

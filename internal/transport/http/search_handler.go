package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/service"
	"github.com/tripverse/travel-api/internal/util"
)

type SearchHandler struct {
	search *service.SearchService
}

func RegisterSearch(e *echo.Echo, search *service.SearchService, tokens *util.JWTManager) {
	handler := &SearchHandler{search: search}

	group := e.Group("/api/search", OptionalAuth(tokens))
	group.POST("", handler.universalSearch)
	group.GET("/suggestions", handler.suggestions)
	group.GET("/filters", handler.filters)
}

type searchRequest struct {
	Query string   `json:"q"`
	Types []string `json:"types"`
	Limit int      `json:"limit"`
}

func (h *SearchHandler) universalSearch(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	result, err := h.search.Search(c.Request().Context(), req.Query, req.Types, req.Limit)
	if err != nil {
		if errors.Is(err, service.ErrSearchQueryTooShort) {
			return c.JSON(http.StatusBadRequest, util.Fail("Search query must be at least 2 characters long"))
		}
		c.Logger().Errorf("search: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("Search failed"))
	}

	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *SearchHandler) suggestions(c echo.Context) error {
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	suggestions, err := h.search.Suggest(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		c.Logger().Errorf("search suggestions: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("Failed to get suggestions"))
	}

	return c.JSON(http.StatusOK, util.Success(util.Envelope{"suggestions": suggestions}))
}

func (h *SearchHandler) filters(c echo.Context) error {
	filters, err := h.search.Filters(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("search filters: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("Failed to get filters"))
	}

	return c.JSON(http.StatusOK, util.Success(util.Envelope{"filters": filters}))
}

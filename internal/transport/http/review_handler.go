package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/service"
	"github.com/tripverse/travel-api/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func RegisterReviews(e *echo.Echo, reviews *service.ReviewService, tokens *util.JWTManager) {
	handler := &ReviewHandler{reviews: reviews}

	group := e.Group("/api/reviews")
	group.GET("/item/:type/:id", handler.listForItem)
	group.POST("/item/:type/:id", handler.create, RequireAuth(tokens))
	group.POST("/:id/helpful", handler.markHelpful)
	group.DELETE("/:id", handler.remove, RequireAuth(tokens))
}

type reviewCreateRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

func itemTypeParam(c echo.Context) (domain.ContentType, error) {
	return domain.ParseContentType(strings.TrimSpace(c.Param("type")))
}

func (h *ReviewHandler) listForItem(c echo.Context) error {
	itemType, err := itemTypeParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("unknown item type"))
	}
	itemID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	limit, offset := parsePagination(c, 20, 0)
	filter := domain.ReviewListFilter{
		MinRating: optionalIntQuery(c, "min_rating"),
		Limit:     limit,
		Offset:    offset,
	}

	reviews, aggregate, err := h.reviews.ListForItem(c.Request().Context(), itemType, itemID, filter)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, util.Fail("item not found"))
		case errors.Is(err, service.ErrReviewValidation):
			return c.JSON(http.StatusBadRequest, util.Fail(err.Error()))
		default:
			c.Logger().Errorf("review list: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("unable to load reviews"))
		}
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{
		"reviews": reviews,
		"summary": aggregate,
	}))
}

func (h *ReviewHandler) create(c echo.Context) error {
	claims, _ := CurrentClaims(c)

	itemType, err := itemTypeParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("unknown item type"))
	}
	itemID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	var req reviewCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	review, aggregate, err := h.reviews.Create(c.Request().Context(), claims.UserID, itemType, itemID, service.ReviewCreateInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewValidation):
			return c.JSON(http.StatusBadRequest, util.Fail(err.Error()))
		case errors.Is(err, service.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, util.Fail("item not found"))
		case errors.Is(err, service.ErrReviewAlreadyExist):
			return c.JSON(http.StatusConflict, util.Fail("review already exists for this item"))
		default:
			c.Logger().Errorf("review create: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("unable to create review"))
		}
	}
	return c.JSON(http.StatusCreated, util.Success(util.Envelope{
		"review":  review,
		"summary": aggregate,
	}))
}

func (h *ReviewHandler) markHelpful(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	if err := h.reviews.MarkHelpful(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return c.JSON(http.StatusNotFound, util.Fail("review not found"))
		}
		c.Logger().Errorf("review helpful: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to record vote"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"recorded": true}))
}

func (h *ReviewHandler) remove(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	if err := h.reviews.Delete(c.Request().Context(), id, claims.UserID, claims.IsAdmin); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			return c.JSON(http.StatusNotFound, util.Fail("review not found"))
		case errors.Is(err, service.ErrReviewForbidden):
			return c.JSON(http.StatusForbidden, util.Fail("not allowed to manage this review"))
		default:
			c.Logger().Errorf("review delete: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("unable to delete review"))
		}
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"deleted": true}))
}

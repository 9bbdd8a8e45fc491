package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/service"
	"github.com/tripverse/travel-api/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func RegisterBookings(e *echo.Echo, bookings *service.BookingService, tokens *util.JWTManager) {
	handler := &BookingHandler{bookings: bookings}

	group := e.Group("/api/bookings", RequireAuth(tokens))
	group.POST("", handler.create)
	group.GET("", handler.list)
	group.GET("/:id", handler.get)
	group.POST("/:id/cancel", handler.cancel)

	admin := e.Group("/api/admin/bookings", RequireAuth(tokens), RequireAdmin())
	admin.POST("/:id/confirm", handler.confirm)
}

type bookingCreateRequest struct {
	ItemType        string  `json:"item_type"`
	ItemID          string  `json:"item_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Infants         int     `json:"infants"`
	Rooms           int     `json:"rooms"`
	SpecialRequests *string `json:"special_requests"`
	ContactEmail    string  `json:"contact_email"`
	ContactName     string  `json:"contact_name"`
}

func (h *BookingHandler) create(c echo.Context) error {
	claims, _ := CurrentClaims(c)

	var req bookingCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	itemType, err := domain.ParseContentType(req.ItemType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("unknown item type"))
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("item_id must be a valid UUID"))
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("start_date must be YYYY-MM-DD"))
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("end_date must be YYYY-MM-DD"))
	}

	booking, err := h.bookings.Create(c.Request().Context(), claims.UserID, service.BookingCreateInput{
		ItemType:        itemType,
		ItemID:          itemID,
		StartDate:       start,
		EndDate:         end,
		Adults:          req.Adults,
		Children:        req.Children,
		Infants:         req.Infants,
		Rooms:           req.Rooms,
		SpecialRequests: req.SpecialRequests,
		ContactEmail:    req.ContactEmail,
		ContactName:     req.ContactName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingValidation):
			return c.JSON(http.StatusBadRequest, util.Fail(err.Error()))
		case errors.Is(err, service.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, util.Fail("item not found"))
		case errors.Is(err, service.ErrItemUnavailable):
			return c.JSON(http.StatusConflict, util.Fail("item is not available for booking"))
		default:
			c.Logger().Errorf("booking create: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("unable to create booking"))
		}
	}
	return c.JSON(http.StatusCreated, util.Success(booking))
}

func (h *BookingHandler) list(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	limit, offset := parsePagination(c, 20, 0)

	bookings, err := h.bookings.ListForUser(c.Request().Context(), claims.UserID, limit, offset)
	if err != nil {
		c.Logger().Errorf("booking list: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load bookings"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"bookings": bookings}))
}

func (h *BookingHandler) get(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	booking, err := h.bookings.Get(c.Request().Context(), id, claims.UserID, claims.IsAdmin)
	if err != nil {
		return h.bookingError(c, err, "booking get")
	}
	return c.JSON(http.StatusOK, util.Success(booking))
}

func (h *BookingHandler) cancel(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	booking, err := h.bookings.Cancel(c.Request().Context(), id, claims.UserID, claims.IsAdmin)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotCancelable) {
			return c.JSON(http.StatusConflict, util.Fail("booking can no longer be cancelled"))
		}
		return h.bookingError(c, err, "booking cancel")
	}
	return c.JSON(http.StatusOK, util.Success(booking))
}

func (h *BookingHandler) confirm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	booking, err := h.bookings.Confirm(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, util.Fail("booking not found"))
		case errors.Is(err, service.ErrBookingValidation):
			return c.JSON(http.StatusConflict, util.Fail(err.Error()))
		default:
			c.Logger().Errorf("booking confirm: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("unable to confirm booking"))
		}
	}
	return c.JSON(http.StatusOK, util.Success(booking))
}

func (h *BookingHandler) bookingError(c echo.Context, err error, op string) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, util.Fail("booking not found"))
	case errors.Is(err, service.ErrBookingForbidden):
		return c.JSON(http.StatusForbidden, util.Fail("not allowed to manage this booking"))
	default:
		c.Logger().Errorf("%s: %v", op, err)
		return c.JSON(http.StatusInternalServerError, util.Fail("booking operation failed"))
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/service"
	"github.com/tripverse/travel-api/internal/util"
)

type WishlistHandler struct {
	wishlist *service.WishlistService
}

func RegisterWishlist(e *echo.Echo, wishlist *service.WishlistService, tokens *util.JWTManager) {
	handler := &WishlistHandler{wishlist: wishlist}

	group := e.Group("/api/wishlist", RequireAuth(tokens))
	group.GET("", handler.list)
	group.GET("/:type/:id", handler.contains)
	group.POST("/:type/:id", handler.save)
	group.DELETE("/:type/:id", handler.remove)
}

func (h *WishlistHandler) list(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	limit, offset := parsePagination(c, 50, 0)

	entries, err := h.wishlist.List(c.Request().Context(), claims.UserID, limit, offset)
	if err != nil {
		c.Logger().Errorf("wishlist list: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load wishlist"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"wishlist": entries}))
}

func (h *WishlistHandler) contains(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	itemType, err := itemTypeParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("unknown item type"))
	}
	itemID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	saved, err := h.wishlist.Contains(c.Request().Context(), claims.UserID, itemType, itemID)
	if err != nil {
		c.Logger().Errorf("wishlist contains: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to check wishlist"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"saved": saved}))
}

func (h *WishlistHandler) save(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	itemType, err := itemTypeParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("unknown item type"))
	}
	itemID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	entry, err := h.wishlist.Save(c.Request().Context(), claims.UserID, itemType, itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, util.Fail("item not found"))
		}
		c.Logger().Errorf("wishlist save: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to save item"))
	}
	return c.JSON(http.StatusCreated, util.Success(entry))
}

func (h *WishlistHandler) remove(c echo.Context) error {
	claims, _ := CurrentClaims(c)
	itemType, err := itemTypeParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("unknown item type"))
	}
	itemID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	if err := h.wishlist.Remove(c.Request().Context(), claims.UserID, itemType, itemID); err != nil {
		if errors.Is(err, service.ErrWishlistEntryNotFound) {
			return c.JSON(http.StatusNotFound, util.Fail("wishlist entry not found"))
		}
		c.Logger().Errorf("wishlist remove: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to remove item"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"removed": true}))
}

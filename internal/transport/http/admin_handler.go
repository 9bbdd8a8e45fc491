package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/service"
	"github.com/tripverse/travel-api/internal/util"
)

type AdminHandler struct {
	media *service.MediaService
}

func RegisterAdmin(e *echo.Echo, media *service.MediaService, tokens *util.JWTManager) {
	handler := &AdminHandler{media: media}

	group := e.Group("/api/admin/content", RequireAuth(tokens), RequireAdmin())
	group.POST("/:type/:id/image", handler.uploadImage)
}

func (h *AdminHandler) uploadImage(c echo.Context) error {
	itemType, err := itemTypeParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("unknown item type"))
	}
	itemID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("image file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Logger().Errorf("admin image open: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to read upload"))
	}
	defer file.Close()

	url, err := h.media.AttachItemImage(c.Request().Context(), itemType, itemID, service.ImageUpload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageValidation):
			return c.JSON(http.StatusBadRequest, util.Fail(err.Error()))
		case errors.Is(err, service.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, util.Fail("item not found"))
		default:
			c.Logger().Errorf("admin image upload: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("unable to store image"))
		}
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"image_url": url}))
}

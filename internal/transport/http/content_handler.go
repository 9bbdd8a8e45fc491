package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/service"
	"github.com/tripverse/travel-api/internal/util"
)

type ContentHandler struct {
	catalog *service.CatalogService
}

func RegisterContent(e *echo.Echo, catalog *service.CatalogService) {
	handler := &ContentHandler{catalog: catalog}

	group := e.Group("/api/content")
	group.GET("/showcase", handler.showcase)
	group.GET("/categories", handler.listCategories)
	group.GET("/categories/:slug", handler.getCategory)

	group.GET("/tours", handler.listTours)
	group.GET("/tours/featured", handler.featuredTours)
	group.GET("/tours/:id", handler.getTour)
	group.GET("/hotels", handler.listHotels)
	group.GET("/hotels/top-rated", handler.topRatedHotels)
	group.GET("/hotels/:id", handler.getHotel)
	group.GET("/cars", handler.listCars)
	group.GET("/cars/recent", handler.recentCars)
	group.GET("/cars/:id", handler.getCar)
	group.GET("/activities", handler.listActivities)
	group.GET("/activities/:id", handler.getActivity)
	group.GET("/tickets", handler.listTickets)
	group.GET("/tickets/:id", handler.getTicket)
}

func parsePagination(c echo.Context, defaultLimit, defaultOffset int) (int, int) {
	limit := defaultLimit
	offset := defaultOffset
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if raw := strings.TrimSpace(c.QueryParam("offset")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}

func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Param("id")))
}

func optionalQuery(c echo.Context, name string) *string {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return nil
	}
	return &value
}

func optionalFloatQuery(c echo.Context, name string) *float64 {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func optionalIntQuery(c echo.Context, name string) *int {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func boolQuery(c echo.Context, name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.QueryParam(name)), "true")
}

func (h *ContentHandler) showcase(c echo.Context) error {
	size := 0
	if raw := strings.TrimSpace(c.QueryParam("size")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}
	showcase, err := h.catalog.GetShowcase(c.Request().Context(), size)
	if err != nil {
		c.Logger().Errorf("content showcase: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load showcase"))
	}
	return c.JSON(http.StatusOK, util.Success(showcase))
}

func railLimit(c echo.Context) int {
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return 0
}

func (h *ContentHandler) featuredTours(c echo.Context) error {
	tours, err := h.catalog.FeaturedTours(c.Request().Context(), railLimit(c))
	if err != nil {
		c.Logger().Errorf("content featured tours: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load featured tours"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"tours": tours}))
}

func (h *ContentHandler) topRatedHotels(c echo.Context) error {
	hotels, err := h.catalog.TopRatedHotels(c.Request().Context(), railLimit(c))
	if err != nil {
		c.Logger().Errorf("content top-rated hotels: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load top-rated hotels"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"hotels": hotels}))
}

func (h *ContentHandler) recentCars(c echo.Context) error {
	cars, err := h.catalog.RecentCars(c.Request().Context(), railLimit(c))
	if err != nil {
		c.Logger().Errorf("content recent cars: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load recent cars"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"cars": cars}))
}

func (h *ContentHandler) listCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("content categories: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load categories"))
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"categories": categories}))
}

func (h *ContentHandler) getCategory(c echo.Context) error {
	category, err := h.catalog.GetCategory(c.Request().Context(), strings.TrimSpace(c.Param("slug")))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, util.Fail("category not found"))
		}
		c.Logger().Errorf("content category: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load category"))
	}
	return c.JSON(http.StatusOK, util.Success(category))
}

func (h *ContentHandler) listTours(c echo.Context) error {
	limit, offset := parsePagination(c, 20, 0)
	filter := domain.TourListFilter{
		Category:     optionalQuery(c, "category"),
		Location:     optionalQuery(c, "location"),
		MinPrice:     optionalFloatQuery(c, "min_price"),
		MaxPrice:     optionalFloatQuery(c, "max_price"),
		FeaturedOnly: boolQuery(c, "featured"),
		TopRatedOnly: boolQuery(c, "top_rated"),
	}
	result, err := h.catalog.ListTours(c.Request().Context(), filter, limit, offset)
	if err != nil {
		c.Logger().Errorf("content tours: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load tours"))
	}
	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *ContentHandler) getTour(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}
	tour, err := h.catalog.GetTour(c.Request().Context(), id)
	if err != nil {
		return h.itemError(c, err, "tour")
	}
	return c.JSON(http.StatusOK, util.Success(tour))
}

func (h *ContentHandler) listHotels(c echo.Context) error {
	limit, offset := parsePagination(c, 20, 0)
	filter := domain.HotelListFilter{
		City:             optionalQuery(c, "city"),
		Country:          optionalQuery(c, "country"),
		Stars:            optionalIntQuery(c, "stars"),
		MaxPricePerNight: optionalFloatQuery(c, "max_price"),
		TopRatedOnly:     boolQuery(c, "top_rated"),
	}
	result, err := h.catalog.ListHotels(c.Request().Context(), filter, limit, offset)
	if err != nil {
		c.Logger().Errorf("content hotels: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load hotels"))
	}
	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *ContentHandler) getHotel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}
	hotel, err := h.catalog.GetHotel(c.Request().Context(), id)
	if err != nil {
		return h.itemError(c, err, "hotel")
	}
	return c.JSON(http.StatusOK, util.Success(hotel))
}

func (h *ContentHandler) listCars(c echo.Context) error {
	limit, offset := parsePagination(c, 20, 0)
	filter := domain.CarListFilter{
		Brand:        optionalQuery(c, "brand"),
		City:         optionalQuery(c, "city"),
		Transmission: optionalQuery(c, "transmission"),
		FuelType:     optionalQuery(c, "fuel_type"),
		MinSeats:     optionalIntQuery(c, "min_seats"),
		RecentOnly:   boolQuery(c, "recent"),
	}
	result, err := h.catalog.ListCars(c.Request().Context(), filter, limit, offset)
	if err != nil {
		c.Logger().Errorf("content cars: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load cars"))
	}
	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *ContentHandler) getCar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}
	car, err := h.catalog.GetCar(c.Request().Context(), id)
	if err != nil {
		return h.itemError(c, err, "car")
	}
	return c.JSON(http.StatusOK, util.Success(car))
}

func (h *ContentHandler) listActivities(c echo.Context) error {
	limit, offset := parsePagination(c, 20, 0)
	filter := domain.ActivityListFilter{
		Category:   optionalQuery(c, "category"),
		City:       optionalQuery(c, "city"),
		Difficulty: optionalQuery(c, "difficulty"),
	}
	result, err := h.catalog.ListActivities(c.Request().Context(), filter, limit, offset)
	if err != nil {
		c.Logger().Errorf("content activities: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load activities"))
	}
	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *ContentHandler) getActivity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}
	activity, err := h.catalog.GetActivity(c.Request().Context(), id)
	if err != nil {
		return h.itemError(c, err, "activity")
	}
	return c.JSON(http.StatusOK, util.Success(activity))
}

func (h *ContentHandler) listTickets(c echo.Context) error {
	limit, offset := parsePagination(c, 20, 0)
	filter := domain.TicketListFilter{
		Type:          optionalQuery(c, "type"),
		DepartureCode: optionalQuery(c, "from"),
		ArrivalCode:   optionalQuery(c, "to"),
		Class:         optionalQuery(c, "class"),
	}
	result, err := h.catalog.ListTickets(c.Request().Context(), filter, limit, offset)
	if err != nil {
		c.Logger().Errorf("content tickets: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load tickets"))
	}
	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *ContentHandler) getTicket(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("id must be a valid UUID"))
	}
	ticket, err := h.catalog.GetTicket(c.Request().Context(), id)
	if err != nil {
		return h.itemError(c, err, "ticket")
	}
	return c.JSON(http.StatusOK, util.Success(ticket))
}

func (h *ContentHandler) itemError(c echo.Context, err error, kind string) error {
	if errors.Is(err, service.ErrItemNotFound) {
		return c.JSON(http.StatusNotFound, util.Fail(kind+" not found"))
	}
	c.Logger().Errorf("content %s: %v", kind, err)
	return c.JSON(http.StatusInternalServerError, util.Fail("unable to load "+kind))
}

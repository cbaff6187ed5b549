package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookinghub/booking-api/internal/api/middleware"
	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /bookings.
//
// @Summary      Create a new booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.CreateBooking(c.Request().Context(), middleware.Identity(c), ports.CreateBookingInput{
		ServiceID:   req.ServiceID,
		ProviderID:  req.ProviderID,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bookingResponse{Booking: booking})
}

// List handles GET /bookings — returns the caller's bookings only.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBookingsResponse
// @Failure      401  {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.ListBookings(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return c.JSON(http.StatusOK, listBookingsResponse{Bookings: bookings})
}

// UpdateStatus handles PATCH /bookings/:id.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "Requested status"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /bookings/{id} [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The oneof validation above guarantees this parse succeeds.
	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), middleware.Identity(c), c.Param("id"), status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingResponse{Booking: booking})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookinghub/booking-api/internal/api/middleware"
	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /reviews.
//
// Rating bounds are enforced by the request schema before the eligibility
// gate is consulted.
//
// @Summary      Create a review for a completed booking
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.CreateReview(c.Request().Context(), middleware.Identity(c), ports.CreateReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reviewResponse{Review: review})
}

// List handles GET /reviews?bookingId=.
//
// @Summary      List reviews for a booking
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId  query     string  true  "Booking id"
// @Success      200        {object}  listReviewsResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	bookingID := c.QueryParam("bookingId")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is required")
	}

	reviews, err := h.service.ListReviews(c.Request().Context(), middleware.Identity(c), bookingID)
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}
	return c.JSON(http.StatusOK, listReviewsResponse{Reviews: reviews})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookinghub/booking-api/internal/api/middleware"
	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// List handles GET /services — public, no authentication.
//
// @Summary      List all services
// @Tags         services
// @Produce      json
// @Success      200  {object}  listServicesResponse
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalog.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return c.JSON(http.StatusOK, listServicesResponse{Services: services})
}

// Create handles POST /services.
//
// @Summary      Create a new service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  serviceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	service, err := h.catalog.CreateService(c.Request().Context(), middleware.Identity(c), ports.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, serviceResponse{Service: service})
}

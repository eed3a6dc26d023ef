package records

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the patient record CRUD surface.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the record endpoints at the root of the server.
// The search route is registered before the :id route so "search" is
// never captured as a patient id.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/patients", h.CreateRecord)
	e.GET("/patients", h.ListRecords)
	e.GET("/patients/search", h.SearchRecords)
	e.GET("/patients/:id", h.GetRecord)
	e.PATCH("/patients/:id", h.UpdateRecord)
	e.DELETE("/patients/:id", h.DeleteRecord)
	e.GET("/locations", h.ListLocations)
}

func (h *Handler) CreateRecord(c echo.Context) error {
	var rec Record
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := h.svc.Create(c.Request().Context(), &rec); err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": verr.Fields})
		case errors.Is(err, ErrDuplicateID):
			return c.JSON(http.StatusConflict, echo.Map{"error": "Patient ID already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func (h *Handler) UpdateRecord(c echo.Context) error {
	var rec Record
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := h.svc.Update(c.Request().Context(), c.Param("id"), &rec); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": verr.Fields})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "updated"})
}

func (h *Handler) GetRecord(c echo.Context) error {
	rec, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Patient not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}

func (h *Handler) ListRecords(c echo.Context) error {
	summaries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, summaries)
}

func (h *Handler) SearchRecords(c echo.Context) error {
	summaries, err := h.svc.Search(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, summaries)
}

func (h *Handler) ListLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, LocationCodes)
}

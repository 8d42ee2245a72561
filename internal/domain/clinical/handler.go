package clinical

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/hms/internal/platform/console"
	"github.com/carebridge/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/diagnoses")
	g.GET("", h.List)
	g.GET("/table", h.Table)
	g.GET("/stats", h.Stats)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) search(c echo.Context) []*Diagnosis {
	return h.svc.Search(
		c.QueryParam("q"),
		c.QueryParam("severity"),
		c.QueryParam("status"),
	)
}

func (h *Handler) List(c echo.Context) error {
	records := h.search(c)
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) Table(c echo.Context) error {
	return c.JSON(http.StatusOK, console.Project(h.search(c), Columns(), console.DefaultRowActions))
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

func (h *Handler) Get(c echo.Context) error {
	dx, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, dx)
}

func (h *Handler) Create(c echo.Context) error {
	var in Diagnosis
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	dx, err := h.svc.Create(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, dx)
}

func (h *Handler) Update(c echo.Context) error {
	var in Diagnosis
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	dx, err := h.svc.Update(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, dx)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

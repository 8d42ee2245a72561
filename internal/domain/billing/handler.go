package billing

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
	g := api.Group("/invoices")
	g.GET("", h.List)
	g.GET("/table", h.Table)
	g.GET("/stats", h.Stats)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/print", h.Print)
	g.GET("/:id/print", h.PrintJob)
}

func (h *Handler) search(c echo.Context) []*Invoice {
	return h.svc.Search(c.QueryParam("q"), c.QueryParam("status"))
}

func (h *Handler) List(c echo.Context) error {
	records := h.search(c)
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) Table(c echo.Context) error {
	table := console.Project(h.search(c), Columns(), console.DefaultRowActions)
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

func (h *Handler) Get(c echo.Context) error {
	inv, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) Create(c echo.Context) error {
	var in Invoice
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	inv, err := h.svc.Create(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *Handler) Update(c echo.Context) error {
	var in Invoice
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	inv, err := h.svc.Update(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Print spools a print job; the document becomes available on the GET route
// once the spool delay passes.
func (h *Handler) Print(c echo.Context) error {
	job, err := h.svc.Print(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusAccepted, job)
}

func (h *Handler) PrintJob(c echo.Context) error {
	job, err := h.svc.PrintJob(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, job)
}

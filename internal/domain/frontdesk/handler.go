package frontdesk

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
	v := api.Group("/visitors")
	v.GET("", h.ListVisitors)
	v.GET("/table", h.VisitorTable)
	v.GET("/:id", h.GetVisitor)
	v.POST("", h.CreateVisitor)
	v.PUT("/:id", h.UpdateVisitor)
	v.DELETE("/:id", h.DeleteVisitor)

	l := api.Group("/calls")
	l.GET("", h.ListCalls)
	l.GET("/table", h.CallTable)
	l.GET("/:id", h.GetCall)
	l.POST("", h.CreateCall)
	l.PUT("/:id", h.UpdateCall)
	l.DELETE("/:id", h.DeleteCall)

	api.GET("/frontdesk/stats", h.Stats)
}

func (h *Handler) ListVisitors(c echo.Context) error {
	records := h.svc.SearchVisitors(c.QueryParam("q"), c.QueryParam("status"))
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) VisitorTable(c echo.Context) error {
	records := h.svc.SearchVisitors(c.QueryParam("q"), c.QueryParam("status"))
	return c.JSON(http.StatusOK, console.Project(records, VisitorColumns(), console.DefaultRowActions))
}

func (h *Handler) GetVisitor(c echo.Context) error {
	v, err := h.svc.GetVisitor(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) CreateVisitor(c echo.Context) error {
	var in Visitor
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	v, err := h.svc.CreateVisitor(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *Handler) UpdateVisitor(c echo.Context) error {
	var in Visitor
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	v, err := h.svc.UpdateVisitor(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteVisitor(c echo.Context) error {
	if err := h.svc.DeleteVisitor(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListCalls(c echo.Context) error {
	records := h.svc.SearchCalls(c.QueryParam("q"), c.QueryParam("type"), c.QueryParam("status"))
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) CallTable(c echo.Context) error {
	records := h.svc.SearchCalls(c.QueryParam("q"), c.QueryParam("type"), c.QueryParam("status"))
	return c.JSON(http.StatusOK, console.Project(records, CallColumns(), console.DefaultRowActions))
}

func (h *Handler) GetCall(c echo.Context) error {
	l, err := h.svc.GetCall(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) CreateCall(c echo.Context) error {
	var in CallLog
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	l, err := h.svc.CreateCall(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *Handler) UpdateCall(c echo.Context) error {
	var in CallLog
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	l, err := h.svc.UpdateCall(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) DeleteCall(c echo.Context) error {
	if err := h.svc.DeleteCall(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

package encounter

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
	o := api.Group("/opd-visits")
	o.GET("", h.ListOPD)
	o.GET("/table", h.OPDTable)
	o.GET("/:id", h.GetOPD)
	o.POST("", h.CreateOPD)
	o.PUT("/:id", h.UpdateOPD)
	o.DELETE("/:id", h.DeleteOPD)

	i := api.Group("/ipd-admissions")
	i.GET("", h.ListIPD)
	i.GET("/table", h.IPDTable)
	i.GET("/:id", h.GetIPD)
	i.POST("", h.CreateIPD)
	i.PUT("/:id", h.UpdateIPD)
	i.DELETE("/:id", h.DeleteIPD)

	api.GET("/encounters/stats", h.Stats)
}

func (h *Handler) ListOPD(c echo.Context) error {
	records := h.svc.SearchOPD(c.QueryParam("q"), c.QueryParam("department"), c.QueryParam("status"))
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) OPDTable(c echo.Context) error {
	records := h.svc.SearchOPD(c.QueryParam("q"), c.QueryParam("department"), c.QueryParam("status"))
	return c.JSON(http.StatusOK, console.Project(records, OPDColumns(), console.DefaultRowActions))
}

func (h *Handler) GetOPD(c echo.Context) error {
	v, err := h.svc.GetOPDVisit(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) CreateOPD(c echo.Context) error {
	var in OPDVisit
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	v, err := h.svc.CreateOPDVisit(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *Handler) UpdateOPD(c echo.Context) error {
	var in OPDVisit
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	v, err := h.svc.UpdateOPDVisit(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteOPD(c echo.Context) error {
	if err := h.svc.DeleteOPDVisit(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListIPD(c echo.Context) error {
	records := h.svc.SearchIPD(c.QueryParam("q"), c.QueryParam("ward"), c.QueryParam("status"))
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) IPDTable(c echo.Context) error {
	records := h.svc.SearchIPD(c.QueryParam("q"), c.QueryParam("ward"), c.QueryParam("status"))
	return c.JSON(http.StatusOK, console.Project(records, IPDColumns(), console.DefaultRowActions))
}

func (h *Handler) GetIPD(c echo.Context) error {
	a, err := h.svc.GetAdmission(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateIPD(c echo.Context) error {
	var in IPDAdmission
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.CreateAdmission(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateIPD(c echo.Context) error {
	var in IPDAdmission
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.UpdateAdmission(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteIPD(c echo.Context) error {
	if err := h.svc.DeleteAdmission(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

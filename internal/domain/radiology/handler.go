package radiology

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
	t := api.Group("/radiology-tests")
	t.GET("", h.ListTests)
	t.GET("/table", h.TestTable)
	t.GET("/:id", h.GetTest)
	t.POST("", h.CreateTest)
	t.PUT("/:id", h.UpdateTest)
	t.DELETE("/:id", h.DeleteTest)

	c := api.Group("/radiology-categories")
	c.GET("", h.ListCategories)
	c.GET("/table", h.CategoryTable)
	c.GET("/:id", h.GetCategory)
	c.POST("", h.CreateCategory)
	c.PUT("/:id", h.UpdateCategory)
	c.DELETE("/:id", h.DeleteCategory)

	api.GET("/radiology/stats", h.Stats)
}

func (h *Handler) searchTests(c echo.Context) []*Test {
	return h.svc.SearchTests(
		c.QueryParam("q"),
		c.QueryParam("category"),
		c.QueryParam("status"),
	)
}

func (h *Handler) ListTests(c echo.Context) error {
	records := h.searchTests(c)
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) TestTable(c echo.Context) error {
	return c.JSON(http.StatusOK, console.Project(h.searchTests(c), TestColumns(), console.DefaultRowActions))
}

func (h *Handler) GetTest(c echo.Context) error {
	t, err := h.svc.GetTest(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) CreateTest(c echo.Context) error {
	var in Test
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	t, err := h.svc.CreateTest(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) UpdateTest(c echo.Context) error {
	var in Test
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	t, err := h.svc.UpdateTest(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTest(c echo.Context) error {
	if err := h.svc.DeleteTest(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListCategories(c echo.Context) error {
	records := h.svc.SearchCategories(c.QueryParam("q"))
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) CategoryTable(c echo.Context) error {
	records := h.svc.SearchCategories(c.QueryParam("q"))
	return c.JSON(http.StatusOK, console.Project(records, CategoryColumns(), console.DefaultRowActions))
}

func (h *Handler) GetCategory(c echo.Context) error {
	cat, err := h.svc.GetCategory(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var in Category
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	cat, err := h.svc.CreateCategory(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	var in Category
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	cat, err := h.svc.UpdateCategory(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.svc.DeleteCategory(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

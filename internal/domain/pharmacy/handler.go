package pharmacy

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
	m := api.Group("/medicines")
	m.GET("", h.ListMedicines)
	m.GET("/table", h.MedicineTable)
	m.GET("/:id", h.GetMedicine)
	m.POST("", h.CreateMedicine)
	m.PUT("/:id", h.UpdateMedicine)
	m.DELETE("/:id", h.DeleteMedicine)

	p := api.Group("/purchases")
	p.GET("", h.ListPurchases)
	p.GET("/table", h.PurchaseTable)
	p.GET("/:id", h.GetPurchase)
	p.POST("", h.CreatePurchase)
	p.PUT("/:id", h.UpdatePurchase)
	p.DELETE("/:id", h.DeletePurchase)

	api.GET("/pharmacy/stats", h.Stats)
}

func (h *Handler) searchMedicines(c echo.Context) []*Medicine {
	return h.svc.SearchMedicines(
		c.QueryParam("q"),
		c.QueryParam("category"),
		c.QueryParam("status"),
	)
}

func (h *Handler) ListMedicines(c echo.Context) error {
	records := h.searchMedicines(c)
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) MedicineTable(c echo.Context) error {
	table := console.Project(h.searchMedicines(c), MedicineColumns(), console.DefaultRowActions)
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) GetMedicine(c echo.Context) error {
	m, err := h.svc.GetMedicine(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateMedicine(c echo.Context) error {
	var in Medicine
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	m, err := h.svc.CreateMedicine(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateMedicine(c echo.Context) error {
	var in Medicine
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	m, err := h.svc.UpdateMedicine(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedicine(c echo.Context) error {
	if err := h.svc.DeleteMedicine(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) searchPurchases(c echo.Context) []*Purchase {
	return h.svc.SearchPurchases(c.QueryParam("q"), c.QueryParam("status"))
}

func (h *Handler) ListPurchases(c echo.Context) error {
	records := h.searchPurchases(c)
	params := pagination.FromContext(c)
	lo, hi := params.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), params.Limit, params.Offset))
}

func (h *Handler) PurchaseTable(c echo.Context) error {
	table := console.Project(h.searchPurchases(c), PurchaseColumns(), console.DefaultRowActions)
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) GetPurchase(c echo.Context) error {
	p, err := h.svc.GetPurchase(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePurchase(c echo.Context) error {
	var in Purchase
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p, err := h.svc.CreatePurchase(&in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePurchase(c echo.Context) error {
	var in Purchase
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p, err := h.svc.UpdatePurchase(c.Param("id"), &in)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePurchase(c echo.Context) error {
	if err := h.svc.DeletePurchase(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

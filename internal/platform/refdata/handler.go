package refdata

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the lookup tables to console clients.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/refdata")
	g.GET("/countries", h.ListCountries)
	g.GET("/states", h.ListStates)
	g.GET("/districts", h.ListDistricts)
	g.GET("/mandals", h.ListMandals)
	g.GET("/blood-groups", h.ListBloodGroups)
	g.GET("/appointment-types", h.ListAppointmentTypes)
	g.GET("/time-slots", h.ListTimeSlots)
	g.GET("/bed-types", h.ListBedTypes)
	g.GET("/wards", h.ListWards)
	g.GET("/departments", h.ListDepartments)
	g.GET("/doctors", h.ListDoctors)
}

func (h *Handler) ListCountries(c echo.Context) error {
	return c.JSON(http.StatusOK, Countries())
}

func (h *Handler) ListStates(c echo.Context) error {
	return c.JSON(http.StatusOK, States(c.QueryParam("country")))
}

func (h *Handler) ListDistricts(c echo.Context) error {
	return c.JSON(http.StatusOK, Districts(c.QueryParam("country"), c.QueryParam("state")))
}

// ListMandals returns the enumeration for a district, or free_text=true when
// the district takes free-text input.
func (h *Handler) ListMandals(c echo.Context) error {
	mandals := Mandals(c.QueryParam("country"), c.QueryParam("state"), c.QueryParam("district"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"mandals":   mandals,
		"free_text": mandals == nil,
	})
}

func (h *Handler) ListBloodGroups(c echo.Context) error {
	return c.JSON(http.StatusOK, BloodGroups())
}

func (h *Handler) ListAppointmentTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, AppointmentTypes())
}

func (h *Handler) ListTimeSlots(c echo.Context) error {
	return c.JSON(http.StatusOK, TimeSlots())
}

func (h *Handler) ListBedTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, BedTypes())
}

func (h *Handler) ListWards(c echo.Context) error {
	return c.JSON(http.StatusOK, Wards())
}

func (h *Handler) ListDepartments(c echo.Context) error {
	return c.JSON(http.StatusOK, Departments())
}

func (h *Handler) ListDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, Doctors())
}

package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/prioritycare/pretriage/internal/platform/auth"
	"github.com/prioritycare/pretriage/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Registration is open to the kiosk; everything else is staff only.
	api.POST("/patients", h.Register)

	staff := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	staff.GET("/patients", h.List)
	staff.GET("/patients/:id", h.Get)
	staff.PUT("/patients/:id", h.Update)
	staff.DELETE("/patients/:id", h.Delete)
	staff.PUT("/patients/:id/state", h.SetState)
	staff.GET("/patients/:id/contacts", h.ListContacts)
	staff.POST("/patients/:id/contacts", h.AddContact)
	staff.DELETE("/patients/:id/contacts/:contactID", h.RemoveContact)
}

func (h *Handler) Register(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Register(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, &p)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	var (
		patients []*Patient
		total    int
		err      error
	)
	if number := c.QueryParam("document_number"); number != "" {
		patients, total, err = h.svc.SearchByDocument(c.Request().Context(), number, pg.Limit, pg.Offset)
	} else {
		patients, total, err = h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	}
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(patients, total, pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = id
	if err := h.svc.Update(c.Request().Context(), &p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, &p)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type stateRequest struct {
	State string `json:"state"`
}

func (h *Handler) SetState(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req stateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SetAttentionState(c.Request().Context(), id, req.State); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListContacts(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	contacts, err := h.svc.ListContacts(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *Handler) AddContact(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var contact EmergencyContact
	if err := c.Bind(&contact); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	contact.PatientID = id
	if err := h.svc.AddContact(c.Request().Context(), &contact); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, &contact)
}

func (h *Handler) RemoveContact(c echo.Context) error {
	id, err := parseID(c, "contactID")
	if err != nil {
		return err
	}
	if err := h.svc.RemoveContact(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func mapError(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrContactNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

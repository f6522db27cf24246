package triage

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
	"github.com/prioritycare/pretriage/internal/platform/auth"
	"github.com/prioritycare/pretriage/pkg/pagination"
)

type Handler struct {
	svc       *Service
	questions *catalog.Registry
}

func NewHandler(svc *Service, questions *catalog.Registry) *Handler {
	return &Handler{svc: svc, questions: questions}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Intake endpoints, reachable by the kiosk client and by staff.
	api.POST("/triage/sessions", h.StartSession)
	api.POST("/triage/answers", h.SubmitAnswer)
	api.GET("/triage/sessions/:id", h.GetSession)
	api.GET("/questions", h.ListQuestions)
	api.GET("/questions/:code", h.GetQuestion)

	// Session history is staff only.
	staff := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	staff.GET("/triage/sessions", h.ListSessions)
}

type startRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
}

func (h *Handler) StartSession(c echo.Context) error {
	var req startRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	res, err := h.svc.Start(c.Request().Context(), req.PatientID)
	if err != nil {
		return mapError(err)
	}
	if res.Resumed {
		return c.JSON(http.StatusOK, res)
	}
	return c.JSON(http.StatusCreated, res)
}

type answerRequest struct {
	SessionID    uuid.UUID     `json:"session_id"`
	QuestionCode string        `json:"question_code"`
	Value        catalog.Value `json:"value"`
	Note         string        `json:"note,omitempty"`
}

func (h *Handler) SubmitAnswer(c echo.Context) error {
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if req.QuestionCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question_code is required")
	}
	res, err := h.svc.SubmitAnswer(c.Request().Context(), req.SessionID, req.QuestionCode, req.Value, req.Note)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	view, err := h.svc.GetSession(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) ListSessions(c echo.Context) error {
	patientID, err := uuid.Parse(c.QueryParam("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListSessions(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListQuestions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.questions.All())
}

func (h *Handler) GetQuestion(c echo.Context) error {
	q, err := h.questions.Get(c.Param("code"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "question not found")
	}
	return c.JSON(http.StatusOK, q)
}

func mapError(err error) error {
	var verr *catalog.ValidationError
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrPatientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSessionCompleted), errors.Is(err, ErrDuplicateAnswer):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrUnknownQuestion):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

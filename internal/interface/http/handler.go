package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-calendar/internal/domain/calendar"
	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/profile"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	calendarSvc calendar.Service
	profileSvc  profile.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(calendarSvc calendar.Service, profileSvc profile.Service, logger *slog.Logger) *Handler {
	return &Handler{
		calendarSvc: calendarSvc,
		profileSvc:  profileSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

type profileResponse struct {
	profile.Profile
	Chart ephemeris.BirthChart `json:"chart"`
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Day returns the cosmic day for a single date.
func (h *Handler) Day(c *gin.Context) {
	day, err := h.calendarSvc.Day(c.Request.Context(), calendar.DayRequest{
		Date:      c.Param("date"),
		Timezone:  c.Query("tz"),
		ProfileID: c.Query("profileId"),
	})
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, day)
}

// Month returns every day of a month keyed by date.
func (h *Handler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "year must be an integer", err))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "month must be an integer", err))
		return
	}

	resp, err := h.calendarSvc.Month(c.Request.Context(), calendar.MonthRequest{
		Year:      year,
		Month:     month,
		Timezone:  c.Query("tz"),
		ProfileID: c.Query("profileId"),
	})
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Chart computes a birth chart without storing the profile.
func (h *Handler) Chart(c *gin.Context) {
	var req profile.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	chart, err := h.calendarSvc.Chart(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, chart)
}

// CreateProfile stores a birth profile and returns it with its chart.
func (h *Handler) CreateProfile(c *gin.Context) {
	var req profile.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	p, err := h.profileSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusCreated, profileResponse{Profile: p, Chart: p.Chart()})
}

// GetProfile loads a stored profile with its chart.
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.profileSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, profileResponse{Profile: p, Chart: p.Chart()})
}

// Events lists retrograde stations and lunar events in a date range.
func (h *Handler) Events(c *gin.Context) {
	found, err := h.calendarSvc.Events(c.Request.Context(), calendar.EventsRequest{
		From:     c.Query("from"),
		To:       c.Query("to"),
		Timezone: c.Query("tz"),
	})
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": found})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

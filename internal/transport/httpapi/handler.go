package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/ratelimit"
	"salonbook/backend/internal/service/booking"
)

type catalogService interface {
	ListCategories() []domain.Category
	ListServices(ctx context.Context, category string) ([]string, error)
	ListArtists(ctx context.Context, category string) ([]string, error)
}

type bookingService interface {
	AttemptBookingByName(ctx context.Context, req booking.NamedRequest) (booking.Booking, error)
	FreeSlots(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.TimeOfDay, error)
	AppointmentDetails(ctx context.Context, date domain.Date) ([]domain.AppointmentDetail, error)
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func list[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{Data: data, Total: len(data)})
}

type Handler struct {
	catalog  catalogService
	bookings bookingService
	log      *slog.Logger
	limiter  *ratelimit.Limiter
}

type HandlerOption func(*Handler)

// WithBookingLimiter throttles POST /v1/appointments per client IP.
func WithBookingLimiter(l *ratelimit.Limiter) HandlerOption {
	return func(h *Handler) {
		h.limiter = l
	}
}

func NewHandler(catalog catalogService, bookings bookingService, log *slog.Logger, opts ...HandlerOption) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		catalog:  catalog,
		bookings: bookings,
		log:      log.With(slog.String("component", "http.salon")),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.GET("/categories", h.listCategories)
	v1.GET("/categories/:category/services", h.listServices)
	v1.GET("/categories/:category/artists", h.listArtists)
	v1.POST("/appointments", RateLimit(h.limiter, h.log), h.createAppointment)
	v1.GET("/appointments", h.listAppointments)
	v1.GET("/artists/:id/slots", h.freeSlots)
}

func (h *Handler) listCategories(c *gin.Context) {
	cats := h.catalog.ListCategories()
	out := make([]string, 0, len(cats))
	for _, cat := range cats {
		out = append(out, string(cat))
	}
	list(c, out)
}

func (h *Handler) listServices(c *gin.Context) {
	category := c.Param("category")
	names, err := h.catalog.ListServices(c.Request.Context(), category)
	if err != nil {
		fail(c, h.log, err, slog.String("category", category))
		return
	}
	list(c, names)
}

func (h *Handler) listArtists(c *gin.Context) {
	category := c.Param("category")
	names, err := h.catalog.ListArtists(c.Request.Context(), category)
	if err != nil {
		fail(c, h.log, err, slog.String("category", category))
		return
	}
	list(c, names)
}

type CreateAppointmentRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ServiceName string `json:"service_name"`
	ArtistName  string `json:"artist_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type AppointmentResponse struct {
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
	ArtistID      string `json:"artist_id"`
	ServiceID     string `json:"service_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

func (h *Handler) createAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid request", slog.String("reason", "bad_json"), slog.Any("err", err))
		writeError(c, http.StatusBadRequest, "invalid_request", "Request body must be a JSON object.")
		return
	}

	b, err := h.bookings.AttemptBookingByName(c.Request.Context(), booking.NamedRequest{
		UserName:    req.Name,
		UserPhone:   req.Phone,
		ServiceName: req.ServiceName,
		ArtistName:  req.ArtistName,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		fail(c, h.log, err,
			slog.String("artist_name", req.ArtistName),
			slog.String("date", req.Date),
			slog.String("time", req.Time),
		)
		return
	}

	h.log.Info("appointment booked",
		slog.String("appointment_id", b.Appointment.ID.String()),
		slog.String("artist_id", b.Artist.ID.String()),
	)
	c.JSON(http.StatusCreated, AppointmentResponse{
		AppointmentID: b.Appointment.ID.String(),
		UserID:        b.User.ID.String(),
		ArtistID:      b.Artist.ID.String(),
		ServiceID:     b.Service.ID.String(),
		Date:          b.Appointment.Date.String(),
		Time:          b.Appointment.Time.String(),
	})
}

func (h *Handler) freeSlots(c *gin.Context) {
	artistID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "Artist id must be a UUID.")
		return
	}
	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", booking.UserMessage(err))
		return
	}

	slots, err := h.bookings.FreeSlots(c.Request.Context(), artistID, date)
	if err != nil {
		fail(c, h.log, err, slog.String("artist_id", artistID.String()))
		return
	}
	out := make([]string, 0, len(slots))
	for _, t := range slots {
		out = append(out, t.String())
	}
	list(c, out)
}

type AppointmentDetail struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	UserPhone   string `json:"user_phone"`
	ServiceName string `json:"service_name"`
	Category    string `json:"category"`
	ArtistName  string `json:"artist_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func (h *Handler) listAppointments(c *gin.Context) {
	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", booking.UserMessage(err))
		return
	}

	rows, err := h.bookings.AppointmentDetails(c.Request.Context(), date)
	if err != nil {
		fail(c, h.log, err, slog.String("date", date.String()))
		return
	}
	out := make([]AppointmentDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, AppointmentDetail{
			ID:          r.ID.String(),
			UserName:    r.UserName,
			UserPhone:   r.UserPhone,
			ServiceName: r.ServiceName,
			Category:    string(r.Category),
			ArtistName:  r.ArtistName,
			Date:        r.Date.String(),
			Time:        r.Time.String(),
		})
	}
	list(c, out)
}

package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/service/booking"
)

type SalonServer struct {
	catalog  catalogService
	bookings bookingService
	log      *slog.Logger
}

type catalogService interface {
	ListCategories() []domain.Category
	ListServices(ctx context.Context, category string) ([]string, error)
	ListArtists(ctx context.Context, category string) ([]string, error)
	ArtistRecords(ctx context.Context, category string) ([]domain.Artist, error)
	DeclareAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date, start, end domain.TimeOfDay) (domain.Availability, error)
}

type bookingService interface {
	AttemptBookingByName(ctx context.Context, req booking.NamedRequest) (booking.Booking, error)
	FreeSlots(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.TimeOfDay, error)
	AppointmentDetails(ctx context.Context, date domain.Date) ([]domain.AppointmentDetail, error)
}

func NewSalonServer(catalog catalogService, bookings bookingService, log *slog.Logger) *SalonServer {
	if log == nil {
		log = slog.Default()
	}
	return &SalonServer{
		catalog:  catalog,
		bookings: bookings,
		log:      log.With(slog.String("component", "grpc.salon")),
	}
}

func (s *SalonServer) ListCategories(ctx context.Context, req *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	cats := s.catalog.ListCategories()
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, string(c))
	}
	return &ListCategoriesResponse{Categories: out}, nil
}

func (s *SalonServer) ListServices(ctx context.Context, req *ListServicesRequest) (*ListServicesResponse, error) {
	log := s.log.With(slog.String("rpc", "ListServices"))
	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	names, err := s.catalog.ListServices(ctx, req.Category)
	if err != nil {
		return nil, toStatus(log, err, slog.String("category", req.Category))
	}
	log.Debug("services listed", slog.String("category", req.Category), slog.Int("count", len(names)))
	return &ListServicesResponse{Services: names}, nil
}

func (s *SalonServer) ListArtists(ctx context.Context, req *ListArtistsRequest) (*ListArtistsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListArtists"))
	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	names, err := s.catalog.ListArtists(ctx, req.Category)
	if err != nil {
		return nil, toStatus(log, err, slog.String("category", req.Category))
	}
	records, err := s.catalog.ArtistRecords(ctx, req.Category)
	if err != nil {
		return nil, toStatus(log, err, slog.String("category", req.Category))
	}

	out := &ListArtistsResponse{Artists: names}
	for _, a := range records {
		out.Records = append(out.Records, &Artist{
			Id:             a.ID.String(),
			Name:           a.Name,
			Specialization: string(a.Specialization),
		})
	}
	return out, nil
}

func (s *SalonServer) AttemptBooking(ctx context.Context, req *AttemptBookingRequest) (*AttemptBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "AttemptBooking"))
	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	b, err := s.bookings.AttemptBookingByName(ctx, booking.NamedRequest{
		UserName:    req.Name,
		UserPhone:   req.Phone,
		ServiceName: req.ServiceName,
		ArtistName:  req.ArtistName,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		return nil, toStatus(log, err,
			slog.String("artist_name", req.ArtistName),
			slog.String("date", req.Date),
			slog.String("time", req.Time),
		)
	}

	log.Info(
		"appointment booked",
		slog.String("appointment_id", b.Appointment.ID.String()),
		slog.String("artist_id", b.Artist.ID.String()),
		slog.String("date", b.Appointment.Date.String()),
		slog.String("time", b.Appointment.Time.String()),
	)

	return &AttemptBookingResponse{
		AppointmentId: b.Appointment.ID.String(),
		UserId:        b.User.ID.String(),
		ArtistId:      b.Artist.ID.String(),
		ServiceId:     b.Service.ID.String(),
	}, nil
}

func (s *SalonServer) ListFreeSlots(ctx context.Context, req *ListFreeSlotsRequest) (*ListFreeSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListFreeSlots"))
	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	artistID, err := parseID(req.ArtistId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_artist_id"), slog.String("artist_id", req.ArtistId))
		return nil, status.Error(codes.InvalidArgument, "artist_id must be a UUID")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_date"), slog.String("date", req.Date))
		return nil, status.Error(codes.InvalidArgument, booking.UserMessage(err))
	}

	slots, err := s.bookings.FreeSlots(ctx, artistID, date)
	if err != nil {
		return nil, toStatus(log, err, slog.String("artist_id", req.ArtistId), slog.String("date", req.Date))
	}

	out := make([]string, 0, len(slots))
	for _, t := range slots {
		out = append(out, t.String())
	}
	return &ListFreeSlotsResponse{Times: out}, nil
}

func (s *SalonServer) DeclareAvailability(ctx context.Context, req *DeclareAvailabilityRequest) (*DeclareAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "DeclareAvailability"))
	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	artistID, err := parseID(req.ArtistId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_artist_id"), slog.String("artist_id", req.ArtistId))
		return nil, status.Error(codes.InvalidArgument, "artist_id must be a UUID")
	}
	date, start, err := booking.ParseSlot(req.Date, req.StartTime)
	if err != nil {
		return nil, toStatus(log, err, slog.String("artist_id", req.ArtistId))
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_end_time"), slog.String("end_time", req.EndTime))
		return nil, status.Error(codes.InvalidArgument, booking.UserMessage(err))
	}

	a, err := s.catalog.DeclareAvailability(ctx, artistID, date, start, end)
	if err != nil {
		return nil, toStatus(log, err, slog.String("artist_id", req.ArtistId), slog.String("date", req.Date))
	}

	log.Info("availability declared",
		slog.String("availability_id", a.ID.String()),
		slog.String("artist_id", a.ArtistID.String()),
		slog.String("date", a.Date.String()),
	)
	return &DeclareAvailabilityResponse{AvailabilityId: a.ID.String()}, nil
}

func (s *SalonServer) ListAppointments(ctx context.Context, req *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAppointments"))
	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_date"), slog.String("date", req.Date))
		return nil, status.Error(codes.InvalidArgument, booking.UserMessage(err))
	}

	rows, err := s.bookings.AppointmentDetails(ctx, date)
	if err != nil {
		return nil, toStatus(log, err, slog.String("date", req.Date))
	}

	out := &ListAppointmentsResponse{Appointments: make([]*AppointmentDetail, 0, len(rows))}
	for _, r := range rows {
		out.Appointments = append(out.Appointments, &AppointmentDetail{
			Id:          r.ID.String(),
			UserName:    r.UserName,
			UserPhone:   r.UserPhone,
			ServiceName: r.ServiceName,
			Category:    string(r.Category),
			ArtistName:  r.ArtistName,
			Date:        r.Date.String(),
			Time:        r.Time.String(),
		})
	}

	log.Debug("appointments listed", slog.String("date", req.Date), slog.Int("count", len(rows)))
	return out, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// toStatus maps engine errors onto gRPC codes and logs client mistakes at
// warn and storage failures at error.
func toStatus(log *slog.Logger, err error, attrs ...any) error {
	var (
		vErr *booking.ValidationError
		nErr *booking.NotFoundError
		cErr *booking.ConflictError
		oErr *booking.OutsideAvailabilityError
	)
	args := append([]any{slog.Any("err", err)}, attrs...)

	switch {
	case errors.As(err, &vErr):
		log.Warn("invalid request", args...)
		return status.Error(codes.InvalidArgument, booking.UserMessage(err))
	case errors.As(err, &nErr):
		log.Warn("not found", args...)
		return status.Error(codes.NotFound, booking.UserMessage(err))
	case errors.As(err, &cErr):
		log.Info("booking conflict", args...)
		return status.Error(codes.FailedPrecondition, booking.UserMessage(err))
	case errors.As(err, &oErr):
		log.Info("booking outside availability", args...)
		return status.Error(codes.FailedPrecondition, booking.UserMessage(err))
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("request deadline exceeded", args...)
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	}
	log.Error("request failed", args...)
	return status.Error(codes.Internal, "internal error")
}

package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/events"
	"salonbook/backend/internal/store"
)

// Hours bounds the start times offered by FreeSlots. LastStart is the latest
// start, not the time the salon closes its doors.
type Hours struct {
	Open      domain.TimeOfDay
	LastStart domain.TimeOfDay
	Step      time.Duration
}

func DefaultHours() Hours {
	return Hours{
		Open:      domain.MustTimeOfDay(8, 0),
		LastStart: domain.MustTimeOfDay(19, 0),
		Step:      30 * time.Minute,
	}
}

// Engine books appointments. It holds no mutable state; every call runs
// against the repositories it was built with.
type Engine struct {
	catalog   store.CatalogRepository
	bookings  store.BookingRepository
	publisher events.Publisher
	log       *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time

	enforceAvailability bool
	hours               Hours
}

type Option func(*Engine)

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) {
		if p != nil {
			e.publisher = p
		}
	}
}

// WithAvailabilityPolicy requires every booking to fit inside a declared
// availability window of its artist.
func WithAvailabilityPolicy(enforce bool) Option {
	return func(e *Engine) {
		e.enforceAvailability = enforce
	}
}

func WithHours(h Hours) Option {
	return func(e *Engine) {
		e.hours = h
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(catalog store.CatalogRepository, bookings store.BookingRepository, opts ...Option) *Engine {
	e := &Engine{
		catalog:   catalog,
		bookings:  bookings,
		publisher: events.Nop{},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:    otel.Tracer("salonbook/backend/internal/service/booking"),
		now:       time.Now,
		hours:     DefaultHours(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Request struct {
	ArtistID  uuid.UUID
	ServiceID uuid.UUID
	UserName  string
	UserPhone string
	Date      domain.Date
	Time      domain.TimeOfDay
}

// NamedRequest is a booking as the front desk enters it: service and artist
// by name, date and time as text.
type NamedRequest struct {
	UserName    string
	UserPhone   string
	ServiceName string
	ArtistName  string
	Date        string
	Time        string
}

type Booking struct {
	Appointment domain.Appointment
	User        domain.User
	Service     domain.Service
	Artist      domain.Artist
}

func (e *Engine) AttemptBooking(ctx context.Context, req Request) (Booking, error) {
	ctx, span := e.tracer.Start(ctx, "booking.AttemptBooking")
	defer span.End()

	b, err := e.attemptBooking(ctx, req)
	return b, e.finish(span, b, err)
}

func (e *Engine) attemptBooking(ctx context.Context, req Request) (Booking, error) {
	if err := validateContact(req.UserName, req.UserPhone); err != nil {
		return Booking{}, err
	}

	service, artist, err := e.resolveByID(ctx, req.ServiceID, req.ArtistID)
	if err != nil {
		return Booking{}, err
	}

	if req.Date.IsZero() {
		return Booking{}, validationError(ReasonMissingField)
	}

	calendar, err := e.calendar(ctx, artist)
	if err != nil {
		return Booking{}, err
	}

	return e.book(ctx, service, artist, calendar, req.UserName, req.UserPhone, req.Date, req.Time)
}

// AttemptBookingByName resolves the service and artist by exact name and
// books them. When several artist rows share the name, the one specialised in
// the service's category receives the appointment, and all of them are checked
// for conflicts as one calendar.
func (e *Engine) AttemptBookingByName(ctx context.Context, req NamedRequest) (Booking, error) {
	ctx, span := e.tracer.Start(ctx, "booking.AttemptBookingByName")
	defer span.End()

	b, err := e.attemptBookingByName(ctx, req)
	return b, e.finish(span, b, err)
}

func (e *Engine) attemptBookingByName(ctx context.Context, req NamedRequest) (Booking, error) {
	if err := validateContact(req.UserName, req.UserPhone); err != nil {
		return Booking{}, err
	}

	service, artists, err := e.resolveByName(ctx, req.ServiceName, req.ArtistName)
	if err != nil {
		return Booking{}, err
	}
	artist := pickArtist(artists, service.Category)

	date, at, err := ParseSlot(req.Date, req.Time)
	if err != nil {
		return Booking{}, err
	}

	return e.book(ctx, service, artist, calendarIDs(artist, artists), req.UserName, req.UserPhone, date, at)
}

func (e *Engine) finish(span trace.Span, b Booking, err error) error {
	if err != nil {
		span.RecordError(err)
		var pErr *PersistenceError
		if errors.As(err, &pErr) {
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
	span.SetAttributes(
		attribute.String("salon.appointment_id", b.Appointment.ID.String()),
		attribute.String("salon.artist_id", b.Artist.ID.String()),
		attribute.String("salon.date", b.Appointment.Date.String()),
	)
	return nil
}

func (e *Engine) resolveByID(ctx context.Context, serviceID, artistID uuid.UUID) (domain.Service, domain.Artist, error) {
	if serviceID == uuid.Nil || artistID == uuid.Nil {
		return domain.Service{}, domain.Artist{}, notFoundError(ReasonNotFound)
	}
	service, err := e.catalog.GetService(ctx, serviceID)
	if err != nil {
		return domain.Service{}, domain.Artist{}, lookupError("get service", err)
	}
	artist, err := e.catalog.GetArtist(ctx, artistID)
	if err != nil {
		return domain.Service{}, domain.Artist{}, lookupError("get artist", err)
	}
	return service, artist, nil
}

func (e *Engine) resolveByName(ctx context.Context, serviceName, artistName string) (domain.Service, []domain.Artist, error) {
	if serviceName == "" || artistName == "" {
		return domain.Service{}, nil, notFoundError(ReasonNotFound)
	}
	service, err := e.catalog.FindServiceByName(ctx, serviceName)
	if err != nil {
		return domain.Service{}, nil, lookupError("find service", err)
	}
	artists, err := e.catalog.FindArtistsByName(ctx, artistName)
	if err != nil {
		return domain.Service{}, nil, lookupError("find artist", err)
	}
	if len(artists) == 0 {
		return domain.Service{}, nil, notFoundError(ReasonNotFound)
	}
	return service, artists, nil
}

// calendar returns the ids of every artist row that belongs to the same
// person as artist. The seeded roster lists one person once per
// specialization, and that person can only be in one chair at a time.
func (e *Engine) calendar(ctx context.Context, artist domain.Artist) ([]uuid.UUID, error) {
	rows, err := e.catalog.FindArtistsByName(ctx, artist.Name)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, persistenceError("find artist rows", err)
	}
	return calendarIDs(artist, rows), nil
}

func calendarIDs(artist domain.Artist, rows []domain.Artist) []uuid.UUID {
	ids := []uuid.UUID{artist.ID}
	for _, r := range rows {
		if r.Name == artist.Name && r.ID != artist.ID {
			ids = append(ids, r.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func pickArtist(candidates []domain.Artist, category domain.Category) domain.Artist {
	for _, a := range candidates {
		if a.Specialization == category {
			return a
		}
	}
	return candidates[0]
}

func lookupError(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(ReasonNotFound)
	}
	return persistenceError(op, err)
}

// book runs the conflict check and the writes under the lock of every row in
// calendar, so two requests for one person never both pass the check. The
// appointment itself is stored on artist.
func (e *Engine) book(ctx context.Context, service domain.Service, artist domain.Artist, calendar []uuid.UUID, name, phone string, date domain.Date, at domain.TimeOfDay) (Booking, error) {
	block := domain.BlockAt(date, at)

	var out Booking
	err := e.bookings.InArtistTransaction(ctx, calendar, func(ctx context.Context, tx store.BookingTx) error {
		existing, err := tx.ListAppointments(ctx, calendar, date)
		if err != nil {
			return persistenceError("list appointments", err)
		}
		if clash, ok := domain.FirstConflict(block, date, existing); ok {
			return &ConflictError{AppointmentID: clash.ID}
		}

		if e.enforceAvailability {
			windows, err := tx.ListAvailability(ctx, artist.ID, date)
			if err != nil {
				return persistenceError("list availability", err)
			}
			if !domain.WithinAvailability(block, date, windows) {
				return &OutsideAvailabilityError{}
			}
		}

		user, err := tx.FindOrCreateUser(ctx, name, phone)
		if err != nil {
			return persistenceError("find or create user", err)
		}

		appt, err := tx.CreateAppointment(ctx, domain.Appointment{
			UserID:    user.ID,
			ArtistID:  artist.ID,
			ServiceID: service.ID,
			Date:      date,
			Time:      at,
		})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return &ConflictError{}
			}
			if errors.Is(err, store.ErrNotFound) {
				return notFoundError(ReasonNotFound)
			}
			return persistenceError("create appointment", err)
		}

		out = Booking{Appointment: appt, User: user, Service: service, Artist: artist}
		return nil
	})
	if err != nil {
		return Booking{}, classifyTxError(err)
	}

	e.log.Info("appointment booked",
		slog.String("appointment_id", out.Appointment.ID.String()),
		slog.String("artist_id", artist.ID.String()),
		slog.String("date", date.String()),
		slog.String("time", at.String()),
	)
	e.publishBooked(ctx, out)
	return out, nil
}

// classifyTxError keeps domain outcomes raised inside the transaction and
// wraps anything else, such as a failed lock or commit.
func classifyTxError(err error) error {
	var (
		vErr *ValidationError
		nErr *NotFoundError
		cErr *ConflictError
		oErr *OutsideAvailabilityError
		pErr *PersistenceError
	)
	switch {
	case errors.As(err, &vErr), errors.As(err, &nErr), errors.As(err, &cErr), errors.As(err, &oErr), errors.As(err, &pErr):
		return err
	case errors.Is(err, store.ErrConflict):
		return &ConflictError{}
	}
	return persistenceError("booking transaction", err)
}

func (e *Engine) publishBooked(ctx context.Context, b Booking) {
	ev := events.AppointmentBooked{
		Type:          events.TypeAppointmentBooked,
		AppointmentID: b.Appointment.ID,
		UserID:        b.User.ID,
		ArtistID:      b.Artist.ID,
		ServiceID:     b.Service.ID,
		Date:          b.Appointment.Date.String(),
		Time:          b.Appointment.Time.String(),
		BookedAt:      e.now().UTC(),
	}
	if err := e.publisher.PublishAppointmentBooked(ctx, ev); err != nil {
		e.log.Warn("publish appointment event failed",
			slog.String("appointment_id", b.Appointment.ID.String()),
			slog.Any("err", err),
		)
	}
}

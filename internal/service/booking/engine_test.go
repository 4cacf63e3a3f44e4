package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

var testDay = domain.NewDate(2026, 3, 14)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *memStore) {
	t.Helper()
	m := newMemStore()
	return NewEngine(m, m, opts...), m
}

func requestAt(m *memStore, date domain.Date, h, min int) Request {
	return Request{
		ArtistID:  m.artist("Eva", domain.CategoryCosmetics).ID,
		ServiceID: m.service("Pensat").ID,
		UserName:  "Alexandra",
		UserPhone: "0712345678",
		Date:      date,
		Time:      domain.MustTimeOfDay(h, min),
	}
}

func TestAttemptBooking_ValidationOrder(t *testing.T) {
	e, m := newTestEngine(t)
	valid := requestAt(m, testDay, 10, 0)

	tests := []struct {
		name     string
		mutate   func(r *Request)
		wantType string
		wantMsg  string
	}{
		{name: "empty name", mutate: func(r *Request) { r.UserName = "" }, wantType: "validation", wantMsg: ReasonMissingField},
		{name: "empty phone", mutate: func(r *Request) { r.UserPhone = "" }, wantType: "validation", wantMsg: ReasonMissingField},
		{name: "missing field beats bad name", mutate: func(r *Request) { r.UserName = "Al"; r.UserPhone = "" }, wantType: "validation", wantMsg: ReasonMissingField},
		{name: "two letter name", mutate: func(r *Request) { r.UserName = "Al" }, wantType: "validation", wantMsg: ReasonInvalidName},
		{name: "three letter name", mutate: func(r *Request) { r.UserName = "Ana" }, wantType: "validation", wantMsg: ReasonInvalidName},
		{name: "name with digit", mutate: func(r *Request) { r.UserName = "Al3x" }, wantType: "validation", wantMsg: ReasonInvalidName},
		{name: "name with space", mutate: func(r *Request) { r.UserName = "Ana Maria" }, wantType: "validation", wantMsg: ReasonInvalidName},
		{name: "bad name beats bad phone", mutate: func(r *Request) { r.UserName = "Al3x"; r.UserPhone = "12345" }, wantType: "validation", wantMsg: ReasonInvalidName},
		{name: "short phone", mutate: func(r *Request) { r.UserPhone = "12345" }, wantType: "validation", wantMsg: ReasonInvalidPhone},
		{name: "long phone", mutate: func(r *Request) { r.UserPhone = "12345678901" }, wantType: "validation", wantMsg: ReasonInvalidPhone},
		{name: "phone with letter", mutate: func(r *Request) { r.UserPhone = "07123x5678" }, wantType: "validation", wantMsg: ReasonInvalidPhone},
		{name: "bad phone beats unknown service", mutate: func(r *Request) { r.UserPhone = "1"; r.ServiceID = uuid.New() }, wantType: "validation", wantMsg: ReasonInvalidPhone},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceID = uuid.New() }, wantType: "notfound", wantMsg: ReasonNotFound},
		{name: "unknown artist", mutate: func(r *Request) { r.ArtistID = uuid.New() }, wantType: "notfound", wantMsg: ReasonNotFound},
		{name: "missing date", mutate: func(r *Request) { r.Date = domain.Date{} }, wantType: "validation", wantMsg: ReasonMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			_, err := e.AttemptBooking(context.Background(), req)
			if err == nil {
				t.Fatalf("expected error")
			}
			switch tt.wantType {
			case "validation":
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
			case "notfound":
				var nErr *NotFoundError
				if !errors.As(err, &nErr) {
					t.Fatalf("error type = %T, want *NotFoundError", err)
				}
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}

	if n := m.appointmentCount(); n != 0 {
		t.Fatalf("appointments written on failed validation: %d", n)
	}
	if n := m.userCount(); n != 0 {
		t.Fatalf("users written on failed validation: %d", n)
	}
}

func TestAttemptBooking_AcceptsValidContact(t *testing.T) {
	for _, name := range []string{"Alexandra", "Ștefania", "Ioana"} {
		t.Run(name, func(t *testing.T) {
			e, m := newTestEngine(t)
			req := requestAt(m, testDay, 10, 0)
			req.UserName = name
			req.UserPhone = "1234567890"

			b, err := e.AttemptBooking(context.Background(), req)
			if err != nil {
				t.Fatalf("AttemptBooking error: %v", err)
			}
			if b.User.Name != name || b.Appointment.ID == uuid.Nil {
				t.Fatalf("unexpected booking: %+v", b)
			}
		})
	}
}

func TestAttemptBooking_BackToBackBoundary(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.AttemptBooking(ctx, requestAt(m, testDay, 10, 0)); err != nil {
		t.Fatalf("book 10:00 error: %v", err)
	}

	_, err := e.AttemptBooking(ctx, requestAt(m, testDay, 11, 58))
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("11:58 error = %v, want *ConflictError", err)
	}
	if err.Error() != ReasonArtistUnavailable {
		t.Fatalf("error = %q, want %q", err.Error(), ReasonArtistUnavailable)
	}
	if cErr.AppointmentID == uuid.Nil {
		t.Fatalf("expected conflicting appointment id")
	}

	if _, err := e.AttemptBooking(ctx, requestAt(m, testDay, 11, 59)); err != nil {
		t.Fatalf("book 11:59 error: %v", err)
	}
	if n := m.appointmentCount(); n != 2 {
		t.Fatalf("appointments = %d, want 2", n)
	}
}

func TestAttemptBooking_OverlapFailsInEitherOrder(t *testing.T) {
	pairs := []struct {
		name   string
		h1, m1 int
		h2, m2 int
	}{
		{name: "identical", h1: 10, h2: 10},
		{name: "later starts inside", h1: 10, h2: 11, m2: 30},
		{name: "earlier ends inside", h1: 10, h2: 8, m2: 2},
		{name: "late evening", h1: 18, h2: 19},
	}

	for _, p := range pairs {
		for _, swapped := range []bool{false, true} {
			name := p.name
			if swapped {
				name += " swapped"
			}
			t.Run(name, func(t *testing.T) {
				e, m := newTestEngine(t)
				first := requestAt(m, testDay, p.h1, p.m1)
				second := requestAt(m, testDay, p.h2, p.m2)
				if swapped {
					first, second = second, first
				}

				if _, err := e.AttemptBooking(context.Background(), first); err != nil {
					t.Fatalf("first booking error: %v", err)
				}
				_, err := e.AttemptBooking(context.Background(), second)
				var cErr *ConflictError
				if !errors.As(err, &cErr) {
					t.Fatalf("second booking error = %v, want *ConflictError", err)
				}
			})
		}
	}
}

func TestAttemptBooking_NonOverlappingSlotsSucceed(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	for _, hm := range [][2]int{{8, 0}, {9, 59}, {11, 58}, {13, 57}, {15, 56}} {
		if _, err := e.AttemptBooking(ctx, requestAt(m, testDay, hm[0], hm[1])); err != nil {
			t.Fatalf("book %02d:%02d error: %v", hm[0], hm[1], err)
		}
	}

	// Another artist at the same time is independent.
	other := requestAt(m, testDay, 8, 0)
	other.ArtistID = m.artist("Daria", domain.CategoryHair).ID
	if _, err := e.AttemptBooking(ctx, other); err != nil {
		t.Fatalf("other artist error: %v", err)
	}
}

func TestAttemptBooking_CrossDateNeverConflicts(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.AttemptBooking(ctx, requestAt(m, testDay, 10, 0)); err != nil {
		t.Fatalf("day one error: %v", err)
	}
	if _, err := e.AttemptBooking(ctx, requestAt(m, domain.NewDate(2026, 3, 15), 10, 0)); err != nil {
		t.Fatalf("day two error: %v", err)
	}

	// A late block spilling past midnight is not compared with next-day bookings.
	if _, err := e.AttemptBooking(ctx, requestAt(m, testDay, 23, 30)); err != nil {
		t.Fatalf("23:30 error: %v", err)
	}
	if _, err := e.AttemptBooking(ctx, requestAt(m, domain.NewDate(2026, 3, 15), 0, 30)); err != nil {
		t.Fatalf("next day 00:30 error: %v", err)
	}
}

func TestAttemptBooking_ReusesUser(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	first, err := e.AttemptBooking(ctx, requestAt(m, testDay, 10, 0))
	if err != nil {
		t.Fatalf("first booking error: %v", err)
	}
	second, err := e.AttemptBooking(ctx, requestAt(m, testDay, 14, 0))
	if err != nil {
		t.Fatalf("second booking error: %v", err)
	}
	if first.User.ID != second.User.ID {
		t.Fatalf("user ids differ: %s vs %s", first.User.ID, second.User.ID)
	}
	if n := m.userCount(); n != 1 {
		t.Fatalf("users = %d, want 1", n)
	}

	// Same name, other phone: a distinct customer.
	req := requestAt(m, testDay, 16, 0)
	req.UserPhone = "0799999999"
	third, err := e.AttemptBooking(ctx, req)
	if err != nil {
		t.Fatalf("third booking error: %v", err)
	}
	if third.User.ID == first.User.ID {
		t.Fatalf("expected a new user for a different phone")
	}
}

func TestAttemptBooking_FailedConflictWritesNothing(t *testing.T) {
	e, m := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.AttemptBooking(ctx, requestAt(m, testDay, 10, 0)); err != nil {
		t.Fatalf("first booking error: %v", err)
	}
	req := requestAt(m, testDay, 10, 30)
	req.UserName = "Gabriela"
	if _, err := e.AttemptBooking(ctx, req); err == nil {
		t.Fatalf("expected conflict")
	}
	if n := m.userCount(); n != 1 {
		t.Fatalf("users = %d, want 1 (no user for rejected booking)", n)
	}
}

func TestAttemptBooking_ConcurrentOverlapsOneWins(t *testing.T) {
	e, m := newTestEngine(t)

	const workers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := e.AttemptBooking(context.Background(), requestAt(m, testDay, 10, i*5))
			mu.Lock()
			defer mu.Unlock()
			var cErr *ConflictError
			switch {
			case err == nil:
				successes++
			case errors.As(err, &cErr):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successes != 1 || conflicts != workers-1 {
		t.Fatalf("successes = %d, conflicts = %d; want 1 and %d", successes, conflicts, workers-1)
	}
}

func TestAttemptBooking_StoreConflictSurfacesAsConflictError(t *testing.T) {
	e, m := newTestEngine(t)
	m.createAppointmentErr = store.ErrConflict

	_, err := e.AttemptBooking(context.Background(), requestAt(m, testDay, 10, 0))
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error = %v, want *ConflictError", err)
	}
	if cErr.AppointmentID != uuid.Nil {
		t.Fatalf("constraint conflict should not name an appointment")
	}
}

func TestAttemptBooking_PersistenceError(t *testing.T) {
	m := newMemStore()
	dbErr := errors.New("connection reset")
	e := NewEngine(m, &fakeBookingRepo{
		inTxFn: func(ctx context.Context, artistIDs []uuid.UUID, fn func(ctx context.Context, tx store.BookingTx) error) error {
			return dbErr
		},
	})

	_, err := e.AttemptBooking(context.Background(), requestAt(m, testDay, 10, 0))
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *PersistenceError", err)
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped driver error")
	}
}

func TestAttemptBooking_AvailabilityPolicy(t *testing.T) {
	ctx := context.Background()

	e, m := newTestEngine(t, WithAvailabilityPolicy(true))
	eva := m.artist("Eva", domain.CategoryCosmetics).ID
	if _, err := m.CreateAvailability(ctx, domain.Availability{
		ArtistID:  eva,
		Date:      testDay,
		StartTime: domain.MustTimeOfDay(9, 0),
		EndTime:   domain.MustTimeOfDay(13, 0),
	}); err != nil {
		t.Fatalf("CreateAvailability error: %v", err)
	}

	if _, err := e.AttemptBooking(ctx, requestAt(m, testDay, 9, 0)); err != nil {
		t.Fatalf("inside window error: %v", err)
	}

	_, err := e.AttemptBooking(ctx, requestAt(m, testDay, 11, 30))
	var oErr *OutsideAvailabilityError
	if !errors.As(err, &oErr) {
		t.Fatalf("crossing window end error = %v, want *OutsideAvailabilityError", err)
	}
	if err.Error() != ReasonOutsideAvailability {
		t.Fatalf("error = %q", err.Error())
	}

	_, err = e.AttemptBooking(ctx, requestAt(m, domain.NewDate(2026, 3, 15), 10, 0))
	if !errors.As(err, &oErr) {
		t.Fatalf("no window error = %v, want *OutsideAvailabilityError", err)
	}

	// Policy off: windows are ignored.
	off := NewEngine(m, m)
	if _, err := off.AttemptBooking(ctx, requestAt(m, domain.NewDate(2026, 3, 15), 10, 0)); err != nil {
		t.Fatalf("policy off error: %v", err)
	}
}

func TestAttemptBookingByName_SharedNameIsOneCalendar(t *testing.T) {
	ctx := context.Background()
	e, m := newTestEngine(t)
	named := func(service, at string) NamedRequest {
		return NamedRequest{
			UserName:    "Alexandra",
			UserPhone:   "0712345678",
			ServiceName: service,
			ArtistName:  "Roxana",
			Date:        "2026-03-14",
			Time:        at,
		}
	}

	nails, err := e.AttemptBookingByName(ctx, named("Manichiura Gel", "10:00"))
	if err != nil {
		t.Fatalf("nails booking error: %v", err)
	}
	if nails.Artist.Specialization != domain.CategoryNails {
		t.Fatalf("nails booking stored on %q row", nails.Artist.Specialization)
	}

	_, err = e.AttemptBookingByName(ctx, named("Tuns Păr Lung", "10:00"))
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("hair booking at the same slot error = %v, want *ConflictError", err)
	}
	if cErr.AppointmentID != nails.Appointment.ID {
		t.Fatalf("conflict names %s, want %s", cErr.AppointmentID, nails.Appointment.ID)
	}

	// The hair row is locked out by id as well.
	byID := Request{
		ArtistID:  m.artist("Roxana", domain.CategoryHair).ID,
		ServiceID: m.service("Tuns Păr Lung").ID,
		UserName:  "Ioana",
		UserPhone: "0798765432",
		Date:      testDay,
		Time:      domain.MustTimeOfDay(10, 30),
	}
	if _, err := e.AttemptBooking(ctx, byID); !errors.As(err, &cErr) {
		t.Fatalf("by-id hair booking error = %v, want *ConflictError", err)
	}

	hair, err := e.AttemptBookingByName(ctx, named("Tuns Păr Lung", "11:59"))
	if err != nil {
		t.Fatalf("back-to-back hair booking error: %v", err)
	}
	if hair.Artist.Specialization != domain.CategoryHair {
		t.Fatalf("hair booking stored on %q row", hair.Artist.Specialization)
	}

	// Maria's rows are a separate calendar.
	if _, err := e.AttemptBookingByName(ctx, NamedRequest{
		UserName:    "Alexandra",
		UserPhone:   "0712345678",
		ServiceName: "Tuns Păr Lung",
		ArtistName:  "Maria",
		Date:        "2026-03-14",
		Time:        "10:00",
	}); err != nil {
		t.Fatalf("other artist booking error: %v", err)
	}
	if n := m.appointmentCount(); n != 3 {
		t.Fatalf("appointments = %d, want 3", n)
	}
}

func TestAttemptBookingByName_Errors(t *testing.T) {
	base := NamedRequest{
		UserName:    "Alexandra",
		UserPhone:   "0712345678",
		ServiceName: "Pensat",
		ArtistName:  "Eva",
		Date:        "2026-03-14",
		Time:        "10:00",
	}

	tests := []struct {
		name    string
		mutate  func(r *NamedRequest)
		wantMsg string
	}{
		{name: "unknown service", mutate: func(r *NamedRequest) { r.ServiceName = "Masaj" }, wantMsg: ReasonNotFound},
		{name: "unknown artist", mutate: func(r *NamedRequest) { r.ArtistName = "Ioana" }, wantMsg: ReasonNotFound},
		{name: "blank artist", mutate: func(r *NamedRequest) { r.ArtistName = "" }, wantMsg: ReasonNotFound},
		{name: "name checked before lookup", mutate: func(r *NamedRequest) { r.UserName = "Al"; r.ServiceName = "Masaj" }, wantMsg: ReasonInvalidName},
		{name: "blank date", mutate: func(r *NamedRequest) { r.Date = "" }, wantMsg: ReasonMissingField},
		{name: "bad date", mutate: func(r *NamedRequest) { r.Date = "14.03.2026" }, wantMsg: ReasonInvalidDate},
		{name: "bad time", mutate: func(r *NamedRequest) { r.Time = "25:00" }, wantMsg: ReasonInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			req := base
			tt.mutate(&req)
			_, err := e.AttemptBookingByName(context.Background(), req)
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestAttemptBooking_PublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	e, m := newTestEngine(t, WithPublisher(pub), WithClock(func() time.Time { return fixed }))

	b, err := e.AttemptBooking(context.Background(), requestAt(m, testDay, 10, 0))
	if err != nil {
		t.Fatalf("AttemptBooking error: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("events = %d, want 1", len(pub.events))
	}
	ev := pub.events[0]
	if ev.AppointmentID != b.Appointment.ID || ev.Date != "2026-03-14" || ev.Time != "10:00" || !ev.BookedAt.Equal(fixed) {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// A failed conflict check emits nothing.
	_, _ = e.AttemptBooking(context.Background(), requestAt(m, testDay, 10, 0))
	if len(pub.events) != 1 {
		t.Fatalf("events after conflict = %d, want 1", len(pub.events))
	}
}

func TestAttemptBooking_PublishFailureKeepsBooking(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	e, m := newTestEngine(t, WithPublisher(pub))

	if _, err := e.AttemptBooking(context.Background(), requestAt(m, testDay, 10, 0)); err != nil {
		t.Fatalf("AttemptBooking error: %v", err)
	}
	if n := m.appointmentCount(); n != 1 {
		t.Fatalf("appointments = %d, want 1", n)
	}
}

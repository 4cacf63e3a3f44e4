package booking

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/events"
	"salonbook/backend/internal/store"
)

// memStore is an in-memory catalog and booking store. One mutex stands in
// for the per-artist transaction lock.
type memStore struct {
	mu           sync.Mutex
	services     []domain.Service
	artists      []domain.Artist
	users        []domain.User
	appointments []domain.Appointment
	availability []domain.Availability

	createAppointmentErr error
}

func newMemStore() *memStore {
	return &memStore{
		services: domain.SeedServices(),
		artists:  domain.SeedArtists(),
	}
}

func (m *memStore) artist(name string, spec domain.Category) domain.Artist {
	for _, a := range m.artists {
		if a.Name == name && a.Specialization == spec {
			return a
		}
	}
	panic("no seeded artist " + name)
}

func (m *memStore) service(name string) domain.Service {
	for _, s := range m.services {
		if s.Name == name {
			return s
		}
	}
	panic("no seeded service " + name)
}

func (m *memStore) ListServicesByCategory(ctx context.Context, category domain.Category) ([]domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Service
	for _, s := range m.services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) ListArtistsBySpecialization(ctx context.Context, category domain.Category) ([]domain.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Artist
	for _, a := range m.artists {
		if a.Specialization == category {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) GetService(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.services {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Service{}, store.ErrNotFound
}

func (m *memStore) GetArtist(ctx context.Context, id uuid.UUID) (domain.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.artists {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Artist{}, store.ErrNotFound
}

func (m *memStore) FindServiceByName(ctx context.Context, name string) (domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.services {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Service{}, store.ErrNotFound
}

func (m *memStore) FindArtistsByName(ctx context.Context, name string) ([]domain.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Artist
	for _, a := range m.artists {
		if a.Name == name {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, store.ErrNotFound
	}
	return out, nil
}

func (m *memStore) FindOrCreateUser(ctx context.Context, name, phone string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findOrCreateUser(name, phone), nil
}

func (m *memStore) findOrCreateUser(name, phone string) domain.User {
	for _, u := range m.users {
		if u.Name == name && u.Phone == phone {
			return u
		}
	}
	u := domain.User{ID: uuid.New(), Name: name, Phone: phone}
	m.users = append(m.users, u)
	return u
}

func (m *memStore) CreateAvailability(ctx context.Context, a domain.Availability) (domain.Availability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.New()
	m.availability = append(m.availability, a)
	return a, nil
}

func (m *memStore) ListAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listAvailability(artistID, date), nil
}

func (m *memStore) listAvailability(artistID uuid.UUID, date domain.Date) []domain.Availability {
	out := []domain.Availability{}
	for _, a := range m.availability {
		if a.ArtistID == artistID && a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

func (m *memStore) InArtistTransaction(ctx context.Context, artistIDs []uuid.UUID, fn func(ctx context.Context, tx store.BookingTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{m: m}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	m.users = append(m.users, tx.users...)
	m.appointments = append(m.appointments, tx.appointments...)
	return nil
}

func (m *memStore) ListAppointments(ctx context.Context, artistIDs []uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listAppointments(artistIDs, date), nil
}

func (m *memStore) listAppointments(artistIDs []uuid.UUID, date domain.Date) []domain.Appointment {
	want := make(map[uuid.UUID]bool, len(artistIDs))
	for _, id := range artistIDs {
		want[id] = true
	}
	var out []domain.Appointment
	for _, a := range m.appointments {
		if want[a.ArtistID] && a.Date == date {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

func (m *memStore) ListAppointmentDetails(ctx context.Context, date domain.Date) ([]domain.AppointmentDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AppointmentDetail
	for _, a := range m.appointments {
		if a.Date != date {
			continue
		}
		d := domain.AppointmentDetail{ID: a.ID, Date: a.Date, Time: a.Time}
		for _, u := range m.users {
			if u.ID == a.UserID {
				d.UserName, d.UserPhone = u.Name, u.Phone
			}
		}
		for _, s := range m.services {
			if s.ID == a.ServiceID {
				d.ServiceName, d.Category = s.Name, s.Category
			}
		}
		for _, ar := range m.artists {
			if ar.ID == a.ArtistID {
				d.ArtistName = ar.Name
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memStore) userCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memStore) appointmentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.appointments)
}

// memTx buffers writes until the transaction callback returns nil.
type memTx struct {
	m            *memStore
	users        []domain.User
	appointments []domain.Appointment
}

func (t *memTx) ListAppointments(ctx context.Context, artistIDs []uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	return t.m.listAppointments(artistIDs, date), nil
}

func (t *memTx) ListAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error) {
	return t.m.listAvailability(artistID, date), nil
}

func (t *memTx) FindOrCreateUser(ctx context.Context, name, phone string) (domain.User, error) {
	for _, users := range [][]domain.User{t.m.users, t.users} {
		for _, u := range users {
			if u.Name == name && u.Phone == phone {
				return u, nil
			}
		}
	}
	u := domain.User{ID: uuid.New(), Name: name, Phone: phone}
	t.users = append(t.users, u)
	return u, nil
}

func (t *memTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if t.m.createAppointmentErr != nil {
		return domain.Appointment{}, t.m.createAppointmentErr
	}
	appt.ID = uuid.New()
	t.appointments = append(t.appointments, appt)
	return appt, nil
}

type fakeCatalogRepo struct {
	store.CatalogRepository

	listServicesFn func(ctx context.Context, category domain.Category) ([]domain.Service, error)
	getArtistFn    func(ctx context.Context, id uuid.UUID) (domain.Artist, error)
	getServiceFn   func(ctx context.Context, id uuid.UUID) (domain.Service, error)
}

func (f *fakeCatalogRepo) ListServicesByCategory(ctx context.Context, category domain.Category) ([]domain.Service, error) {
	if f.listServicesFn == nil {
		panic("ListServicesByCategory not configured")
	}
	return f.listServicesFn(ctx, category)
}

func (f *fakeCatalogRepo) GetArtist(ctx context.Context, id uuid.UUID) (domain.Artist, error) {
	if f.getArtistFn == nil {
		panic("GetArtist not configured")
	}
	return f.getArtistFn(ctx, id)
}

func (f *fakeCatalogRepo) GetService(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	if f.getServiceFn == nil {
		panic("GetService not configured")
	}
	return f.getServiceFn(ctx, id)
}

type fakeBookingRepo struct {
	store.BookingRepository

	inTxFn func(ctx context.Context, artistIDs []uuid.UUID, fn func(ctx context.Context, tx store.BookingTx) error) error
}

func (f *fakeBookingRepo) InArtistTransaction(ctx context.Context, artistIDs []uuid.UUID, fn func(ctx context.Context, tx store.BookingTx) error) error {
	if f.inTxFn == nil {
		panic("InArtistTransaction not configured")
	}
	return f.inTxFn(ctx, artistIDs, fn)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.AppointmentBooked
	err    error
}

func (f *fakePublisher) PublishAppointmentBooked(ctx context.Context, ev events.AppointmentBooked) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.err
}

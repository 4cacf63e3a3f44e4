package grpc

import "google.golang.org/protobuf/encoding/protowire"

// Field numbers follow api/proto/salon/v1/salon.proto.

type ListCategoriesRequest struct{}

func (m *ListCategoriesRequest) marshalWire(b []byte) []byte { return b }

func (m *ListCategoriesRequest) unmarshalWire(b []byte) error {
	return walkFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return 0, errSkipField
	})
}

type ListCategoriesResponse struct {
	Categories []string
}

func (m *ListCategoriesResponse) marshalWire(b []byte) []byte {
	return appendStrings(b, 1, m.Categories)
}

func (m *ListCategoriesResponse) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeRepeatedString(typ, b, &m.Categories)
		}
		return 0, errSkipField
	})
}

type ListServicesRequest struct {
	Category string
}

func (m *ListServicesRequest) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.Category)
}

func (m *ListServicesRequest) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Category)
		}
		return 0, errSkipField
	})
}

type ListServicesResponse struct {
	Services []string
}

func (m *ListServicesResponse) marshalWire(b []byte) []byte {
	return appendStrings(b, 1, m.Services)
}

func (m *ListServicesResponse) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeRepeatedString(typ, b, &m.Services)
		}
		return 0, errSkipField
	})
}

type ListArtistsRequest struct {
	Category string
}

func (m *ListArtistsRequest) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.Category)
}

func (m *ListArtistsRequest) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Category)
		}
		return 0, errSkipField
	})
}

type Artist struct {
	Id             string
	Name           string
	Specialization string
}

func (m *Artist) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	return appendString(b, 3, m.Specialization)
}

func (m *Artist) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Name)
		case 3:
			return consumeString(typ, b, &m.Specialization)
		}
		return 0, errSkipField
	})
}

type ListArtistsResponse struct {
	// Artists are the names shown in the booking form.
	Artists []string
	// Records are the stored artist rows, for clients that need ids.
	Records []*Artist
}

func (m *ListArtistsResponse) marshalWire(b []byte) []byte {
	b = appendStrings(b, 1, m.Artists)
	for _, r := range m.Records {
		b = appendMessage(b, 2, r)
	}
	return b
}

func (m *ListArtistsResponse) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeRepeatedString(typ, b, &m.Artists)
		case 2:
			r := &Artist{}
			n, err := consumeMessage(typ, b, r)
			if err == nil && n >= 0 {
				m.Records = append(m.Records, r)
			}
			return n, err
		}
		return 0, errSkipField
	})
}

type AttemptBookingRequest struct {
	Name        string
	Phone       string
	ServiceName string
	ArtistName  string
	Date        string
	Time        string
}

func (m *AttemptBookingRequest) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Phone)
	b = appendString(b, 3, m.ServiceName)
	b = appendString(b, 4, m.ArtistName)
	b = appendString(b, 5, m.Date)
	return appendString(b, 6, m.Time)
}

func (m *AttemptBookingRequest) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Name)
		case 2:
			return consumeString(typ, b, &m.Phone)
		case 3:
			return consumeString(typ, b, &m.ServiceName)
		case 4:
			return consumeString(typ, b, &m.ArtistName)
		case 5:
			return consumeString(typ, b, &m.Date)
		case 6:
			return consumeString(typ, b, &m.Time)
		}
		return 0, errSkipField
	})
}

type AttemptBookingResponse struct {
	AppointmentId string
	UserId        string
	ArtistId      string
	ServiceId     string
}

func (m *AttemptBookingResponse) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.AppointmentId)
	b = appendString(b, 2, m.UserId)
	b = appendString(b, 3, m.ArtistId)
	return appendString(b, 4, m.ServiceId)
}

func (m *AttemptBookingResponse) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.AppointmentId)
		case 2:
			return consumeString(typ, b, &m.UserId)
		case 3:
			return consumeString(typ, b, &m.ArtistId)
		case 4:
			return consumeString(typ, b, &m.ServiceId)
		}
		return 0, errSkipField
	})
}

type ListFreeSlotsRequest struct {
	ArtistId string
	Date     string
}

func (m *ListFreeSlotsRequest) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.ArtistId)
	return appendString(b, 2, m.Date)
}

func (m *ListFreeSlotsRequest) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.ArtistId)
		case 2:
			return consumeString(typ, b, &m.Date)
		}
		return 0, errSkipField
	})
}

type ListFreeSlotsResponse struct {
	Times []string
}

func (m *ListFreeSlotsResponse) marshalWire(b []byte) []byte {
	return appendStrings(b, 1, m.Times)
}

func (m *ListFreeSlotsResponse) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeRepeatedString(typ, b, &m.Times)
		}
		return 0, errSkipField
	})
}

type DeclareAvailabilityRequest struct {
	ArtistId  string
	Date      string
	StartTime string
	EndTime   string
}

func (m *DeclareAvailabilityRequest) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.ArtistId)
	b = appendString(b, 2, m.Date)
	b = appendString(b, 3, m.StartTime)
	return appendString(b, 4, m.EndTime)
}

func (m *DeclareAvailabilityRequest) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.ArtistId)
		case 2:
			return consumeString(typ, b, &m.Date)
		case 3:
			return consumeString(typ, b, &m.StartTime)
		case 4:
			return consumeString(typ, b, &m.EndTime)
		}
		return 0, errSkipField
	})
}

type DeclareAvailabilityResponse struct {
	AvailabilityId string
}

func (m *DeclareAvailabilityResponse) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.AvailabilityId)
}

func (m *DeclareAvailabilityResponse) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.AvailabilityId)
		}
		return 0, errSkipField
	})
}

type ListAppointmentsRequest struct {
	Date string
}

func (m *ListAppointmentsRequest) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.Date)
}

func (m *ListAppointmentsRequest) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Date)
		}
		return 0, errSkipField
	})
}

type AppointmentDetail struct {
	Id          string
	UserName    string
	UserPhone   string
	ServiceName string
	Category    string
	ArtistName  string
	Date        string
	Time        string
}

func (m *AppointmentDetail) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.UserName)
	b = appendString(b, 3, m.UserPhone)
	b = appendString(b, 4, m.ServiceName)
	b = appendString(b, 5, m.Category)
	b = appendString(b, 6, m.ArtistName)
	b = appendString(b, 7, m.Date)
	return appendString(b, 8, m.Time)
}

func (m *AppointmentDetail) unmarshalWire(b []byte) error {
	fields := [...]*string{nil, &m.Id, &m.UserName, &m.UserPhone, &m.ServiceName, &m.Category, &m.ArtistName, &m.Date, &m.Time}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num >= 1 && int(num) < len(fields) {
			return consumeString(typ, b, fields[num])
		}
		return 0, errSkipField
	})
}

type ListAppointmentsResponse struct {
	Appointments []*AppointmentDetail
}

func (m *ListAppointmentsResponse) marshalWire(b []byte) []byte {
	for _, a := range m.Appointments {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ListAppointmentsResponse) unmarshalWire(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			a := &AppointmentDetail{}
			n, err := consumeMessage(typ, b, a)
			if err == nil && n >= 0 {
				m.Appointments = append(m.Appointments, a)
			}
			return n, err
		}
		return 0, errSkipField
	})
}

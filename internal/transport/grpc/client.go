package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// SalonServiceClient calls SalonService with the salon wire codec.
type SalonServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSalonServiceClient(cc grpc.ClientConnInterface) *SalonServiceClient {
	return &SalonServiceClient{cc: cc}
}

func (c *SalonServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *SalonServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	out := new(ListCategoriesResponse)
	if err := c.invoke(ctx, SalonService_ListCategories_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SalonServiceClient) ListServices(ctx context.Context, in *ListServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	out := new(ListServicesResponse)
	if err := c.invoke(ctx, SalonService_ListServices_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SalonServiceClient) ListArtists(ctx context.Context, in *ListArtistsRequest, opts ...grpc.CallOption) (*ListArtistsResponse, error) {
	out := new(ListArtistsResponse)
	if err := c.invoke(ctx, SalonService_ListArtists_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SalonServiceClient) AttemptBooking(ctx context.Context, in *AttemptBookingRequest, opts ...grpc.CallOption) (*AttemptBookingResponse, error) {
	out := new(AttemptBookingResponse)
	if err := c.invoke(ctx, SalonService_AttemptBooking_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SalonServiceClient) ListFreeSlots(ctx context.Context, in *ListFreeSlotsRequest, opts ...grpc.CallOption) (*ListFreeSlotsResponse, error) {
	out := new(ListFreeSlotsResponse)
	if err := c.invoke(ctx, SalonService_ListFreeSlots_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SalonServiceClient) DeclareAvailability(ctx context.Context, in *DeclareAvailabilityRequest, opts ...grpc.CallOption) (*DeclareAvailabilityResponse, error) {
	out := new(DeclareAvailabilityResponse)
	if err := c.invoke(ctx, SalonService_DeclareAvailability_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SalonServiceClient) ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	out := new(ListAppointmentsResponse)
	if err := c.invoke(ctx, SalonService_ListAppointments_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

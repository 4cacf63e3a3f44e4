package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	SalonServiceName = "salon.v1.SalonService"

	SalonService_ListCategories_FullMethodName      = "/salon.v1.SalonService/ListCategories"
	SalonService_ListServices_FullMethodName        = "/salon.v1.SalonService/ListServices"
	SalonService_ListArtists_FullMethodName         = "/salon.v1.SalonService/ListArtists"
	SalonService_AttemptBooking_FullMethodName      = "/salon.v1.SalonService/AttemptBooking"
	SalonService_ListFreeSlots_FullMethodName       = "/salon.v1.SalonService/ListFreeSlots"
	SalonService_DeclareAvailability_FullMethodName = "/salon.v1.SalonService/DeclareAvailability"
	SalonService_ListAppointments_FullMethodName    = "/salon.v1.SalonService/ListAppointments"
)

type SalonServiceServer interface {
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	ListServices(context.Context, *ListServicesRequest) (*ListServicesResponse, error)
	ListArtists(context.Context, *ListArtistsRequest) (*ListArtistsResponse, error)
	AttemptBooking(context.Context, *AttemptBookingRequest) (*AttemptBookingResponse, error)
	ListFreeSlots(context.Context, *ListFreeSlotsRequest) (*ListFreeSlotsResponse, error)
	DeclareAvailability(context.Context, *DeclareAvailabilityRequest) (*DeclareAvailabilityResponse, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
}

func RegisterSalonServiceServer(s grpc.ServiceRegistrar, srv SalonServiceServer) {
	s.RegisterService(&SalonService_ServiceDesc, srv)
}

var SalonService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: SalonServiceName,
	HandlerType: (*SalonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListCategories",
			Handler: unaryHandler(SalonService_ListCategories_FullMethodName, func(s SalonServiceServer, ctx context.Context, in *ListCategoriesRequest) (any, error) {
				return s.ListCategories(ctx, in)
			}),
		},
		{
			MethodName: "ListServices",
			Handler: unaryHandler(SalonService_ListServices_FullMethodName, func(s SalonServiceServer, ctx context.Context, in *ListServicesRequest) (any, error) {
				return s.ListServices(ctx, in)
			}),
		},
		{
			MethodName: "ListArtists",
			Handler: unaryHandler(SalonService_ListArtists_FullMethodName, func(s SalonServiceServer, ctx context.Context, in *ListArtistsRequest) (any, error) {
				return s.ListArtists(ctx, in)
			}),
		},
		{
			MethodName: "AttemptBooking",
			Handler: unaryHandler(SalonService_AttemptBooking_FullMethodName, func(s SalonServiceServer, ctx context.Context, in *AttemptBookingRequest) (any, error) {
				return s.AttemptBooking(ctx, in)
			}),
		},
		{
			MethodName: "ListFreeSlots",
			Handler: unaryHandler(SalonService_ListFreeSlots_FullMethodName, func(s SalonServiceServer, ctx context.Context, in *ListFreeSlotsRequest) (any, error) {
				return s.ListFreeSlots(ctx, in)
			}),
		},
		{
			MethodName: "DeclareAvailability",
			Handler: unaryHandler(SalonService_DeclareAvailability_FullMethodName, func(s SalonServiceServer, ctx context.Context, in *DeclareAvailabilityRequest) (any, error) {
				return s.DeclareAvailability(ctx, in)
			}),
		},
		{
			MethodName: "ListAppointments",
			Handler: unaryHandler(SalonService_ListAppointments_FullMethodName, func(s SalonServiceServer, ctx context.Context, in *ListAppointmentsRequest) (any, error) {
				return s.ListAppointments(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "salon/v1/salon.proto",
}

func unaryHandler[Req any](fullMethod string, call func(s SalonServiceServer, ctx context.Context, in *Req) (any, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SalonServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SalonServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

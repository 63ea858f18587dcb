// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: utilitytracker/v1/utility_tracker.proto

package utilitytrackerv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InvoicesService_ParseInvoicePdf_FullMethodName = "/utilitytracker.v1.InvoicesService/ParseInvoicePdf"
	InvoicesService_CreateInvoice_FullMethodName   = "/utilitytracker.v1.InvoicesService/CreateInvoice"
	InvoicesService_ListInvoices_FullMethodName    = "/utilitytracker.v1.InvoicesService/ListInvoices"
	InvoicesService_UpdateInvoice_FullMethodName   = "/utilitytracker.v1.InvoicesService/UpdateInvoice"
	InvoicesService_MarkInvoicePaid_FullMethodName = "/utilitytracker.v1.InvoicesService/MarkInvoicePaid"
	InvoicesService_DeleteInvoice_FullMethodName   = "/utilitytracker.v1.InvoicesService/DeleteInvoice"
	InvoicesService_GetInvoiceStats_FullMethodName = "/utilitytracker.v1.InvoicesService/GetInvoiceStats"
)

// InvoicesServiceClient is the client API for InvoicesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type InvoicesServiceClient interface {
	ParseInvoicePdf(ctx context.Context, in *ParseInvoicePdfRequest, opts ...grpc.CallOption) (*ParseInvoicePdfResponse, error)
	CreateInvoice(ctx context.Context, in *CreateInvoiceRequest, opts ...grpc.CallOption) (*CreateInvoiceResponse, error)
	ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error)
	UpdateInvoice(ctx context.Context, in *UpdateInvoiceRequest, opts ...grpc.CallOption) (*UpdateInvoiceResponse, error)
	MarkInvoicePaid(ctx context.Context, in *MarkInvoicePaidRequest, opts ...grpc.CallOption) (*MarkInvoicePaidResponse, error)
	DeleteInvoice(ctx context.Context, in *DeleteInvoiceRequest, opts ...grpc.CallOption) (*DeleteInvoiceResponse, error)
	GetInvoiceStats(ctx context.Context, in *GetInvoiceStatsRequest, opts ...grpc.CallOption) (*GetInvoiceStatsResponse, error)
}

type invoicesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvoicesServiceClient(cc grpc.ClientConnInterface) InvoicesServiceClient {
	return &invoicesServiceClient{cc}
}

func (c *invoicesServiceClient) ParseInvoicePdf(ctx context.Context, in *ParseInvoicePdfRequest, opts ...grpc.CallOption) (*ParseInvoicePdfResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseInvoicePdfResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ParseInvoicePdf_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) CreateInvoice(ctx context.Context, in *CreateInvoiceRequest, opts ...grpc.CallOption) (*CreateInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_CreateInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInvoicesResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ListInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) UpdateInvoice(ctx context.Context, in *UpdateInvoiceRequest, opts ...grpc.CallOption) (*UpdateInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_UpdateInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) MarkInvoicePaid(ctx context.Context, in *MarkInvoicePaidRequest, opts ...grpc.CallOption) (*MarkInvoicePaidResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MarkInvoicePaidResponse)
	err := c.cc.Invoke(ctx, InvoicesService_MarkInvoicePaid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) DeleteInvoice(ctx context.Context, in *DeleteInvoiceRequest, opts ...grpc.CallOption) (*DeleteInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_DeleteInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) GetInvoiceStats(ctx context.Context, in *GetInvoiceStatsRequest, opts ...grpc.CallOption) (*GetInvoiceStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInvoiceStatsResponse)
	err := c.cc.Invoke(ctx, InvoicesService_GetInvoiceStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvoicesServiceServer is the server API for InvoicesService service.
// All implementations must embed UnimplementedInvoicesServiceServer
// for forward compatibility.
type InvoicesServiceServer interface {
	ParseInvoicePdf(context.Context, *ParseInvoicePdfRequest) (*ParseInvoicePdfResponse, error)
	CreateInvoice(context.Context, *CreateInvoiceRequest) (*CreateInvoiceResponse, error)
	ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error)
	UpdateInvoice(context.Context, *UpdateInvoiceRequest) (*UpdateInvoiceResponse, error)
	MarkInvoicePaid(context.Context, *MarkInvoicePaidRequest) (*MarkInvoicePaidResponse, error)
	DeleteInvoice(context.Context, *DeleteInvoiceRequest) (*DeleteInvoiceResponse, error)
	GetInvoiceStats(context.Context, *GetInvoiceStatsRequest) (*GetInvoiceStatsResponse, error)
	mustEmbedUnimplementedInvoicesServiceServer()
}

// UnimplementedInvoicesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInvoicesServiceServer struct{}

func (UnimplementedInvoicesServiceServer) ParseInvoicePdf(context.Context, *ParseInvoicePdfRequest) (*ParseInvoicePdfResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ParseInvoicePdf not implemented")
}
func (UnimplementedInvoicesServiceServer) CreateInvoice(context.Context, *CreateInvoiceRequest) (*CreateInvoiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInvoices not implemented")
}
func (UnimplementedInvoicesServiceServer) UpdateInvoice(context.Context, *UpdateInvoiceRequest) (*UpdateInvoiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) MarkInvoicePaid(context.Context, *MarkInvoicePaidRequest) (*MarkInvoicePaidResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkInvoicePaid not implemented")
}
func (UnimplementedInvoicesServiceServer) DeleteInvoice(context.Context, *DeleteInvoiceRequest) (*DeleteInvoiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) GetInvoiceStats(context.Context, *GetInvoiceStatsRequest) (*GetInvoiceStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvoiceStats not implemented")
}
func (UnimplementedInvoicesServiceServer) mustEmbedUnimplementedInvoicesServiceServer() {}
func (UnimplementedInvoicesServiceServer) testEmbeddedByValue()                         {}

// UnsafeInvoicesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InvoicesServiceServer will
// result in compilation errors.
type UnsafeInvoicesServiceServer interface {
	mustEmbedUnimplementedInvoicesServiceServer()
}

func RegisterInvoicesServiceServer(s grpc.ServiceRegistrar, srv InvoicesServiceServer) {
	// If the following call panics, it indicates UnimplementedInvoicesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InvoicesService_ServiceDesc, srv)
}

func _InvoicesService_ParseInvoicePdf_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseInvoicePdfRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ParseInvoicePdf(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ParseInvoicePdf_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ParseInvoicePdf(ctx, req.(*ParseInvoicePdfRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_CreateInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).CreateInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_CreateInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).CreateInvoice(ctx, req.(*CreateInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_ListInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ListInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ListInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ListInvoices(ctx, req.(*ListInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_UpdateInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).UpdateInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_UpdateInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).UpdateInvoice(ctx, req.(*UpdateInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_MarkInvoicePaid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkInvoicePaidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).MarkInvoicePaid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_MarkInvoicePaid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).MarkInvoicePaid(ctx, req.(*MarkInvoicePaidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_DeleteInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).DeleteInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_DeleteInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).DeleteInvoice(ctx, req.(*DeleteInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_GetInvoiceStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvoiceStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).GetInvoiceStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_GetInvoiceStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).GetInvoiceStats(ctx, req.(*GetInvoiceStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InvoicesService_ServiceDesc is the grpc.ServiceDesc for InvoicesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InvoicesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "utilitytracker.v1.InvoicesService",
	HandlerType: (*InvoicesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseInvoicePdf",
			Handler:    _InvoicesService_ParseInvoicePdf_Handler,
		},
		{
			MethodName: "CreateInvoice",
			Handler:    _InvoicesService_CreateInvoice_Handler,
		},
		{
			MethodName: "ListInvoices",
			Handler:    _InvoicesService_ListInvoices_Handler,
		},
		{
			MethodName: "UpdateInvoice",
			Handler:    _InvoicesService_UpdateInvoice_Handler,
		},
		{
			MethodName: "MarkInvoicePaid",
			Handler:    _InvoicesService_MarkInvoicePaid_Handler,
		},
		{
			MethodName: "DeleteInvoice",
			Handler:    _InvoicesService_DeleteInvoice_Handler,
		},
		{
			MethodName: "GetInvoiceStats",
			Handler:    _InvoicesService_GetInvoiceStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "utilitytracker/v1/utility_tracker.proto",
}

const (
	MeterReadingsService_RecordReading_FullMethodName    = "/utilitytracker.v1.MeterReadingsService/RecordReading"
	MeterReadingsService_ListReadings_FullMethodName     = "/utilitytracker.v1.MeterReadingsService/ListReadings"
	MeterReadingsService_GetLatestReading_FullMethodName = "/utilitytracker.v1.MeterReadingsService/GetLatestReading"
)

// MeterReadingsServiceClient is the client API for MeterReadingsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MeterReadingsServiceClient interface {
	RecordReading(ctx context.Context, in *RecordReadingRequest, opts ...grpc.CallOption) (*RecordReadingResponse, error)
	ListReadings(ctx context.Context, in *ListReadingsRequest, opts ...grpc.CallOption) (*ListReadingsResponse, error)
	GetLatestReading(ctx context.Context, in *GetLatestReadingRequest, opts ...grpc.CallOption) (*GetLatestReadingResponse, error)
}

type meterReadingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMeterReadingsServiceClient(cc grpc.ClientConnInterface) MeterReadingsServiceClient {
	return &meterReadingsServiceClient{cc}
}

func (c *meterReadingsServiceClient) RecordReading(ctx context.Context, in *RecordReadingRequest, opts ...grpc.CallOption) (*RecordReadingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordReadingResponse)
	err := c.cc.Invoke(ctx, MeterReadingsService_RecordReading_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *meterReadingsServiceClient) ListReadings(ctx context.Context, in *ListReadingsRequest, opts ...grpc.CallOption) (*ListReadingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReadingsResponse)
	err := c.cc.Invoke(ctx, MeterReadingsService_ListReadings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *meterReadingsServiceClient) GetLatestReading(ctx context.Context, in *GetLatestReadingRequest, opts ...grpc.CallOption) (*GetLatestReadingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLatestReadingResponse)
	err := c.cc.Invoke(ctx, MeterReadingsService_GetLatestReading_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MeterReadingsServiceServer is the server API for MeterReadingsService service.
// All implementations must embed UnimplementedMeterReadingsServiceServer
// for forward compatibility.
type MeterReadingsServiceServer interface {
	RecordReading(context.Context, *RecordReadingRequest) (*RecordReadingResponse, error)
	ListReadings(context.Context, *ListReadingsRequest) (*ListReadingsResponse, error)
	GetLatestReading(context.Context, *GetLatestReadingRequest) (*GetLatestReadingResponse, error)
	mustEmbedUnimplementedMeterReadingsServiceServer()
}

// UnimplementedMeterReadingsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMeterReadingsServiceServer struct{}

func (UnimplementedMeterReadingsServiceServer) RecordReading(context.Context, *RecordReadingRequest) (*RecordReadingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordReading not implemented")
}
func (UnimplementedMeterReadingsServiceServer) ListReadings(context.Context, *ListReadingsRequest) (*ListReadingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListReadings not implemented")
}
func (UnimplementedMeterReadingsServiceServer) GetLatestReading(context.Context, *GetLatestReadingRequest) (*GetLatestReadingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLatestReading not implemented")
}
func (UnimplementedMeterReadingsServiceServer) mustEmbedUnimplementedMeterReadingsServiceServer() {}
func (UnimplementedMeterReadingsServiceServer) testEmbeddedByValue()                              {}

// UnsafeMeterReadingsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MeterReadingsServiceServer will
// result in compilation errors.
type UnsafeMeterReadingsServiceServer interface {
	mustEmbedUnimplementedMeterReadingsServiceServer()
}

func RegisterMeterReadingsServiceServer(s grpc.ServiceRegistrar, srv MeterReadingsServiceServer) {
	// If the following call panics, it indicates UnimplementedMeterReadingsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MeterReadingsService_ServiceDesc, srv)
}

func _MeterReadingsService_RecordReading_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordReadingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeterReadingsServiceServer).RecordReading(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeterReadingsService_RecordReading_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeterReadingsServiceServer).RecordReading(ctx, req.(*RecordReadingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MeterReadingsService_ListReadings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReadingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeterReadingsServiceServer).ListReadings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeterReadingsService_ListReadings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeterReadingsServiceServer).ListReadings(ctx, req.(*ListReadingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MeterReadingsService_GetLatestReading_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatestReadingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MeterReadingsServiceServer).GetLatestReading(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MeterReadingsService_GetLatestReading_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MeterReadingsServiceServer).GetLatestReading(ctx, req.(*GetLatestReadingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MeterReadingsService_ServiceDesc is the grpc.ServiceDesc for MeterReadingsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MeterReadingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "utilitytracker.v1.MeterReadingsService",
	HandlerType: (*MeterReadingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordReading",
			Handler:    _MeterReadingsService_RecordReading_Handler,
		},
		{
			MethodName: "ListReadings",
			Handler:    _MeterReadingsService_ListReadings_Handler,
		},
		{
			MethodName: "GetLatestReading",
			Handler:    _MeterReadingsService_GetLatestReading_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "utilitytracker/v1/utility_tracker.proto",
}

const (
	TimeTrackerService_StartSession_FullMethodName  = "/utilitytracker.v1.TimeTrackerService/StartSession"
	TimeTrackerService_StopSession_FullMethodName   = "/utilitytracker.v1.TimeTrackerService/StopSession"
	TimeTrackerService_ListSessions_FullMethodName  = "/utilitytracker.v1.TimeTrackerService/ListSessions"
	TimeTrackerService_DeleteSession_FullMethodName = "/utilitytracker.v1.TimeTrackerService/DeleteSession"
)

// TimeTrackerServiceClient is the client API for TimeTrackerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TimeTrackerServiceClient interface {
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	StopSession(ctx context.Context, in *StopSessionRequest, opts ...grpc.CallOption) (*StopSessionResponse, error)
	ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error)
	DeleteSession(ctx context.Context, in *DeleteSessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error)
}

type timeTrackerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTimeTrackerServiceClient(cc grpc.ClientConnInterface) TimeTrackerServiceClient {
	return &timeTrackerServiceClient{cc}
}

func (c *timeTrackerServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartSessionResponse)
	err := c.cc.Invoke(ctx, TimeTrackerService_StartSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timeTrackerServiceClient) StopSession(ctx context.Context, in *StopSessionRequest, opts ...grpc.CallOption) (*StopSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StopSessionResponse)
	err := c.cc.Invoke(ctx, TimeTrackerService_StopSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timeTrackerServiceClient) ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSessionsResponse)
	err := c.cc.Invoke(ctx, TimeTrackerService_ListSessions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timeTrackerServiceClient) DeleteSession(ctx context.Context, in *DeleteSessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteSessionResponse)
	err := c.cc.Invoke(ctx, TimeTrackerService_DeleteSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TimeTrackerServiceServer is the server API for TimeTrackerService service.
// All implementations must embed UnimplementedTimeTrackerServiceServer
// for forward compatibility.
type TimeTrackerServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	StopSession(context.Context, *StopSessionRequest) (*StopSessionResponse, error)
	ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error)
	DeleteSession(context.Context, *DeleteSessionRequest) (*DeleteSessionResponse, error)
	mustEmbedUnimplementedTimeTrackerServiceServer()
}

// UnimplementedTimeTrackerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTimeTrackerServiceServer struct{}

func (UnimplementedTimeTrackerServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartSession not implemented")
}
func (UnimplementedTimeTrackerServiceServer) StopSession(context.Context, *StopSessionRequest) (*StopSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StopSession not implemented")
}
func (UnimplementedTimeTrackerServiceServer) ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSessions not implemented")
}
func (UnimplementedTimeTrackerServiceServer) DeleteSession(context.Context, *DeleteSessionRequest) (*DeleteSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSession not implemented")
}
func (UnimplementedTimeTrackerServiceServer) mustEmbedUnimplementedTimeTrackerServiceServer() {}
func (UnimplementedTimeTrackerServiceServer) testEmbeddedByValue()                            {}

// UnsafeTimeTrackerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TimeTrackerServiceServer will
// result in compilation errors.
type UnsafeTimeTrackerServiceServer interface {
	mustEmbedUnimplementedTimeTrackerServiceServer()
}

func RegisterTimeTrackerServiceServer(s grpc.ServiceRegistrar, srv TimeTrackerServiceServer) {
	// If the following call panics, it indicates UnimplementedTimeTrackerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TimeTrackerService_ServiceDesc, srv)
}

func _TimeTrackerService_StartSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimeTrackerServiceServer).StartSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimeTrackerService_StartSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimeTrackerServiceServer).StartSession(ctx, req.(*StartSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimeTrackerService_StopSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimeTrackerServiceServer).StopSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimeTrackerService_StopSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimeTrackerServiceServer).StopSession(ctx, req.(*StopSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimeTrackerService_ListSessions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimeTrackerServiceServer).ListSessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimeTrackerService_ListSessions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimeTrackerServiceServer).ListSessions(ctx, req.(*ListSessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimeTrackerService_DeleteSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimeTrackerServiceServer).DeleteSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimeTrackerService_DeleteSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimeTrackerServiceServer).DeleteSession(ctx, req.(*DeleteSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TimeTrackerService_ServiceDesc is the grpc.ServiceDesc for TimeTrackerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TimeTrackerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "utilitytracker.v1.TimeTrackerService",
	HandlerType: (*TimeTrackerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartSession",
			Handler:    _TimeTrackerService_StartSession_Handler,
		},
		{
			MethodName: "StopSession",
			Handler:    _TimeTrackerService_StopSession_Handler,
		},
		{
			MethodName: "ListSessions",
			Handler:    _TimeTrackerService_ListSessions_Handler,
		},
		{
			MethodName: "DeleteSession",
			Handler:    _TimeTrackerService_DeleteSession_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "utilitytracker/v1/utility_tracker.proto",
}

const (
	UtilityPricesService_GetCurrentPrice_FullMethodName = "/utilitytracker.v1.UtilityPricesService/GetCurrentPrice"
	UtilityPricesService_SetPrice_FullMethodName        = "/utilitytracker.v1.UtilityPricesService/SetPrice"
	UtilityPricesService_ListPrices_FullMethodName      = "/utilitytracker.v1.UtilityPricesService/ListPrices"
)

// UtilityPricesServiceClient is the client API for UtilityPricesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type UtilityPricesServiceClient interface {
	GetCurrentPrice(ctx context.Context, in *GetCurrentPriceRequest, opts ...grpc.CallOption) (*GetCurrentPriceResponse, error)
	SetPrice(ctx context.Context, in *SetPriceRequest, opts ...grpc.CallOption) (*SetPriceResponse, error)
	ListPrices(ctx context.Context, in *ListPricesRequest, opts ...grpc.CallOption) (*ListPricesResponse, error)
}

type utilityPricesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUtilityPricesServiceClient(cc grpc.ClientConnInterface) UtilityPricesServiceClient {
	return &utilityPricesServiceClient{cc}
}

func (c *utilityPricesServiceClient) GetCurrentPrice(ctx context.Context, in *GetCurrentPriceRequest, opts ...grpc.CallOption) (*GetCurrentPriceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCurrentPriceResponse)
	err := c.cc.Invoke(ctx, UtilityPricesService_GetCurrentPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *utilityPricesServiceClient) SetPrice(ctx context.Context, in *SetPriceRequest, opts ...grpc.CallOption) (*SetPriceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetPriceResponse)
	err := c.cc.Invoke(ctx, UtilityPricesService_SetPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *utilityPricesServiceClient) ListPrices(ctx context.Context, in *ListPricesRequest, opts ...grpc.CallOption) (*ListPricesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPricesResponse)
	err := c.cc.Invoke(ctx, UtilityPricesService_ListPrices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UtilityPricesServiceServer is the server API for UtilityPricesService service.
// All implementations must embed UnimplementedUtilityPricesServiceServer
// for forward compatibility.
type UtilityPricesServiceServer interface {
	GetCurrentPrice(context.Context, *GetCurrentPriceRequest) (*GetCurrentPriceResponse, error)
	SetPrice(context.Context, *SetPriceRequest) (*SetPriceResponse, error)
	ListPrices(context.Context, *ListPricesRequest) (*ListPricesResponse, error)
	mustEmbedUnimplementedUtilityPricesServiceServer()
}

// UnimplementedUtilityPricesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUtilityPricesServiceServer struct{}

func (UnimplementedUtilityPricesServiceServer) GetCurrentPrice(context.Context, *GetCurrentPriceRequest) (*GetCurrentPriceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentPrice not implemented")
}
func (UnimplementedUtilityPricesServiceServer) SetPrice(context.Context, *SetPriceRequest) (*SetPriceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetPrice not implemented")
}
func (UnimplementedUtilityPricesServiceServer) ListPrices(context.Context, *ListPricesRequest) (*ListPricesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPrices not implemented")
}
func (UnimplementedUtilityPricesServiceServer) mustEmbedUnimplementedUtilityPricesServiceServer() {}
func (UnimplementedUtilityPricesServiceServer) testEmbeddedByValue()                              {}

// UnsafeUtilityPricesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UtilityPricesServiceServer will
// result in compilation errors.
type UnsafeUtilityPricesServiceServer interface {
	mustEmbedUnimplementedUtilityPricesServiceServer()
}

func RegisterUtilityPricesServiceServer(s grpc.ServiceRegistrar, srv UtilityPricesServiceServer) {
	// If the following call panics, it indicates UnimplementedUtilityPricesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UtilityPricesService_ServiceDesc, srv)
}

func _UtilityPricesService_GetCurrentPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurrentPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UtilityPricesServiceServer).GetCurrentPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UtilityPricesService_GetCurrentPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UtilityPricesServiceServer).GetCurrentPrice(ctx, req.(*GetCurrentPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UtilityPricesService_SetPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UtilityPricesServiceServer).SetPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UtilityPricesService_SetPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UtilityPricesServiceServer).SetPrice(ctx, req.(*SetPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UtilityPricesService_ListPrices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPricesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UtilityPricesServiceServer).ListPrices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UtilityPricesService_ListPrices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UtilityPricesServiceServer).ListPrices(ctx, req.(*ListPricesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UtilityPricesService_ServiceDesc is the grpc.ServiceDesc for UtilityPricesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UtilityPricesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "utilitytracker.v1.UtilityPricesService",
	HandlerType: (*UtilityPricesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCurrentPrice",
			Handler:    _UtilityPricesService_GetCurrentPrice_Handler,
		},
		{
			MethodName: "SetPrice",
			Handler:    _UtilityPricesService_SetPrice_Handler,
		},
		{
			MethodName: "ListPrices",
			Handler:    _UtilityPricesService_ListPrices_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "utilitytracker/v1/utility_tracker.proto",
}

const (
	ImportService_ImportFile_FullMethodName      = "/utilitytracker.v1.ImportService/ImportFile"
	ImportService_ImportDirectory_FullMethodName = "/utilitytracker.v1.ImportService/ImportDirectory"
)

// ImportServiceClient is the client API for ImportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ImportServiceClient interface {
	ImportFile(ctx context.Context, in *ImportFileRequest, opts ...grpc.CallOption) (*ImportFileResponse, error)
	ImportDirectory(ctx context.Context, in *ImportDirectoryRequest, opts ...grpc.CallOption) (*ImportDirectoryResponse, error)
}

type importServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewImportServiceClient(cc grpc.ClientConnInterface) ImportServiceClient {
	return &importServiceClient{cc}
}

func (c *importServiceClient) ImportFile(ctx context.Context, in *ImportFileRequest, opts ...grpc.CallOption) (*ImportFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportFileResponse)
	err := c.cc.Invoke(ctx, ImportService_ImportFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) ImportDirectory(ctx context.Context, in *ImportDirectoryRequest, opts ...grpc.CallOption) (*ImportDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportDirectoryResponse)
	err := c.cc.Invoke(ctx, ImportService_ImportDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImportServiceServer is the server API for ImportService service.
// All implementations must embed UnimplementedImportServiceServer
// for forward compatibility.
type ImportServiceServer interface {
	ImportFile(context.Context, *ImportFileRequest) (*ImportFileResponse, error)
	ImportDirectory(context.Context, *ImportDirectoryRequest) (*ImportDirectoryResponse, error)
	mustEmbedUnimplementedImportServiceServer()
}

// UnimplementedImportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedImportServiceServer struct{}

func (UnimplementedImportServiceServer) ImportFile(context.Context, *ImportFileRequest) (*ImportFileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportFile not implemented")
}
func (UnimplementedImportServiceServer) ImportDirectory(context.Context, *ImportDirectoryRequest) (*ImportDirectoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportDirectory not implemented")
}
func (UnimplementedImportServiceServer) mustEmbedUnimplementedImportServiceServer() {}
func (UnimplementedImportServiceServer) testEmbeddedByValue()                       {}

// UnsafeImportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ImportServiceServer will
// result in compilation errors.
type UnsafeImportServiceServer interface {
	mustEmbedUnimplementedImportServiceServer()
}

func RegisterImportServiceServer(s grpc.ServiceRegistrar, srv ImportServiceServer) {
	// If the following call panics, it indicates UnimplementedImportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ImportService_ServiceDesc, srv)
}

func _ImportService_ImportFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ImportFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportFile(ctx, req.(*ImportFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_ImportDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ImportDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportDirectory(ctx, req.(*ImportDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ImportService_ServiceDesc is the grpc.ServiceDesc for ImportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ImportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "utilitytracker.v1.ImportService",
	HandlerType: (*ImportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ImportFile",
			Handler:    _ImportService_ImportFile_Handler,
		},
		{
			MethodName: "ImportDirectory",
			Handler:    _ImportService_ImportDirectory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "utilitytracker/v1/utility_tracker.proto",
}

const (
	ExportService_ExportInvoices_FullMethodName = "/utilitytracker.v1.ExportService/ExportInvoices"
	ExportService_ExportReadings_FullMethodName = "/utilitytracker.v1.ExportService/ExportReadings"
	ExportService_ExportSessions_FullMethodName = "/utilitytracker.v1.ExportService/ExportSessions"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error)
	ExportReadings(ctx context.Context, in *ExportReadingsRequest, opts ...grpc.CallOption) (*ExportReadingsResponse, error)
	ExportSessions(ctx context.Context, in *ExportSessionsRequest, opts ...grpc.CallOption) (*ExportSessionsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInvoicesResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportReadings(ctx context.Context, in *ExportReadingsRequest, opts ...grpc.CallOption) (*ExportReadingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReadingsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportReadings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportSessions(ctx context.Context, in *ExportSessionsRequest, opts ...grpc.CallOption) (*ExportSessionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportSessionsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportSessions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error)
	ExportReadings(context.Context, *ExportReadingsRequest) (*ExportReadingsResponse, error)
	ExportSessions(context.Context, *ExportSessionsRequest) (*ExportSessionsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportInvoices not implemented")
}
func (UnimplementedExportServiceServer) ExportReadings(context.Context, *ExportReadingsRequest) (*ExportReadingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportReadings not implemented")
}
func (UnimplementedExportServiceServer) ExportSessions(context.Context, *ExportSessionsRequest) (*ExportSessionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportSessions not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call panics, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportInvoices(ctx, req.(*ExportInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportReadings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReadingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportReadings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportReadings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportReadings(ctx, req.(*ExportReadingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportSessions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportSessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportSessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportSessions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportSessions(ctx, req.(*ExportSessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "utilitytracker.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportInvoices",
			Handler:    _ExportService_ExportInvoices_Handler,
		},
		{
			MethodName: "ExportReadings",
			Handler:    _ExportService_ExportReadings_Handler,
		},
		{
			MethodName: "ExportSessions",
			Handler:    _ExportService_ExportSessions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "utilitytracker/v1/utility_tracker.proto",
}

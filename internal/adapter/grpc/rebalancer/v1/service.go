// Package rebalancerv1 holds the RebalancerService descriptor, server registration and client.
// The service uses google.protobuf.Struct for every payload, so it is written by hand
// against api/rebalancer/v1/rebalancer.proto instead of being generated.
package rebalancerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	RebalancerService_Evaluate_FullMethodName           = "/rebalancer.v1.RebalancerService/Evaluate"
	RebalancerService_RebalancePortfolio_FullMethodName = "/rebalancer.v1.RebalancerService/RebalancePortfolio"
	RebalancerService_GetTotalValue_FullMethodName      = "/rebalancer.v1.RebalancerService/GetTotalValue"
	RebalancerService_UpdateShares_FullMethodName       = "/rebalancer.v1.RebalancerService/UpdateShares"
	RebalancerService_UpsertHolding_FullMethodName      = "/rebalancer.v1.RebalancerService/UpsertHolding"
	RebalancerService_SetAllocation_FullMethodName      = "/rebalancer.v1.RebalancerService/SetAllocation"
)

// RebalancerServiceClient is the client API for RebalancerService.
type RebalancerServiceClient interface {
	Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RebalancePortfolio(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTotalValue(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateShares(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpsertHolding(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetAllocation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type rebalancerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRebalancerServiceClient(cc grpc.ClientConnInterface) RebalancerServiceClient {
	return &rebalancerServiceClient{cc}
}

func (c *rebalancerServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rebalancerServiceClient) Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RebalancerService_Evaluate_FullMethodName, in, opts...)
}

func (c *rebalancerServiceClient) RebalancePortfolio(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RebalancerService_RebalancePortfolio_FullMethodName, in, opts...)
}

func (c *rebalancerServiceClient) GetTotalValue(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RebalancerService_GetTotalValue_FullMethodName, in, opts...)
}

func (c *rebalancerServiceClient) UpdateShares(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RebalancerService_UpdateShares_FullMethodName, in, opts...)
}

func (c *rebalancerServiceClient) UpsertHolding(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RebalancerService_UpsertHolding_FullMethodName, in, opts...)
}

func (c *rebalancerServiceClient) SetAllocation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RebalancerService_SetAllocation_FullMethodName, in, opts...)
}

// RebalancerServiceServer is the server API for RebalancerService.
// All implementations must embed UnimplementedRebalancerServiceServer.
type RebalancerServiceServer interface {
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RebalancePortfolio(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTotalValue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateShares(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpsertHolding(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetAllocation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedRebalancerServiceServer()
}

// UnimplementedRebalancerServiceServer must be embedded to have forward compatible implementations.
type UnimplementedRebalancerServiceServer struct{}

func (UnimplementedRebalancerServiceServer) Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Evaluate not implemented")
}
func (UnimplementedRebalancerServiceServer) RebalancePortfolio(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RebalancePortfolio not implemented")
}
func (UnimplementedRebalancerServiceServer) GetTotalValue(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTotalValue not implemented")
}
func (UnimplementedRebalancerServiceServer) UpdateShares(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateShares not implemented")
}
func (UnimplementedRebalancerServiceServer) UpsertHolding(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertHolding not implemented")
}
func (UnimplementedRebalancerServiceServer) SetAllocation(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetAllocation not implemented")
}
func (UnimplementedRebalancerServiceServer) mustEmbedUnimplementedRebalancerServiceServer() {}

func RegisterRebalancerServiceServer(s grpc.ServiceRegistrar, srv RebalancerServiceServer) {
	s.RegisterService(&RebalancerService_ServiceDesc, srv)
}

// unaryHandler adapts one RebalancerServiceServer method to a grpc.MethodDesc handler.
func unaryHandler(fullMethod string, call func(RebalancerServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RebalancerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(RebalancerServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RebalancerService_ServiceDesc is the grpc.ServiceDesc for RebalancerService.
var RebalancerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rebalancer.v1.RebalancerService",
	HandlerType: (*RebalancerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    unaryHandler(RebalancerService_Evaluate_FullMethodName, RebalancerServiceServer.Evaluate),
		},
		{
			MethodName: "RebalancePortfolio",
			Handler:    unaryHandler(RebalancerService_RebalancePortfolio_FullMethodName, RebalancerServiceServer.RebalancePortfolio),
		},
		{
			MethodName: "GetTotalValue",
			Handler:    unaryHandler(RebalancerService_GetTotalValue_FullMethodName, RebalancerServiceServer.GetTotalValue),
		},
		{
			MethodName: "UpdateShares",
			Handler:    unaryHandler(RebalancerService_UpdateShares_FullMethodName, RebalancerServiceServer.UpdateShares),
		},
		{
			MethodName: "UpsertHolding",
			Handler:    unaryHandler(RebalancerService_UpsertHolding_FullMethodName, RebalancerServiceServer.UpsertHolding),
		},
		{
			MethodName: "SetAllocation",
			Handler:    unaryHandler(RebalancerService_SetAllocation_FullMethodName, RebalancerServiceServer.SetAllocation),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rebalancer/v1/rebalancer.proto",
}

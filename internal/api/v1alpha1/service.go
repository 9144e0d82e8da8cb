package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// PathfinderServiceName is the fully qualified gRPC service name
	PathfinderServiceName = "hexpath.api.v1alpha1.PathfinderService"

	// PathfinderServiceFindPathFullMethodName is the full method name for FindPath
	PathfinderServiceFindPathFullMethodName = "/" + PathfinderServiceName + "/FindPath"
)

// PathfinderServiceServer is the server API for PathfinderService
type PathfinderServiceServer interface {
	FindPath(context.Context, *FindPathRequest) (*FindPathResponse, error)
}

// UnimplementedPathfinderServiceServer can be embedded to have forward
// compatible implementations
type UnimplementedPathfinderServiceServer struct{}

// FindPath returns Unimplemented
func (UnimplementedPathfinderServiceServer) FindPath(context.Context, *FindPathRequest) (*FindPathResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FindPath not implemented")
}

// RegisterPathfinderServiceServer registers srv with s
func RegisterPathfinderServiceServer(s grpc.ServiceRegistrar, srv PathfinderServiceServer) {
	s.RegisterService(&PathfinderServiceDesc, srv)
}

func pathfinderServiceFindPathHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(FindPathRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PathfinderServiceServer).FindPath(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PathfinderServiceFindPathFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PathfinderServiceServer).FindPath(ctx, req.(*FindPathRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PathfinderServiceDesc is the grpc.ServiceDesc for PathfinderService
var PathfinderServiceDesc = grpc.ServiceDesc{
	ServiceName: PathfinderServiceName,
	HandlerType: (*PathfinderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FindPath",
			Handler:    pathfinderServiceFindPathHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hexpath/api/v1alpha1/pathfinder.json",
}

// PathfinderServiceClient is the client API for PathfinderService
type PathfinderServiceClient interface {
	FindPath(ctx context.Context, in *FindPathRequest, opts ...grpc.CallOption) (*FindPathResponse, error)
}

type pathfinderServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPathfinderServiceClient returns a client that sends JSON encoded calls
func NewPathfinderServiceClient(cc grpc.ClientConnInterface) PathfinderServiceClient {
	return &pathfinderServiceClient{cc: cc}
}

func (c *pathfinderServiceClient) FindPath(
	ctx context.Context,
	in *FindPathRequest,
	opts ...grpc.CallOption,
) (*FindPathResponse, error) {
	out := new(FindPathResponse)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PathfinderServiceFindPathFullMethodName, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

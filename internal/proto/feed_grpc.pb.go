package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	FamilyFeed_Append_FullMethodName       = "/familytree.FamilyFeed/Append"
	FamilyFeed_Update_FullMethodName       = "/familytree.FamilyFeed/Update"
	FamilyFeed_Delete_FullMethodName       = "/familytree.FamilyFeed/Delete"
	FamilyFeed_Subscribe_FullMethodName    = "/familytree.FamilyFeed/Subscribe"
	FamilyFeed_Ping_FullMethodName         = "/familytree.FamilyFeed/Ping"
	FamilyFeed_GetUploadUrl_FullMethodName = "/familytree.FamilyFeed/GetUploadUrl"
)

// FamilyFeedClient is the client API for the FamilyFeed service.
type FamilyFeedClient interface {
	Append(ctx context.Context, in *AppendRequest, opts ...grpc.CallOption) (*AppendResponse, error)
	Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (FamilyFeed_SubscribeClient, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	GetUploadUrl(ctx context.Context, in *GetUploadUrlRequest, opts ...grpc.CallOption) (*GetUploadUrlResponse, error)
}

type familyFeedClient struct {
	cc grpc.ClientConnInterface
}

func NewFamilyFeedClient(cc grpc.ClientConnInterface) FamilyFeedClient {
	return &familyFeedClient{cc}
}

func (c *familyFeedClient) Append(ctx context.Context, in *AppendRequest, opts ...grpc.CallOption) (*AppendResponse, error) {
	out := new(AppendResponse)
	if err := c.cc.Invoke(ctx, FamilyFeed_Append_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyFeedClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	out := new(UpdateResponse)
	if err := c.cc.Invoke(ctx, FamilyFeed_Update_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyFeedClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.cc.Invoke(ctx, FamilyFeed_Delete_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyFeedClient) Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (FamilyFeed_SubscribeClient, error) {
	stream, err := c.cc.NewStream(ctx, &FamilyFeed_ServiceDesc.Streams[0], FamilyFeed_Subscribe_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &familyFeedSubscribeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type FamilyFeed_SubscribeClient interface {
	Recv() (*FeedSnapshot, error)
	grpc.ClientStream
}

type familyFeedSubscribeClient struct {
	grpc.ClientStream
}

func (x *familyFeedSubscribeClient) Recv() (*FeedSnapshot, error) {
	m := new(FeedSnapshot)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *familyFeedClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, FamilyFeed_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *familyFeedClient) GetUploadUrl(ctx context.Context, in *GetUploadUrlRequest, opts ...grpc.CallOption) (*GetUploadUrlResponse, error) {
	out := new(GetUploadUrlResponse)
	if err := c.cc.Invoke(ctx, FamilyFeed_GetUploadUrl_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FamilyFeedServer is the server API for the FamilyFeed service. All
// implementations must embed UnimplementedFamilyFeedServer.
type FamilyFeedServer interface {
	Append(context.Context, *AppendRequest) (*AppendResponse, error)
	Update(context.Context, *UpdateRequest) (*UpdateResponse, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
	Subscribe(*SubscribeRequest, FamilyFeed_SubscribeServer) error
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	GetUploadUrl(context.Context, *GetUploadUrlRequest) (*GetUploadUrlResponse, error)
	mustEmbedUnimplementedFamilyFeedServer()
}

type UnimplementedFamilyFeedServer struct{}

func (UnimplementedFamilyFeedServer) Append(context.Context, *AppendRequest) (*AppendResponse, error) {
	return nil, errUnimplemented("Append")
}
func (UnimplementedFamilyFeedServer) Update(context.Context, *UpdateRequest) (*UpdateResponse, error) {
	return nil, errUnimplemented("Update")
}
func (UnimplementedFamilyFeedServer) Delete(context.Context, *DeleteRequest) (*DeleteResponse, error) {
	return nil, errUnimplemented("Delete")
}
func (UnimplementedFamilyFeedServer) Subscribe(*SubscribeRequest, FamilyFeed_SubscribeServer) error {
	return errUnimplemented("Subscribe")
}
func (UnimplementedFamilyFeedServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, errUnimplemented("Ping")
}
func (UnimplementedFamilyFeedServer) GetUploadUrl(context.Context, *GetUploadUrlRequest) (*GetUploadUrlResponse, error) {
	return nil, errUnimplemented("GetUploadUrl")
}
func (UnimplementedFamilyFeedServer) mustEmbedUnimplementedFamilyFeedServer() {}

type FamilyFeed_SubscribeServer interface {
	Send(*FeedSnapshot) error
	grpc.ServerStream
}

type familyFeedSubscribeServer struct {
	grpc.ServerStream
}

func (x *familyFeedSubscribeServer) Send(m *FeedSnapshot) error {
	return x.ServerStream.SendMsg(m)
}

func RegisterFamilyFeedServer(s grpc.ServiceRegistrar, srv FamilyFeedServer) {
	s.RegisterService(&FamilyFeed_ServiceDesc, srv)
}

func _FamilyFeed_Append_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AppendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyFeedServer).Append(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyFeed_Append_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyFeedServer).Append(ctx, req.(*AppendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyFeed_Update_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyFeedServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyFeed_Update_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyFeedServer).Update(ctx, req.(*UpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyFeed_Delete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyFeedServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyFeed_Delete_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyFeedServer).Delete(ctx, req.(*DeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyFeed_Subscribe_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(FamilyFeedServer).Subscribe(m, &familyFeedSubscribeServer{stream})
}

func _FamilyFeed_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyFeedServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyFeed_Ping_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyFeedServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FamilyFeed_GetUploadUrl_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUploadUrlRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FamilyFeedServer).GetUploadUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FamilyFeed_GetUploadUrl_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FamilyFeedServer).GetUploadUrl(ctx, req.(*GetUploadUrlRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var FamilyFeed_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "familytree.FamilyFeed",
	HandlerType: (*FamilyFeedServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Append", Handler: _FamilyFeed_Append_Handler},
		{MethodName: "Update", Handler: _FamilyFeed_Update_Handler},
		{MethodName: "Delete", Handler: _FamilyFeed_Delete_Handler},
		{MethodName: "Ping", Handler: _FamilyFeed_Ping_Handler},
		{MethodName: "GetUploadUrl", Handler: _FamilyFeed_GetUploadUrl_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Subscribe", Handler: _FamilyFeed_Subscribe_Handler, ServerStreams: true},
	},
	Metadata: "internal/proto/feed.proto",
}

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// Messages and service bindings for kinarow.proto, laid out as
// protoc-gen-go lays them out. Keep field tags in step with the .proto.

package pb

import (
	fmt "fmt"
	math "math"

	proto "github.com/golang/protobuf/proto"
	context "golang.org/x/net/context"
	grpc "google.golang.org/grpc"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this generated file
// is compatible with the proto package it is being compiled against.
// A compilation error at this line likely means your copy of the
// proto package needs to be updated.
const _ = proto.ProtoPackageIsVersion2 // please upgrade the proto package

type BestMoveRequest struct {
	Board                string   `protobuf:"bytes,1,opt,name=board,proto3" json:"board,omitempty"`
	Win                  int32    `protobuf:"varint,2,opt,name=win,proto3" json:"win,omitempty"`
	Self                 string   `protobuf:"bytes,3,opt,name=self,proto3" json:"self,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *BestMoveRequest) Reset()         { *m = BestMoveRequest{} }
func (m *BestMoveRequest) String() string { return proto.CompactTextString(m) }
func (*BestMoveRequest) ProtoMessage()    {}

func (m *BestMoveRequest) GetBoard() string {
	if m != nil {
		return m.Board
	}
	return ""
}

func (m *BestMoveRequest) GetWin() int32 {
	if m != nil {
		return m.Win
	}
	return 0
}

func (m *BestMoveRequest) GetSelf() string {
	if m != nil {
		return m.Self
	}
	return ""
}

type BestMoveResponse struct {
	Move                 string   `protobuf:"bytes,1,opt,name=move,proto3" json:"move,omitempty"`
	Row                  int32    `protobuf:"varint,2,opt,name=row,proto3" json:"row,omitempty"`
	Col                  int32    `protobuf:"varint,3,opt,name=col,proto3" json:"col,omitempty"`
	Strategy             string   `protobuf:"bytes,4,opt,name=strategy,proto3" json:"strategy,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *BestMoveResponse) Reset()         { *m = BestMoveResponse{} }
func (m *BestMoveResponse) String() string { return proto.CompactTextString(m) }
func (*BestMoveResponse) ProtoMessage()    {}

func (m *BestMoveResponse) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

func (m *BestMoveResponse) GetRow() int32 {
	if m != nil {
		return m.Row
	}
	return 0
}

func (m *BestMoveResponse) GetCol() int32 {
	if m != nil {
		return m.Col
	}
	return 0
}

func (m *BestMoveResponse) GetStrategy() string {
	if m != nil {
		return m.Strategy
	}
	return ""
}

type WinnerRequest struct {
	Board                string   `protobuf:"bytes,1,opt,name=board,proto3" json:"board,omitempty"`
	Win                  int32    `protobuf:"varint,2,opt,name=win,proto3" json:"win,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *WinnerRequest) Reset()         { *m = WinnerRequest{} }
func (m *WinnerRequest) String() string { return proto.CompactTextString(m) }
func (*WinnerRequest) ProtoMessage()    {}

func (m *WinnerRequest) GetBoard() string {
	if m != nil {
		return m.Board
	}
	return ""
}

func (m *WinnerRequest) GetWin() int32 {
	if m != nil {
		return m.Win
	}
	return 0
}

type WinnerResponse struct {
	Winner               string   `protobuf:"bytes,1,opt,name=winner,proto3" json:"winner,omitempty"`
	Full                 bool     `protobuf:"varint,2,opt,name=full,proto3" json:"full,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *WinnerResponse) Reset()         { *m = WinnerResponse{} }
func (m *WinnerResponse) String() string { return proto.CompactTextString(m) }
func (*WinnerResponse) ProtoMessage()    {}

func (m *WinnerResponse) GetWinner() string {
	if m != nil {
		return m.Winner
	}
	return ""
}

func (m *WinnerResponse) GetFull() bool {
	if m != nil {
		return m.Full
	}
	return false
}

type CanonicalizeRequest struct {
	Board                string   `protobuf:"bytes,1,opt,name=board,proto3" json:"board,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CanonicalizeRequest) Reset()         { *m = CanonicalizeRequest{} }
func (m *CanonicalizeRequest) String() string { return proto.CompactTextString(m) }
func (*CanonicalizeRequest) ProtoMessage()    {}

func (m *CanonicalizeRequest) GetBoard() string {
	if m != nil {
		return m.Board
	}
	return ""
}

type CanonicalizeResponse struct {
	Board                string   `protobuf:"bytes,1,opt,name=board,proto3" json:"board,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CanonicalizeResponse) Reset()         { *m = CanonicalizeResponse{} }
func (m *CanonicalizeResponse) String() string { return proto.CompactTextString(m) }
func (*CanonicalizeResponse) ProtoMessage()    {}

func (m *CanonicalizeResponse) GetBoard() string {
	if m != nil {
		return m.Board
	}
	return ""
}

func init() {
	proto.RegisterType((*BestMoveRequest)(nil), "kinarow.BestMoveRequest")
	proto.RegisterType((*BestMoveResponse)(nil), "kinarow.BestMoveResponse")
	proto.RegisterType((*WinnerRequest)(nil), "kinarow.WinnerRequest")
	proto.RegisterType((*WinnerResponse)(nil), "kinarow.WinnerResponse")
	proto.RegisterType((*CanonicalizeRequest)(nil), "kinarow.CanonicalizeRequest")
	proto.RegisterType((*CanonicalizeResponse)(nil), "kinarow.CanonicalizeResponse")
}

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion4

// EngineClient is the client API for Engine service.
type EngineClient interface {
	BestMove(ctx context.Context, in *BestMoveRequest, opts ...grpc.CallOption) (*BestMoveResponse, error)
	Winner(ctx context.Context, in *WinnerRequest, opts ...grpc.CallOption) (*WinnerResponse, error)
	Canonicalize(ctx context.Context, in *CanonicalizeRequest, opts ...grpc.CallOption) (*CanonicalizeResponse, error)
}

type engineClient struct {
	cc *grpc.ClientConn
}

func NewEngineClient(cc *grpc.ClientConn) EngineClient {
	return &engineClient{cc}
}

func (c *engineClient) BestMove(ctx context.Context, in *BestMoveRequest, opts ...grpc.CallOption) (*BestMoveResponse, error) {
	out := new(BestMoveResponse)
	err := c.cc.Invoke(ctx, "/kinarow.Engine/BestMove", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) Winner(ctx context.Context, in *WinnerRequest, opts ...grpc.CallOption) (*WinnerResponse, error) {
	out := new(WinnerResponse)
	err := c.cc.Invoke(ctx, "/kinarow.Engine/Winner", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) Canonicalize(ctx context.Context, in *CanonicalizeRequest, opts ...grpc.CallOption) (*CanonicalizeResponse, error) {
	out := new(CanonicalizeResponse)
	err := c.cc.Invoke(ctx, "/kinarow.Engine/Canonicalize", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EngineServer is the server API for Engine service.
type EngineServer interface {
	BestMove(context.Context, *BestMoveRequest) (*BestMoveResponse, error)
	Winner(context.Context, *WinnerRequest) (*WinnerResponse, error)
	Canonicalize(context.Context, *CanonicalizeRequest) (*CanonicalizeResponse, error)
}

func RegisterEngineServer(s *grpc.Server, srv EngineServer) {
	s.RegisterService(&_Engine_serviceDesc, srv)
}

func _Engine_BestMove_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BestMoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).BestMove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kinarow.Engine/BestMove",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServer).BestMove(ctx, req.(*BestMoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_Winner_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WinnerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).Winner(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kinarow.Engine/Winner",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServer).Winner(ctx, req.(*WinnerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_Canonicalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CanonicalizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).Canonicalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kinarow.Engine/Canonicalize",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServer).Canonicalize(ctx, req.(*CanonicalizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Engine_serviceDesc = grpc.ServiceDesc{
	ServiceName: "kinarow.Engine",
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BestMove",
			Handler:    _Engine_BestMove_Handler,
		},
		{
			MethodName: "Winner",
			Handler:    _Engine_Winner_Handler,
		},
		{
			MethodName: "Canonicalize",
			Handler:    _Engine_Canonicalize_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "kinarow.proto",
}

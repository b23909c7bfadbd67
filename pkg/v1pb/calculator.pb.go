// Package v1pb holds the wire types and gRPC bindings for calculator.proto.
// The messages are plain structs carrying protobuf struct tags, so the gRPC
// proto codec can marshal them without a compiled descriptor.
package v1pb

import (
	"context"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// This is a compile-time assertion to ensure that this file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion4

type Operator int32

const (
	UNKNOWN   Operator = 0
	ADD       Operator = 1
	SUBTRACT  Operator = 2
	MULTIPLY  Operator = 3
	DIVIDE    Operator = 4
	MODULO    Operator = 5
	POWER     Operator = 6
	SQRT      Operator = 7
	FACTORIAL Operator = 8
)

var Operator_name = map[int32]string{
	0: "UNKNOWN",
	1: "ADD",
	2: "SUBTRACT",
	3: "MULTIPLY",
	4: "DIVIDE",
	5: "MODULO",
	6: "POWER",
	7: "SQRT",
	8: "FACTORIAL",
}

var Operator_value = map[string]int32{
	"UNKNOWN":   0,
	"ADD":       1,
	"SUBTRACT":  2,
	"MULTIPLY":  3,
	"DIVIDE":    4,
	"MODULO":    5,
	"POWER":     6,
	"SQRT":      7,
	"FACTORIAL": 8,
}

func (x Operator) String() string {
	return proto.EnumName(Operator_name, int32(x))
}

// A token carries either a decimal operand or an operator.
type Token struct {
	Operand  string   `protobuf:"bytes,1,opt,name=operand,proto3" json:"operand,omitempty"`
	Operator Operator `protobuf:"varint,2,opt,name=operator,proto3,enum=calculator.v1.Operator" json:"operator,omitempty"`
}

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()    {}

func (m *Token) GetOperand() string {
	if m != nil {
		return m.Operand
	}
	return ""
}

func (m *Token) GetOperator() Operator {
	if m != nil {
		return m.Operator
	}
	return UNKNOWN
}

type EvaluateStreamRequest struct {
	Token *Token `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *EvaluateStreamRequest) Reset()         { *m = EvaluateStreamRequest{} }
func (m *EvaluateStreamRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateStreamRequest) ProtoMessage()    {}

func (m *EvaluateStreamRequest) GetToken() *Token {
	if m != nil {
		return m.Token
	}
	return nil
}

type EvaluateStreamResponse struct {
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *EvaluateStreamResponse) Reset()         { *m = EvaluateStreamResponse{} }
func (m *EvaluateStreamResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateStreamResponse) ProtoMessage()    {}

func (m *EvaluateStreamResponse) GetResult() string {
	if m != nil {
		return m.Result
	}
	return ""
}

type EvaluateBatchRequest struct {
	Tokens []*Token `protobuf:"bytes,1,rep,name=tokens,proto3" json:"tokens,omitempty"`
}

func (m *EvaluateBatchRequest) Reset()         { *m = EvaluateBatchRequest{} }
func (m *EvaluateBatchRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateBatchRequest) ProtoMessage()    {}

func (m *EvaluateBatchRequest) GetTokens() []*Token {
	if m != nil {
		return m.Tokens
	}
	return nil
}

type EvaluateBatchResponse struct {
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *EvaluateBatchResponse) Reset()         { *m = EvaluateBatchResponse{} }
func (m *EvaluateBatchResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateBatchResponse) ProtoMessage()    {}

func (m *EvaluateBatchResponse) GetResult() string {
	if m != nil {
		return m.Result
	}
	return ""
}

type EvaluateRequest struct {
	Expression string `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
	// Number of fractional digits in the result. Ignored unless FixedScale is set.
	Scale      int32 `protobuf:"varint,2,opt,name=scale,proto3" json:"scale,omitempty"`
	FixedScale bool  `protobuf:"varint,3,opt,name=fixed_scale,json=fixedScale,proto3" json:"fixed_scale,omitempty"`
}

func (m *EvaluateRequest) Reset()         { *m = EvaluateRequest{} }
func (m *EvaluateRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateRequest) ProtoMessage()    {}

func (m *EvaluateRequest) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

func (m *EvaluateRequest) GetScale() int32 {
	if m != nil {
		return m.Scale
	}
	return 0
}

func (m *EvaluateRequest) GetFixedScale() bool {
	if m != nil {
		return m.FixedScale
	}
	return false
}

type EvaluateResponse struct {
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *EvaluateResponse) Reset()         { *m = EvaluateResponse{} }
func (m *EvaluateResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateResponse) ProtoMessage()    {}

func (m *EvaluateResponse) GetResult() string {
	if m != nil {
		return m.Result
	}
	return ""
}

type IntegerRequest struct {
	Expression string `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
	// Decimal integer literals bound to the '?' placeholders in order.
	Operands []string `protobuf:"bytes,2,rep,name=operands,proto3" json:"operands,omitempty"`
}

func (m *IntegerRequest) Reset()         { *m = IntegerRequest{} }
func (m *IntegerRequest) String() string { return proto.CompactTextString(m) }
func (*IntegerRequest) ProtoMessage()    {}

func (m *IntegerRequest) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

func (m *IntegerRequest) GetOperands() []string {
	if m != nil {
		return m.Operands
	}
	return nil
}

type IntegerResponse struct {
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *IntegerResponse) Reset()         { *m = IntegerResponse{} }
func (m *IntegerResponse) String() string { return proto.CompactTextString(m) }
func (*IntegerResponse) ProtoMessage()    {}

func (m *IntegerResponse) GetResult() string {
	if m != nil {
		return m.Result
	}
	return ""
}

type CompareResponse struct {
	Result bool `protobuf:"varint,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *CompareResponse) Reset()         { *m = CompareResponse{} }
func (m *CompareResponse) String() string { return proto.CompactTextString(m) }
func (*CompareResponse) ProtoMessage()    {}

func (m *CompareResponse) GetResult() bool {
	if m != nil {
		return m.Result
	}
	return false
}

func init() {
	proto.RegisterEnum("calculator.v1.Operator", Operator_name, Operator_value)
	proto.RegisterType((*Token)(nil), "calculator.v1.Token")
	proto.RegisterType((*EvaluateStreamRequest)(nil), "calculator.v1.EvaluateStreamRequest")
	proto.RegisterType((*EvaluateStreamResponse)(nil), "calculator.v1.EvaluateStreamResponse")
	proto.RegisterType((*EvaluateBatchRequest)(nil), "calculator.v1.EvaluateBatchRequest")
	proto.RegisterType((*EvaluateBatchResponse)(nil), "calculator.v1.EvaluateBatchResponse")
	proto.RegisterType((*EvaluateRequest)(nil), "calculator.v1.EvaluateRequest")
	proto.RegisterType((*EvaluateResponse)(nil), "calculator.v1.EvaluateResponse")
	proto.RegisterType((*IntegerRequest)(nil), "calculator.v1.IntegerRequest")
	proto.RegisterType((*IntegerResponse)(nil), "calculator.v1.IntegerResponse")
	proto.RegisterType((*CompareResponse)(nil), "calculator.v1.CompareResponse")
}

// CalculatorClient is the client API for Calculator service.
type CalculatorClient interface {
	// Evaluates postfix tokens sent one at a time.
	EvaluateStream(ctx context.Context, opts ...grpc.CallOption) (Calculator_EvaluateStreamClient, error)
	// Evaluates a complete postfix token sequence.
	EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error)
	// Evaluates an infix decimal expression.
	Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error)
	// Evaluates a '?' placeholder expression over arbitrary-precision integers.
	EvaluateInteger(ctx context.Context, in *IntegerRequest, opts ...grpc.CallOption) (*IntegerResponse, error)
	// Evaluates a '?' placeholder boolean expression over arbitrary-precision integers.
	CompareInteger(ctx context.Context, in *IntegerRequest, opts ...grpc.CallOption) (*CompareResponse, error)
}

type calculatorClient struct {
	cc *grpc.ClientConn
}

func NewCalculatorClient(cc *grpc.ClientConn) CalculatorClient {
	return &calculatorClient{cc}
}

func (c *calculatorClient) EvaluateStream(ctx context.Context, opts ...grpc.CallOption) (Calculator_EvaluateStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Calculator_serviceDesc.Streams[0], "/calculator.v1.Calculator/EvaluateStream", opts...)
	if err != nil {
		return nil, err
	}
	x := &calculatorEvaluateStreamClient{stream}
	return x, nil
}

type Calculator_EvaluateStreamClient interface {
	Send(*EvaluateStreamRequest) error
	CloseAndRecv() (*EvaluateStreamResponse, error)
	grpc.ClientStream
}

type calculatorEvaluateStreamClient struct {
	grpc.ClientStream
}

func (x *calculatorEvaluateStreamClient) Send(m *EvaluateStreamRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *calculatorEvaluateStreamClient) CloseAndRecv() (*EvaluateStreamResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(EvaluateStreamResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *calculatorClient) EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error) {
	out := new(EvaluateBatchResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/EvaluateBatch", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error) {
	out := new(EvaluateResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/Evaluate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) EvaluateInteger(ctx context.Context, in *IntegerRequest, opts ...grpc.CallOption) (*IntegerResponse, error) {
	out := new(IntegerResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/EvaluateInteger", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) CompareInteger(ctx context.Context, in *IntegerRequest, opts ...grpc.CallOption) (*CompareResponse, error) {
	out := new(CompareResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/CompareInteger", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CalculatorServer is the server API for Calculator service.
type CalculatorServer interface {
	// Evaluates postfix tokens sent one at a time.
	EvaluateStream(Calculator_EvaluateStreamServer) error
	// Evaluates a complete postfix token sequence.
	EvaluateBatch(context.Context, *EvaluateBatchRequest) (*EvaluateBatchResponse, error)
	// Evaluates an infix decimal expression.
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	// Evaluates a '?' placeholder expression over arbitrary-precision integers.
	EvaluateInteger(context.Context, *IntegerRequest) (*IntegerResponse, error)
	// Evaluates a '?' placeholder boolean expression over arbitrary-precision integers.
	CompareInteger(context.Context, *IntegerRequest) (*CompareResponse, error)
}

func RegisterCalculatorServer(s *grpc.Server, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

func _Calculator_EvaluateStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(CalculatorServer).EvaluateStream(&calculatorEvaluateStreamServer{stream})
}

type Calculator_EvaluateStreamServer interface {
	SendAndClose(*EvaluateStreamResponse) error
	Recv() (*EvaluateStreamRequest, error)
	grpc.ServerStream
}

type calculatorEvaluateStreamServer struct {
	grpc.ServerStream
}

func (x *calculatorEvaluateStreamServer) SendAndClose(m *EvaluateStreamResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *calculatorEvaluateStreamServer) Recv() (*EvaluateStreamRequest, error) {
	m := new(EvaluateStreamRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _Calculator_EvaluateBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).EvaluateBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/EvaluateBatch",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).EvaluateBatch(ctx, req.(*EvaluateBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/Evaluate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_EvaluateInteger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IntegerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).EvaluateInteger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/EvaluateInteger",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).EvaluateInteger(ctx, req.(*IntegerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_CompareInteger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IntegerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).CompareInteger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/CompareInteger",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).CompareInteger(ctx, req.(*IntegerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "calculator.v1.Calculator",
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EvaluateBatch",
			Handler:    _Calculator_EvaluateBatch_Handler,
		},
		{
			MethodName: "Evaluate",
			Handler:    _Calculator_Evaluate_Handler,
		},
		{
			MethodName: "EvaluateInteger",
			Handler:    _Calculator_EvaluateInteger_Handler,
		},
		{
			MethodName: "CompareInteger",
			Handler:    _Calculator_CompareInteger_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "EvaluateStream",
			Handler:       _Calculator_EvaluateStream_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "calculator.proto",
}

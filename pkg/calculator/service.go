package calculator

import (
	"context"
	"io"
	"time"

	"github.com/charithe/exactcalc/pkg/bigint"
	"github.com/charithe/exactcalc/pkg/exact"
	"github.com/charithe/exactcalc/pkg/expr"
	"github.com/charithe/exactcalc/pkg/operator"
	"github.com/charithe/exactcalc/pkg/v1pb"
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/status"
)

// DefaultMaxStreamTokens bounds the number of tokens in one stream or batch.
const DefaultMaxStreamTokens = 10000

const (
	methodStream   = "EvaluateStream"
	methodBatch    = "EvaluateBatch"
	methodEvaluate = "Evaluate"
	methodInteger  = "EvaluateInteger"
	methodCompare  = "CompareInteger"
)

// Option configures a Service.
type Option func(*Service)

// WithEvaluator sets the decimal evaluator used by the service.
func WithEvaluator(e *exact.Evaluator) Option {
	return func(s *Service) {
		s.evaluator = e
	}
}

// WithMaxStreamTokens bounds the number of tokens accepted per request.
func WithMaxStreamTokens(n int) Option {
	return func(s *Service) {
		s.maxStreamTokens = n
	}
}

// Service implements the RPC interface of the calculator
type Service struct {
	*health.Server
	evaluator       *exact.Evaluator
	maxStreamTokens int
}

func NewService(opts ...Option) *Service {
	s := &Service{
		Server:          health.NewServer(),
		evaluator:       exact.New(),
		maxStreamTokens: DefaultMaxStreamTokens,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) EvaluateStream(stream v1pb.Calculator_EvaluateStreamServer) error {
	start := time.Now()
	err := s.evaluateStream(stream)
	recordEvaluation(stream.Context(), methodStream, start, err)
	return err
}

func (s *Service) evaluateStream(stream v1pb.Calculator_EvaluateStreamServer) error {
	postfix := s.evaluator.Postfix()
	count := 0

	for {
		req, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				// end of the client-side stream so calculate the result
				result, err := s.result(postfix)
				if err != nil {
					return toStatus(methodStream, err)
				}

				if err := stream.SendAndClose(&v1pb.EvaluateStreamResponse{Result: result}); err != nil {
					zap.S().Errorw("Failed to send response", "error", err)
					return err
				}

				return nil
			}

			zap.S().Warnw("Failed to receive request from stream", "error", err)
			return err
		}

		count++
		if count > s.maxStreamTokens {
			return status.Errorf(codes.ResourceExhausted, "stream exceeds %d tokens", s.maxStreamTokens)
		}

		if err := pushToken(postfix, req.GetToken()); err != nil {
			return toStatus(methodStream, err)
		}
	}
}

func (s *Service) EvaluateBatch(ctx context.Context, req *v1pb.EvaluateBatchRequest) (*v1pb.EvaluateBatchResponse, error) {
	start := time.Now()
	resp, err := s.evaluateBatch(ctx, req)
	recordEvaluation(ctx, methodBatch, start, err)
	return resp, err
}

func (s *Service) evaluateBatch(ctx context.Context, req *v1pb.EvaluateBatchRequest) (*v1pb.EvaluateBatchResponse, error) {
	// if the context has already expired, we can avoid unnecessary work
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(req.Tokens) > s.maxStreamTokens {
		return nil, status.Errorf(codes.ResourceExhausted, "batch exceeds %d tokens", s.maxStreamTokens)
	}

	postfix := s.evaluator.Postfix()
	for _, t := range req.Tokens {
		if err := pushToken(postfix, t); err != nil {
			return nil, toStatus(methodBatch, err)
		}
	}

	result, err := s.result(postfix)
	if err != nil {
		return nil, toStatus(methodBatch, err)
	}

	return &v1pb.EvaluateBatchResponse{Result: result}, nil
}

func (s *Service) Evaluate(ctx context.Context, req *v1pb.EvaluateRequest) (*v1pb.EvaluateResponse, error) {
	start := time.Now()
	resp, err := s.evaluate(ctx, req)
	recordEvaluation(ctx, methodEvaluate, start, err)
	return resp, err
}

func (s *Service) evaluate(ctx context.Context, req *v1pb.EvaluateRequest) (*v1pb.EvaluateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result *apd.Decimal
	var err error
	if req.FixedScale {
		result, err = s.evaluator.EvaluateScale(req.Expression, req.Scale)
	} else {
		result, err = s.evaluator.Evaluate(req.Expression)
	}

	if err != nil {
		return nil, toStatus(methodEvaluate, err)
	}

	return &v1pb.EvaluateResponse{Result: exact.Format(result)}, nil
}

func (s *Service) EvaluateInteger(ctx context.Context, req *v1pb.IntegerRequest) (*v1pb.IntegerResponse, error) {
	start := time.Now()
	resp, err := s.evaluateInteger(ctx, req)
	recordEvaluation(ctx, methodInteger, start, err)
	return resp, err
}

func (s *Service) evaluateInteger(ctx context.Context, req *v1pb.IntegerRequest) (*v1pb.IntegerResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args, err := parseOperands(req.Operands)
	if err != nil {
		return nil, toStatus(methodInteger, err)
	}

	result, err := operator.Eval(req.Expression, args...)
	if err != nil {
		return nil, toStatus(methodInteger, err)
	}

	return &v1pb.IntegerResponse{Result: result.String()}, nil
}

func (s *Service) CompareInteger(ctx context.Context, req *v1pb.IntegerRequest) (*v1pb.CompareResponse, error) {
	start := time.Now()
	resp, err := s.compareInteger(ctx, req)
	recordEvaluation(ctx, methodCompare, start, err)
	return resp, err
}

func (s *Service) compareInteger(ctx context.Context, req *v1pb.IntegerRequest) (*v1pb.CompareResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args, err := parseOperands(req.Operands)
	if err != nil {
		return nil, toStatus(methodCompare, err)
	}

	result, err := operator.Compare(req.Expression, args...)
	if err != nil {
		return nil, toStatus(methodCompare, err)
	}

	return &v1pb.CompareResponse{Result: result}, nil
}

func (s *Service) result(postfix *expr.Evaluator[*apd.Decimal]) (string, error) {
	v, err := postfix.Result()
	if err != nil {
		return "", err
	}

	r, err := s.evaluator.AutoScale(v)
	if err != nil {
		return "", err
	}

	return exact.Format(r), nil
}

func pushToken(postfix *expr.Evaluator[*apd.Decimal], tok *v1pb.Token) error {
	text, err := tokenText(tok)
	if err != nil {
		return err
	}
	return postfix.Push(text)
}

func parseOperands(operands []string) ([]*bigint.Int, error) {
	args := make([]*bigint.Int, len(operands))
	for i, o := range operands {
		x, err := bigint.Parse(o)
		if err != nil {
			return nil, errors.Wrapf(err, "operand %d", i)
		}
		args[i] = x
	}
	return args, nil
}

// toStatus converts an evaluation error to a gRPC status. Errors caused by
// operand magnitude map to OutOfRange, everything else is the caller's input.
func toStatus(method string, err error) error {
	code := codes.InvalidArgument
	switch errors.Cause(err) {
	case bigint.ErrDivideByZero, bigint.ErrShiftCount, exact.ErrFactorialTooLarge, exact.ErrExponentTooLarge:
		code = codes.OutOfRange
	}

	zap.S().Debugw("Evaluation rejected", "method", method, "code", code, "error", err)
	return status.Error(code, err.Error())
}

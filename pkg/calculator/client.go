package calculator

import (
	"context"
	"io"

	"github.com/charithe/exactcalc/pkg/v1pb"
	"google.golang.org/grpc"
)

// Client implements the RPC client for the Calculator service
type Client struct {
	conn   *grpc.ClientConn
	client v1pb.CalculatorClient
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:   conn,
		client: v1pb.NewCalculatorClient(conn),
	}
}

// EvaluateStream sends each postfix token read from tokens and returns the
// result once the channel is closed.
func (c *Client) EvaluateStream(tokens <-chan string) (string, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := c.client.EvaluateStream(ctx)
	if err != nil {
		return "", err
	}

	for tokenStr := range tokens {
		tok, err := parseToken(tokenStr)
		if err != nil {
			return "", err
		}

		if err := stream.Send(&v1pb.EvaluateStreamRequest{Token: tok}); err != nil {
			if err == io.EOF {
				// the server ended the stream early and its status arrives on receive
				_, err = stream.CloseAndRecv()
			}
			return "", err
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return "", err
	}

	return resp.Result, nil
}

func (c *Client) EvaluateBatch(ctx context.Context, tokenStrs []string) (string, error) {
	tokens := make([]*v1pb.Token, len(tokenStrs))
	for i, tokStr := range tokenStrs {
		tok, err := parseToken(tokStr)
		if err != nil {
			return "", err
		}

		tokens[i] = tok
	}

	resp, err := c.client.EvaluateBatch(ctx, &v1pb.EvaluateBatchRequest{Tokens: tokens})
	if err != nil {
		return "", err
	}

	return resp.Result, nil
}

// Evaluate evaluates an infix expression, letting the server pick the scale.
func (c *Client) Evaluate(ctx context.Context, expression string) (string, error) {
	resp, err := c.client.Evaluate(ctx, &v1pb.EvaluateRequest{Expression: expression})
	if err != nil {
		return "", err
	}

	return resp.Result, nil
}

// EvaluateScale evaluates an infix expression rounded to scale fractional digits.
func (c *Client) EvaluateScale(ctx context.Context, expression string, scale int32) (string, error) {
	resp, err := c.client.Evaluate(ctx, &v1pb.EvaluateRequest{
		Expression: expression,
		Scale:      scale,
		FixedScale: true,
	})
	if err != nil {
		return "", err
	}

	return resp.Result, nil
}

// EvaluateInteger binds operands to the '?' placeholders of expression.
func (c *Client) EvaluateInteger(ctx context.Context, expression string, operands ...string) (string, error) {
	resp, err := c.client.EvaluateInteger(ctx, &v1pb.IntegerRequest{Expression: expression, Operands: operands})
	if err != nil {
		return "", err
	}

	return resp.Result, nil
}

func (c *Client) CompareInteger(ctx context.Context, expression string, operands ...string) (bool, error) {
	resp, err := c.client.CompareInteger(ctx, &v1pb.IntegerRequest{Expression: expression, Operands: operands})
	if err != nil {
		return false, err
	}

	return resp.Result, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"log"
	"net"
	"os"
	"time"

	"github.com/charithe/exactcalc/pkg/calculator"
	"github.com/charithe/exactcalc/pkg/v1pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/test/bufconn"
	"gopkg.in/alecthomas/kingpin.v2"
)

const localBufferSize = 1 << 20

var (
	app = kingpin.New("Exact Calculator CLI", "An RPC calculator CLI")

	addr      = app.Flag("addr", "Server address").Default("localhost:8080").Envar("CALC_ADDR").String()
	insecure  = app.Flag("insecure", "Trust unknown CAs").Bool()
	plaintext = app.Flag("plaintext", "Use unencrypted connection").Bool()
	local     = app.Flag("local", "Evaluate with an in-process server instead of dialling --addr").Bool()
	timeout   = app.Flag("timeout", "Timeout for unary calls").Default("10s").Duration()

	streamCmd = app.Command("stream", "Stream mode: postfix tokens read from stdin, one per line")
	batchCmd  = app.Command("batch", "Batch mode: postfix tokens as arguments")
	batchExpr = batchCmd.Arg("expr", "Expression (space separated)").Strings()

	evalCmd   = app.Command("eval", "Evaluate an infix decimal expression")
	evalExpr  = evalCmd.Arg("expr", "Expression").Required().String()
	evalScale = evalCmd.Flag("scale", "Fractional digits in the result").Default("-1").Int32()

	intCmd      = app.Command("int", "Evaluate a '?' placeholder expression over big integers")
	intExpr     = intCmd.Arg("expr", "Expression").Required().String()
	intOperands = intCmd.Arg("operands", "Integer operands bound to the placeholders").Strings()

	cmpCmd      = app.Command("cmp", "Evaluate a '?' placeholder boolean expression over big integers")
	cmpExpr     = cmpCmd.Arg("expr", "Expression").Required().String()
	cmpOperands = cmpCmd.Arg("operands", "Integer operands bound to the placeholders").Strings()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	client, err := createClient()
	if err != nil {
		log.Printf("Failed to connect to server: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	var result interface{}
	switch cmd {
	case streamCmd.FullCommand():
		result, err = doStream(client)
	case batchCmd.FullCommand():
		result, err = withTimeout(func(ctx context.Context) (interface{}, error) {
			return client.EvaluateBatch(ctx, *batchExpr)
		})
	case evalCmd.FullCommand():
		result, err = withTimeout(func(ctx context.Context) (interface{}, error) {
			if *evalScale < 0 {
				return client.Evaluate(ctx, *evalExpr)
			}
			return client.EvaluateScale(ctx, *evalExpr, *evalScale)
		})
	case intCmd.FullCommand():
		result, err = withTimeout(func(ctx context.Context) (interface{}, error) {
			return client.EvaluateInteger(ctx, *intExpr, *intOperands...)
		})
	case cmpCmd.FullCommand():
		result, err = withTimeout(func(ctx context.Context) (interface{}, error) {
			return client.CompareInteger(ctx, *cmpExpr, *cmpOperands...)
		})
	}

	if err != nil {
		log.Printf("%s call failed: %v", cmd, err)
		client.Close()
		os.Exit(1)
	}

	log.Printf("Result: %v", result)
}

func withTimeout(call func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	return call(ctx)
}

func doStream(client *calculator.Client) (interface{}, error) {
	log.Printf("Enter each operator or operand in a new line. Press Ctrl+D to end")

	tokChan := make(chan string)
	go func() {
		defer close(tokChan)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			tokChan <- scanner.Text()
		}

		if err := scanner.Err(); err != nil {
			log.Printf("Failed to read stream: %v", err)
		}
	}()

	return client.EvaluateStream(tokChan)
}

func createClient() (*calculator.Client, error) {
	if *local {
		return createLocalClient()
	}

	var dialOpts []grpc.DialOption
	if *plaintext {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		tlsConf := &tls.Config{
			InsecureSkipVerify: *insecure,
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConf)))
	}

	conn, err := grpc.Dial(*addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	return calculator.NewClient(conn), nil
}

// createLocalClient serves the calculator over an in-memory listener that
// lives until the process exits.
func createLocalClient() (*calculator.Client, error) {
	lis := bufconn.Listen(localBufferSize)

	srv := grpc.NewServer()
	v1pb.RegisterCalculatorServer(srv, calculator.NewService())
	go func() {
		if err := srv.Serve(lis); err != nil {
			log.Printf("Local server stopped: %v", err)
		}
	}()

	conn, err := grpc.Dial("bufconn",
		grpc.WithInsecure(),
		grpc.WithDialer(func(string, time.Duration) (net.Conn, error) {
			return lis.Dial()
		}),
	)
	if err != nil {
		return nil, err
	}

	return calculator.NewClient(conn), nil
}

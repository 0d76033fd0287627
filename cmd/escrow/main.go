package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
)

var (
	// maxMsgRecvSize is the largest message our client will receive. We
	// set this to 200MiB atm.
	maxMsgRecvSize = grpc.MaxCallRecvMsgSize(1 * 1024 * 1024 * 200)

	escrowDataDir = btcutil.AppDataDir("escrow-cli", false)
	statePath     = filepath.Join(escrowDataDir, "state.json")
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "escrow CLI"
	app.Usage = "Command line interface for escrowd users and operators"
	app.Commands = append(
		app.Commands,
		&config,
		&createoffer,
		&acceptoffer,
		&canceloffer,
		&getoffer,
		&listoffers,
		&lastofferid,
		&fundaccount,
		&getbalance,
		&webhook,
	)
	return app
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, fmt.Errorf("invalid config state: %s", err)
	}

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(escrowDataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(escrowDataDir, os.ModeDir|0755); err != nil {
			return err
		}
	}

	currentData := map[string]string{}
	if _, err := os.Stat(statePath); err == nil {
		if currentData, err = getState(); err != nil {
			return err
		}
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath, jsonString, 0644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}

func printRespJSON(resp interface{}) {
	jsonStr, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonStr))
}

func getEscrowClient() (escrowv1.EscrowServiceClient, func(), error) {
	conn, err := getClientConn("rpcserver")
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = conn.Close() }

	return escrowv1.NewEscrowServiceClient(conn), cleanup, nil
}

func getOperatorClient() (escrowv1.OperatorServiceClient, func(), error) {
	conn, err := getClientConn("operatorserver")
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = conn.Close() }

	return escrowv1.NewOperatorServiceClient(conn), cleanup, nil
}

func getClientConn(key string) (*grpc.ClientConn, error) {
	state, err := getState()
	if err != nil {
		return nil, err
	}
	address, ok := state[key]
	if !ok || len(address) <= 0 {
		return nil, fmt.Errorf("set %s with `config set %s`", key, key)
	}

	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(maxMsgRecvSize, escrowv1.CallOption()),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	conn, err := grpc.Dial(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to RPC server: %v", err)
	}

	return conn, nil
}

// callerContext returns a context carrying the address the daemon should
// act on behalf of. The --caller flag takes precedence over the one in the
// local state.
func callerContext(ctx *cli.Context) (context.Context, error) {
	caller := ctx.String("caller")
	if len(caller) <= 0 {
		state, err := getState()
		if err != nil {
			return nil, err
		}
		caller = state["caller"]
	}
	if len(caller) <= 0 {
		return nil, errors.New(
			"missing caller, use --caller or set it with `config set caller`",
		)
	}

	return metadata.AppendToOutgoingContext(
		ctx.Context, escrowv1.CallerMetadataKey, caller,
	), nil
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[escrow] %v\n", err)
	}
	os.Exit(1)
}

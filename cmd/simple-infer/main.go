package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/AugurML/augur-client/pkg/clients/augur"
	"github.com/AugurML/augur-client/pkg/tensor"
	"github.com/rs/zerolog/log"
)

// Exercises the simple sum/diff model over gRPC: two INT32 [1,16]
// inputs, OUTPUT0 holds element sums and OUTPUT1 element diffs. Runs
// the same request once synchronously and once asynchronously.
func main() {
	host := flag.String("host", "localhost", "inference server host")
	port := flag.String("port", "8001", "inference server gRPC port")
	timeoutMs := flag.Int("timeout-ms", 5000, "per request timeout in milliseconds")
	modelVersion := flag.String("model-version", "", "model version, empty lets the server pick")
	flag.Parse()

	client := augur.NewGRPCClient(&augur.Config{
		Host:        *host,
		Port:        *port,
		TimeoutInMs: *timeoutMs,
		Protocol:    augur.ProtocolGRPC,
		PlainText:   true,
	}, "SIMPLE_INFER")
	defer client.Close()

	ctx := context.Background()
	if live, err := client.IsServerLive(ctx); err != nil || !live {
		log.Fatal().Err(err).Msg("Server is not live")
	}
	if ready, err := client.IsModelReady(ctx, "simple", *modelVersion); err != nil || !ready {
		log.Fatal().Err(err).Msg("Model simple is not ready")
	}

	req := buildRequest(*modelVersion)

	result, err := client.Infer(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Synchronous inference failed")
	}
	printResult(result)

	var wg sync.WaitGroup
	wg.Add(1)
	err = client.InferAsync(ctx, req, func(result *augur.InferResult, err error) {
		defer wg.Done()
		if err != nil {
			log.Error().Err(err).Msg("Asynchronous inference failed")
			return
		}
		printResult(result)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to submit asynchronous inference")
	}
	wg.Wait()
}

func buildRequest(modelVersion string) *augur.InferRequest {
	input0 := tensor.New("INPUT0", []int64{1, 16}, tensor.DataTypeInt32)
	input1 := tensor.New("INPUT1", []int64{1, 16}, tensor.DataTypeInt32)
	values0 := make([]int32, 16)
	values1 := make([]int32, 16)
	for i := range values0 {
		values0[i] = int32(i)
		values1[i] = 1
	}
	if err := input0.SetInt32s(values0); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode INPUT0")
	}
	if err := input1.SetInt32s(values1); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode INPUT1")
	}

	req, err := augur.NewInferRequest(
		augur.InferOptions{ModelName: "simple", ModelVersion: modelVersion},
		[]augur.InferInput{{Tensor: input0}, {Tensor: input1}},
		[]augur.InferRequestedOutput{{Name: "OUTPUT0"}, {Name: "OUTPUT1"}},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build infer request")
	}
	return req
}

func printResult(result *augur.InferResult) {
	for _, name := range result.OutputNames() {
		out, err := result.AsTensor(name)
		if err != nil {
			log.Fatal().Err(err).Msgf("Missing output %s", name)
		}
		values, err := out.Int32s()
		if err != nil {
			log.Fatal().Err(err).Msgf("Failed to decode output %s", name)
		}
		fmt.Fprintf(os.Stdout, "%s = %v\n", name, values)
	}
}

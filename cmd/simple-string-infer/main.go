package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/AugurML/augur-client/pkg/clients/augur"
	"github.com/AugurML/augur-client/pkg/tensor"
	"github.com/rs/zerolog/log"
)

// Exercises the simple_string model over HTTP: two BYTES [1,16] inputs
// carrying decimal strings, OUTPUT0 holds element sums and OUTPUT1
// element diffs, also as strings. INPUT0 travels in the binary tail,
// INPUT1 as a JSON data array, so both wire encodings get exercised.
func main() {
	host := flag.String("host", "localhost", "inference server host")
	port := flag.String("port", "8000", "inference server HTTP port")
	timeoutMs := flag.Int("timeout-ms", 5000, "per request timeout in milliseconds")
	flag.Parse()

	client := augur.NewHTTPClient(&augur.Config{
		Host:        *host,
		Port:        *port,
		TimeoutInMs: *timeoutMs,
		Protocol:    augur.ProtocolHTTP,
	}, "SIMPLE_STRING_INFER")
	defer client.Close()

	ctx := context.Background()
	if ready, err := client.IsModelReady(ctx, "simple_string", ""); err != nil || !ready {
		log.Fatal().Err(err).Msg("Model simple_string is not ready")
	}

	input0 := tensor.New("INPUT0", []int64{1, 16}, tensor.DataTypeBytes)
	input1 := tensor.New("INPUT1", []int64{1, 16}, tensor.DataTypeBytes)
	values0 := make([]string, 16)
	values1 := make([]string, 16)
	for i := range values0 {
		values0[i] = strconv.Itoa(i)
		values1[i] = "1"
	}
	if err := input0.SetStrings(values0); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode INPUT0")
	}
	if err := input1.SetStrings(values1); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode INPUT1")
	}

	req, err := augur.NewInferRequest(
		augur.InferOptions{ModelName: "simple_string"},
		[]augur.InferInput{
			{Tensor: input0, BinaryData: true},
			{Tensor: input1},
		},
		[]augur.InferRequestedOutput{
			{Name: "OUTPUT0", BinaryData: true},
			{Name: "OUTPUT1"},
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build infer request")
	}

	result, err := client.Infer(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Inference failed")
	}
	for _, name := range result.OutputNames() {
		out, err := result.AsTensor(name)
		if err != nil {
			log.Fatal().Err(err).Msgf("Missing output %s", name)
		}
		values, err := out.Strings()
		if err != nil {
			log.Fatal().Err(err).Msgf("Failed to decode output %s", name)
		}
		fmt.Fprintf(os.Stdout, "%s = %v\n", name, values)
	}
}

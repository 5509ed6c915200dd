package augur

import "context"

// Client is the logical surface of the inference server, implemented
// by both the gRPC and the HTTP binding. A client is safe for
// concurrent use; it owns its connection and any goroutines it starts.
// Transport failures surface as server errors; no call is retried.
type Client interface {
	// IsServerLive reports whether the server process is up.
	IsServerLive(ctx context.Context) (bool, error)
	// IsServerReady reports whether the server is ready to infer.
	IsServerReady(ctx context.Context) (bool, error)
	// IsModelReady reports whether the named model version is loaded
	// and ready. Empty version lets the server pick.
	IsModelReady(ctx context.Context, modelName, modelVersion string) (bool, error)
	// ServerMetadata fetches the server name, version and extensions.
	ServerMetadata(ctx context.Context) (*ServerMetadata, error)
	// ModelMetadata fetches the model description. An unknown model is
	// a server error.
	ModelMetadata(ctx context.Context, modelName, modelVersion string) (*ModelMetadata, error)
	// ModelConfig fetches the model configuration.
	ModelConfig(ctx context.Context, modelName, modelVersion string) (*ModelConfig, error)
	// Infer runs a synchronous inference: submit plus bounded wait. A
	// call that outlives the configured timeout fails with a timeout
	// error.
	Infer(ctx context.Context, req *InferRequest) (*InferResult, error)
	// InferAsync submits an inference and returns immediately. The
	// callback fires exactly once with the terminal outcome.
	InferAsync(ctx context.Context, req *InferRequest, callback InferCallback) error
	// Close releases the connection. Outstanding async calls fail with
	// a server error instead of hanging.
	Close() error
}

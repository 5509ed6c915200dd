package augur

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/AugurML/augur-client/pkg/circuitbreaker"
	pb "github.com/AugurML/augur-client/pkg/clients/augur/client/grpc"
	"github.com/AugurML/augur-client/pkg/grpcclient"
	"github.com/AugurML/augur-client/pkg/metric"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/metadata"
)

const (
	headerCallerID    = "augur-caller-id"
	headerCallerToken = "augur-auth-token"
)

// GRPCClient is the gRPC binding of Client.
type GRPCClient struct {
	conf       *Config
	adapter    adapter
	conn       *grpcclient.GRPCClient
	grpcClient pb.GRPCInferenceServiceClient
	dispatcher *dispatcher
	cbManager  circuitbreaker.Manager
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient connects to the server over gRPC. It panics on an
// invalid config, matching the other client constructors.
func NewGRPCClient(conf *Config, envPrefix string) *GRPCClient {
	if err := validConfig(conf); err != nil {
		log.Panic().Err(err).Msg("Invalid augur client config")
	}
	conn := grpcclient.NewConnFromConfig(&grpcclient.Config{
		Host:      conf.Host,
		Port:      conf.Port,
		DeadLine:  conf.TimeoutInMs,
		PlainText: conf.PlainText,
	}, envPrefix)
	return &GRPCClient{
		conf:       conf,
		conn:       conn,
		grpcClient: pb.NewGRPCInferenceServiceClient(conn),
		dispatcher: newDispatcher(time.Duration(conf.TimeoutInMs) * time.Millisecond),
		cbManager:  circuitbreaker.NewManager(envPrefix),
	}
}

func (c *GRPCClient) callContext(ctx context.Context, headers map[string]string) context.Context {
	md := metadata.New(nil)
	if c.conf.CallerId != "" {
		md.Set(headerCallerID, c.conf.CallerId)
	}
	if c.conf.CallerToken != "" {
		md.Set(headerCallerToken, c.conf.CallerToken)
	}
	for key, value := range headers {
		md.Set(key, value)
	}
	if len(md) == 0 {
		return ctx
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) IsServerLive(ctx context.Context) (bool, error) {
	resp, err := c.grpcClient.ServerLive(c.callContext(ctx, nil), &pb.ServerLiveRequest{})
	if err != nil {
		return false, api.ConvertGrpcErrorToServerError(err)
	}
	return resp.GetLive(), nil
}

func (c *GRPCClient) IsServerReady(ctx context.Context) (bool, error) {
	resp, err := c.grpcClient.ServerReady(c.callContext(ctx, nil), &pb.ServerReadyRequest{})
	if err != nil {
		return false, api.ConvertGrpcErrorToServerError(err)
	}
	return resp.GetReady(), nil
}

func (c *GRPCClient) IsModelReady(ctx context.Context, modelName, modelVersion string) (bool, error) {
	resp, err := c.grpcClient.ModelReady(c.callContext(ctx, nil), &pb.ModelReadyRequest{
		Name:    modelName,
		Version: modelVersion,
	})
	if err != nil {
		return false, api.ConvertGrpcErrorToServerError(err)
	}
	return resp.GetReady(), nil
}

func (c *GRPCClient) ServerMetadata(ctx context.Context) (*ServerMetadata, error) {
	resp, err := c.grpcClient.ServerMetadata(c.callContext(ctx, nil), &pb.ServerMetadataRequest{})
	if err != nil {
		return nil, api.ConvertGrpcErrorToServerError(err)
	}
	return &ServerMetadata{
		Name:       resp.GetName(),
		Version:    resp.GetVersion(),
		Extensions: resp.GetExtensions(),
	}, nil
}

func (c *GRPCClient) ModelMetadata(ctx context.Context, modelName, modelVersion string) (*ModelMetadata, error) {
	resp, err := c.grpcClient.ModelMetadata(c.callContext(ctx, nil), &pb.ModelMetadataRequest{
		Name:    modelName,
		Version: modelVersion,
	})
	if err != nil {
		return nil, api.ConvertGrpcErrorToServerError(err)
	}
	return c.adapter.mapProtoToModelMetadata(resp), nil
}

func (c *GRPCClient) ModelConfig(ctx context.Context, modelName, modelVersion string) (*ModelConfig, error) {
	resp, err := c.grpcClient.ModelConfig(c.callContext(ctx, nil), &pb.ModelConfigRequest{
		Name:    modelName,
		Version: modelVersion,
	})
	if err != nil {
		return nil, api.ConvertGrpcErrorToServerError(err)
	}
	return c.adapter.mapProtoToModelConfig(resp.GetConfig()), nil
}

func (c *GRPCClient) Infer(ctx context.Context, req *InferRequest) (*InferResult, error) {
	if err := validateInferRequest(req); err != nil {
		return nil, err
	}
	return c.dispatcher.infer(ctx, c.inferFunc(req))
}

func (c *GRPCClient) InferAsync(ctx context.Context, req *InferRequest, callback InferCallback) error {
	if err := validateInferRequest(req); err != nil {
		return err
	}
	return c.dispatcher.submit(ctx, c.inferFunc(req), callback)
}

func (c *GRPCClient) inferFunc(req *InferRequest) inferFunc {
	protoReq := c.adapter.mapInferRequestToProto(req)
	return func(ctx context.Context) (*InferResult, error) {
		breaker, cbErr := c.cbManager.GetOrCreateManualCB(req.Options.ModelName)
		if cbErr != nil {
			return nil, cbErr
		}
		if !breaker.IsAllowed() {
			log.Warn().
				Str("model_name", req.Options.ModelName).
				Msg("Circuit breaker open, rejecting inference call")
			return nil, api.NewServerError(http.StatusServiceUnavailable,
				fmt.Sprintf("circuit breaker open for model %s", req.Options.ModelName))
		}
		startTime := time.Now()
		protoResp, err := c.grpcClient.ModelInfer(c.callContext(ctx, req.Options.Headers), protoReq)
		if err != nil {
			breaker.RecordFailure()
		} else {
			breaker.RecordSuccess()
		}
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		tags := metric.BuildInferTags(req.Options.ModelName, metric.TagValueCommunicationProtocolGrpc, outcome)
		metric.Timing(metric.InferRequestLatency, time.Since(startTime), tags)
		metric.Incr(metric.InferRequestCount, tags)
		if err != nil {
			log.Error().Err(err).
				Str("model_name", req.Options.ModelName).
				Str("model_version", req.Options.ModelVersion).
				Msg("Inference call failed")
			return nil, api.ConvertGrpcErrorToServerError(err)
		}
		return c.adapter.mapProtoToInferResult(protoResp)
	}
}

// Close tears down the connection and fails outstanding async calls.
func (c *GRPCClient) Close() error {
	c.dispatcher.close()
	return c.conn.Conn.Close()
}

package augur

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/AugurML/augur-client/pkg/circuitbreaker"
	pb "github.com/AugurML/augur-client/pkg/clients/augur/client/grpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type mockInferenceClient struct {
	mock.Mock
}

func (m *mockInferenceClient) ServerLive(ctx context.Context, in *pb.ServerLiveRequest, opts ...grpc.CallOption) (*pb.ServerLiveResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pb.ServerLiveResponse), args.Error(1)
}

func (m *mockInferenceClient) ServerReady(ctx context.Context, in *pb.ServerReadyRequest, opts ...grpc.CallOption) (*pb.ServerReadyResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pb.ServerReadyResponse), args.Error(1)
}

func (m *mockInferenceClient) ModelReady(ctx context.Context, in *pb.ModelReadyRequest, opts ...grpc.CallOption) (*pb.ModelReadyResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pb.ModelReadyResponse), args.Error(1)
}

func (m *mockInferenceClient) ServerMetadata(ctx context.Context, in *pb.ServerMetadataRequest, opts ...grpc.CallOption) (*pb.ServerMetadataResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pb.ServerMetadataResponse), args.Error(1)
}

func (m *mockInferenceClient) ModelMetadata(ctx context.Context, in *pb.ModelMetadataRequest, opts ...grpc.CallOption) (*pb.ModelMetadataResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pb.ModelMetadataResponse), args.Error(1)
}

func (m *mockInferenceClient) ModelConfig(ctx context.Context, in *pb.ModelConfigRequest, opts ...grpc.CallOption) (*pb.ModelConfigResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pb.ModelConfigResponse), args.Error(1)
}

func (m *mockInferenceClient) ModelInfer(ctx context.Context, in *pb.ModelInferRequest, opts ...grpc.CallOption) (*pb.ModelInferResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pb.ModelInferResponse), args.Error(1)
}

func newTestGRPCClient(mockClient *mockInferenceClient) *GRPCClient {
	return &GRPCClient{
		conf: &Config{
			Host:        "augur.local",
			Port:        "8001",
			TimeoutInMs: 2000,
			Protocol:    ProtocolGRPC,
			CallerId:    "test-caller",
			CallerToken: "test-token",
		},
		grpcClient: mockClient,
		dispatcher: newDispatcher(2 * time.Second),
		cbManager:  circuitbreaker.NewManager("AUGUR_TEST"),
	}
}

type stubBreakerManager struct {
	breaker circuitbreaker.ManualCircuitBreaker
}

func (s stubBreakerManager) GetOrCreateManualCB(string) (circuitbreaker.ManualCircuitBreaker, error) {
	return s.breaker, nil
}

func TestGRPCIsServerLive(t *testing.T) {
	mockClient := &mockInferenceClient{}
	mockClient.On("ServerLive", mock.Anything, &pb.ServerLiveRequest{}).
		Return(&pb.ServerLiveResponse{Live: true}, nil)
	client := newTestGRPCClient(mockClient)

	live, err := client.IsServerLive(context.Background())
	assert.NoError(t, err)
	assert.True(t, live)
	mockClient.AssertExpectations(t)
}

func TestGRPCIsModelReady(t *testing.T) {
	mockClient := &mockInferenceClient{}
	mockClient.On("ModelReady", mock.Anything, &pb.ModelReadyRequest{Name: "simple", Version: "1"}).
		Return(&pb.ModelReadyResponse{Ready: true}, nil)
	client := newTestGRPCClient(mockClient)

	ready, err := client.IsModelReady(context.Background(), "simple", "1")
	assert.NoError(t, err)
	assert.True(t, ready)
	mockClient.AssertExpectations(t)
}

func TestGRPCCallContextCarriesCallerMetadata(t *testing.T) {
	mockClient := &mockInferenceClient{}
	var captured metadata.MD
	mockClient.On("ServerReady", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured, _ = metadata.FromOutgoingContext(args.Get(0).(context.Context))
		}).
		Return(&pb.ServerReadyResponse{Ready: true}, nil)
	client := newTestGRPCClient(mockClient)

	_, err := client.IsServerReady(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"test-caller"}, captured.Get(headerCallerID))
	assert.Equal(t, []string{"test-token"}, captured.Get(headerCallerToken))
}

func TestGRPCInfer(t *testing.T) {
	sums := int32Tensor(t, "OUTPUT0", []int32{2, 4, 6, 8})
	mockClient := &mockInferenceClient{}
	mockClient.On("ModelInfer", mock.Anything, mock.MatchedBy(func(req *pb.ModelInferRequest) bool {
		return req.ModelName == "simple" && len(req.RawInputContents) == 1
	})).Return(&pb.ModelInferResponse{
		ModelName:    "simple",
		ModelVersion: "1",
		Outputs: []*pb.ModelInferResponse_InferOutputTensor{
			{Name: "OUTPUT0", Datatype: "INT32", Shape: []int64{1, 4}},
		},
		RawOutputContents: [][]byte{sums.Raw()},
	}, nil)
	client := newTestGRPCClient(mockClient)

	req, err := NewInferRequest(
		InferOptions{ModelName: "simple"},
		[]InferInput{{Tensor: int32Tensor(t, "INPUT0", []int32{1, 2, 3, 4})}},
		[]InferRequestedOutput{{Name: "OUTPUT0"}},
	)
	require.NoError(t, err)

	result, err := client.Infer(context.Background(), req)
	require.NoError(t, err)
	out, err := result.AsTensor("OUTPUT0")
	require.NoError(t, err)
	values, err := out.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 4, 6, 8}, values)
	mockClient.AssertExpectations(t)
}

func TestGRPCInferAsync(t *testing.T) {
	mockClient := &mockInferenceClient{}
	mockClient.On("ModelInfer", mock.Anything, mock.Anything).
		Return(&pb.ModelInferResponse{ModelName: "simple"}, nil)
	client := newTestGRPCClient(mockClient)

	req, err := NewInferRequest(
		InferOptions{ModelName: "simple"},
		[]InferInput{{Tensor: int32Tensor(t, "INPUT0", []int32{1})}},
		nil,
	)
	require.NoError(t, err)

	done := make(chan struct{})
	var fired atomic.Int32
	err = client.InferAsync(context.Background(), req, func(result *InferResult, err error) {
		defer close(done)
		fired.Add(1)
		assert.NoError(t, err)
		assert.Equal(t, "simple", result.ModelName)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
	assert.Equal(t, int32(1), fired.Load())
}

func TestGRPCInferServerError(t *testing.T) {
	mockClient := &mockInferenceClient{}
	mockClient.On("ModelInfer", mock.Anything, mock.Anything).
		Return(nil, status.Error(codes.NotFound, "Request for unknown model: 'nonexistent' is not found"))
	client := newTestGRPCClient(mockClient)

	req, err := NewInferRequest(
		InferOptions{ModelName: "nonexistent"},
		[]InferInput{{Tensor: int32Tensor(t, "INPUT0", []int32{1})}},
		nil,
	)
	require.NoError(t, err)

	_, err = client.Infer(context.Background(), req)
	assert.True(t, api.IsServerError(err))
	apiErr := err.(*api.Error)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "unknown model")
}

func TestGRPCInferCircuitBreakerOpen(t *testing.T) {
	breaker := &circuitbreaker.MockManualCircuitBreaker{}
	breaker.On("IsAllowed").Return(false)
	mockClient := &mockInferenceClient{}
	client := newTestGRPCClient(mockClient)
	client.cbManager = stubBreakerManager{breaker: breaker}

	req, err := NewInferRequest(
		InferOptions{ModelName: "simple"},
		[]InferInput{{Tensor: int32Tensor(t, "INPUT0", []int32{1})}},
		nil,
	)
	require.NoError(t, err)

	_, err = client.Infer(context.Background(), req)
	assert.True(t, api.IsServerError(err))
	apiErr := err.(*api.Error)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "circuit breaker open")
	mockClient.AssertNotCalled(t, "ModelInfer", mock.Anything, mock.Anything)
	breaker.AssertExpectations(t)
}

func TestGRPCInferRecordsBreakerOutcome(t *testing.T) {
	breaker := &circuitbreaker.MockManualCircuitBreaker{}
	breaker.On("IsAllowed").Return(true).Twice()
	breaker.On("RecordSuccess").Once()
	breaker.On("RecordFailure").Once()
	mockClient := &mockInferenceClient{}
	mockClient.On("ModelInfer", mock.Anything, mock.Anything).
		Return(&pb.ModelInferResponse{ModelName: "simple"}, nil).Once()
	mockClient.On("ModelInfer", mock.Anything, mock.Anything).
		Return(nil, status.Error(codes.Unavailable, "server overloaded")).Once()
	client := newTestGRPCClient(mockClient)
	client.cbManager = stubBreakerManager{breaker: breaker}

	req, err := NewInferRequest(
		InferOptions{ModelName: "simple"},
		[]InferInput{{Tensor: int32Tensor(t, "INPUT0", []int32{1})}},
		nil,
	)
	require.NoError(t, err)

	_, err = client.Infer(context.Background(), req)
	require.NoError(t, err)
	_, err = client.Infer(context.Background(), req)
	assert.True(t, api.IsServerError(err))
	breaker.AssertExpectations(t)
}

func TestGRPCInferValidation(t *testing.T) {
	client := newTestGRPCClient(&mockInferenceClient{})

	_, err := client.Infer(context.Background(), &InferRequest{Options: InferOptions{ModelName: "simple"}})
	assert.True(t, api.IsValidationError(err))

	err = client.InferAsync(context.Background(), nil, func(*InferResult, error) {})
	assert.True(t, api.IsValidationError(err))
}

func TestGRPCModelMetadata(t *testing.T) {
	mockClient := &mockInferenceClient{}
	mockClient.On("ModelMetadata", mock.Anything, &pb.ModelMetadataRequest{Name: "simple"}).
		Return(&pb.ModelMetadataResponse{
			Name:     "simple",
			Versions: []string{"1"},
			Platform: "onnxruntime_onnx",
		}, nil)
	client := newTestGRPCClient(mockClient)

	meta, err := client.ModelMetadata(context.Background(), "simple", "")
	require.NoError(t, err)
	assert.Equal(t, "simple", meta.Name)
	assert.Equal(t, "onnxruntime_onnx", meta.Platform)
}

func TestGRPCModelMetadataUnknownModel(t *testing.T) {
	mockClient := &mockInferenceClient{}
	mockClient.On("ModelMetadata", mock.Anything, mock.Anything).
		Return(nil, status.Error(codes.NotFound, "no status available for unknown model 'nonexistent'"))
	client := newTestGRPCClient(mockClient)

	_, err := client.ModelMetadata(context.Background(), "nonexistent", "")
	assert.True(t, api.IsServerError(err))
	assert.Contains(t, err.Error(), "no status available for unknown model")
}

func TestGRPCServerMetadata(t *testing.T) {
	mockClient := &mockInferenceClient{}
	mockClient.On("ServerMetadata", mock.Anything, &pb.ServerMetadataRequest{}).
		Return(&pb.ServerMetadataResponse{Name: "augur", Version: "2.41.0"}, nil)
	client := newTestGRPCClient(mockClient)

	meta, err := client.ServerMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "augur", meta.Name)
	assert.Equal(t, "2.41.0", meta.Version)
}

package augur

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/AugurML/augur-client/pkg/api"
	httpHelper "github.com/AugurML/augur-client/pkg/api/http"
	"github.com/AugurML/augur-client/pkg/httpclient"
	"github.com/AugurML/augur-client/pkg/metric"
	"github.com/AugurML/augur-client/pkg/tensor"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

// UseNumber keeps 64-bit integers in tensor data arrays lossless.
var jsonCodec = jsoniter.Config{UseNumber: true, EscapeHTML: false}.Froze()

type inferInputEnvelope struct {
	Name       string                 `json:"name"`
	Shape      []int64                `json:"shape"`
	Datatype   string                 `json:"datatype"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	Data       []interface{}          `json:"data,omitempty"`
}

type inferOutputEnvelope struct {
	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

type inferRequestEnvelope struct {
	ID         string                 `json:"id,omitempty"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	Inputs     []inferInputEnvelope   `json:"inputs"`
	Outputs    []inferOutputEnvelope  `json:"outputs,omitempty"`
}

type inferResponseOutput struct {
	Name       string                 `json:"name"`
	Shape      []int64                `json:"shape"`
	Datatype   string                 `json:"datatype"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	Data       []interface{}          `json:"data,omitempty"`
}

type inferResponseEnvelope struct {
	ModelName    string                 `json:"model_name"`
	ModelVersion string                 `json:"model_version"`
	ID           string                 `json:"id,omitempty"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"`
	Outputs      []inferResponseOutput  `json:"outputs"`
	Error        string                 `json:"error,omitempty"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// HTTPClient is the HTTP/REST binding of Client.
type HTTPClient struct {
	conf       *Config
	port       int
	client     *httpclient.HTTPClient
	dispatcher *dispatcher
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient connects to the server over HTTP. It panics on an
// invalid config, matching the other client constructors.
func NewHTTPClient(conf *Config, envPrefix string) *HTTPClient {
	if err := validConfig(conf); err != nil {
		log.Panic().Err(err).Msg("Invalid augur client config")
	}
	port, err := strconv.Atoi(conf.Port)
	if err != nil {
		log.Panic().Err(err).Msgf("Invalid augur server port %q", conf.Port)
	}
	client := httpclient.NewConnFromConfig(&httpclient.Config{
		Host:        conf.Host,
		Port:        conf.Port,
		TimeoutInMs: conf.TimeoutInMs,
	}, envPrefix)
	return &HTTPClient{
		conf:       conf,
		port:       port,
		client:     client,
		dispatcher: newDispatcher(time.Duration(conf.TimeoutInMs) * time.Millisecond),
	}
}

func modelPath(modelName, modelVersion, suffix string) string {
	if modelVersion != "" {
		return "/v2/models/" + modelName + "/versions/" + modelVersion + suffix
	}
	return "/v2/models/" + modelName + suffix
}

func (c *HTTPClient) setCallerHeaders(req *http.Request) {
	if c.conf.CallerId != "" {
		req.Header.Set(headerCallerID, c.conf.CallerId)
	}
	if c.conf.CallerToken != "" {
		req.Header.Set(headerCallerToken, c.conf.CallerToken)
	}
}

func (c *HTTPClient) get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		httpHelper.BuildHttpUrl(c.conf.Host, c.port, path), nil)
	if err != nil {
		return 0, nil, api.NewValidationError(err.Error())
	}
	c.setCallerHeaders(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, api.NewServerError(0, err.Error())
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, api.NewServerError(resp.StatusCode, err.Error())
	}
	return resp.StatusCode, body, nil
}

// serverError surfaces the server-reported message from an error
// envelope when present, otherwise the raw body.
func serverError(statusCode int, body []byte) error {
	var envelope errorEnvelope
	if err := jsonCodec.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return api.NewServerError(statusCode, envelope.Error)
	}
	return api.NewServerError(statusCode, string(body))
}

func (c *HTTPClient) IsServerLive(ctx context.Context) (bool, error) {
	statusCode, _, err := c.get(ctx, "/v2/health/live")
	if err != nil {
		return false, err
	}
	return httpHelper.IsStandard2xx(statusCode), nil
}

func (c *HTTPClient) IsServerReady(ctx context.Context) (bool, error) {
	statusCode, _, err := c.get(ctx, "/v2/health/ready")
	if err != nil {
		return false, err
	}
	return httpHelper.IsStandard2xx(statusCode), nil
}

func (c *HTTPClient) IsModelReady(ctx context.Context, modelName, modelVersion string) (bool, error) {
	statusCode, _, err := c.get(ctx, modelPath(modelName, modelVersion, "/ready"))
	if err != nil {
		return false, err
	}
	return httpHelper.IsStandard2xx(statusCode), nil
}

func (c *HTTPClient) ServerMetadata(ctx context.Context) (*ServerMetadata, error) {
	statusCode, body, err := c.get(ctx, "/v2")
	if err != nil {
		return nil, err
	}
	if !httpHelper.IsStandard2xx(statusCode) {
		return nil, serverError(statusCode, body)
	}
	meta := &ServerMetadata{}
	if err := jsonCodec.Unmarshal(body, meta); err != nil {
		return nil, api.NewCodecError(fmt.Sprintf("malformed server metadata: %v", err))
	}
	return meta, nil
}

func (c *HTTPClient) ModelMetadata(ctx context.Context, modelName, modelVersion string) (*ModelMetadata, error) {
	statusCode, body, err := c.get(ctx, modelPath(modelName, modelVersion, ""))
	if err != nil {
		return nil, err
	}
	if !httpHelper.IsStandard2xx(statusCode) {
		return nil, serverError(statusCode, body)
	}
	meta := &ModelMetadata{}
	if err := jsonCodec.Unmarshal(body, meta); err != nil {
		return nil, api.NewCodecError(fmt.Sprintf("malformed model metadata: %v", err))
	}
	return meta, nil
}

func (c *HTTPClient) ModelConfig(ctx context.Context, modelName, modelVersion string) (*ModelConfig, error) {
	statusCode, body, err := c.get(ctx, modelPath(modelName, modelVersion, "/config"))
	if err != nil {
		return nil, err
	}
	if !httpHelper.IsStandard2xx(statusCode) {
		return nil, serverError(statusCode, body)
	}
	config := &ModelConfig{}
	if err := jsonCodec.Unmarshal(body, config); err != nil {
		return nil, api.NewCodecError(fmt.Sprintf("malformed model config: %v", err))
	}
	return config, nil
}

func (c *HTTPClient) Infer(ctx context.Context, req *InferRequest) (*InferResult, error) {
	if err := validateInferRequest(req); err != nil {
		return nil, err
	}
	return c.dispatcher.infer(ctx, c.inferFunc(req))
}

func (c *HTTPClient) InferAsync(ctx context.Context, req *InferRequest, callback InferCallback) error {
	if err := validateInferRequest(req); err != nil {
		return err
	}
	return c.dispatcher.submit(ctx, c.inferFunc(req), callback)
}

func (c *HTTPClient) inferFunc(req *InferRequest) inferFunc {
	return func(ctx context.Context) (*InferResult, error) {
		startTime := time.Now()
		result, err := c.doInfer(ctx, req)
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		tags := metric.BuildInferTags(req.Options.ModelName, metric.TagValueCommunicationProtocolHttp, outcome)
		metric.Timing(metric.InferRequestLatency, time.Since(startTime), tags)
		metric.Incr(metric.InferRequestCount, tags)
		return result, err
	}
}

func (c *HTTPClient) doInfer(ctx context.Context, req *InferRequest) (*InferResult, error) {
	body, jsonLen, err := c.buildInferBody(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := httpclient.NewHttpRequestBuilder().
		WithHost(c.conf.Host).
		WithPort(c.port).
		WithPath(modelPath(req.Options.ModelName, req.Options.ModelVersion, "/infer")).
		WithMethod(http.MethodPost).
		WithHeaders(req.Options.Headers).
		WithRawBody(body).
		WithContext(ctx).
		BuildContentTypeOctetStream(jsonLen)
	if err != nil {
		return nil, api.NewValidationError(err.Error())
	}
	c.setCallerHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, api.NewServerError(0, err.Error())
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, api.NewServerError(resp.StatusCode, err.Error())
	}
	return c.parseInferResponse(req, resp, respBody)
}

// buildInferBody assembles the JSON envelope followed by the binary
// tails of every binary input, and returns the envelope byte length
// for the Inference-Header-Content-Length header.
func (c *HTTPClient) buildInferBody(req *InferRequest) ([]byte, int, error) {
	envelope := inferRequestEnvelope{
		ID:         req.Options.RequestID,
		Parameters: requestParameters(req.Options),
		Inputs:     make([]inferInputEnvelope, len(req.Inputs)),
		Outputs:    make([]inferOutputEnvelope, len(req.Outputs)),
	}
	var tail []byte
	for i, input := range req.Inputs {
		entry := inferInputEnvelope{
			Name:     input.Tensor.Name,
			Shape:    input.Tensor.Shape,
			Datatype: input.Tensor.Datatype.String(),
		}
		if input.BinaryData {
			raw := input.Tensor.Raw()
			entry.Parameters = map[string]interface{}{"binary_data_size": len(raw)}
			tail = append(tail, raw...)
		} else {
			values, err := input.Tensor.JSONValues()
			if err != nil {
				return nil, 0, err
			}
			entry.Data = values
		}
		envelope.Inputs[i] = entry
	}
	for i, output := range req.Outputs {
		entry := inferOutputEnvelope{
			Name:       output.Name,
			Parameters: map[string]interface{}{"binary_data": output.BinaryData},
		}
		if output.ClassificationCount > 0 {
			entry.Parameters["classification"] = output.ClassificationCount
			// classification results are rendered strings
			entry.Parameters["binary_data"] = false
		}
		envelope.Outputs[i] = entry
	}
	jsonBytes, err := jsonCodec.Marshal(&envelope)
	if err != nil {
		return nil, 0, api.NewCodecError(err.Error())
	}
	return append(jsonBytes, tail...), len(jsonBytes), nil
}

func requestParameters(options InferOptions) map[string]interface{} {
	parameters := make(map[string]interface{})
	if options.SequenceID != 0 {
		parameters["sequence_id"] = options.SequenceID
		parameters["sequence_start"] = options.SequenceStart
		parameters["sequence_end"] = options.SequenceEnd
	}
	if options.Priority != 0 {
		parameters["priority"] = options.Priority
	}
	if options.TimeoutUs != 0 {
		parameters["timeout"] = options.TimeoutUs
	}
	if len(parameters) == 0 {
		return nil
	}
	return parameters
}

// parseInferResponse splits the body at the announced envelope length,
// decodes the envelope, then walks the binary tail in output order.
func (c *HTTPClient) parseInferResponse(req *InferRequest, resp *http.Response, body []byte) (*InferResult, error) {
	jsonLen := len(body)
	if headerValue := resp.Header.Get(httpHelper.InferHeaderContentLength); headerValue != "" {
		parsed, err := strconv.Atoi(headerValue)
		if err != nil || parsed < 0 || parsed > len(body) {
			return nil, api.NewCodecError(fmt.Sprintf(
				"invalid %s header %q for %d body bytes",
				httpHelper.InferHeaderContentLength, headerValue, len(body)))
		}
		jsonLen = parsed
	}

	envelope := &inferResponseEnvelope{}
	if err := jsonCodec.Unmarshal(body[:jsonLen], envelope); err != nil {
		return nil, api.NewCodecError(fmt.Sprintf("malformed inference response: %v", err))
	}
	if envelope.Error != "" {
		return nil, api.NewServerError(resp.StatusCode, envelope.Error)
	}
	if !httpHelper.IsStandard2xx(resp.StatusCode) {
		return nil, serverError(resp.StatusCode, body[:jsonLen])
	}

	classified := make(map[string]bool, len(req.Outputs))
	for _, output := range req.Outputs {
		if output.ClassificationCount > 0 {
			classified[output.Name] = true
		}
	}

	result := newInferResult(envelope.ModelName, envelope.ModelVersion, envelope.ID)
	cursor := jsonLen
	for _, output := range envelope.Outputs {
		datatype, err := tensor.ParseDataType(output.Datatype)
		if err != nil {
			return nil, api.NewCodecError(fmt.Sprintf("output %s: %v", output.Name, err))
		}
		t := tensor.New(output.Name, output.Shape, datatype)
		if size, ok := binaryDataSize(output.Parameters); ok {
			if size < 0 || cursor+size > len(body) {
				return nil, api.NewCodecError(fmt.Sprintf(
					"output %s announces %d binary bytes but only %d remain",
					output.Name, size, len(body)-cursor))
			}
			if err := t.SetRaw(body[cursor : cursor+size]); err != nil {
				return nil, err
			}
			cursor += size
		} else {
			if err := t.SetFromJSONValues(output.Data); err != nil {
				return nil, err
			}
		}
		if classified[output.Name] && datatype == tensor.DataTypeBytes {
			labels, err := t.Strings()
			if err != nil {
				return nil, err
			}
			result.addClassifications(output.Name, labels)
			continue
		}
		result.addOutput(t)
	}
	return result, nil
}

// binaryDataSize extracts the binary_data_size output parameter, which
// arrives as a json.Number under the lossless decoder config.
func binaryDataSize(parameters map[string]interface{}) (int, bool) {
	value, ok := parameters["binary_data_size"]
	if !ok {
		return 0, false
	}
	switch n := value.(type) {
	case json.Number:
		size, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(size), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// Close drains idle connections and fails outstanding async calls.
func (c *HTTPClient) Close() error {
	c.dispatcher.close()
	c.client.CoreClient.CloseIdleConnections()
	return nil
}

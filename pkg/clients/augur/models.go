package augur

import (
	"fmt"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/AugurML/augur-client/pkg/tensor"
)

// InferInput is one input tensor on an infer request. BinaryData
// selects the wire encoding on the HTTP binding: true sends the tensor
// in the binary tail, false sends a JSON data array. The gRPC binding
// always ships raw contents.
type InferInput struct {
	Tensor     *tensor.Tensor
	BinaryData bool
}

// InferRequestedOutput names an output the caller wants back.
// ClassificationCount > 0 asks the server for top-N classification
// strings instead of the raw tensor (HTTP binding only).
type InferRequestedOutput struct {
	Name                string
	BinaryData          bool
	ClassificationCount int
}

// InferOptions carries the per-request addressing and parameters.
// ModelVersion empty means the server picks a version by its policy.
type InferOptions struct {
	ModelName     string
	ModelVersion  string
	RequestID     string
	SequenceID    uint64
	SequenceStart bool
	SequenceEnd   bool
	Priority      uint64
	TimeoutUs     int64
	// Headers are attached to the outbound call: HTTP request headers
	// on the HTTP binding, outgoing metadata on the gRPC binding.
	Headers map[string]string
}

// InferRequest is a validated, transport-neutral infer request. Build
// one with NewInferRequest; the zero value is not usable.
type InferRequest struct {
	Options InferOptions
	Inputs  []InferInput
	Outputs []InferRequestedOutput
}

// NewInferRequest validates and assembles an infer request. It
// performs no I/O.
func NewInferRequest(options InferOptions, inputs []InferInput, outputs []InferRequestedOutput) (*InferRequest, error) {
	req := &InferRequest{
		Options: options,
		Inputs:  inputs,
		Outputs: outputs,
	}
	if err := validateInferRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// InferCallback receives the terminal outcome of an async infer call,
// exactly once. It runs on a client-owned goroutine, never on the
// caller's.
type InferCallback func(*InferResult, error)

type resultOutput struct {
	tensor          *tensor.Tensor
	classifications []string
}

// InferResult holds a completed inference response. Output tensors are
// already decoded to the canonical binary layout regardless of the
// encoding the server chose.
type InferResult struct {
	ModelName    string
	ModelVersion string
	ID           string
	outputs      map[string]*resultOutput
	order        []string
}

func newInferResult(modelName, modelVersion, id string) *InferResult {
	return &InferResult{
		ModelName:    modelName,
		ModelVersion: modelVersion,
		ID:           id,
		outputs:      make(map[string]*resultOutput),
	}
}

func (r *InferResult) addOutput(t *tensor.Tensor) {
	r.outputs[t.Name] = &resultOutput{tensor: t}
	r.order = append(r.order, t.Name)
}

func (r *InferResult) addClassifications(name string, labels []string) {
	r.outputs[name] = &resultOutput{classifications: labels}
	r.order = append(r.order, name)
}

// OutputNames lists the returned outputs in server order.
func (r *InferResult) OutputNames() []string {
	return r.order
}

// AsTensor returns the named output tensor.
func (r *InferResult) AsTensor(name string) (*tensor.Tensor, error) {
	out, ok := r.outputs[name]
	if !ok {
		return nil, api.NewLookupError(fmt.Sprintf("no output tensor named %s in result", name))
	}
	if out.tensor == nil {
		return nil, api.NewLookupError(fmt.Sprintf("output %s holds classifications, not a tensor", name))
	}
	return out.tensor, nil
}

// Classifications returns the top-N classification labels for an
// output requested with ClassificationCount.
func (r *InferResult) Classifications(name string) ([]string, error) {
	out, ok := r.outputs[name]
	if !ok {
		return nil, api.NewLookupError(fmt.Sprintf("no output tensor named %s in result", name))
	}
	if out.classifications == nil {
		return nil, api.NewLookupError(fmt.Sprintf("output %s was not requested as classification", name))
	}
	return out.classifications, nil
}

package augur

import (
	"fmt"

	"github.com/AugurML/augur-client/pkg/api"
	pb "github.com/AugurML/augur-client/pkg/clients/augur/client/grpc"
	"github.com/AugurML/augur-client/pkg/tensor"
	"github.com/AugurML/augur-client/pkg/utils"
)

type adapter struct{}

// mapInferRequestToProto builds the wire request. Input data always
// travels in raw_input_contents, one buffer per input in input order.
func (a adapter) mapInferRequestToProto(req *InferRequest) *pb.ModelInferRequest {
	protoReq := &pb.ModelInferRequest{
		ModelName:        req.Options.ModelName,
		ModelVersion:     req.Options.ModelVersion,
		Id:               req.Options.RequestID,
		Parameters:       a.mapRequestParameters(req.Options),
		Inputs:           make([]*pb.ModelInferRequest_InferInputTensor, len(req.Inputs)),
		Outputs:          make([]*pb.ModelInferRequest_InferRequestedOutputTensor, len(req.Outputs)),
		RawInputContents: make([][]byte, len(req.Inputs)),
	}
	for i, input := range req.Inputs {
		protoReq.Inputs[i] = &pb.ModelInferRequest_InferInputTensor{
			Name:     input.Tensor.Name,
			Datatype: input.Tensor.Datatype.String(),
			Shape:    input.Tensor.Shape,
		}
		protoReq.RawInputContents[i] = input.Tensor.Raw()
	}
	for i, output := range req.Outputs {
		protoReq.Outputs[i] = &pb.ModelInferRequest_InferRequestedOutputTensor{
			Name: output.Name,
		}
		if output.ClassificationCount > 0 {
			protoReq.Outputs[i].Parameters = map[string]*pb.InferParameter{
				"classification": {
					ParameterChoice: &pb.InferParameter_Int64Param{
						Int64Param: int64(output.ClassificationCount),
					},
				},
			}
		}
	}
	return protoReq
}

func (a adapter) mapRequestParameters(options InferOptions) map[string]*pb.InferParameter {
	parameters := make(map[string]*pb.InferParameter)
	if options.SequenceID != 0 {
		parameters["sequence_id"] = &pb.InferParameter{
			ParameterChoice: &pb.InferParameter_Int64Param{Int64Param: int64(options.SequenceID)},
		}
		parameters["sequence_start"] = &pb.InferParameter{
			ParameterChoice: &pb.InferParameter_BoolParam{BoolParam: options.SequenceStart},
		}
		parameters["sequence_end"] = &pb.InferParameter{
			ParameterChoice: &pb.InferParameter_BoolParam{BoolParam: options.SequenceEnd},
		}
	}
	if options.Priority != 0 {
		parameters["priority"] = &pb.InferParameter{
			ParameterChoice: &pb.InferParameter_Int64Param{Int64Param: int64(options.Priority)},
		}
	}
	if options.TimeoutUs != 0 {
		parameters["timeout"] = &pb.InferParameter{
			ParameterChoice: &pb.InferParameter_Int64Param{Int64Param: options.TimeoutUs},
		}
	}
	if len(parameters) == 0 {
		return nil
	}
	return parameters
}

// mapProtoToInferResult decodes the wire response into an InferResult
// with one validated tensor per output.
func (a adapter) mapProtoToInferResult(protoResp *pb.ModelInferResponse) (*InferResult, error) {
	if utils.IsNilPointer(protoResp) {
		return nil, api.NewServerError(0, "empty inference response")
	}
	result := newInferResult(protoResp.ModelName, protoResp.ModelVersion, protoResp.Id)
	for i, output := range protoResp.Outputs {
		datatype, err := tensor.ParseDataType(output.Datatype)
		if err != nil {
			return nil, api.NewCodecError(fmt.Sprintf("output %s: %v", output.Name, err))
		}
		t := tensor.New(output.Name, output.Shape, datatype)
		if i >= len(protoResp.RawOutputContents) {
			return nil, api.NewCodecError(fmt.Sprintf(
				"output %s has no raw content (%d outputs, %d buffers)",
				output.Name, len(protoResp.Outputs), len(protoResp.RawOutputContents)))
		}
		if err := t.SetRaw(protoResp.RawOutputContents[i]); err != nil {
			return nil, err
		}
		result.addOutput(t)
	}
	return result, nil
}

func (a adapter) mapProtoToModelMetadata(protoResp *pb.ModelMetadataResponse) *ModelMetadata {
	meta := &ModelMetadata{
		Name:     protoResp.Name,
		Versions: protoResp.Versions,
		Platform: protoResp.Platform,
		Inputs:   make([]TensorMetadata, len(protoResp.Inputs)),
		Outputs:  make([]TensorMetadata, len(protoResp.Outputs)),
	}
	for i, input := range protoResp.Inputs {
		meta.Inputs[i] = TensorMetadata{Name: input.Name, Datatype: input.Datatype, Shape: input.Shape}
	}
	for i, output := range protoResp.Outputs {
		meta.Outputs[i] = TensorMetadata{Name: output.Name, Datatype: output.Datatype, Shape: output.Shape}
	}
	return meta
}

func (a adapter) mapProtoToModelConfig(protoConfig *pb.ModelConfig) *ModelConfig {
	if protoConfig == nil {
		return nil
	}
	config := &ModelConfig{
		Name:         protoConfig.Name,
		Platform:     protoConfig.Platform,
		MaxBatchSize: protoConfig.MaxBatchSize,
		Input:        make([]ModelTensorConfig, len(protoConfig.Input)),
		Output:       make([]ModelTensorConfig, len(protoConfig.Output)),
	}
	for i, input := range protoConfig.Input {
		config.Input[i] = ModelTensorConfig{Name: input.Name, DataType: input.DataType, Dims: input.Dims}
	}
	for i, output := range protoConfig.Output {
		config.Output[i] = ModelTensorConfig{Name: output.Name, DataType: output.DataType, Dims: output.Dims}
	}
	return config
}

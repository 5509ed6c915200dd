package augur

import (
	"fmt"

	"github.com/AugurML/augur-client/pkg/api"
)

func validateInferRequest(req *InferRequest) error {
	if req == nil {
		return api.NewValidationError("infer request cannot be nil")
	}
	if req.Options.ModelName == "" {
		return api.NewValidationError("model name is required")
	}
	if len(req.Inputs) == 0 {
		return api.NewValidationError("infer request must carry at least one input")
	}
	seen := make(map[string]struct{}, len(req.Inputs))
	for _, input := range req.Inputs {
		if input.Tensor == nil {
			return api.NewValidationError("input tensor cannot be nil")
		}
		if input.Tensor.Name == "" {
			return api.NewValidationError("input tensor name is required")
		}
		if _, dup := seen[input.Tensor.Name]; dup {
			return api.NewValidationError(fmt.Sprintf("duplicate input tensor name %s", input.Tensor.Name))
		}
		seen[input.Tensor.Name] = struct{}{}
		if err := input.Tensor.Validate(); err != nil {
			return err
		}
	}
	for _, output := range req.Outputs {
		if output.Name == "" {
			return api.NewValidationError("requested output name is required")
		}
	}
	return nil
}

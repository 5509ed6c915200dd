package augur

// ServerMetadata describes the server as reported by the v2 metadata
// endpoint.
type ServerMetadata struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Extensions []string `json:"extensions"`
}

// TensorMetadata describes one input or output tensor of a model. A
// shape dimension of -1 means variable size.
type TensorMetadata struct {
	Name     string  `json:"name"`
	Datatype string  `json:"datatype"`
	Shape    []int64 `json:"shape"`
}

// ModelMetadata describes a served model.
type ModelMetadata struct {
	Name     string           `json:"name"`
	Versions []string         `json:"versions"`
	Platform string           `json:"platform"`
	Inputs   []TensorMetadata `json:"inputs"`
	Outputs  []TensorMetadata `json:"outputs"`
}

// ModelTensorConfig is the configured description of one model tensor,
// dims excluding any batch dimension.
type ModelTensorConfig struct {
	Name     string  `json:"name"`
	DataType string  `json:"data_type"`
	Dims     []int64 `json:"dims"`
}

// ModelConfig is the configuration of a served model.
type ModelConfig struct {
	Name         string              `json:"name"`
	Platform     string              `json:"platform"`
	MaxBatchSize int32               `json:"max_batch_size"`
	Input        []ModelTensorConfig `json:"input"`
	Output       []ModelTensorConfig `json:"output"`
}

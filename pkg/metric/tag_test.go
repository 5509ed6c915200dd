package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTag(t *testing.T) {
	tags := BuildTag(
		NewTag(TagModelName, "simple"),
		NewTag(TagCommunicationProtocol, TagValueCommunicationProtocolGrpc),
	)
	assert.Equal(t, []string{"model_name:simple", "communication_protocol:grpc"}, tags)
}

func TestTagAsString_NormalizesValue(t *testing.T) {
	assert.Equal(t, "model_name:ranker_v2_2025", TagAsString(TagModelName, "ranker:v2 2025"))
	// slashes survive so URL paths remain readable
	assert.Equal(t, "path:/v2/models/simple/infer", TagAsString(TagPath, "/v2/models/simple/infer"))
}

func TestUpdateTags(t *testing.T) {
	tags := BuildTag(NewTag(TagModelName, "simple"))
	UpdateTags(&tags, NewTag(TagOutcome, "success"))
	assert.Equal(t, []string{"model_name:simple", "outcome:success"}, tags)
}

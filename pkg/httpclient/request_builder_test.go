package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	httpHelper "github.com/AugurML/augur-client/pkg/api/http"
	"github.com/stretchr/testify/assert"
)

func TestBuildContentTypeJson(t *testing.T) {
	body := map[string]interface{}{
		"name": "simple",
	}
	ctx := context.Background()
	req, err := NewHttpRequestBuilder().
		WithHost("augur.local").
		WithPort(8000).
		WithPath("/v2/models/simple").
		WithMethod(http.MethodGet).
		WithHeader("Authorization", "Bearer token").
		WithBody(body).
		WithContext(ctx).
		BuildContentTypeJson()

	assert.NoError(t, err)
	assert.Equal(t, "augur.local:8000", req.Host)
	assert.Equal(t, "/v2/models/simple", req.URL.Path)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, ctx, req.Context())

	var reqBody map[string]interface{}
	assert.NoError(t, json.NewDecoder(req.Body).Decode(&reqBody))
	assert.Equal(t, body, reqBody)
}

func TestBuildContentTypeOctetStream(t *testing.T) {
	payload := append([]byte(`{"id":"1"}`), 0x01, 0x02, 0x03)
	req, err := NewHttpRequestBuilder().
		WithHost("augur.local").
		WithPort(8000).
		WithPath("/v2/models/simple/infer").
		WithMethod(http.MethodPost).
		WithRawBody(payload).
		WithContext(context.Background()).
		BuildContentTypeOctetStream(10)

	assert.NoError(t, err)
	assert.Equal(t, "application/octet-stream", req.Header.Get("Content-Type"))
	assert.Equal(t, "10", req.Header.Get(httpHelper.InferHeaderContentLength))

	got, err := io.ReadAll(req.Body)
	assert.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		builder *RequestBuilder
		wantErr string
	}{
		{
			name:    "missing host",
			builder: NewHttpRequestBuilder().WithPort(8000).WithPath("/v2").WithMethod(http.MethodGet),
			wantErr: "host is required",
		},
		{
			name:    "missing port",
			builder: NewHttpRequestBuilder().WithHost("augur.local").WithPath("/v2").WithMethod(http.MethodGet),
			wantErr: "invalid port",
		},
		{
			name:    "missing path",
			builder: NewHttpRequestBuilder().WithHost("augur.local").WithPort(8000).WithMethod(http.MethodGet),
			wantErr: "path is required",
		},
		{
			name:    "missing method",
			builder: NewHttpRequestBuilder().WithHost("augur.local").WithPort(8000).WithPath("/v2"),
			wantErr: "method is required",
		},
		{
			name:    "missing context",
			builder: NewHttpRequestBuilder().WithHost("augur.local").WithPort(8000).WithPath("/v2").WithMethod(http.MethodGet),
			wantErr: "context is required, pass context.Background() if not required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr != "context is required, pass context.Background() if not required" {
				tt.builder = tt.builder.WithContext(context.Background())
			}
			_, err := tt.builder.BuildContentTypeJson()
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

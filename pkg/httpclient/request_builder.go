package httpclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	httpHelper "github.com/AugurML/augur-client/pkg/api/http"
	jsoniter "github.com/json-iterator/go"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

type RequestBuilder struct {
	host    string
	port    int
	path    string
	method  string
	headers map[string]string
	body    any
	raw     []byte
	ctx     context.Context
}

func NewHttpRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		headers: make(map[string]string),
	}
}

// WithHost sets the host for the request
func (h *RequestBuilder) WithHost(host string) *RequestBuilder {
	h.host = host
	return h
}

// WithPort sets the port for the request
func (h *RequestBuilder) WithPort(port int) *RequestBuilder {
	h.port = port
	return h
}

// WithPath sets the path for the request
func (h *RequestBuilder) WithPath(path string) *RequestBuilder {
	h.path = path
	return h
}

// WithMethod sets the method for the request
func (h *RequestBuilder) WithMethod(method string) *RequestBuilder {
	h.method = method
	return h
}

// WithHeader adds the header for the request
func (h *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	h.headers[key] = value
	return h
}

// WithHeaders adds the headers for the request
func (h *RequestBuilder) WithHeaders(headers map[string]string) *RequestBuilder {
	for key, value := range headers {
		h.headers[key] = value
	}
	return h
}

// WithBody sets the body for the request, marshalled as JSON on build
func (h *RequestBuilder) WithBody(body any) *RequestBuilder {
	h.body = body
	return h
}

// WithRawBody sets an already encoded body for the request
func (h *RequestBuilder) WithRawBody(raw []byte) *RequestBuilder {
	h.raw = raw
	return h
}

// WithContext sets the context for the request
func (h *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	h.ctx = ctx
	return h
}

func (h *RequestBuilder) validate() error {
	if len(h.host) == 0 {
		return errors.New("host is required")
	}
	if h.port == 0 {
		return errors.New("invalid port")
	}
	if len(h.path) == 0 {
		return errors.New("path is required")
	}
	if len(h.method) == 0 {
		return errors.New("method is required")
	}
	if h.ctx == nil {
		return errors.New("context is required, pass context.Background() if not required")
	}
	return nil
}

func (h *RequestBuilder) build(body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(h.ctx, h.method,
		httpHelper.BuildHttpUrl(h.host, h.port, h.path), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	for key, value := range h.headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// BuildContentTypeJson validates the builder request and builds the http request
// with content type as application/json
func (h *RequestBuilder) BuildContentTypeJson() (*http.Request, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	requestBody, err := jsonCodec.Marshal(h.body)
	if err != nil {
		return nil, err
	}
	req, err := h.build(requestBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set(httpHelper.HeaderContentType, httpHelper.HeaderValueApplicationJson)
	return req, nil
}

// BuildContentTypeOctetStream builds the http request with the raw body
// installed verbatim. Used for infer calls where a JSON envelope is
// followed by binary tensor data; jsonHeaderLen is the envelope size
// announced through the Inference-Header-Content-Length header.
func (h *RequestBuilder) BuildContentTypeOctetStream(jsonHeaderLen int) (*http.Request, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	req, err := h.build(h.raw)
	if err != nil {
		return nil, err
	}
	req.Header.Set(httpHelper.HeaderContentType, httpHelper.HeaderValueApplicationOctetStream)
	req.Header.Set(httpHelper.InferHeaderContentLength, strconv.Itoa(jsonHeaderLen))
	return req, nil
}

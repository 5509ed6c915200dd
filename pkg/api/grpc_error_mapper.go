package api

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ConvertGrpcErrorToServerError maps a gRPC call failure onto the client
// error taxonomy so both transport bindings surface the same shape. The
// server-reported message is preserved verbatim for caller inspection.
func ConvertGrpcErrorToServerError(err error) *Error {
	st, ok := status.FromError(err)
	if !ok {
		return NewServerError(http.StatusInternalServerError, err.Error())
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return NewServerError(http.StatusBadRequest, st.Message())
	case codes.Unauthenticated:
		return NewServerError(http.StatusUnauthorized, st.Message())
	case codes.PermissionDenied:
		return NewServerError(http.StatusForbidden, st.Message())
	case codes.NotFound:
		return NewServerError(http.StatusNotFound, st.Message())
	case codes.AlreadyExists:
		return NewServerError(http.StatusConflict, st.Message())
	case codes.ResourceExhausted:
		return NewServerError(http.StatusTooManyRequests, st.Message())
	case codes.Unimplemented:
		return NewServerError(http.StatusNotImplemented, st.Message())
	case codes.Unavailable:
		return NewServerError(http.StatusServiceUnavailable, st.Message())
	case codes.DeadlineExceeded:
		return NewServerError(http.StatusGatewayTimeout, st.Message())
	default:
		return NewServerError(http.StatusInternalServerError, st.Message())
	}
}

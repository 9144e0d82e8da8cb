package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                Code = "OK"
	CodeCanceled          Code = "CANCELED"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded  Code = "DEADLINE_EXCEEDED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeUnimplemented     Code = "UNIMPLEMENTED"
	CodeInternal          Code = "INTERNAL"
	CodeUnavailable       Code = "UNAVAILABLE"
)

type transportCodes struct {
	grpc codes.Code
	http int
}

// Unknown codes fall back to Internal/500 on the way out.
var codeTable = map[Code]transportCodes{
	CodeOK:                {codes.OK, http.StatusOK},
	CodeCanceled:          {codes.Canceled, http.StatusRequestTimeout},
	CodeInvalidArgument:   {codes.InvalidArgument, http.StatusBadRequest},
	CodeDeadlineExceeded:  {codes.DeadlineExceeded, http.StatusGatewayTimeout},
	CodeNotFound:          {codes.NotFound, http.StatusNotFound},
	CodeResourceExhausted: {codes.ResourceExhausted, http.StatusTooManyRequests},
	CodeUnimplemented:     {codes.Unimplemented, http.StatusNotImplemented},
	CodeInternal:          {codes.Internal, http.StatusInternalServerError},
	CodeUnavailable:       {codes.Unavailable, http.StatusServiceUnavailable},
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(codeTable))
	for code, t := range codeTable {
		m[t.grpc] = code
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the HTTP status the REST API answers with
func (c Code) HTTPStatus() int {
	if t, ok := codeTable[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if t, ok := codeTable[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}

func codeFromGRPC(c codes.Code) Code {
	if code, ok := fromGRPC[c]; ok {
		return code
	}
	return CodeInternal
}

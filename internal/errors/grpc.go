package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Status errors pass
// through untouched and plain errors become Internal.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	e, ok := asError(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) > 0 {
		if withDetails, detailErr := st.WithDetails(metaToStruct(e.Meta)); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError restores an *Error from a status error, including metadata
// sent as a google.protobuf.Struct detail
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	restored := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			restored.Meta = meta.AsMap()
			break
		}
	}
	return restored
}

// metaToStruct stores values structpb cannot represent as their fmt form
func metaToStruct(meta map[string]any) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(meta))
	for k, v := range meta {
		value, err := structpb.NewValue(v)
		if err != nil {
			value = structpb.NewStringValue(fmt.Sprint(v))
		}
		fields[k] = value
	}
	return &structpb.Struct{Fields: fields}
}

// Package errors provides structured errors for the hexpath service.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form metadata. Codes map onto both gRPC status codes and HTTP status
// codes so the same error can leave through either transport.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgument("grid is required")
//	err := errors.InvalidArgumentf("invalid character %q in grid", cell)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("invalid character in graph").
//	    WithMeta("row", row).
//	    WithMeta("col", col)
//
// Wrapping errors:
//
//	if err := repo.Hit(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record rate limit hit")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // the target cell is unreachable
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// Sentinel values declared with New can be matched with Is, which compares
// codes and messages:
//
//	if errors.Is(err, engine.ErrNoPathFound) { ... }
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Engine == nil {
//	    vb.RequiredField("Engine")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Transport Integration
//
// Handlers convert with ToGRPCError for gRPC and Code.HTTPStatus for the
// HTTP API. FromGRPCError restores an *Error on the client side, including
// metadata sent as status details.
//
// # Layer-Specific Guidelines
//
// Entities and engine:
//   - Return InvalidArgument for malformed input
//   - Return NotFound when no path exists
//
// Orchestrator layer:
//   - Validate inputs and dependencies
//   - Translate recoverable outcomes into response values
//
// Handler layer:
//   - Convert errors to the transport's format
//   - Log internal errors for debugging
package errors

// Package errors provides structured error handling for the crawl API.
//
// Every error carries a Code from a canonical taxonomy, a human-readable
// message, an optional wrapped cause, and optional metadata. The taxonomy
// maps directly onto the tick pipeline's failure kinds:
//
//   - CodeInvalidArgument: malformed requests, rejected before any lookup
//   - CodeNotFound: unknown instance/character/dungeon
//   - CodeFailedPrecondition: instance already completed or failed
//   - CodeAlreadyExists: duplicate command submission for a tick
//   - CodeAborted: the optimistic tick-advance commit lost a race and the
//     invocation rolled back; safe to retry
//   - CodeInternal: anything unexpected; nothing was committed
//
// Waiting-for-submissions is deliberately NOT an error: it is a normal
// outcome carried in the tick output.
//
// Usage:
//
//	if input.InstanceID == "" {
//		return nil, errors.InvalidArgument("instance ID is required")
//	}
//
//	out, err := repo.Get(ctx, input)
//	if err != nil {
//		return nil, errors.Wrap(err, "failed to load instance")
//	}
//
// Handlers translate codes to HTTP statuses through Code.HTTPStatus.
// Multi-field input validation uses ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.InstanceRepo == nil {
//		vb.RequiredField("InstanceRepo")
//	}
//	return vb.Build()
package errors

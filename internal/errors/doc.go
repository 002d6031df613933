// Package errors provides coded errors for the saga service.
//
// Every error carries a Code that maps onto both an HTTP status and a gRPC
// code. Journey rejections add a "kind" entry to Meta so callers can tell
// an invalid decision from a locked event without parsing messages:
//
//	errors.InvariantViolation("decision does not belong to event")  // INVALID_ARGUMENT, kind=invariant_violation
//	errors.AlreadyCompleted("event already completed")              // ALREADY_EXISTS, kind=already_completed
//	errors.AccessDenied("event locked", "previous event not completed") // FAILED_PRECONDITION, kind=access_denied
//
// Wrapping keeps the code and metadata of the innermost coded error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrapf(err, "failed to get character %s", id)
//	}
//
// Checks use the Is helpers:
//
//	if errors.IsAccessDenied(err) {
//	    reason := errors.GetReason(err)
//	}
//
// Repositories return NotFound, Aborted (lost a version race) or Internal.
// Orchestrators return the journey kinds and Unavailable when a collaborator
// is down. Handlers translate with HTTPStatus and ToGRPCError.
package errors

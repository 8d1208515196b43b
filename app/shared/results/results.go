package results

// OperationResult carries either a success payload or a domain failure.
// Exactly one of Success or Failure is set on a populated result.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// SuccessResult wraps a success payload.
func SuccessResult[S any, F any](s S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &s}
}

// FailureResult wraps a failure payload.
func FailureResult[S any, F any](f F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &f}
}

func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }

// Unwrap returns the success payload and failure as a plain pair. The zero
// value of S is returned on failure.
func (r OperationResult[S, F]) Unwrap() (S, *F) {
	var zero S
	if r.Success != nil {
		return *r.Success, nil
	}
	return zero, r.Failure
}

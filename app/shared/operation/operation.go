// Package operation wraps service operations with tracing, metrics, logging,
// panic recovery and transactions.
package operation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/metrics"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Telemetry is the per-service bundle every operation reports to.
type Telemetry struct {
	Service string
	Logger  *slog.Logger
	Metrics metrics.OperationMetrics
	Tracer  trace.Tracer
}

// NewTelemetry fills in noop implementations for missing collaborators.
func NewTelemetry(service string, logger *slog.Logger, m metrics.OperationMetrics, tracer trace.Tracer) Telemetry {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(service)
	}
	return Telemetry{Service: service, Logger: logger, Metrics: m, Tracer: tracer}
}

// Func is the signature of a service operation body. A returned error is an
// infrastructure fault; domain failures travel in the result.
type Func[S any] func(ctx context.Context) (results.OperationResult[S, error], error)

// Run executes op and folds infrastructure errors and panics into a
// StorageError failure so nothing escapes the service boundary.
func Run[S any](
	t Telemetry,
	ctx context.Context,
	operationName string,
	entityID string,
	op func(ctx context.Context) (results.OperationResult[S, error], error),
) (result results.OperationResult[S, error]) {
	ctx, span := t.Tracer.Start(ctx, t.Service+"."+operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("entity_id", entityID),
	))
	defer span.End()

	t.Metrics.RecordOperationAttempt(ctx, operationName, t.Service)

	startTime := time.Now()
	defer func() {
		t.Metrics.RecordOperationDuration(ctx, operationName, t.Service, time.Since(startTime))
	}()

	t.Logger.InfoContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		attr.String("entity_id", entityID),
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic in %s: %v", operationName, r)
			t.Logger.ErrorContext(ctx, "Critical panic recovered",
				attr.String("operation", operationName),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			t.Metrics.RecordOperationFailure(ctx, operationName, t.Service)
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			result = results.FailureResult[S, error](apperrors.Storage("an unexpected error occurred", err))
		}
	}()

	result, err := op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		t.Logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("entity_id", entityID),
			attr.Error(wrappedErr),
		)
		t.Metrics.RecordOperationFailure(ctx, operationName, t.Service)
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, err.Error())
		return results.FailureResult[S, error](asStorage(err))
	}

	if result.IsFailure() {
		t.Logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("entity_id", entityID),
			attr.Error(*result.Failure),
		)
		return result
	}

	if result.IsSuccess() {
		t.Logger.InfoContext(ctx, operationName+" completed successfully",
			attr.String("operation", operationName),
			attr.String("entity_id", entityID),
			attr.ExtractCorrelationID(ctx),
		)
		t.Metrics.RecordOperationSuccess(ctx, operationName, t.Service)
	}

	return result
}

func asStorage(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Storage("an unexpected error occurred", err)
}

// RunInTx runs fn inside a transaction on db. With a nil db (unit tests with
// fake repositories) fn receives a nil handle.
func RunInTx[S any](
	ctx context.Context,
	db *bun.DB,
	fn func(ctx context.Context, tx bun.IDB) (results.OperationResult[S, error], error),
) (results.OperationResult[S, error], error) {
	if db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, error]
	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		if txErr == nil && result.IsFailure() {
			// Domain failures discovered mid-transaction still roll back.
			return errRollback
		}
		return txErr
	})
	if errors.Is(err, errRollback) {
		return result, nil
	}
	return result, err
}

var errRollback = errors.New("rollback requested by failure result")

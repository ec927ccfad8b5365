package validator

import (
	"context"
	"fmt"

	"github.com/shashibeit/ui-theme-material/pkg/async"
)

// DefaultAsyncMessage is reported by an AsyncRule without a message.
const DefaultAsyncMessage = "Async validation failed"

// AsyncCheck is a slow check such as a uniqueness lookup.
// An error means the check itself could not run.
type AsyncCheck func(ctx context.Context, value Value) (bool, error)

// AsyncRule pairs an AsyncCheck with its failure message.
type AsyncRule struct {
	Message string
	Check   AsyncCheck
}

// ValidateFieldAsync runs the synchronous rules first and returns early when
// they fail. Otherwise all async checks run concurrently; failing ones
// contribute their messages in declaration order.
func ValidateFieldAsync(ctx context.Context, value Value, rules []Rule, vctx Context, checks ...AsyncRule) (FieldResult, error) {
	result, err := ValidateFieldContext(value, rules, vctx)
	if err != nil || !result.Valid || len(checks) == 0 {
		return result, err
	}

	for i, c := range checks {
		if c.Check == nil {
			return FieldResult{}, fmt.Errorf("%w: async rule %d: missing check", ErrSchemaMisconfigured, i)
		}
	}

	futures := make([]*async.Future[bool], 0, len(checks))
	for _, c := range checks {
		futures = append(futures, async.Async(ctx, value, (func(context.Context, Value) (bool, error))(c.Check)))
	}

	passed, err := async.WaitAll(futures...)
	if err != nil {
		return FieldResult{}, fmt.Errorf("validator: async check: %w", err)
	}

	for i, ok := range passed {
		if ok {
			continue
		}
		msg := checks[i].Message
		if msg == "" {
			msg = DefaultAsyncMessage
		}
		result.Failures.Add(ValidationError{Field: vctx.Field(), Rule: KindCustom, Message: msg})
	}
	result.Valid = result.Failures.IsEmpty()
	result.Errors = result.Failures.Messages(nil)
	return result, nil
}

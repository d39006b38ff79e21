package playground

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-playground/internal/platform/logging"
	playgroundsvc "github.com/janisto/hello-playground/internal/playground"
)

// Register wires the numeric playground routes into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "plus-100",
		Method:      http.MethodPost,
		Path:        "/plus-100",
		Summary:     "Add 100 to an unsigned 32-bit value",
		Tags:        []string{"Playground"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, func(ctx context.Context, input *Plus100Input) (*Plus100Output, error) {
		result, err := playgroundsvc.Plus100(input.Body.Input)
		if err != nil {
			return nil, mapError(ctx, err)
		}
		return &Plus100Output{Body: Plus100Data{Result: result}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "array-length",
		Method:      http.MethodPost,
		Path:        "/array-length",
		Summary:     "Count the elements of an array of any values",
		Tags:        []string{"Playground"},
	}, func(_ context.Context, input *ArrayLengthInput) (*ArrayLengthOutput, error) {
		return &ArrayLengthOutput{Body: ArrayLengthData{Length: playgroundsvc.ArrayLength(input.Body.Items)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "fibonacci",
		Method:      http.MethodGet,
		Path:        "/fibonacci/{n}",
		Summary:     "Compute the n-th Fibonacci number",
		Tags:        []string{"Playground"},
	}, func(ctx context.Context, input *FibonacciInput) (*FibonacciOutput, error) {
		applog.LogInfo(ctx, "fibonacci", zap.Uint32("n", input.N))
		return &FibonacciOutput{Body: FibonacciData{N: input.N, Value: playgroundsvc.Fibonacci(input.N)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "array-index",
		Method:      http.MethodGet,
		Path:        "/array-index/{index}",
		Summary:     "Look up a wrapped index in the sample array",
		Tags:        []string{"Playground"},
	}, func(_ context.Context, input *ArrayIndexInput) (*ArrayIndexOutput, error) {
		position, element := playgroundsvc.Element(input.Index)
		return &ArrayIndexOutput{Body: ArrayIndexData{
			Index:        input.Index,
			Position:     position,
			Element:      element,
			Divisibility: playgroundsvc.Divisibility(input.Index),
		}}, nil
	})
}

func mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, playgroundsvc.ErrOverflow):
		applog.LogWarn(ctx, "playground overflow", zap.Error(err))
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		applog.LogError(ctx, "playground failed", err)
		return huma.Error500InternalServerError("internal error")
	}
}

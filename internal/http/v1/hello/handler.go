package hello

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/hello-playground/internal/greeter"
	applog "github.com/janisto/hello-playground/internal/platform/logging"
)

// Register wires hello routes into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Get the default greeting",
		Tags:        []string{"Hello"},
	}, getHandler)

	huma.Register(api, huma.Operation{
		OperationID: "create-hello",
		Method:      http.MethodPost,
		Path:        "/hello",
		Summary:     "Create a personalized greeting",
		Description: "Greets `name` verbatim, or the default name when it is omitted or null. A non-string name is rejected with 400.",
		Tags:        []string{"Hello"},
		Errors:      []int{http.StatusBadRequest},
	}, createHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get")
	return &GetOutput{Body: Data{Message: greeter.Default()}}, nil
}

func createHandler(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	message, err := greeter.Greet(input.Body.Name)
	if err != nil {
		return nil, mapGreetError(ctx, input.Body.Name, err)
	}
	applog.LogInfo(ctx, "hello post", zap.String("kind", greeter.KindOf(input.Body.Name)))
	return &CreateOutput{Body: Data{Message: message}}, nil
}

func mapGreetError(ctx context.Context, name any, err error) error {
	if errors.Is(err, greeter.ErrInvalidArgumentType) {
		applog.LogWarn(ctx, "hello rejected", zap.String("kind", greeter.KindOf(name)))
		// The raw value is not echoed: CBOR maps decode with interface keys
		// that cannot be rendered as JSON.
		return huma.Error400BadRequest("InvalidArgumentType", &huma.ErrorDetail{
			Message:  err.Error(),
			Location: "body.name",
			Value:    greeter.KindOf(name),
		})
	}
	applog.LogError(ctx, "hello failed", err)
	return huma.Error500InternalServerError("internal error")
}

package hello

// CreateInput is the request body for a personalized greeting.
//
// Name is deliberately untyped so that clients sending a number, boolean or
// object get an InvalidArgumentType problem instead of a generic decode error.
// The body itself is optional; an empty POST greets the default name.
type CreateInput struct {
	Body struct {
		Name any `json:"name,omitempty" doc:"Name to greet. Must be a string when present; omitted or null greets the default name."`
	} `required:"false"`
}

package playground

// Plus100Input is the request body for plus-100.
type Plus100Input struct {
	Body struct {
		Input uint32 `json:"input" doc:"Unsigned 32-bit value" minimum:"0" maximum:"4294967295" example:"1"`
	}
}

// ArrayLengthInput is the request body for array-length.
type ArrayLengthInput struct {
	Body struct {
		Items []any `json:"items" doc:"Elements of any type"`
	}
}

// FibonacciInput selects the Fibonacci index.
type FibonacciInput struct {
	N uint32 `path:"n" doc:"Zero-based index" minimum:"0" maximum:"10000" example:"10"`
}

// ArrayIndexInput selects an index into the sample array.
type ArrayIndexInput struct {
	Index uint64 `path:"index" doc:"Any non-negative index; wrapped to the array length" minimum:"0" example:"7"`
}

package playground

// Plus100Output wraps Plus100Data.
type Plus100Output struct {
	Body Plus100Data
}

// Plus100Data is the plus-100 result.
type Plus100Data struct {
	Result uint32 `json:"result" example:"101"`
}

// ArrayLengthOutput wraps ArrayLengthData.
type ArrayLengthOutput struct {
	Body ArrayLengthData
}

// ArrayLengthData is the array-length result.
type ArrayLengthData struct {
	Length uint32 `json:"length" example:"3"`
}

// FibonacciOutput wraps FibonacciData.
type FibonacciOutput struct {
	Body FibonacciData
}

// FibonacciData carries the value as a decimal string since it exceeds 64 bits quickly.
type FibonacciData struct {
	N     uint32 `json:"n" example:"10"`
	Value string `json:"value" example:"55"`
}

// ArrayIndexOutput wraps ArrayIndexData.
type ArrayIndexOutput struct {
	Body ArrayIndexData
}

// ArrayIndexData describes the element selected by a wrapped index.
type ArrayIndexData struct {
	Index        uint64 `json:"index" example:"7"`
	Position     int    `json:"position" example:"2"`
	Element      int    `json:"element" example:"3"`
	Divisibility string `json:"divisibility" example:"index is not divisible by 4, 3, or 2"`
}

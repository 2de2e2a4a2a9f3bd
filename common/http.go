package common

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

// NewHttpResponse wraps a successful result.
func NewHttpResponse[T any](result T) HttpResponse[T] {
	return HttpResponse[T]{Result: &result}
}

package frpadmin

// Result carries either the decoded response data or a failure message.
// Exactly one of the two is ever set; operations never return a Go error.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Fail[T any](message string) Result[T] {
	return Result[T]{Message: message}
}

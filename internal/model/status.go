package model

// LoadStatus represents the status of a schedule request
type LoadStatus string

const (
	// LoadStatusIdle means nothing has been requested yet
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means a request is in flight
	LoadStatusLoading LoadStatus = "Loading"

	// LoadStatusSuccess means the request finished with a value
	LoadStatusSuccess LoadStatus = "Success"

	// LoadStatusError means the request failed
	LoadStatusError LoadStatus = "Error"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsActive returns true if a request is in flight
func (ls LoadStatus) IsActive() bool {
	return ls == LoadStatusLoading
}

// IsFinished returns true if the status is terminal (success or error)
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadStatusSuccess || ls == LoadStatusError
}

// LoadState is the current state of a keyed load. Key identifies the request
// that produced the state and is zero while Idle.
type LoadState[T any] struct {
	Status  LoadStatus
	Key     RequestKey
	Value   T
	Message string
}

// Idle returns the initial state
func Idle[T any]() LoadState[T] {
	return LoadState[T]{Status: LoadStatusIdle}
}

// Loading returns the in-flight state for key
func Loading[T any](key RequestKey) LoadState[T] {
	return LoadState[T]{Status: LoadStatusLoading, Key: key}
}

// Success returns the committed result for key
func Success[T any](key RequestKey, value T) LoadState[T] {
	return LoadState[T]{Status: LoadStatusSuccess, Key: key, Value: value}
}

// Failure returns the error state for key with a presentable message
func Failure[T any](key RequestKey, message string) LoadState[T] {
	return LoadState[T]{Status: LoadStatusError, Key: key, Message: message}
}

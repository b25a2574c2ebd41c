package favorites

// Backend is the durable key-value store favorites are persisted in.
// A missing key reads as an empty set.
type Backend interface {
	ReadSet(key string) ([]string, error)
	WriteSet(key string, values []string) error
}

package redis

const (
	// KeyPrefix namespaces every key written by newtab.
	KeyPrefix = "newtab:"
)

// Key returns the namespaced Redis key for a gateway key.
func Key(name string) string {
	return KeyPrefix + name
}

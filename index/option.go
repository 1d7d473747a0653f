package index

// Option configures an Index.
type Option struct {
	// CacheSize bounds the number of cached query results.
	CacheSize int
}

var DefaultOption = &Option{
	CacheSize: 1 << 10,
}

package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple libraries can
// share one cache directory without key collisions. The layout command
// scopes keys by library name when a manifest carries one.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(itemsHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(itemsHash, opts)
}

// WindowKey generates a prefixed window key.
func (k *ScopedKeyer) WindowKey(layoutHash string, opts WindowKeyOpts) string {
	return k.prefix + k.inner.WindowKey(layoutHash, opts)
}

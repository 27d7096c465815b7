package cache

// Keyer builds cache keys. Keys embed a hash of every input that can
// change the cached value.
type Keyer interface {
	// PathsKey identifies the Euler paths of one network.
	PathsKey(graphHash string, opts PathsKeyOpts) string

	// ResultKey identifies a solved circuit.
	ResultKey(circuitHash string, opts PathsKeyOpts) string
}

// PathsKeyOpts holds the enumeration options that affect a cached result.
type PathsKeyOpts struct {
	MaxPaths int `json:"max_paths"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PathsKey returns "paths:<sha256>".
func (DefaultKeyer) PathsKey(graphHash string, opts PathsKeyOpts) string {
	return hashKey("paths", graphHash, opts)
}

// ResultKey returns "result:<sha256>".
func (DefaultKeyer) ResultKey(circuitHash string, opts PathsKeyOpts) string {
	return hashKey("result", circuitHash, opts)
}

// ScopedKeyer prefixes every key of an inner Keyer. The server scopes
// its keys so a shared Redis can hold several deployments.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "polyorder:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the DefaultKeyer if inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) PathsKey(graphHash string, opts PathsKeyOpts) string {
	return k.prefix + k.inner.PathsKey(graphHash, opts)
}

func (k *ScopedKeyer) ResultKey(circuitHash string, opts PathsKeyOpts) string {
	return k.prefix + k.inner.ResultKey(circuitHash, opts)
}

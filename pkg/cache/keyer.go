package cache

// LayoutKeyOpts lists everything besides the diagram that changes a layout.
type LayoutKeyOpts struct {
	OriginX      float64 `json:"origin_x"`
	OriginY      float64 `json:"origin_y"`
	RowHeight    float64 `json:"row_height"`
	RecordWidth  float64 `json:"record_width"`
	RecordSpace  float64 `json:"record_space"`
	CornerRadius float64 `json:"corner_radius"`
	Junctions    bool    `json:"junctions"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key for the layout of the diagram whose
	// canonical JSON hashes to diagramHash.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer produces unscoped keys of the form "layout:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", diagramHash, opts)
}

// ScopedKeyer prepends a fixed namespace to the keys of another Keyer, so
// several deployments can share one Redis database.
//
//	keyer := cache.NewScopedKeyer(nil, "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// Prefix reports the namespace added to every key.
func (k *ScopedKeyer) Prefix() string { return k.prefix }

// LayoutKey implements Keyer.
func (k *ScopedKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(diagramHash, opts)
}

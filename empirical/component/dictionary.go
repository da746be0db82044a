package component

// Dictionary is an insertion-ordered mapping from feature name to component
// model. Feature names are unique; Set on an existing key replaces the
// model without disturbing its position.
type Dictionary struct {
	keys   []string
	models map[string]Model
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{models: make(map[string]Model)}
}

// Set binds a feature name to a component model.
func (d *Dictionary) Set(feature string, m Model) {
	if _, exists := d.models[feature]; !exists {
		d.keys = append(d.keys, feature)
	}
	d.models[feature] = m
}

// Get returns the model bound to a feature name.
func (d *Dictionary) Get(feature string) (Model, bool) {
	m, ok := d.models[feature]
	return m, ok
}

// Has reports whether a feature name is bound.
func (d *Dictionary) Has(feature string) bool {
	_, ok := d.models[feature]
	return ok
}

// Keys returns the feature names in insertion order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of bound features.
func (d *Dictionary) Len() int { return len(d.keys) }

// Reorder returns a new dictionary holding the same bindings re-keyed in
// the given order. Every element of order must be a bound feature name.
func (d *Dictionary) Reorder(order []string) *Dictionary {
	out := NewDictionary()
	for _, feature := range order {
		if m, ok := d.models[feature]; ok {
			out.Set(feature, m)
		}
	}
	return out
}

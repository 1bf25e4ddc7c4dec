package export

import "github.com/tidwall/gjson"

// Row is one normalized CSV record, keyed by canonical column name.
type Row map[string]string

// Normalizer maps heterogeneous API casings onto one canonical row
// shape. The rename table translates an alternate casing (the Catalog
// API's PascalCase) into the canonical one; renamed keys win over the
// original casing when both appear in a record.
type Normalizer struct {
	rename map[string]string
}

// NewNormalizer builds a Normalizer with the given rename table. A nil
// table passes every key through unchanged.
func NewNormalizer(rename map[string]string) *Normalizer {
	return &Normalizer{rename: rename}
}

// Normalize flattens one entity into a Row. Nested arrays and objects
// become compact JSON text, and `id` is back-filled from the PascalCase
// SellerId when the record carries no id of its own. The returned key
// list holds the row's canonical keys in document order, for overflow
// column discovery.
func (n *Normalizer) Normalize(e Entity) (Row, []string) {
	row := Row{}
	var order []string

	add := func(key, text string, renamed bool) {
		if _, exists := row[key]; !exists {
			order = append(order, key)
		} else if !renamed {
			return
		}
		row[key] = text
	}

	e.ForEach(func(key string, value gjson.Result) bool {
		target := key
		renamed := false
		if t, ok := n.rename[key]; ok {
			target = t
			renamed = true
		}
		add(target, FieldText(value), renamed)
		return true
	})

	if row["id"] == "" {
		if v := e.Get("SellerId"); v.Exists() && v.String() != "" {
			add("id", v.String(), true)
		}
	}

	return row, order
}

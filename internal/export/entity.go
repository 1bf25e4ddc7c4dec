package export

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Entity is one schema-less JSON record (a seller, an order, an order
// summary). The seller APIs disagree on field casing and the field set
// varies by account, so records are kept as parsed JSON and walked in
// document order instead of being decoded into a struct.
type Entity struct {
	res gjson.Result
}

// ParseEntity parses raw JSON into an Entity. ok is false when the
// document is not a JSON object.
func ParseEntity(raw string) (Entity, bool) {
	return EntityOf(gjson.Parse(raw))
}

// EntityOf wraps an element of an already-parsed document.
func EntityOf(res gjson.Result) (Entity, bool) {
	if !res.IsObject() {
		return Entity{}, false
	}
	return Entity{res: res}, true
}

// Get looks up a field by gjson path.
func (e Entity) Get(path string) gjson.Result {
	return e.res.Get(path)
}

// ForEach visits the entity's top-level fields in document order.
func (e Entity) ForEach(fn func(key string, value gjson.Result) bool) {
	e.res.ForEach(func(k, v gjson.Result) bool {
		return fn(k.String(), v)
	})
}

// Raw returns the entity's original JSON text.
func (e Entity) Raw() string {
	return e.res.Raw
}

// Identifier resolves the entity's unique key by trying candidate field
// names in order; the first present, non-empty value wins. Returns ""
// when no candidate matches.
func (e Entity) Identifier(candidates ...string) string {
	for _, key := range candidates {
		if v := e.res.Get(key); v.Exists() {
			if s := v.String(); s != "" {
				return s
			}
		}
	}
	return ""
}

// FieldText renders one JSON value for a CSV cell: arrays and objects
// become compact JSON text, null becomes empty, scalars keep their
// source lexeme.
func FieldText(v gjson.Result) string {
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	if v.IsObject() || v.IsArray() {
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(v.Raw)); err != nil {
			return v.Raw
		}
		return buf.String()
	}
	return v.String()
}

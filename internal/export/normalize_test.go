package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRenames = map[string]string{
	"SellerId": "id",
	"Name":     "name",
	"IsActive": "isActive",
}

func TestNormalizePascalCaseRecord(t *testing.T) {
	n := NewNormalizer(testRenames)

	row, keys := n.Normalize(mustEntity(t, `{"SellerId":"store1","Name":"Store One","IsActive":true}`))

	assert.Equal(t, "store1", row["id"])
	assert.Equal(t, "Store One", row["name"])
	assert.Equal(t, "true", row["isActive"])
	assert.Equal(t, []string{"id", "name", "isActive"}, keys)
}

func TestNormalizeCamelCasePassesThrough(t *testing.T) {
	n := NewNormalizer(testRenames)

	row, _ := n.Normalize(mustEntity(t, `{"id":"store2","name":"Store Two"}`))

	assert.Equal(t, "store2", row["id"])
	assert.Equal(t, "Store Two", row["name"])
}

func TestNormalizeRenamedKeyWins(t *testing.T) {
	n := NewNormalizer(testRenames)

	// Both casings in one record: the renamed key takes priority no
	// matter which comes first in the document.
	row, keys := n.Normalize(mustEntity(t, `{"name":"plain","Name":"renamed"}`))
	assert.Equal(t, "renamed", row["name"])
	assert.Equal(t, []string{"name"}, keys)

	row, _ = n.Normalize(mustEntity(t, `{"Name":"renamed","name":"plain"}`))
	assert.Equal(t, "renamed", row["name"])
}

func TestNormalizeNestedValuesBecomeJSONText(t *testing.T) {
	n := NewNormalizer(nil)

	row, _ := n.Normalize(mustEntity(t,
		`{"id":"o1","availableSalesChannels":[{"Id": 1}, {"Id": 2}],"trustPolicy":{"name": "Low"}}`))

	assert.Equal(t, `[{"Id":1},{"Id":2}]`, row["availableSalesChannels"])
	assert.Equal(t, `{"name":"Low"}`, row["trustPolicy"])
}

func TestNormalizeScalarsKeepLexeme(t *testing.T) {
	n := NewNormalizer(nil)

	row, _ := n.Normalize(mustEntity(t, `{"id":"o1","price":99.90,"quantity":2,"note":null,"active":false}`))

	assert.Equal(t, "99.90", row["price"])
	assert.Equal(t, "2", row["quantity"])
	assert.Equal(t, "", row["note"])
	assert.Equal(t, "false", row["active"])
}

func TestNormalizeBackfillsID(t *testing.T) {
	// Rename table without the SellerId entry still yields an id.
	n := NewNormalizer(map[string]string{"Name": "name"})

	row, keys := n.Normalize(mustEntity(t, `{"SellerId":"store1","Name":"Store One"}`))

	assert.Equal(t, "store1", row["id"])
	assert.Contains(t, keys, "id")
}

func TestNormalizeIDPresentForEitherCasing(t *testing.T) {
	n := NewNormalizer(testRenames)

	for _, raw := range []string{`{"SellerId":"x"}`, `{"id":"x"}`} {
		row, _ := n.Normalize(mustEntity(t, raw))
		assert.NotEmpty(t, row["id"], "raw: %s", raw)
	}
}

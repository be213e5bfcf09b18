package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var productSpec = Spec{
	Filterable: map[string]string{
		"name":     "name",
		"price":    "price",
		"category": "category_id",
	},
	Sortable: map[string]string{
		"price":     "price",
		"name":      "name",
		"createdAt": "created_at",
	},
	Selectable: map[string]string{
		"name":  "name",
		"price": "price",
		"brand": "brand",
	},
	SearchColumn: "name",
	DefaultSort:  "created_at DESC",
}

func TestParseEqualityAndRangeFilters(t *testing.T) {
	values, _ := url.ParseQuery("price[gte]=10&price[lt]=50&name=milk")

	opts := Parse(values, productSpec)

	assert.Equal(t, []Condition{
		{Column: "name", Operator: "=", Value: "milk"},
		{Column: "price", Operator: "<", Value: "50"},
		{Column: "price", Operator: ">=", Value: "10"},
	}, opts.Conditions)
}

func TestParseIgnoresUnknownKeysAndOperators(t *testing.T) {
	values, _ := url.ParseQuery("role=admin&price[regex]=x&password=secret")

	opts := Parse(values, productSpec)

	assert.Empty(t, opts.Conditions)
}

func TestParseExcludesReservedKeys(t *testing.T) {
	values, _ := url.ParseQuery("page=2&sort=price&limit=5&fields=name&q=milk&price=3")

	opts := Parse(values, productSpec)

	assert.Equal(t, []Condition{{Column: "price", Operator: "=", Value: "3"}}, opts.Conditions)
}

func TestParseSort(t *testing.T) {
	values, _ := url.ParseQuery("sort=-price,name,bogus")

	opts := Parse(values, productSpec)

	assert.Equal(t, []string{"price DESC", "name ASC"}, opts.Sort)
}

func TestParseSortDefaultsToReverseChronological(t *testing.T) {
	opts := Parse(url.Values{}, productSpec)

	assert.Equal(t, []string{"created_at DESC"}, opts.Sort)
}

func TestParseFieldSelectionAlwaysKeepsID(t *testing.T) {
	values, _ := url.ParseQuery("fields=name,price,unknown")

	opts := Parse(values, productSpec)

	assert.Equal(t, []string{"id", "name", "price"}, opts.Fields)
}

func TestParseFieldSelectionAbsentMeansAllColumns(t *testing.T) {
	opts := Parse(url.Values{}, productSpec)

	assert.Nil(t, opts.Fields)
}

func TestParseFieldSelectionNothingAllowedFallsBack(t *testing.T) {
	values, _ := url.ParseQuery("fields=password,role")

	opts := Parse(values, productSpec)

	assert.Nil(t, opts.Fields)
}

func TestParsePaginationDefaults(t *testing.T) {
	opts := Parse(url.Values{}, productSpec)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 100, opts.Limit)
	assert.Equal(t, 0, opts.Offset())
}

func TestParsePaginationOffset(t *testing.T) {
	values, _ := url.ParseQuery("page=3&limit=25")

	opts := Parse(values, productSpec)

	assert.Equal(t, 50, opts.Offset())
	assert.Equal(t, 25, opts.Limit)
}

func TestParsePaginationMalformedFailsClosed(t *testing.T) {
	for _, raw := range []string{
		"page=abc&limit=xyz",
		"page=-2&limit=0",
		"page=1.5&limit=2e3",
	} {
		values, _ := url.ParseQuery(raw)

		opts := Parse(values, productSpec)

		assert.Equal(t, 1, opts.Page, raw)
		assert.Equal(t, 100, opts.Limit, raw)
	}
}

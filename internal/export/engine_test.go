// internal/export/engine_test.go
package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() *Product {
	return &Product{
		ProductName: "Trail Thermos",
		Description: "Keeps drinks hot 12h.",
		Price:       "24.99",
		Features:    []string{"Vacuum insulated", "Leak-proof lid"},
		Specifications: []Specification{
			{Name: "Capacity", Value: "750ml"},
		},
		Images: []string{"https://x/img1.png"},
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := sampleProduct()

	for _, platform := range Platforms() {
		first, err := Generate(p, platform)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			again, err := Generate(p, platform)
			require.NoError(t, err)
			assert.Equal(t, first, again, "platform %s output must be byte-identical", platform)
		}
	}
}

func TestGenerateGenericScenario(t *testing.T) {
	doc, err := Generate(sampleProduct(), PlatformGeneric)
	require.NoError(t, err)

	assert.Contains(t, doc, `<h1 class="product-title">Trail Thermos</h1>`)
	assert.Contains(t, doc, `<title>Trail Thermos</title>`)
	assert.Contains(t, doc, "Keeps drinks hot 12h.")
	assert.Contains(t, doc, `<div class="price">$24.99</div>`)

	// Feature list keeps the given order with no reordering.
	first := strings.Index(doc, "<li>Vacuum insulated</li>")
	second := strings.Index(doc, "<li>Leak-proof lid</li>")
	require.True(t, first > 0)
	require.True(t, second > first)
	assert.Equal(t, 2, strings.Count(doc, "<li>"))

	// Exactly one specification row.
	assert.Equal(t, 1, strings.Count(doc, `<div class="spec-item">`))
	assert.Contains(t, doc, `<span class="spec-label">Capacity:</span>`)
	assert.Contains(t, doc, `<span class="spec-value">750ml</span>`)

	assert.Contains(t, doc, `<img src="https://x/img1.png"`)
	assert.NotContains(t, doc, "via.placeholder.com")
}

func TestGenerateEmptyOptionalFields(t *testing.T) {
	p := &Product{ProductName: "Bare Product"}

	for _, platform := range Platforms() {
		doc, err := Generate(p, platform)
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(doc, "via.placeholder.com"), "platform %s uses one placeholder image", platform)
		assert.NotContains(t, doc, "<li>", "platform %s omits the feature list", platform)
		// Spec rows are the only span elements in every template.
		assert.NotContains(t, doc, "<span class=", "platform %s omits the specifications block", platform)
		assert.Contains(t, doc, "$0.00")
	}
}

func TestGenerateUsesPlaceholdersForMissingText(t *testing.T) {
	doc, err := Generate(&Product{}, PlatformGeneric)
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>Product</title>")
	assert.Contains(t, doc, "Product Name")
	assert.Contains(t, doc, "Product description goes here.")
}

func TestGenerateListOrderPreserved(t *testing.T) {
	p := &Product{
		ProductName: "Ordered",
		Features:    []string{"A", "B", "C"},
		Specifications: []Specification{
			{Name: "First", Value: "1"},
			{Name: "Second", Value: "2"},
			{Name: "First", Value: "1"}, // duplicates survive
		},
	}

	doc, err := Generate(p, PlatformGeneric)
	require.NoError(t, err)

	a := strings.Index(doc, "<li>A</li>")
	b := strings.Index(doc, "<li>B</li>")
	c := strings.Index(doc, "<li>C</li>")
	assert.True(t, a > 0 && a < b && b < c)

	assert.Equal(t, 3, strings.Count(doc, `<div class="spec-item">`))
	assert.Equal(t, 2, strings.Count(doc, `<span class="spec-label">First:</span>`))
}

func TestGenerateGenericIsInert(t *testing.T) {
	doc, err := Generate(sampleProduct(), PlatformGeneric)
	require.NoError(t, err)

	assert.NotContains(t, doc, "{{")
	assert.NotContains(t, doc, "{%")
	assert.NotContains(t, doc, "<?php")
}

func TestGenerateShopifyDialect(t *testing.T) {
	doc, err := Generate(sampleProduct(), PlatformShopify)
	require.NoError(t, err)

	assert.Contains(t, doc, "{% for image in product.images %}")
	assert.Contains(t, doc, `{{ image | img_url: '600x600' }}`)
	assert.Contains(t, doc, `{{ product.title | default: "Trail Thermos" }}`)
	assert.Contains(t, doc, `<form action="/cart/add" method="post"`)
	assert.Contains(t, doc, "{% for variant in product.variants %}")
	assert.Contains(t, doc, "Shopify Liquid Code Instructions")

	// Static gallery fallback inside the Liquid else branch.
	assert.Contains(t, doc, `<img src="https://x/img1.png"`)
}

func TestGenerateWooCommerceDialect(t *testing.T) {
	doc, err := Generate(sampleProduct(), PlatformWooCommerce)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<?php"))
	assert.Contains(t, doc, "defined( 'ABSPATH' ) || exit;")
	assert.Contains(t, doc, "$product->get_gallery_image_ids()")
	assert.Contains(t, doc, "$product->get_price_html()")
	assert.Contains(t, doc, "woocommerce_template_single_add_to_cart();")
	assert.Contains(t, doc, "WooCommerce Integration Instructions")
}

func TestGenerateEscapesMarkup(t *testing.T) {
	p := &Product{
		ProductName: `Cut & Paste <Deluxe>`,
		Description: `"Sharp" edition`,
	}

	doc, err := Generate(p, PlatformGeneric)
	require.NoError(t, err)

	assert.NotContains(t, doc, "<Deluxe>")
	assert.Contains(t, doc, "Cut &amp; Paste &lt;Deluxe&gt;")
	assert.NotContains(t, doc, `"Sharp"`)
}

func TestGenerateWooCommerceEscapesPHPStrings(t *testing.T) {
	p := &Product{
		ProductName: "Quoted",
		Description: `costs $5 "only"`,
		Images:      []string{"https://x/it's.png"},
	}

	doc, err := Generate(p, PlatformWooCommerce)
	require.NoError(t, err)

	// Dollar signs must not interpolate inside the double-quoted fallback.
	assert.Contains(t, doc, `\$5`)
	assert.Contains(t, doc, `it\'s.png`)
}

func TestGenerateInvalidProduct(t *testing.T) {
	_, err := Generate(nil, PlatformGeneric)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestGenerateUnknownPlatform(t *testing.T) {
	_, err := Generate(sampleProduct(), Platform("wix"))
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestGetPlatformInfo(t *testing.T) {
	cases := map[Platform]string{
		PlatformGeneric:     "html",
		PlatformShopify:     "liquid",
		PlatformWooCommerce: "php",
	}

	for platform, ext := range cases {
		info, err := GetPlatformInfo(platform)
		require.NoError(t, err)
		assert.Equal(t, ext, info.FileExtension)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}

	_, err := GetPlatformInfo(Platform("squarespace"))
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestParsePlatform(t *testing.T) {
	platform, err := ParsePlatform(" Shopify ")
	require.NoError(t, err)
	assert.Equal(t, PlatformShopify, platform)

	_, err = ParsePlatform("magento")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestPriceFormatting(t *testing.T) {
	cases := []struct {
		raw  Price
		want string
	}{
		{"9", "$9.00"},
		{"12.5", "$12.50"},
		{"", "$0.00"},
		{"not a price", "$0.00"},
		{"$1,299.90", "$1299.90"},
		{"-5", "$0.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.raw.Display(), "raw %q", tc.raw)
	}
}

func TestPriceUnmarshalJSON(t *testing.T) {
	var p struct {
		Price Price `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 9}`), &p))
	assert.Equal(t, "$9.00", p.Price.Display())

	require.NoError(t, json.Unmarshal([]byte(`{"price": "12.5"}`), &p))
	assert.Equal(t, "$12.50", p.Price.Display())

	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &p))
	assert.Equal(t, "$0.00", p.Price.Display())

	require.NoError(t, json.Unmarshal([]byte(`{"price": {"amount": 3}}`), &p))
	assert.Equal(t, "$0.00", p.Price.Display())
}

func TestFilename(t *testing.T) {
	name, err := Filename(sampleProduct(), PlatformShopify)
	require.NoError(t, err)
	assert.Equal(t, "trail-thermos-shopify.liquid", name)

	name, err = Filename(&Product{}, PlatformGeneric)
	require.NoError(t, err)
	assert.Equal(t, "product-generic.html", name)

	_, err = Filename(sampleProduct(), Platform("bigcommerce"))
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

// internal/services/export_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge-backend/internal/export"
	"github.com/pageforge/pageforge-backend/internal/models"
)

func previewRequest(platform string) *PreviewRequest {
	return &PreviewRequest{
		Platform:    platform,
		ProductName: "Trail Thermos",
		Description: "Keeps drinks hot for 12 hours.",
		Price:       export.Price("24.99"),
		Features:    []string{"Vacuum Insulated", "Leak-Proof Lid"},
		Images:      []string{"https://cdn.example.com/thermos.jpg"},
		Specifications: []SpecificationInput{
			{Name: "Capacity", Value: "1L"},
		},
	}
}

func TestPreviewGeneric(t *testing.T) {
	svc := NewExportService(nil, nil)

	result, err := svc.Preview(previewRequest("generic"))
	require.NoError(t, err)

	assert.Equal(t, "generic", result.Platform)
	assert.Equal(t, "trail-thermos-generic.html", result.Filename)
	assert.Equal(t, len(result.Document), result.ByteSize)
	assert.Contains(t, result.Document, "Trail Thermos")
	assert.Contains(t, result.Document, "$24.99")
	assert.NotContains(t, result.Document, "{{")
}

func TestPreviewShopify(t *testing.T) {
	svc := NewExportService(nil, nil)

	result, err := svc.Preview(previewRequest("shopify"))
	require.NoError(t, err)

	assert.Equal(t, "trail-thermos-shopify.liquid", result.Filename)
	assert.Contains(t, result.Document, "{{ product.title")
}

func TestPreviewWooCommerce(t *testing.T) {
	svc := NewExportService(nil, nil)

	result, err := svc.Preview(previewRequest("woocommerce"))
	require.NoError(t, err)

	assert.Equal(t, "trail-thermos-woocommerce.php", result.Filename)
	assert.True(t, strings.HasPrefix(result.Document, "<?php"))
}

func TestPreviewUnknownPlatform(t *testing.T) {
	svc := NewExportService(nil, nil)

	_, err := svc.Preview(previewRequest("magento"))
	assert.Error(t, err)
}

func TestPlatformsListing(t *testing.T) {
	svc := NewExportService(nil, nil)

	platforms := svc.Platforms()
	require.Len(t, platforms, 3)
	assert.Equal(t, "generic", platforms[0].Platform)
	assert.Equal(t, "shopify", platforms[1].Platform)
	assert.Equal(t, "woocommerce", platforms[2].Platform)
	assert.Equal(t, "html", platforms[0].FileExtension)
	assert.Equal(t, "liquid", platforms[1].FileExtension)
	assert.Equal(t, "php", platforms[2].FileExtension)
}

func TestPageToProduct(t *testing.T) {
	page := &models.ProductPage{
		Title:       "My Draft",
		Description: "A nice thermos.",
		Price:       "19.99",
		Features:    []string{"Insulated"},
		Images:      []string{"https://cdn.example.com/a.jpg"},
		Specifications: models.JSONBArray{
			{"name": "Capacity", "value": "1L"},
			{"value": "orphaned"},
		},
	}

	product := pageToProduct(page)

	// Title stands in when no explicit product name is set.
	assert.Equal(t, "My Draft", product.ProductName)
	assert.Equal(t, export.Price("19.99"), product.Price)
	require.Len(t, product.Specifications, 1)
	assert.Equal(t, "Capacity", product.Specifications[0].Name)

	page.ProductName = "Trail Thermos"
	assert.Equal(t, "Trail Thermos", pageToProduct(page).ProductName)
}

// internal/services/scan_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge-backend/internal/config"
)

func testScannerConfig() *config.Config {
	return &config.Config{
		Scanner: config.ScannerConfig{
			UserAgent:      "PageForgeBot/1.0 (test)",
			RequestTimeout: 5,
			MaxSitemapURLs: 100,
			CacheTTL:       1,
		},
	}
}

func TestIsProductURL(t *testing.T) {
	productURLs := []string{
		"https://shop.example.com/products/trail-thermos",
		"https://example.com/item/12345",
		"https://example.com/store/widget",
		"https://example.com/catalog/gadget",
		"https://example.com/widget-p991",
		"https://example.com/trail-thermos.html",
		"https://example.com/trail-thermos-42",
	}
	for _, url := range productURLs {
		assert.True(t, IsProductURL(url), url)
	}

	nonProductURLs := []string{
		"https://example.com/about",
		"https://example.com/blog/products-we-love",
		"https://example.com/products/style.css",
		"https://example.com/checkout",
		"https://example.com/",
	}
	for _, url := range nonProductURLs {
		assert.False(t, IsProductURL(url), url)
	}
}

func TestExtractProductURLs(t *testing.T) {
	svc := NewScanService(testScannerConfig(), nil)

	xmlContent := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/products/trail-thermos</loc></url>
  <url><loc>https://example.com/products/trail-thermos</loc></url>
  <url><loc>https://example.com/about</loc></url>
  <url><loc>https://example.com/products/camp-mug</loc></url>
</urlset>`

	result, err := svc.ExtractProductURLs(xmlContent)
	require.NoError(t, err)

	// Duplicates collapse, non-product URLs are filtered but still counted.
	assert.Equal(t, 3, result.TotalURLs)
	assert.Equal(t, []string{
		"https://example.com/products/trail-thermos",
		"https://example.com/products/camp-mug",
	}, result.ProductURLs)
	assert.False(t, result.Truncated)
}

func TestExtractProductURLsSitemapIndex(t *testing.T) {
	svc := NewScanService(testScannerConfig(), nil)

	xmlContent := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://example.com/products/sitemap1.xml</loc></sitemap>
</sitemapindex>`

	result, err := svc.ExtractProductURLs(xmlContent)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalURLs)
}

func TestExtractProductURLsRejectsInvalidFormat(t *testing.T) {
	svc := NewScanService(testScannerConfig(), nil)

	_, err := svc.ExtractProductURLs("<html><body>not a sitemap</body></html>")
	assert.Error(t, err)
}

func TestExtractProductURLsTruncation(t *testing.T) {
	cfg := testScannerConfig()
	cfg.Scanner.MaxSitemapURLs = 1
	svc := NewScanService(cfg, nil)

	xmlContent := `<urlset>
  <url><loc>https://example.com/products/a</loc></url>
  <url><loc>https://example.com/products/b</loc></url>
</urlset>`

	result, err := svc.ExtractProductURLs(xmlContent)
	require.NoError(t, err)
	assert.Len(t, result.ProductURLs, 1)
	assert.True(t, result.Truncated)
}

func TestScanURLExtractsProductFields(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head>
  <title>Fallback Title</title>
  <meta property="og:title" content="Trail Thermos">
  <meta property="og:description" content="Keeps drinks hot for 12 hours.">
  <meta property="og:image" content="https://cdn.example.com/thermos-front.jpg">
  <meta property="product:price:amount" content="24.99">
</head>
<body>
  <h1>Some Other Heading</h1>
  <div class="product-features">
    <ul>
      <li>Vacuum Insulated</li>
      <li>Leak-Proof Lid</li>
    </ul>
  </div>
  <div class="product-gallery">
    <img src="https://cdn.example.com/thermos-side.jpg">
    <img src="/relative/ignored.jpg">
  </div>
</body>
</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "PageForgeBot")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer server.Close()

	svc := NewScanService(testScannerConfig(), nil)

	result, err := svc.ScanURL(context.Background(), &ScanURLRequest{URL: server.URL})
	require.NoError(t, err)

	assert.Equal(t, "Trail Thermos", result.ProductName)
	assert.Equal(t, "Keeps drinks hot for 12 hours.", result.Description)
	assert.Equal(t, "24.99", result.Price)
	assert.Equal(t, []string{"Vacuum Insulated", "Leak-Proof Lid"}, result.KeyFeatures)
	assert.Equal(t, []string{
		"https://cdn.example.com/thermos-front.jpg",
		"https://cdn.example.com/thermos-side.jpg",
	}, result.Images)
	assert.Equal(t, server.URL, result.SourceURL)

	// High-trust sources score high, selector guesses lower.
	assert.InDelta(t, 0.9, result.Confidence["product_name"], 0.001)
	assert.InDelta(t, 0.9, result.Confidence["description"], 0.001)
	assert.InDelta(t, 0.9, result.Confidence["price"], 0.001)
	assert.InDelta(t, 0.7, result.Confidence["key_features"], 0.001)
	assert.Equal(t, []string{"product_name", "description", "price", "key_features", "images"}, result.FieldsFound)
}

func TestScanURLSparsePage(t *testing.T) {
	page := `<html><head><title>Bare Page</title></head><body><p>nothing here</p></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	svc := NewScanService(testScannerConfig(), nil)

	result, err := svc.ScanURL(context.Background(), &ScanURLRequest{URL: server.URL})
	require.NoError(t, err)

	assert.Equal(t, "Bare Page", result.ProductName)
	assert.InDelta(t, 0.4, result.Confidence["product_name"], 0.001)
	assert.Empty(t, result.Price)
	assert.Zero(t, result.Confidence["price"])
	assert.Empty(t, result.KeyFeatures)
	assert.Empty(t, result.Images)
	assert.NotContains(t, result.FieldsFound, "price")
	assert.Contains(t, result.FieldsFound, "product_name")
}

func TestScanURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewScanService(testScannerConfig(), nil)

	_, err := svc.ScanURL(context.Background(), &ScanURLRequest{URL: server.URL})
	assert.Error(t, err)
}

func TestScanURLRejectsInvalidURL(t *testing.T) {
	svc := NewScanService(testScannerConfig(), nil)

	_, err := svc.ScanURL(context.Background(), &ScanURLRequest{URL: "not-a-url"})
	assert.Error(t, err)
}

// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/pageforge/pageforge-backend/internal/config"
	"github.com/pageforge/pageforge-backend/internal/handlers"
	"github.com/pageforge/pageforge-backend/internal/services"
)

// APITestSuite exercises the endpoints that need no database: platform
// metadata, export previews, content generation and sitemap parsing.
type APITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Scanner: config.ScannerConfig{
			UserAgent:      "PageForgeBot/1.0 (test)",
			RequestTimeout: 5,
			MaxSitemapURLs: 100,
		},
	}

	exportHandler := handlers.NewExportHandler(services.NewExportService(nil, nil))
	contentHandler := handlers.NewContentHandler(services.NewContentService())
	scanHandler := handlers.NewScanHandler(services.NewScanService(cfg, nil))

	suite.router = gin.New()
	v1 := suite.router.Group("/v1")
	{
		v1.GET("/export/platforms", exportHandler.ListPlatforms)
		v1.POST("/export/preview", exportHandler.Preview)
		v1.POST("/content/generate", contentHandler.GenerateContent)
		v1.POST("/scan/sitemap", scanHandler.ScanSitemap)
	}
}

func (suite *APITestSuite) postJSON(path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) TestListPlatforms() {
	req, _ := http.NewRequest("GET", "/v1/export/platforms", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Platforms []struct {
				Platform      string `json:"platform"`
				Name          string `json:"name"`
				FileExtension string `json:"file_extension"`
			} `json:"platforms"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Success)
	assert.Len(suite.T(), response.Data.Platforms, 3)
	assert.Equal(suite.T(), "generic", response.Data.Platforms[0].Platform)
	assert.Equal(suite.T(), "Shopify Liquid", response.Data.Platforms[1].Name)
}

func (suite *APITestSuite) TestExportPreview() {
	w := suite.postJSON("/v1/export/preview", map[string]interface{}{
		"platform":     "generic",
		"product_name": "Trail Thermos",
		"price":        "24.99",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Filename string `json:"filename"`
			Document string `json:"document"`
			ByteSize int    `json:"byte_size"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "trail-thermos-generic.html", response.Data.Filename)
	assert.Contains(suite.T(), response.Data.Document, "$24.99")
	assert.Equal(suite.T(), len(response.Data.Document), response.Data.ByteSize)
}

func (suite *APITestSuite) TestExportPreviewNumericPrice() {
	// The editor sometimes sends price as a JSON number.
	w := suite.postJSON("/v1/export/preview", map[string]interface{}{
		"platform":     "generic",
		"product_name": "Trail Thermos",
		"price":        12.5,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "$12.50")
}

func (suite *APITestSuite) TestExportPreviewUnknownPlatform() {
	w := suite.postJSON("/v1/export/preview", map[string]interface{}{
		"platform":     "magento",
		"product_name": "Trail Thermos",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *APITestSuite) TestGenerateContent() {
	w := suite.postJSON("/v1/content/generate", map[string]interface{}{
		"product_name": "Trail Thermos",
		"description":  "Keeps drinks hot for 12 hours.",
		"key_features": []string{"Vacuum Insulated"},
		"seed":         7,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			SEODescription  string `json:"seo_description"`
			FeatureSections []struct {
				Title string `json:"title"`
			} `json:"feature_sections"`
			SellingPoints []string `json:"selling_points"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Success)
	assert.Contains(suite.T(), response.Data.SEODescription, "Trail Thermos")
	assert.Len(suite.T(), response.Data.FeatureSections, 1)
	assert.Len(suite.T(), response.Data.SellingPoints, 4)
}

func (suite *APITestSuite) TestGenerateContentMissingName() {
	w := suite.postJSON("/v1/content/generate", map[string]interface{}{
		"description": "no name given",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestScanSitemapFromXML() {
	w := suite.postJSON("/v1/scan/sitemap", map[string]interface{}{
		"xml_content": `<urlset>
  <url><loc>https://example.com/products/trail-thermos</loc></url>
  <url><loc>https://example.com/about</loc></url>
</urlset>`,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			ProductURLs []string `json:"product_urls"`
			TotalURLs   int      `json:"total_urls"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Data.TotalURLs)
	assert.Equal(suite.T(), []string{"https://example.com/products/trail-thermos"}, response.Data.ProductURLs)
}

func (suite *APITestSuite) TestScanSitemapInvalid() {
	w := suite.postJSON("/v1/scan/sitemap", map[string]interface{}{
		"xml_content": "<html>nope</html>",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

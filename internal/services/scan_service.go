// internal/services/scan_service.go
package services

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/pageforge/pageforge-backend/internal/config"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

// ScanService pulls product data out of live pages and sitemaps. A redis
// client is optional; without one every scan goes to the network.
type ScanService struct {
	cfg    *config.Config
	client *http.Client
	cache  *redis.Client
}

type ScanURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type ScanSitemapRequest struct {
	URL        string `json:"url,omitempty" validate:"omitempty,url"`
	XMLContent string `json:"xml_content,omitempty"`
}

// ScanResult reports each extracted field alongside a confidence score in
// [0,1]. A zero score means the field was not found and the value is empty.
type ScanResult struct {
	ProductName string             `json:"product_name"`
	Description string             `json:"description"`
	Price       string             `json:"price"`
	KeyFeatures []string           `json:"key_features"`
	Images      []string           `json:"images"`
	Confidence  map[string]float64 `json:"confidence"`
	FieldsFound []string           `json:"fields_found"`
	SourceURL   string             `json:"source_url"`
	ScannedAt   time.Time          `json:"scanned_at"`
}

type SitemapResult struct {
	ProductURLs []string `json:"product_urls"`
	TotalURLs   int      `json:"total_urls"`
	Truncated   bool     `json:"truncated"`
}

func NewScanService(cfg *config.Config, cache *redis.Client) *ScanService {
	return &ScanService{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Scanner.RequestTimeout) * time.Second,
		},
		cache: cache,
	}
}

func (s *ScanService) ScanURL(ctx context.Context, req *ScanURLRequest) (*ScanResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if cached := s.cachedResult(ctx, req.URL); cached != nil {
		return cached, nil
	}

	doc, err := s.fetchDocument(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	result := s.extractProduct(doc, req.URL)
	s.storeResult(ctx, req.URL, result)

	return result, nil
}

func (s *ScanService) ScanSitemap(ctx context.Context, req *ScanSitemapRequest) (*SitemapResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	xmlContent := req.XMLContent
	if xmlContent == "" {
		if req.URL == "" {
			return nil, errors.New("either url or xml_content is required")
		}
		fetched, err := s.fetchRaw(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		xmlContent = fetched
	}

	return s.ExtractProductURLs(xmlContent)
}

// ExtractProductURLs parses sitemap XML and keeps only URLs that look like
// product pages. Both urlset and sitemapindex documents are accepted.
func (s *ScanService) ExtractProductURLs(xmlContent string) (*SitemapResult, error) {
	if !strings.Contains(xmlContent, "<urlset") && !strings.Contains(xmlContent, "<sitemapindex") {
		return nil, errors.New("invalid sitemap format")
	}

	var sitemap struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
		Sitemaps []struct {
			Loc string `xml:"loc"`
		} `xml:"sitemap"`
	}

	if err := xml.Unmarshal([]byte(xmlContent), &sitemap); err != nil {
		return nil, fmt.Errorf("failed to parse sitemap: %w", err)
	}

	locs := make([]string, 0, len(sitemap.URLs)+len(sitemap.Sitemaps))
	for _, entry := range sitemap.URLs {
		locs = append(locs, strings.TrimSpace(entry.Loc))
	}
	for _, entry := range sitemap.Sitemaps {
		locs = append(locs, strings.TrimSpace(entry.Loc))
	}

	seen := make(map[string]bool)
	result := &SitemapResult{ProductURLs: []string{}}
	for _, loc := range locs {
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		result.TotalURLs++

		if !IsProductURL(loc) {
			continue
		}
		if len(result.ProductURLs) >= s.cfg.Scanner.MaxSitemapURLs {
			result.Truncated = true
			continue
		}
		result.ProductURLs = append(result.ProductURLs, loc)
	}

	return result, nil
}

var productURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/products?/`),
	regexp.MustCompile(`(?i)/items?/`),
	regexp.MustCompile(`(?i)/shop/`),
	regexp.MustCompile(`(?i)/store/`),
	regexp.MustCompile(`(?i)/buy/`),
	regexp.MustCompile(`(?i)/catalog/`),
	regexp.MustCompile(`(?i)/collections?/`),
	regexp.MustCompile(`(?i)/category/`),
	regexp.MustCompile(`(?i)/p/`),
	regexp.MustCompile(`(?i)/prod/`),
	regexp.MustCompile(`(?i)-p\d+`),
	regexp.MustCompile(`(?i)/[\w-]+\.html$`),
	regexp.MustCompile(`(?i)/[\w-]+-\d+$`),
}

var excludeURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/(about|contact|blog|news|faq|help|support|privacy|terms|policy)`),
	regexp.MustCompile(`(?i)\.(css|js|png|jpg|jpeg|gif|svg|pdf|zip)$`),
	regexp.MustCompile(`(?i)/(admin|api|login|register|checkout|cart)`),
}

// IsProductURL applies the product and exclusion URL patterns.
func IsProductURL(url string) bool {
	for _, pattern := range excludeURLPatterns {
		if pattern.MatchString(url) {
			return false
		}
	}
	for _, pattern := range productURLPatterns {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}

func (s *ScanService) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.Scanner.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return doc, nil
}

func (s *ScanService) fetchRaw(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.Scanner.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch sitemap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch sitemap: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read sitemap: %w", err)
	}

	return string(body), nil
}

// extractProduct pulls each field out of the document, trying high-trust
// sources first. Open Graph and schema.org markup score higher than
// selector guesses.
func (s *ScanService) extractProduct(doc *goquery.Document, sourceURL string) *ScanResult {
	result := &ScanResult{
		KeyFeatures: []string{},
		Images:      []string{},
		Confidence:  make(map[string]float64),
		SourceURL:   sourceURL,
		ScannedAt:   time.Now().UTC(),
	}

	result.ProductName, result.Confidence["product_name"] = extractName(doc)
	result.Description, result.Confidence["description"] = extractDescription(doc)
	result.Price, result.Confidence["price"] = extractPrice(doc)
	result.KeyFeatures, result.Confidence["key_features"] = extractFeatures(doc)
	result.Images, result.Confidence["images"] = extractImages(doc)

	result.FieldsFound = []string{}
	for _, field := range []string{"product_name", "description", "price", "key_features", "images"} {
		if result.Confidence[field] > 0 {
			result.FieldsFound = append(result.FieldsFound, field)
		}
	}

	return result
}

func extractName(doc *goquery.Document) (string, float64) {
	if v, ok := metaContent(doc, `meta[property="og:title"]`); ok {
		return v, 0.9
	}
	if v, ok := firstText(doc, `[itemprop="name"]`); ok {
		return v, 0.85
	}
	if v, ok := firstText(doc, "h1"); ok {
		return v, 0.7
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v, 0.4
	}
	return "", 0
}

func extractDescription(doc *goquery.Document) (string, float64) {
	if v, ok := metaContent(doc, `meta[property="og:description"]`); ok {
		return v, 0.9
	}
	if v, ok := metaContent(doc, `meta[name="description"]`); ok {
		return v, 0.8
	}
	if v, ok := firstText(doc, `[itemprop="description"]`); ok {
		return v, 0.75
	}
	if v, ok := firstText(doc, ".product-description, .description"); ok {
		return v, 0.5
	}
	return "", 0
}

var priceValuePattern = regexp.MustCompile(`\d[\d,]*(\.\d+)?`)

func extractPrice(doc *goquery.Document) (string, float64) {
	if v, ok := metaContent(doc, `meta[property="product:price:amount"], meta[property="og:price:amount"]`); ok {
		return v, 0.9
	}
	if node := doc.Find(`[itemprop="price"]`).First(); node.Length() > 0 {
		if content, exists := node.Attr("content"); exists && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content), 0.85
		}
		if match := priceValuePattern.FindString(node.Text()); match != "" {
			return match, 0.8
		}
	}
	if v, ok := firstText(doc, ".price, .product-price, .amount"); ok {
		if match := priceValuePattern.FindString(v); match != "" {
			return match, 0.5
		}
	}
	return "", 0
}

func extractFeatures(doc *goquery.Document) ([]string, float64) {
	features := []string{}
	confidence := 0.0

	selectors := []struct {
		query string
		score float64
	}{
		{".product-features li, .features li", 0.7},
		{`[itemprop="description"] li`, 0.6},
		{".product-description li, #description li", 0.5},
	}

	for _, sel := range selectors {
		doc.Find(sel.query).Each(func(_ int, li *goquery.Selection) {
			text := strings.TrimSpace(li.Text())
			if text == "" || len(text) > 200 || len(features) >= 8 {
				return
			}
			features = append(features, text)
		})
		if len(features) > 0 {
			confidence = sel.score
			break
		}
	}

	return features, confidence
}

func extractImages(doc *goquery.Document) ([]string, float64) {
	images := []string{}
	seen := make(map[string]bool)
	confidence := 0.0

	appendImage := func(src string) {
		src = strings.TrimSpace(src)
		if src == "" || seen[src] || !strings.HasPrefix(src, "http") || len(images) >= 8 {
			return
		}
		seen[src] = true
		images = append(images, src)
	}

	doc.Find(`meta[property="og:image"]`).Each(func(_ int, meta *goquery.Selection) {
		if content, exists := meta.Attr("content"); exists {
			appendImage(content)
		}
	})
	if len(images) > 0 {
		confidence = 0.9
	}

	doc.Find(`.product-images img, .product-gallery img, [itemprop="image"]`).Each(func(_ int, img *goquery.Selection) {
		if src, exists := img.Attr("src"); exists {
			appendImage(src)
		}
	})
	if confidence == 0 && len(images) > 0 {
		confidence = 0.6
	}

	return images, confidence
}

func metaContent(doc *goquery.Document, selector string) (string, bool) {
	content, exists := doc.Find(selector).First().Attr("content")
	content = strings.TrimSpace(content)
	return content, exists && content != ""
}

func firstText(doc *goquery.Document, selector string) (string, bool) {
	text := strings.TrimSpace(doc.Find(selector).First().Text())
	return text, text != ""
}

func (s *ScanService) cachedResult(ctx context.Context, url string) *ScanResult {
	if s.cache == nil {
		return nil
	}

	payload, err := s.cache.Get(ctx, scanCacheKey(url)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("Scan cache read failed")
		}
		return nil
	}

	var result ScanResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil
	}

	return &result
}

func (s *ScanService) storeResult(ctx context.Context, url string, result *ScanResult) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	ttl := time.Duration(s.cfg.Scanner.CacheTTL) * time.Minute
	if err := s.cache.Set(ctx, scanCacheKey(url), payload, ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Scan cache write failed")
	}
}

func scanCacheKey(url string) string {
	return "scan:" + utils.HashString(url)
}

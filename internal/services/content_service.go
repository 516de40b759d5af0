// internal/services/content_service.go
package services

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pageforge/pageforge-backend/internal/export"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

// ContentService produces SEO copy for a product. Output is deterministic for
// a given seed so drafts can be regenerated reproducibly.
type ContentService struct{}

type GenerateContentRequest struct {
	ProductName string   `json:"product_name" validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price,omitempty"`
	KeyFeatures []string `json:"key_features,omitempty"`
	Seed        *int64   `json:"seed,omitempty"`
}

type ContentSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GeneratedContent struct {
	SEODescription  string           `json:"seo_description"`
	FeatureSections []ContentSection `json:"feature_sections"`
	UseCases        []ContentSection `json:"use_cases"`
	SellingPoints   []string         `json:"selling_points"`
}

var seoDescriptionVariants = []string{
	"Discover the %s - %s Featuring %s, this premium product delivers exceptional value and performance. Shop now for the best deals and fast shipping.",
	"Transform your experience with %s. %s With %s, you get unmatched quality and reliability. Order today and see the difference!",
	"Experience the ultimate %s designed for modern needs. %s Key highlights include %s. Get yours now with free shipping and warranty protection.",
}

var featureBenefits = []string{
	"enhanced performance and reliability",
	"improved user experience and satisfaction",
	"advanced technology for superior results",
	"professional-grade quality and durability",
	"innovative design meets practical functionality",
}

var useCaseCategories = []string{
	"Professional Use",
	"Personal Projects",
	"Business Applications",
	"Creative Work",
	"Daily Activities",
}

func NewContentService() *ContentService {
	return &ContentService{}
}

func (s *ContentService) GenerateContent(req *GenerateContentRequest) (*GeneratedContent, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		// Derive a stable seed from the input so the same product always
		// gets the same copy.
		for _, b := range []byte(req.ProductName + "|" + req.Description) {
			seed = seed*31 + int64(b)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	return &GeneratedContent{
		SEODescription:  s.seoDescription(rng, req),
		FeatureSections: s.featureSections(req),
		UseCases:        s.useCases(req),
		SellingPoints:   s.sellingPoints(req),
	}, nil
}

func (s *ContentService) seoDescription(rng *rand.Rand, req *GenerateContentRequest) string {
	features := req.KeyFeatures
	if len(features) > 3 {
		features = features[:3]
	}
	featuresList := strings.Join(features, ", ")
	if featuresList == "" {
		featuresList = "premium craftsmanship"
	}

	variant := seoDescriptionVariants[rng.Intn(len(seoDescriptionVariants))]
	return fmt.Sprintf(variant, req.ProductName, req.Description, featuresList)
}

func (s *ContentService) featureSections(req *GenerateContentRequest) []ContentSection {
	sections := make([]ContentSection, 0, len(req.KeyFeatures))
	for i, feature := range req.KeyFeatures {
		benefit := featureBenefits[i%len(featureBenefits)]
		sections = append(sections, ContentSection{
			Title: feature,
			Description: fmt.Sprintf(
				"The %s in %s provides %s. This carefully engineered feature ensures you get maximum value from your investment.",
				strings.ToLower(feature), req.ProductName, benefit,
			),
		})
	}
	return sections
}

func (s *ContentService) useCases(req *GenerateContentRequest) []ContentSection {
	useCases := make([]ContentSection, 0, 3)
	for i, category := range useCaseCategories[:3] {
		highlight := "advanced features"
		if len(req.KeyFeatures) > 0 {
			highlight = strings.ToLower(req.KeyFeatures[i%len(req.KeyFeatures)])
		}
		useCases = append(useCases, ContentSection{
			Title: category,
			Description: fmt.Sprintf(
				"Perfect for %s, %s excels with its %s. Whether you're a beginner or expert, this product adapts to your needs and delivers consistent results.",
				strings.ToLower(category), req.ProductName, highlight,
			),
		})
	}
	return useCases
}

func (s *ContentService) sellingPoints(req *GenerateContentRequest) []string {
	points := []string{
		fmt.Sprintf("Premium Quality at Competitive Price - Get professional-grade %s without breaking the bank", req.ProductName),
		fmt.Sprintf("Proven Performance - Join thousands of satisfied customers who trust %s for their needs", req.ProductName),
		"Complete Solution - Everything you need in one package, saving you time and money",
		fmt.Sprintf("Expert Support - Our team is here to help you get the most from your %s", req.ProductName),
		"Risk-Free Purchase - 30-day money-back guarantee ensures your complete satisfaction",
	}

	// Lead with a price-specific point when a price is known.
	if req.Price != "" {
		price := export.Price(req.Price)
		if price.Amount() > 100 {
			points = append([]string{fmt.Sprintf(
				"Investment-Grade Value - At %s, you're getting enterprise-level quality that pays for itself",
				price.Display(),
			)}, points...)
		} else if price.Amount() > 0 {
			points = append([]string{fmt.Sprintf(
				"Unbeatable Value - Premium features at just %s makes this an easy choice",
				price.Display(),
			)}, points...)
		}
	}

	if len(points) > 4 {
		points = points[:4]
	}
	return points
}

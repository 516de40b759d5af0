// internal/services/content_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContentDeterministic(t *testing.T) {
	svc := NewContentService()
	seed := int64(42)
	req := &GenerateContentRequest{
		ProductName: "Trail Thermos",
		Description: "Keeps drinks hot for 12 hours.",
		Price:       "24.99",
		KeyFeatures: []string{"Vacuum Insulated", "Leak-Proof Lid", "BPA Free"},
		Seed:        &seed,
	}

	first, err := svc.GenerateContent(req)
	require.NoError(t, err)
	second, err := svc.GenerateContent(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateContentDerivedSeedIsStable(t *testing.T) {
	svc := NewContentService()
	req := &GenerateContentRequest{
		ProductName: "Trail Thermos",
		Description: "Keeps drinks hot for 12 hours.",
	}

	first, err := svc.GenerateContent(req)
	require.NoError(t, err)
	second, err := svc.GenerateContent(req)
	require.NoError(t, err)

	assert.Equal(t, first.SEODescription, second.SEODescription)
}

func TestGenerateContentSEODescription(t *testing.T) {
	svc := NewContentService()
	req := &GenerateContentRequest{
		ProductName: "Trail Thermos",
		Description: "Keeps drinks hot for 12 hours.",
		KeyFeatures: []string{"Vacuum Insulated", "Leak-Proof Lid", "BPA Free", "Wide Mouth"},
	}

	content, err := svc.GenerateContent(req)
	require.NoError(t, err)

	assert.Contains(t, content.SEODescription, "Trail Thermos")
	assert.Contains(t, content.SEODescription, "Vacuum Insulated, Leak-Proof Lid, BPA Free")
	// Only the first three features feed the summary.
	assert.NotContains(t, content.SEODescription, "Wide Mouth")
}

func TestGenerateContentFeatureSections(t *testing.T) {
	svc := NewContentService()
	req := &GenerateContentRequest{
		ProductName: "Trail Thermos",
		KeyFeatures: []string{"Vacuum Insulated", "Leak-Proof Lid"},
	}

	content, err := svc.GenerateContent(req)
	require.NoError(t, err)

	require.Len(t, content.FeatureSections, 2)
	assert.Equal(t, "Vacuum Insulated", content.FeatureSections[0].Title)
	assert.Contains(t, content.FeatureSections[0].Description, "vacuum insulated")
	assert.Contains(t, content.FeatureSections[1].Description, "Trail Thermos")

	require.Len(t, content.UseCases, 3)
	assert.Equal(t, "Professional Use", content.UseCases[0].Title)
}

func TestGenerateContentSellingPointsPriceTiers(t *testing.T) {
	svc := NewContentService()

	expensive, err := svc.GenerateContent(&GenerateContentRequest{
		ProductName: "Studio Monitor",
		Price:       "299.00",
	})
	require.NoError(t, err)
	require.Len(t, expensive.SellingPoints, 4)
	assert.True(t, strings.HasPrefix(expensive.SellingPoints[0], "Investment-Grade Value"))
	assert.Contains(t, expensive.SellingPoints[0], "$299.00")

	cheap, err := svc.GenerateContent(&GenerateContentRequest{
		ProductName: "Phone Stand",
		Price:       "12.50",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cheap.SellingPoints[0], "Unbeatable Value"))
	assert.Contains(t, cheap.SellingPoints[0], "$12.50")

	unpriced, err := svc.GenerateContent(&GenerateContentRequest{
		ProductName: "Phone Stand",
	})
	require.NoError(t, err)
	require.Len(t, unpriced.SellingPoints, 4)
	assert.True(t, strings.HasPrefix(unpriced.SellingPoints[0], "Premium Quality"))
}

func TestGenerateContentRequiresProductName(t *testing.T) {
	svc := NewContentService()

	_, err := svc.GenerateContent(&GenerateContentRequest{})
	assert.Error(t, err)
}

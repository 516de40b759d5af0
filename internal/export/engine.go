// internal/export/engine.go

// Package export renders a product record into a complete static document for
// a target hosting platform. Rendering is a pure function of the inputs: no
// I/O, no randomness, no state between calls, so concurrent use needs no
// coordination. Each platform dialect lives in its own template file to keep
// the dialects from leaking into each other.
package export

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"
	"text/template"
)

const (
	defaultHeadTitle   = "Product"
	defaultTitle       = "Product Name"
	defaultDescription = "Product description goes here."
	// Placeholder gallery images, matching the aspect ratio each platform's
	// stylesheet expects.
	placeholderImageWide   = "https://via.placeholder.com/600x400"
	placeholderImageSquare = "https://via.placeholder.com/600x600"
)

// The documents embed Liquid ({{ }}, {% %}) and PHP, so the Go templates use
// bracket delimiters to stay out of their way.
var (
	genericTmpl     = template.Must(template.New("generic").Delims("[[", "]]").Parse(genericDocument))
	shopifyTmpl     = template.Must(template.New("shopify").Delims("[[", "]]").Parse(shopifyDocument))
	woocommerceTmpl = template.Must(template.New("woocommerce").Delims("[[", "]]").Parse(woocommerceDocument))
)

// binding is the shared data-binding step: every field is already escaped for
// the context it is inserted into, so the templates emit values verbatim.
type binding struct {
	HeadTitle      string
	Title          string
	Description    string
	PriceDisplay   string
	Images         []string
	Features       []string
	Specifications []Specification

	// WooCommerce-only: values embedded inside PHP string literals.
	PHPImages      []string
	PHPDescription string
}

func bind(p *Product) binding {
	b := binding{
		HeadTitle:    defaultHeadTitle,
		Title:        defaultTitle,
		Description:  defaultDescription,
		PriceDisplay: p.Price.Display(),
	}

	if name := strings.TrimSpace(p.ProductName); name != "" {
		b.HeadTitle = html.EscapeString(name)
		b.Title = html.EscapeString(name)
	}
	if desc := strings.TrimSpace(p.Description); desc != "" {
		b.Description = html.EscapeString(desc)
	}

	for _, img := range p.Images {
		if img = strings.TrimSpace(img); img == "" {
			continue
		}
		b.Images = append(b.Images, html.EscapeString(img))
		b.PHPImages = append(b.PHPImages, phpSingleQuoted(img))
	}
	for _, f := range p.Features {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		b.Features = append(b.Features, html.EscapeString(f))
	}
	for _, s := range p.Specifications {
		if strings.TrimSpace(s.Name) == "" && strings.TrimSpace(s.Value) == "" {
			continue
		}
		b.Specifications = append(b.Specifications, Specification{
			Name:  html.EscapeString(s.Name),
			Value: html.EscapeString(s.Value),
		})
	}

	b.PHPDescription = phpDoubleQuoted(b.Description)
	return b
}

// phpSingleQuoted escapes a value for inclusion in a single-quoted PHP string.
func phpSingleQuoted(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// phpDoubleQuoted escapes a value for inclusion in a double-quoted PHP string,
// where backslashes, quotes and variable interpolation are all live.
func phpDoubleQuoted(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, `$`, `\$`)
}

// Generate renders the full document for a platform. Output for a fixed
// (product, platform) pair is byte-identical across calls.
func Generate(p *Product, platform Platform) (string, error) {
	if p == nil {
		return "", ErrInvalidProduct
	}

	var tmpl *template.Template
	switch platform {
	case PlatformGeneric:
		tmpl = genericTmpl
	case PlatformShopify:
		tmpl = shopifyTmpl
	case PlatformWooCommerce:
		tmpl = woocommerceTmpl
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, bind(p)); err != nil {
		return "", fmt.Errorf("render %s document: %w", platform, err)
	}
	return buf.String(), nil
}

var slugSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// Filename suggests a download name: {slug(productName)|"product"}-{platform}.{ext}.
func Filename(p *Product, platform Platform) (string, error) {
	info, err := GetPlatformInfo(platform)
	if err != nil {
		return "", err
	}

	slug := "product"
	if p != nil {
		if s := strings.Trim(slugSanitizer.ReplaceAllString(strings.ToLower(p.ProductName), "-"), "-"); s != "" {
			slug = s
		}
	}
	return fmt.Sprintf("%s-%s.%s", slug, platform, info.FileExtension), nil
}

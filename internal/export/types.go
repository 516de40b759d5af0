// internal/export/types.go
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidProduct is returned when the supplied product is structurally
	// unusable (nil). Missing optional fields are not an error; they degrade
	// to documented placeholders.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrUnknownPlatform is returned for any platform outside the closed
	// enumeration. This is a caller programming error and is fatal to the
	// request.
	ErrUnknownPlatform = errors.New("unknown platform")
)

type Platform string

const (
	PlatformGeneric     Platform = "generic"
	PlatformShopify     Platform = "shopify"
	PlatformWooCommerce Platform = "woocommerce"
)

// ParsePlatform validates a raw platform string against the closed enumeration.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformGeneric:
		return PlatformGeneric, nil
	case PlatformShopify:
		return PlatformShopify, nil
	case PlatformWooCommerce:
		return PlatformWooCommerce, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
}

type PlatformInfo struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	FileExtension string `json:"file_extension"`
}

var platformInfos = map[Platform]PlatformInfo{
	PlatformGeneric: {
		Name:          "Generic HTML",
		Description:   "Clean, semantic HTML with embedded CSS",
		FileExtension: "html",
	},
	PlatformShopify: {
		Name:          "Shopify Liquid",
		Description:   "Shopify-compatible template with Liquid syntax",
		FileExtension: "liquid",
	},
	PlatformWooCommerce: {
		Name:          "WooCommerce PHP",
		Description:   "WordPress/WooCommerce template with PHP",
		FileExtension: "php",
	},
}

// GetPlatformInfo returns the fixed metadata record for a platform.
func GetPlatformInfo(platform Platform) (PlatformInfo, error) {
	info, ok := platformInfos[platform]
	if !ok {
		return PlatformInfo{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
	return info, nil
}

// Platforms lists the supported platforms in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformGeneric, PlatformShopify, PlatformWooCommerce}
}

// Price carries the raw price value from the editing form. JSON numbers,
// strings and null are all accepted; anything unparseable renders as 0.00.
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Price(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Price(n.String())
		return nil
	}

	// Wrong JSON shape degrades the same way an unparseable string does.
	*p = ""
	return nil
}

// Amount parses the raw value, tolerating currency symbols and thousands
// separators. Unparseable values are 0.
func (p Price) Amount() float64 {
	s := strings.TrimSpace(string(p))
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// Display formats the price as a two-decimal dollar amount, e.g. "$24.99".
func (p Price) Display() string {
	return fmt.Sprintf("$%.2f", p.Amount())
}

type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product is the input record for one export call. It is read-only for the
// duration of the call; the engine holds no state between calls.
type Product struct {
	ProductName    string          `json:"product_name"`
	Description    string          `json:"description"`
	Price          Price           `json:"price"`
	Features       []string        `json:"features"`
	Specifications []Specification `json:"specifications"`
	Images         []string        `json:"images"`
}

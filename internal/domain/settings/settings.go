package settings

import (
	"context"
	"encoding/json"
)

// Setting keys stored in app_settings. Values are JSON documents.
const (
	KeySupplierInfo    = "supplier_info"
	KeyRecipientInfo   = "recipient_info"
	KeyDefaultArticles = "default_articles"
)

// SupplierInfo is the sender address printed on every delivery note,
// including the plant passport number required for horticultural goods.
type SupplierInfo struct {
	Name         string `json:"name"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Pflanzenpass string `json:"pflanzenpass"`
}

// RecipientInfo is the receiving wholesaler's address. LogoURL optionally
// points at a logo image that gets inlined into rendered documents.
type RecipientInfo struct {
	Company string `json:"company"`
	Street  string `json:"street"`
	City    string `json:"city"`
	LogoURL string `json:"logo_url,omitempty"`
}

// AppSettings bundles all known settings for the combined settings view.
type AppSettings struct {
	SupplierInfo    SupplierInfo  `json:"supplier_info"`
	RecipientInfo   RecipientInfo `json:"recipient_info"`
	DefaultArticles []string      `json:"default_articles"`
}

// DefaultSettings returns the seed values used until the user saves their
// own. They match the initial production data of the legacy system.
func DefaultSettings() AppSettings {
	return AppSettings{
		SupplierInfo: SupplierInfo{
			Name:         "Ralf Hitscher",
			Street:       "Süderquerweg 484",
			City:         "21037 Hamburg",
			Pflanzenpass: "DE-HH1-110071",
		},
		RecipientInfo: RecipientInfo{
			Company: "Loest Blumengrosshandel e.K.",
			Street:  "Kirchwerder Marschbahndamm 300",
			City:    "21037 Hamburg",
		},
		DefaultArticles: []string{},
	}
}

// IsValidKey reports whether key names a known setting.
func IsValidKey(key string) bool {
	switch key {
	case KeySupplierInfo, KeyRecipientInfo, KeyDefaultArticles:
		return true
	}
	return false
}

// Repository defines the interface for settings persistence. Values are
// opaque JSON; typed decoding happens in the application layer.
type Repository interface {
	// Get returns the stored value for key, or shared.ErrNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// GetAll returns every stored setting keyed by setting key.
	GetAll(ctx context.Context) (map[string]json.RawMessage, error)

	// Upsert stores value under key, inserting or updating as needed.
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}

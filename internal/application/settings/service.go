package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ssteiger/lieferschein-hitscher/internal/domain/settings"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/shared"
)

// SettingsService handles application settings operations. Reads fall back
// to the seed defaults for keys that were never saved.
type SettingsService struct {
	repo settings.Repository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo settings.Repository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetAll returns all settings, merging stored values over the defaults
func (s *SettingsService) GetAll(ctx context.Context) (settings.AppSettings, error) {
	result := settings.DefaultSettings()

	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return result, err
	}

	if raw, ok := stored[settings.KeySupplierInfo]; ok {
		if err := json.Unmarshal(raw, &result.SupplierInfo); err != nil {
			return result, shared.ErrPersistenceFailure
		}
	}
	if raw, ok := stored[settings.KeyRecipientInfo]; ok {
		if err := json.Unmarshal(raw, &result.RecipientInfo); err != nil {
			return result, shared.ErrPersistenceFailure
		}
	}
	if raw, ok := stored[settings.KeyDefaultArticles]; ok {
		if err := json.Unmarshal(raw, &result.DefaultArticles); err != nil {
			return result, shared.ErrPersistenceFailure
		}
	}

	return result, nil
}

// GetSupplierInfo returns the supplier address block, defaulted when unset
func (s *SettingsService) GetSupplierInfo(ctx context.Context) (settings.SupplierInfo, error) {
	info := settings.DefaultSettings().SupplierInfo

	raw, err := s.repo.Get(ctx, settings.KeySupplierInfo)
	if errors.Is(err, shared.ErrNotFound) {
		return info, nil
	}
	if err != nil {
		return info, err
	}

	if err := json.Unmarshal(raw, &info); err != nil {
		return info, shared.ErrPersistenceFailure
	}
	return info, nil
}

// GetRecipientInfo returns the recipient address block, defaulted when unset
func (s *SettingsService) GetRecipientInfo(ctx context.Context) (settings.RecipientInfo, error) {
	info := settings.DefaultSettings().RecipientInfo

	raw, err := s.repo.Get(ctx, settings.KeyRecipientInfo)
	if errors.Is(err, shared.ErrNotFound) {
		return info, nil
	}
	if err != nil {
		return info, err
	}

	if err := json.Unmarshal(raw, &info); err != nil {
		return info, shared.ErrPersistenceFailure
	}
	return info, nil
}

// GetDefaultArticles returns the article names seeding new note drafts
func (s *SettingsService) GetDefaultArticles(ctx context.Context) ([]string, error) {
	articles := settings.DefaultSettings().DefaultArticles

	raw, err := s.repo.Get(ctx, settings.KeyDefaultArticles)
	if errors.Is(err, shared.ErrNotFound) {
		return articles, nil
	}
	if err != nil {
		return articles, err
	}

	if err := json.Unmarshal(raw, &articles); err != nil {
		return articles, shared.ErrPersistenceFailure
	}
	return articles, nil
}

// Get returns the raw stored value for a known key, or its default
func (s *SettingsService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if !settings.IsValidKey(key) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown setting key: "+key)
	}

	raw, err := s.repo.Get(ctx, key)
	if errors.Is(err, shared.ErrNotFound) {
		return s.defaultValue(key)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Put validates and stores a setting value under a known key
func (s *SettingsService) Put(ctx context.Context, key string, value json.RawMessage) error {
	if !settings.IsValidKey(key) {
		return shared.NewDomainError("INVALID_INPUT", "Unknown setting key: "+key)
	}
	if err := s.validateValue(key, value); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, key, value)
}

// validateValue checks that the document decodes into the key's shape
func (s *SettingsService) validateValue(key string, value json.RawMessage) error {
	var err error
	switch key {
	case settings.KeySupplierInfo:
		var info settings.SupplierInfo
		err = json.Unmarshal(value, &info)
	case settings.KeyRecipientInfo:
		var info settings.RecipientInfo
		err = json.Unmarshal(value, &info)
	case settings.KeyDefaultArticles:
		var articles []string
		err = json.Unmarshal(value, &articles)
	}
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", "Setting value does not match the shape of "+key)
	}
	return nil
}

// defaultValue marshals the seed default for a key
func (s *SettingsService) defaultValue(key string) (json.RawMessage, error) {
	defaults := settings.DefaultSettings()
	var v interface{}
	switch key {
	case settings.KeySupplierInfo:
		v = defaults.SupplierInfo
	case settings.KeyRecipientInfo:
		v = defaults.RecipientInfo
	case settings.KeyDefaultArticles:
		v = defaults.DefaultArticles
	}
	return json.Marshal(v)
}

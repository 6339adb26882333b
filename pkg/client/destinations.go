package client

import (
	"context"
	"fmt"
)

// DestinationService provides access to the destination reference data
type DestinationService struct {
	client *Client
}

// List returns the medical-travel destinations
func (s *DestinationService) List(ctx context.Context) ([]Destination, error) {
	var destinations []Destination
	if err := s.client.doRequest(ctx, "GET", "/api/v1/destinations", nil, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

// TranslationService provides access to the translation catalogs
type TranslationService struct {
	client *Client
}

// LocaleInfo lists the available locales and the fallback default
type LocaleInfo struct {
	Locales []string `json:"locales"`
	Default string   `json:"default"`
}

// Locales returns the available locale codes
func (s *TranslationService) Locales(ctx context.Context) (*LocaleInfo, error) {
	var info LocaleInfo
	if err := s.client.doRequest(ctx, "GET", "/api/v1/i18n", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Catalog returns a locale's flattened key/value pairs
func (s *TranslationService) Catalog(ctx context.Context, locale string) (map[string]string, error) {
	var catalog map[string]string
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/i18n/%s", locale), nil, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Resolve resolves a single dot-separated translation key
func (s *TranslationService) Resolve(ctx context.Context, locale, key string) (string, error) {
	var resolved struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/api/v1/i18n/%s/resolve?key=%s", locale, key)
	if err := s.client.doRequest(ctx, "GET", path, nil, &resolved); err != nil {
		return "", err
	}
	return resolved.Message, nil
}

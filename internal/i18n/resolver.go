// Package i18n resolves dot-separated translation keys against embedded
// locale catalogs. Lookups fall back to the default locale when a key is
// missing, and finally to the key itself so callers always get a string.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/trustmed/trustmed/internal/pkg/errors"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale is used when a requested locale is unknown and as the
// fallback catalog for missing keys.
const DefaultLocale = "en"

// Resolver holds the parsed locale catalogs.
type Resolver struct {
	catalogs map[string]map[string]string
}

// NewResolver parses every embedded locale file. The default locale must be
// present.
func NewResolver() (*Resolver, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, errors.Internal("failed to read embedded locales", err)
	}

	catalogs := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		locale := strings.TrimSuffix(name, ".json")

		raw, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, errors.Internal(fmt.Sprintf("failed to read locale %s", locale), err)
		}

		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, errors.Internal(fmt.Sprintf("failed to parse locale %s", locale), err)
		}

		flat := make(map[string]string)
		flatten("", tree, flat)
		catalogs[locale] = flat
	}

	if _, ok := catalogs[DefaultLocale]; !ok {
		return nil, errors.Internal(fmt.Sprintf("default locale %q is missing", DefaultLocale), nil)
	}
	return &Resolver{catalogs: catalogs}, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Resolve returns the translation for a dot-separated key. An unknown locale
// resolves against the default locale. A key missing from the requested
// locale falls back to the default locale, and a key missing everywhere
// resolves to the key itself.
func (r *Resolver) Resolve(locale, key string) string {
	if catalog, ok := r.catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := r.catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Has reports whether the locale is available.
func (r *Resolver) Has(locale string) bool {
	_, ok := r.catalogs[locale]
	return ok
}

// Locales returns the available locale codes in lexical order.
func (r *Resolver) Locales() []string {
	locales := make([]string, 0, len(r.catalogs))
	for locale := range r.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Keys returns every flattened key of the locale in lexical order. Unknown
// locales return nil.
func (r *Resolver) Keys(locale string) []string {
	catalog, ok := r.catalogs[locale]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Catalog returns a copy of the locale's flattened key/value pairs. Unknown
// locales return nil.
func (r *Resolver) Catalog(locale string) map[string]string {
	catalog, ok := r.catalogs[locale]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out
}

package i18n

import (
	"testing"
)

func TestNewResolver(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	locales := r.Locales()
	if len(locales) != 2 {
		t.Fatalf("Locales() = %v, want [en es]", locales)
	}
	if locales[0] != "en" || locales[1] != "es" {
		t.Errorf("Locales() = %v, want [en es]", locales)
	}
}

func TestLocalesShareKeyTree(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	base := r.Keys(DefaultLocale)
	if len(base) == 0 {
		t.Fatal("default locale has no keys")
	}

	for _, locale := range r.Locales() {
		keys := r.Keys(locale)
		if len(keys) != len(base) {
			t.Fatalf("locale %s has %d keys, want %d", locale, len(keys), len(base))
		}
		for i := range base {
			if keys[i] != base[i] {
				t.Errorf("locale %s key mismatch at %d: got %s, want %s", locale, i, keys[i], base[i])
			}
		}
	}
}

func TestResolve(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{
			name:   "english key",
			locale: "en",
			key:    "nav.home",
			want:   "Home",
		},
		{
			name:   "spanish key",
			locale: "es",
			key:    "nav.home",
			want:   "Inicio",
		},
		{
			name:   "nested key",
			locale: "es",
			key:    "home.hero.title",
			want:   "Atención Médica Confiable Mundial",
		},
		{
			name:   "unknown locale falls back to default",
			locale: "fr",
			key:    "nav.home",
			want:   "Home",
		},
		{
			name:   "missing key resolves to itself",
			locale: "en",
			key:    "nav.doesNotExist",
			want:   "nav.doesNotExist",
		},
		{
			name:   "missing key in unknown locale resolves to itself",
			locale: "fr",
			key:    "totally.made.up",
			want:   "totally.made.up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.locale, tt.key); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestHas(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	if !r.Has("en") {
		t.Error("Has(en) = false, want true")
	}
	if !r.Has("es") {
		t.Error("Has(es) = false, want true")
	}
	if r.Has("fr") {
		t.Error("Has(fr) = true, want false")
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	first := r.Catalog("en")
	first["nav.home"] = "mutated"

	if got := r.Resolve("en", "nav.home"); got != "Home" {
		t.Errorf("Resolve after catalog mutation = %q, want Home", got)
	}
	if r.Catalog("nope") != nil {
		t.Error("Catalog(nope) != nil, want nil")
	}
}

package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//go:embed *.json
var localeFS embed.FS

// DefaultLang is used when no locale is requested or a key is missing
const DefaultLang = "es"

// SupportedLangs lists the locales shipped with the application
var SupportedLangs = []string{"es", "en"}

// locales holds flattened keys per language: "es" -> "nav.brigades" -> "Brigadas"
var (
	locales = map[string]map[string]string{}
	mu      sync.RWMutex
)

type contextKey string

// LocaleContextKey carries the request language set by the locale middleware
const LocaleContextKey contextKey = "locale"

// IsSupported reports whether lang has a shipped locale
func IsSupported(lang string) bool {
	for _, l := range SupportedLangs {
		if l == lang {
			return true
		}
	}
	return false
}

// Load reads the embedded locale files. Every locale must carry the same keys
// as the default one; the previous translations stay active on error.
func Load() error {
	loaded, err := readLocales(localeFS)
	if err != nil {
		return err
	}
	if err := checkKeys(loaded); err != nil {
		return err
	}

	mu.Lock()
	locales = loaded
	mu.Unlock()
	return nil
}

func readLocales(fsys fs.FS) (map[string]map[string]string, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	loaded := make(map[string]map[string]string, len(files))
	for _, name := range files {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		var nested map[string]interface{}
		if err := json.Unmarshal(content, &nested); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}

		lang := strings.TrimSuffix(path.Base(name), ".json")
		flat := make(map[string]string)
		flatten("", nested, flat)
		loaded[lang] = flat
		zap.L().Debug("locale loaded", zap.String("lang", lang), zap.Int("keys", len(flat)))
	}
	return loaded, nil
}

// checkKeys reports keys of the default locale missing from another locale
func checkKeys(loaded map[string]map[string]string) error {
	base, ok := loaded[DefaultLang]
	if !ok {
		return fmt.Errorf("default locale %q not found", DefaultLang)
	}
	for lang, keys := range loaded {
		var missing []string
		for key := range base {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return fmt.Errorf("locale %s is missing keys: %s", lang, strings.Join(missing, ", "))
		}
	}
	return nil
}

// flatten turns nested objects into dot-notation keys
func flatten(prefix string, nested map[string]interface{}, result map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch child := v.(type) {
		case map[string]interface{}:
			flatten(key, child, result)
		case string:
			result[key] = child
		default:
			result[key] = fmt.Sprint(child)
		}
	}
}

// T translates key for the context locale. Missing keys fall back to the
// default language, then to the key itself. {name} placeholders are replaced from args.
func T(ctx context.Context, key string, args ...map[string]interface{}) string {
	return Translate(GetLocale(ctx), key, args...)
}

// Translate translates key for an explicit language
func Translate(lang, key string, args ...map[string]interface{}) string {
	mu.RLock()
	text, ok := locales[lang][key]
	if !ok && lang != DefaultLang {
		text, ok = locales[DefaultLang][key]
	}
	mu.RUnlock()

	if !ok {
		return key
	}
	return format(text, args...)
}

// format replaces {var} placeholders in one pass; substituted values are not re-expanded
func format(text string, args ...map[string]interface{}) string {
	if len(args) == 0 || len(args[0]) == 0 {
		return text
	}
	pairs := make([]string, 0, 2*len(args[0]))
	for k, v := range args[0] {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// GetLocale returns the request language, DefaultLang when unset
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLang
	}
	if lang, ok := ctx.Value(LocaleContextKey).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

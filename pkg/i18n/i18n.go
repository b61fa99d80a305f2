// Package i18n, landing page metinleri ve hata mesajları için çoklu dil desteği sağlar.
//
// Dil şu sırayla belirlenir:
//  1. ?lang= query parametresi
//  2. Accept-Language HTTP header'ı
//  3. Varsayılan dil (pt)
//
// Kullanım:
//
//	localizer := i18n.NewLocalizer("pt")
//	msg := localizer.T("subscription.emailInvalid")
//	// → "Digite um email válido"
package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"slices"
	"strings"
	"sync"
)

// SupportedLanguages — desteklenen dil kodları.
var SupportedLanguages = []string{"pt", "en", "tr"}

// DefaultLanguage — varsayılan dil. Etkinlik Brezilya'da, form Portekizce açılır.
const DefaultLanguage = "pt"

// translations: map[lang]map[key]value. Başlangıçta bir kez yüklenir, sonra sadece okunur.
var (
	translations map[string]map[string]string
	loadOnce     sync.Once
	loadErr      error
)

// Load, çeviri dosyalarını fs.FS'ten yükler (pt.json, en.json, tr.json).
// Birden fazla çağrı güvenlidir — sadece ilki çalışır, sonraki çağrılar
// ilk çağrının sonucunu döner.
func Load(localesFS fs.FS) error {
	loadOnce.Do(func() {
		loaded := make(map[string]map[string]string)

		for _, lang := range SupportedLanguages {
			fileName := lang + ".json"

			data, err := fs.ReadFile(localesFS, fileName)
			if err != nil {
				loadErr = fmt.Errorf("failed to read translation file %s: %w", fileName, err)
				return
			}

			var nested map[string]any
			if err := json.Unmarshal(data, &nested); err != nil {
				loadErr = fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
				return
			}

			flat := make(map[string]string)
			flattenMap("", nested, flat)
			loaded[lang] = flat

			log.Printf("[i18n] loaded %d keys for language: %s", len(flat), lang)
		}

		translations = loaded
	})

	return loadErr
}

// Localizer, belirli bir dil için çeviri yapan struct.
type Localizer struct {
	lang string
}

// NewLocalizer, belirli bir dil için Localizer oluşturur.
// Desteklenmeyen dil verilirse varsayılana düşer.
func NewLocalizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang}
}

// Lang, localizer'ın dil kodunu döner (<html lang="..."> için).
func (l *Localizer) Lang() string {
	return l.lang
}

// T, çeviri anahtarına karşılık gelen metni döner.
// Anahtar bulunamazsa → varsayılan dile düşer, orada da yoksa anahtarın kendisi.
func (l *Localizer) T(key string) string {
	if msg, ok := translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// TWithParams, {{param}} yer tutucularını değerlerle değiştirir.
//
//	localizer.TWithParams("subscription.rateLimited", map[string]string{"retry": "45 s"})
func (l *Localizer) TWithParams(key string, params map[string]string) string {
	msg := l.T(key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}

// DetectLanguage, Accept-Language header'ından en uygun dili belirler.
// Header formatı: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7"
// q değerleri yok sayılır — tarayıcılar zaten tercih sırasıyla gönderir.
func DetectLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}

	for _, part := range strings.Split(acceptLanguage, ",") {
		tag, _, _ := strings.Cut(part, ";")
		base, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
		lang := strings.ToLower(base)

		if isSupported(lang) {
			return lang
		}
	}

	return DefaultLanguage
}

type ctxKey struct{}

// NewContext, localizer'ı request context'ine ekler.
func NewContext(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext, context'teki localizer'ı döner; yoksa varsayılan dil.
func FromContext(ctx context.Context) *Localizer {
	if l, ok := ctx.Value(ctxKey{}).(*Localizer); ok && l != nil {
		return l
	}
	return NewLocalizer(DefaultLanguage)
}

func isSupported(lang string) bool {
	return slices.Contains(SupportedLanguages, lang)
}

// flattenMap, nested JSON'u "dot notation" key'lere dönüştürür.
// {"subscription": {"title": "Inscrição"}} → {"subscription.title": "Inscrição"}
func flattenMap(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flattenMap(key, val, dst)
		}
	}
}

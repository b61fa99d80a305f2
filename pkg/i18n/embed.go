// Package i18n embed dosyası — çeviri JSON dosyalarını binary'ye gömer.
package i18n

import (
	"embed"
	"io/fs"
)

// EmbeddedLocales, locales/ dizinindeki JSON dosyalarını içerir.
//
//go:embed locales/*.json
var EmbeddedLocales embed.FS

// Locales, locales/ alt dizinini kök olarak döner — Load'a doğrudan verilebilir.
func Locales() fs.FS {
	sub, err := fs.Sub(EmbeddedLocales, "locales")
	if err != nil {
		// "locales" derleme zamanında gömülü — buraya düşmek build hatasıdır.
		panic(err)
	}
	return sub
}

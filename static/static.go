// Package static, landing page'in CSS ve görsel dosyalarını binary'ye gömer.
//
// Dosyalar GET /static/... altında servis edilir. Deploy edilen binary harici
// dosyaya ihtiyaç duymaz.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

// AssetsFS, assets/ dizinindeki dosyaları içerir.
//
//go:embed assets
var AssetsFS embed.FS

// Handler, gömülü dosyaları servis eden handler döner.
// prefix: route prefix'i (ör: "/static/"), StripPrefix ile çıkarılır.
//
// Dizin listelemesi kapalıdır — sadece dosya isteklerine yanıt verilir.
func Handler(prefix string) http.Handler {
	sub, err := fs.Sub(AssetsFS, "assets")
	if err != nil {
		panic(err)
	}

	files := http.FileServerFS(sub)
	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	}))
}

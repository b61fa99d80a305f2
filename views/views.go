// Package views, landing server'ın HTML sayfalarını render eder.
//
// Şablonlar binary'ye gömülüdür. Her sayfa layout + ranking partial + kendi
// "content" bloğundan oluşan ayrı bir *template.Template'tir; "content"
// isim çakışması bu yüzden sorun olmaz.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg/i18n"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Sayfa isimleri.
const (
	PageHome   = "home"
	PageInvite = "invite"
	PageError  = "error"
)

var pages = []string{PageHome, PageInvite, PageError}

var funcs = template.FuncMap{
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
}

// Page, her sayfanın ortak verisi.
type Page struct {
	Loc       *i18n.Localizer
	CSRFField template.HTML
}

// HomeData, landing page (kayıt formu).
//
// Action formun post edileceği URL — ?referrer= burada taşınır.
// Errors: alan adı → çevrilmiş hata mesajı.
type HomeData struct {
	Page
	Action    string
	Name      string
	Email     string
	Errors    map[string]string
	FormError string
}

// InviteData, kayıt sonrası davet sayfası.
// Stats nil ise StatsError gösterilir; Ranking için de aynısı.
type InviteData struct {
	Page
	InviteURL    string
	Stats        *models.InviteStats
	StatsError   string
	Ranking      []models.RankingEntry
	RankingError string
}

// ErrorData, hata sayfası.
type ErrorData struct {
	Page
	Status  int
	Message string
}

// Renderer, parse edilmiş sayfa şablonlarını tutar. Goroutine-safe.
type Renderer struct {
	pages map[string]*template.Template
}

// New, tüm sayfa şablonlarını parse eder. Hatalı şablon başlangıçta yakalanır.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}

	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/ranking.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render, sayfayı önce buffer'a yazar, sonra status ile gönderir.
// Şablon hatası yarım HTML yerine 500 döner.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		log.Printf("[views] unknown page %q", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("[views] failed to render %s: %v", page, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

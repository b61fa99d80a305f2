// Package models — Subscription domain modeli.
//
// SubscribeRequest landing page formundan (veya JSON API'den) gelen kayıt
// isteğidir. Validasyon go-playground/validator struct tag'leri ile yapılır;
// hata mesajları i18n anahtarı olarak döner, çeviri handler katmanında yapılır.
package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/akinalp/devstage/pkg"
)

// Alan bazlı hata mesajlarının i18n anahtarları.
const (
	MsgNameInvalid  = "subscription.nameInvalid"
	MsgEmailInvalid = "subscription.emailInvalid"
)

// fieldMessages: validasyon hatası → i18n anahtarı. Alan başına tek mesaj,
// hangi kural (required/min/email) patlarsa patlasın.
var fieldMessages = map[string]string{
	"name":  MsgNameInvalid,
	"email": MsgEmailInvalid,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Hata raporunda struct field adı yerine json adı kullanılsın ("Name" → "name").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SubscribeRequest, etkinliğe kayıt isteği.
//
// Referrer opsiyoneldir: landing page'e ?referrer=<subscriberId> ile gelen
// ziyaretçinin kim tarafından davet edildiğini taşır. Lokal olarak doğrulanmaz,
// upstream'e olduğu gibi iletilir.
type SubscribeRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	Referrer *string `json:"referrer,omitempty" validate:"-"`
}

// Normalize, baştaki/sondaki boşlukları temizler; boş referrer nil olur.
// Validate'ten önce çağrılır: " a" kısa isim sayılır, " x@y.com" geçerli email'dir.
func (r *SubscribeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if r.Referrer != nil {
		ref := strings.TrimSpace(*r.Referrer)
		if ref == "" {
			r.Referrer = nil
		} else {
			r.Referrer = &ref
		}
	}
}

// Validate, tüm alanları kontrol eder ve geçersiz alanların hepsini birlikte raporlar.
// Dönen hata *pkg.ValidationError'dır (errors.Is(err, pkg.ErrBadRequest) == true).
func (r *SubscribeRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(pkg.FieldErrors, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			fields[fe.Field()] = msg
		}
	}
	return &pkg.ValidationError{Fields: fields}
}

// Subscription, başarılı kaydın sonucu.
// SubscriberID upstream tarafından üretilen opak kimliktir.
type Subscription struct {
	SubscriberID string `json:"subscriber_id"`
}

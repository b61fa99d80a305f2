// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları döner (genelde %w ile wrap edilmiş), handler yakalar.
var (
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrTooManyRequests = errors.New("too many requests")
	ErrUpstream        = errors.New("upstream unavailable")
	ErrInternal        = errors.New("internal error")
)

// FieldErrors, form/JSON validasyonunda alan bazlı hata mesajlarını taşır.
// Key: alan adı ("name", "email"), Value: i18n anahtarı ("subscription.nameInvalid").
//
// Handler katmanı i18n anahtarlarını kullanıcının diline çevirir;
// service katmanı dil bilmez.
type FieldErrors map[string]string

// ValidationError, bir veya daha fazla alan geçersiz olduğunda döner.
// errors.Is(err, ErrBadRequest) true döner — Unwrap sayesinde.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}

// AsValidationError, error chain'inde ValidationError varsa onu döner.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Package email, kayıt sonrası gönderilen hoş geldin (davet linki) email'i için
// soyutlama katmanı sağlar.
//
// WelcomeSender interface'i ile gönderim detayları soyutlanır. Şu anki
// implementasyon Resend API kullanır; API key yoksa NopSender devreye girer.
package email

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v3"
)

// Welcome, hoş geldin email'inin içeriği. Metinler çağıran tarafta
// kullanıcının diline çevrilmiş olarak gelir.
type Welcome struct {
	To        string
	Subject   string
	Heading   string
	Body      string
	InviteURL string
}

// WelcomeSender, hoş geldin email'i gönderimi için interface.
// Service katmanı bu interface'e bağımlıdır, concrete Resend implementasyonuna değil.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, msg Welcome) error
}

// NopSender, email yapılandırılmamışsa kullanılan boş implementasyon.
type NopSender struct{}

// SendWelcome hiçbir şey yapmaz.
func (NopSender) SendWelcome(context.Context, Welcome) error { return nil }

// resendSender, Resend API ile email gönderen WelcomeSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewResendSender, Resend API client'ı ile yeni bir WelcomeSender oluşturur.
//
// fromEmail: Resend'de doğrulanmış domain altında bir adres olmalı.
// fromName: gönderici görünen adı (ör: etkinlik adı).
func NewResendSender(apiKey, fromEmail, fromName string) WelcomeSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#09090a;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#09090a;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#1e1e24;border:1px solid #35353f;border-radius:16px;padding:32px;">
          <tr>
            <td>
              <h1 style="color:#d9d9d9;font-size:22px;margin:0 0 16px 0;">{{.Heading}}</h1>
              <p style="color:#95959e;font-size:15px;line-height:1.6;margin:0 0 24px 0;">{{.Body}}</p>
              <p style="margin:0;word-break:break-all;">
                <a href="{{.InviteURL}}" style="color:#8e65ff;font-size:15px;">{{.InviteURL}}</a>
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

// RenderWelcomeHTML, email gövdesini üretir. Kullanıcı adı gibi alanlar escape edilir.
func RenderWelcomeHTML(msg Welcome) (string, error) {
	var sb strings.Builder
	if err := welcomeTmpl.Execute(&sb, msg); err != nil {
		return "", fmt.Errorf("failed to render welcome email: %w", err)
	}
	return sb.String(), nil
}

// SendWelcome, davet linkini içeren email'i gönderir.
func (s *resendSender) SendWelcome(ctx context.Context, msg Welcome) error {
	html, err := RenderWelcomeHTML(msg)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

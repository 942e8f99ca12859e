package services

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"path"
	texttemplate "text/template"

	"brigadas_admin_go/config"
	"brigadas_admin_go/services/i18n"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

//go:embed emails/*
var emailFS embed.FS

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// loadTemplate renders emails/<name>_<lang>.html/.txt, falling back to the
// base (Spanish) emails/<name>.html/.txt when no localized file exists
func loadTemplate(name, lang string, data interface{}) (html string, text string, err error) {
	read := func(ext string) (string, []byte, error) {
		localized := path.Join("emails", fmt.Sprintf("%s_%s%s", name, lang, ext))
		if content, err := emailFS.ReadFile(localized); err == nil {
			return localized, content, nil
		}
		base := path.Join("emails", name+ext)
		content, err := emailFS.ReadFile(base)
		if err != nil {
			return "", nil, fmt.Errorf("read template %s: %w", base, err)
		}
		return base, content, nil
	}

	htmlPath, htmlSrc, err := read(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := htmltemplate.New(path.Base(htmlPath)).Parse(string(htmlSrc))
	if err != nil {
		return "", "", fmt.Errorf("parse template %s: %w", htmlPath, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("execute template %s: %w", htmlPath, err)
	}

	textPath, textSrc, err := read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(path.Base(textPath)).Parse(string(textSrc))
	if err != nil {
		return "", "", fmt.Errorf("parse template %s: %w", textPath, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("execute template %s: %w", textPath, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email through Resend. In test mode it is only logged.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		zap.L().Info("email not sent (test mode)",
			zap.Strings("to", email.To),
			zap.String("subject", email.Subject),
			zap.String("text", email.TextBody))
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("send email via Resend: %w", err)
	}

	zap.L().Info("email sent", zap.String("resend_id", sent.Id), zap.Strings("to", email.To))
	return nil
}

// SendEmailAsync sends a copy of the email in the background
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func() {
		if err := SendEmail(cfg, emailCopy); err != nil {
			zap.L().Error("async email failed", zap.Strings("to", emailCopy.To), zap.Error(err))
		}
	}()
}

// NewBrigadaEmailData feeds the new-brigade notice
type NewBrigadaEmailData struct {
	NombreBrigada      string
	CantidadBomberos   int
	EncargadoLogistica string
	EquipmentCalls     int
	DetailURL          string
}

// BuildNewBrigadaEmail creates the notice sent after the wizard registers a brigade
func BuildNewBrigadaEmail(to string, data NewBrigadaEmailData, lang string) (*Email, error) {
	htmlBody, textBody, err := loadTemplate("brigada_nueva", lang, data)
	if err != nil {
		return nil, err
	}
	return &Email{
		To:       []string{to},
		Subject:  i18n.Translate(lang, "email.new_brigade_subject", map[string]interface{}{"name": data.NombreBrigada}),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

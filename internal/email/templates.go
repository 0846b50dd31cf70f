package email

import (
	"fmt"
	"html"

	"frictionless/internal/config"
	"frictionless/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .button { display: inline-block; background: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        .value { color: #6b7280; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// ShareInvitation builds the email sent when a profile is shared with
// someone. Returns subject, HTML body, and text body.
func (t *Templates) ShareInvitation(org *models.Organization, sender *models.User, shareURL string) (string, string, string) {
	subject := fmt.Sprintf("%s shared their %s profile with you", org.Name, t.cfg.SiteTitle)

	senderName := "A team member"
	if sender != nil && sender.Name != "" {
		senderName = sender.Name
	}

	content := fmt.Sprintf(`
        <p>%s has shared the <span class="label">%s</span> profile with you.</p>
        <div class="info-box">
            <p>The link is read-only and expires automatically.</p>
        </div>
        <p><a class="button" href="%s">View profile</a></p>
        <p class="value">Or copy this link: <br>%s</p>`,
		html.EscapeString(senderName),
		html.EscapeString(org.Name),
		shareURL,
		html.EscapeString(shareURL),
	)
	htmlBody := t.baseHTML(subject, content)

	textBody := fmt.Sprintf(
		"%s has shared the %s profile with you.\n\nView it here (read-only, expires automatically):\n%s\n",
		senderName, org.Name, shareURL,
	)

	return subject, htmlBody, textBody
}

package email

import (
	"frictionless/internal/config"
	"frictionless/internal/models"
)

// Notifier sends email notifications for share events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// NotifyShareCreated emails a recipient the URL of a newly created share
// link. Fire and forget: a failed notification never fails the share.
func (n *Notifier) NotifyShareCreated(recipient string, org *models.Organization, sender *models.User, shareURL string) {
	if !n.service.IsEnabled() || recipient == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.ShareInvitation(org, sender, shareURL)
	n.service.SendAsync([]string{recipient}, subject, htmlBody, textBody)
}

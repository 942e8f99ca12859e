package partials

import (
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/templates/components"

	"github.com/a-h/templ"
)

// ActivityList renders the latest audit entries
func ActivityList(logs []models.AuditLog, now time.Time) templ.Component {
	return components.Component(func(h *components.HTML) {
		ctx := h.Context()
		if len(logs) == 0 {
			h.Raw(`<p>`)
			h.Text(i18n.T(ctx, "dashboard.no_activity"))
			h.Raw(`</p>`)
			return
		}
		h.Raw(`<ul class="activity">`)
		for _, l := range logs {
			h.Raw(`<li><strong>`)
			h.Text(l.Actor)
			h.Raw(`</strong> `)
			h.Text(l.Description)
			h.Raw(` <small>`)
			h.Text(formatRelativeTime(ctx, l.CreatedAt, now))
			h.Raw(`</small></li>`)
		}
		h.Raw(`</ul>`)
	})
}

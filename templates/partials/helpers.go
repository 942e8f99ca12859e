package partials

import (
	"context"
	"strconv"
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/services/wizard"
)

// DateLayout is the day/month/year format used across the pages
const DateLayout = "02/01/2006"

// FormatDate formats a remote timestamp, empty when the service sent none
func FormatDate(t models.RemoteTime) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return wizard.FormatAmount(v)
}

func yesNo(ctx context.Context, v bool) string {
	if v {
		return i18n.T(ctx, "common.yes")
	}
	return i18n.T(ctx, "common.no")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// formatRelativeTime describes how long ago t happened
func formatRelativeTime(ctx context.Context, t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return i18n.T(ctx, "time.just_now")
	case d < time.Hour:
		return i18n.T(ctx, "time.minutes_ago", map[string]interface{}{"n": int(d.Minutes())})
	case d < 24*time.Hour:
		return i18n.T(ctx, "time.hours_ago", map[string]interface{}{"n": int(d.Hours())})
	case d < 7*24*time.Hour:
		return i18n.T(ctx, "time.days_ago", map[string]interface{}{"n": int(d.Hours() / 24)})
	}
	return t.Format(DateLayout)
}

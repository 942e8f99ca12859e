package components

import (
	"fmt"
	"time"

	"brigadas_admin_go/middleware"
	"brigadas_admin_go/services/i18n"

	"github.com/a-h/templ"
)

const htmxSrc = "https://unpkg.com/htmx.org@1.9.12"

// Redirect sends the browser to URL after a delay, leaving the success message visible
type Redirect struct {
	URL   string
	After time.Duration
}

// seconds rounds up for the meta refresh fallback, which only takes whole seconds
func (r *Redirect) seconds() int {
	return int((r.After + time.Second - 1) / time.Second)
}

// Page is the shell around every full page
type Page struct {
	Title    string
	Redirect *Redirect
}

const baseStyle = `body{font-family:system-ui,sans-serif;margin:0;color:#1f2937;background:#f9fafb}
header{background:#b91c1c;color:#fff;padding:.75rem 1.5rem;display:flex;gap:1.5rem;align-items:center;flex-wrap:wrap}
header a{color:#fff;text-decoration:none}header .brand{font-weight:700;margin-right:auto}
main{max-width:72rem;margin:1.5rem auto;padding:0 1rem}
table{width:100%;border-collapse:collapse;background:#fff}th,td{padding:.4rem .6rem;border-bottom:1px solid #e5e7eb;text-align:left}
.alert{padding:.75rem 1rem;border-radius:.5rem;margin:1rem 0}.alert-error{background:#fee2e2;color:#991b1b}.alert-success{background:#dcfce7;color:#166534}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(12rem,1fr));gap:1rem}.card{background:#fff;padding:1rem;border-radius:.5rem;border:1px solid #e5e7eb}
.card .value{font-size:2rem;font-weight:700}
fieldset{background:#fff;border:1px solid #e5e7eb;border-radius:.5rem;margin-bottom:1rem}label{display:block;margin:.4rem 0}
input,select,textarea{padding:.3rem;border:1px solid #d1d5db;border-radius:.25rem}input[type=number]{width:6rem}
.btn{display:inline-block;padding:.45rem .9rem;border-radius:.375rem;border:1px solid #d1d5db;background:#fff;color:#111827;text-decoration:none;cursor:pointer}
.btn-primary{background:#b91c1c;border-color:#b91c1c;color:#fff}.actions{display:flex;gap:.5rem;margin-top:1rem}`

// Layout renders the page shell with navigation, htmx and the CSRF header for htmx requests
func Layout(page Page, body templ.Component) templ.Component {
	return Component(func(h *HTML) {
		ctx := h.Context()
		nonce := middleware.GetNonce(ctx)
		csrf := middleware.CSRFTokenFromContext(ctx)

		h.Raw(`<!DOCTYPE html><html`)
		h.Attr("lang", i18n.GetLocale(ctx))
		h.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		if page.Redirect != nil {
			h.Raw(`<meta http-equiv="refresh"`)
			h.Attr("content", fmt.Sprintf("%d;url=%s", page.Redirect.seconds(), page.Redirect.URL))
			h.Raw(`><script`)
			h.Attr("nonce", nonce)
			h.Raw(`>setTimeout(function(){window.location.href=`, JSON(page.Redirect.URL), `},`, fmt.Sprint(page.Redirect.After.Milliseconds()), `)</script>`)
		}
		h.Raw(`<title>`)
		h.Text(page.Title + " | " + i18n.T(ctx, "app.name"))
		h.Raw(`</title><script`)
		h.Attr("src", htmxSrc)
		h.Attr("nonce", nonce)
		h.Raw(`></script><style>`, baseStyle, `</style></head><body`)
		h.Attr("hx-headers", JSON(map[string]string{"X-CSRF-Token": csrf}))
		h.Raw(`><header><a class="brand" href="/"`)
		h.Attr("title", i18n.T(ctx, "app.subtitle"))
		h.Raw(`>`)
		h.Text(i18n.T(ctx, "app.name"))
		h.Raw(`</a>`)
		for _, link := range []struct{ href, key string }{
			{"/", "nav.dashboard"},
			{"/brigadas", "nav.brigades"},
			{"/brigadas/nueva", "nav.new_brigade"},
			{"/brigadas/completa", "nav.complete_form"},
			{"/reportes/brigadas.xlsx", "nav.export_xlsx"},
		} {
			h.Raw(`<a`)
			h.Attr("href", link.href)
			h.Raw(`>`)
			h.Text(i18n.T(ctx, link.key))
			h.Raw(`</a>`)
		}
		h.Raw(`<span><a href="?lang=es">ES</a> · <a href="?lang=en">EN</a></span></header><main>`)
		h.Render(body)
		h.Raw(`</main></body></html>`)
	})
}

// Alert renders a message box; kind is "error" or "success"
func Alert(kind, message string) templ.Component {
	return Component(func(h *HTML) {
		if message == "" {
			return
		}
		h.Raw(`<div role="alert"`)
		h.Attr("class", "alert alert-"+kind)
		h.Raw(`>`)
		h.Text(message)
		h.Raw(`</div>`)
	})
}

// CSRFInput is the hidden token field of every POST form
func CSRFInput() templ.Component {
	return Component(func(h *HTML) {
		h.Raw(`<input type="hidden"`)
		h.Attr("name", middleware.CSRFFormField)
		h.Attr("value", middleware.CSRFTokenFromContext(h.Context()))
		h.Raw(`>`)
	})
}

// ErrorPanel is the generic failure view with a link back
func ErrorPanel(message, backURL string) templ.Component {
	return Component(func(h *HTML) {
		h.Render(Alert("error", message))
		h.Raw(`<a class="btn"`)
		h.Attr("href", backURL)
		h.Raw(`>`)
		h.Text(i18n.T(h.Context(), "common.back"))
		h.Raw(`</a>`)
	})
}

// SuccessNotice shows the saved message while the page redirects
func SuccessNotice(message string) templ.Component {
	return Component(func(h *HTML) {
		h.Render(Alert("success", message))
		h.Raw(`<p>`)
		h.Text(i18n.T(h.Context(), "common.redirecting"))
		h.Raw(`</p>`)
	})
}

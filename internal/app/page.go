package app

import (
	"maps"
	"net/http"
	"slices"

	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/navigation"
)

// Page is the document served for every drawn route.
type Page struct {
	Route  string            `json:"route"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
	Layout Layout            `json:"layout"`
	Menu   []navigation.Link `json:"menu"`
}

// Layout carries the site-wide presentation settings.
type Layout struct {
	Locale        string   `json:"locale"`
	UseMode       string   `json:"use_mode"`
	WrapperClass  string   `json:"wrapper_class"`
	ColorProfile  string   `json:"color_profile"`
	FeedbackEmail string   `json:"feedback_email,omitempty"`
	SnoobiAccount string   `json:"snoobi_account,omitempty"`
	Helpers       []string `json:"helpers"`
}

func (a *App) page(route host.Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site := a.site.Load()
		helpers := slices.Sorted(maps.Keys(a.host.Helpers(host.ViewBase)))

		host.WriteJSON(w, http.StatusOK, Page{
			Route:  route.Name,
			Path:   r.URL.Path,
			Params: host.URLParams(r),
			Layout: Layout{
				Locale:        site.DefaultLocale,
				UseMode:       string(site.UseMode),
				WrapperClass:  site.WrapperClass,
				ColorProfile:  site.ColorProfile,
				FeedbackEmail: site.FeedbackEmail,
				SnoobiAccount: site.SnoobiAccount,
				Helpers:       helpers,
			},
			Menu: a.Menu(r.URL.Path),
		})
	})
}

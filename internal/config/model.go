package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// UseMode controls who may browse the site.
type UseMode string

const (
	UseModeNormal  UseMode = "normal"
	UseModePrivate UseMode = "private"
)

// Defaults applied to settings the configuration leaves unset.
const (
	DefaultUseMode      = UseModeNormal
	DefaultWrapperClass = "wrapper-default"
	DefaultColorProfile = "black"
	DefaultLocale       = "fi"
)

// Site is the site-wide configuration of the deployment.
type Site struct {
	AddressSuffix   string   `json:"address_suffix" yaml:"address_suffix"`
	MailerSender    string   `json:"mailer_sender" yaml:"mailer_sender"`
	SnoobiAccount   string   `json:"snoobi_account,omitempty" yaml:"snoobi_account,omitempty"`
	UseMode         UseMode  `json:"use_mode" yaml:"use_mode"`
	WrapperClass    string   `json:"wrapper_class" yaml:"wrapper_class"`
	ColorProfile    string   `json:"color_profile" yaml:"color_profile"`
	FeedbackEmail   string   `json:"feedback_email" yaml:"feedback_email"`
	AutoEmailDomain string   `json:"auto_email_domain" yaml:"auto_email_domain"`
	SuomifiEnabled  bool     `json:"suomifi_enabled" yaml:"suomifi_enabled"`
	MpassidEnabled  bool     `json:"mpassid_enabled" yaml:"mpassid_enabled"`
	DefaultLocale   string   `json:"default_locale" yaml:"default_locale"`
	HostAliases     []string `json:"host_aliases" yaml:"host_aliases"`

	// Locales maps a locale to its flattened "scope.key" strings.
	Locales map[string]map[string]string `json:"-" yaml:"-"`
}

// Default returns a Site with every default applied.
func Default() *Site {
	s := &Site{}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills unset settings with their defaults.
func (s *Site) ApplyDefaults() {
	if s.UseMode == "" {
		s.UseMode = DefaultUseMode
	}
	if s.WrapperClass == "" {
		s.WrapperClass = DefaultWrapperClass
	}
	if s.ColorProfile == "" {
		s.ColorProfile = DefaultColorProfile
	}
	if s.DefaultLocale == "" {
		s.DefaultLocale = DefaultLocale
	}
	if s.Locales == nil {
		s.Locales = make(map[string]map[string]string)
	}
}

// Validate reports every invalid setting at once.
func (s *Site) Validate() error {
	var errs []error
	if s.UseMode != UseModeNormal && s.UseMode != UseModePrivate {
		errs = append(errs, fmt.Errorf("use_mode must be %q or %q, got %q", UseModeNormal, UseModePrivate, s.UseMode))
	}
	if _, err := language.Parse(s.DefaultLocale); err != nil {
		errs = append(errs, fmt.Errorf("default_locale %q is not a language tag: %w", s.DefaultLocale, err))
	}
	for _, name := range slices.Sorted(maps.Keys(s.Locales)) {
		if _, err := language.Parse(name); err != nil {
			errs = append(errs, fmt.Errorf("locale %q is not a language tag: %w", name, err))
		}
	}
	if len(s.Locales) > 0 {
		if _, ok := s.Locales[s.DefaultLocale]; !ok {
			errs = append(errs, fmt.Errorf("default_locale %q has no locale block", s.DefaultLocale))
		}
	}
	if slices.Contains(s.HostAliases, "") {
		errs = append(errs, errors.New("host_aliases must not contain empty names"))
	}
	return errors.Join(errs...)
}

// Private reports whether the site is only visible to signed-in users.
func (s *Site) Private() bool { return s.UseMode == UseModePrivate }

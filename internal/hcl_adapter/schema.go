package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a site configuration file may hold.
type fileRoot struct {
	Sites   []*SiteBlock   `hcl:"site,block"`
	Locales []*LocaleBlock `hcl:"locale,block"`
}

// SiteBlock is the HCL schema of the `site` block. Pointers distinguish an
// omitted attribute from a zero value so that defaults can apply.
type SiteBlock struct {
	AddressSuffix   *string  `hcl:"address_suffix,optional"`
	MailerSender    *string  `hcl:"mailer_sender,optional"`
	SnoobiAccount   *string  `hcl:"snoobi_account,optional"`
	UseMode         *string  `hcl:"use_mode,optional"`
	WrapperClass    *string  `hcl:"wrapper_class,optional"`
	ColorProfile    *string  `hcl:"color_profile,optional"`
	FeedbackEmail   *string  `hcl:"feedback_email,optional"`
	AutoEmailDomain *string  `hcl:"auto_email_domain,optional"`
	SuomifiEnabled  *bool    `hcl:"suomifi_enabled,optional"`
	MpassidEnabled  *bool    `hcl:"mpassid_enabled,optional"`
	DefaultLocale   *string  `hcl:"default_locale,optional"`
	HostAliases     []string `hcl:"host_aliases,optional"`
}

// LocaleBlock is the HCL schema of a `locale "<name>"` block.
type LocaleBlock struct {
	Name    string         `hcl:"name,label"`
	Strings hcl.Expression `hcl:"strings,optional"`
}

package hcl_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

func str(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// translateSite copies the attributes present in b onto s.
func translateSite(b *SiteBlock, s *config.Site) {
	str(&s.AddressSuffix, b.AddressSuffix)
	str(&s.MailerSender, b.MailerSender)
	str(&s.SnoobiAccount, b.SnoobiAccount)
	str(&s.WrapperClass, b.WrapperClass)
	str(&s.ColorProfile, b.ColorProfile)
	str(&s.FeedbackEmail, b.FeedbackEmail)
	str(&s.AutoEmailDomain, b.AutoEmailDomain)
	str(&s.DefaultLocale, b.DefaultLocale)
	if b.UseMode != nil {
		s.UseMode = config.UseMode(*b.UseMode)
	}
	if b.SuomifiEnabled != nil {
		s.SuomifiEnabled = *b.SuomifiEnabled
	}
	if b.MpassidEnabled != nil {
		s.MpassidEnabled = *b.MpassidEnabled
	}
	if b.HostAliases != nil {
		s.HostAliases = append([]string(nil), b.HostAliases...)
	}
}

// translateLocale evaluates the strings of b and merges them into dst.
func translateLocale(ctx context.Context, b *LocaleBlock, dst map[string]string) error {
	if !isExprDefined(ctx, b.Strings, "strings") {
		return nil
	}
	v, diags := b.Strings.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("locale %q: %w", b.Name, diags)
	}
	before := len(dst)
	if err := flatten("", v, dst); err != nil {
		return fmt.Errorf("locale %q: %w", b.Name, err)
	}
	ctxlog.FromContext(ctx).Debug("Translated locale block.", "locale", b.Name, "strings", len(dst)-before)
	return nil
}

// flatten walks nested objects and maps, writing every leaf under its
// dotted path. Leaves are converted to strings; null leaves are skipped.
func flatten(prefix string, v cty.Value, dst map[string]string) error {
	if v.IsNull() {
		return nil
	}
	if !v.IsKnown() {
		return fmt.Errorf("%s: value is not known", keyOrRoot(prefix))
	}

	ty := v.Type()
	if ty.IsObjectType() || ty.IsMapType() {
		keys := make([]string, 0, v.LengthInt())
		values := make(map[string]cty.Value, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			keys = append(keys, k.AsString())
			values[k.AsString()] = ev
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := flatten(join(prefix, k), values[k], dst); err != nil {
				return err
			}
		}
		return nil
	}

	if prefix == "" {
		return fmt.Errorf("strings must be an object, got %s", ty.FriendlyName())
	}
	sv, err := convert.Convert(v, cty.String)
	if err != nil {
		return fmt.Errorf("%s: %s cannot be used as text", prefix, ty.FriendlyName())
	}
	dst[prefix] = sv.AsString()
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func keyOrRoot(prefix string) string {
	if prefix == "" {
		return "strings"
	}
	return prefix
}

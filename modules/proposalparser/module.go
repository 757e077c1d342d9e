// Package proposalparser teaches the proposal content parser the site's own
// host names, so that links to proposals on any of them are stored as
// global ids rather than absolute URLs.
package proposalparser

import (
	"regexp"
	"strings"

	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// GlobalIDPrefix prefixes the id of a proposal in its global id.
const GlobalIDPrefix = "gid://decidim-helsinki/Decidim::Proposals::Proposal/"

// Module implements the registry.Module interface for this package.
type Module struct {
	Site *config.Current
}

// Capability is the proposal link rewriter.
type Capability struct {
	site *config.Current
}

func (c *Capability) Name() string { return "proposal_parser_extensions" }

// Rewrite replaces links to proposals on the site's host aliases with the
// proposals' global ids. Links to other hosts are left alone.
func (c *Capability) Rewrite(content string) string {
	if c.site == nil {
		return content
	}
	re := linkPattern(c.site.Load().HostAliases)
	if re == nil {
		return content
	}
	return re.ReplaceAllString(content, GlobalIDPrefix+"${id}")
}

// linkPattern matches proposal URLs on hosts. It returns nil for no hosts.
func linkPattern(hosts []string) *regexp.Regexp {
	if len(hosts) == 0 {
		return nil
	}
	quoted := make([]string, len(hosts))
	for i, h := range hosts {
		quoted[i] = regexp.QuoteMeta(h)
	}
	return regexp.MustCompile(`https?://(?:` + strings.Join(quoted, "|") + `)(?::\d+)?` +
		`/(?:processes|assemblies)/[\w-]+/f/\d+/proposals/(?P<id>\d+)\b`)
}

// Register binds the rewriter on every prepare.
func (m *Module) Register(r *registry.Registry) error {
	return r.Bind(host.ProposalParser, &Capability{site: m.Site}, lifecycle.StagePrepare)
}

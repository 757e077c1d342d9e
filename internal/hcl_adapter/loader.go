package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths. At most one `site` block
// may be declared across all files; `locale` blocks with the same name are
// merged, later files winning on conflicting keys.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Site, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	site := &config.Site{Locales: make(map[string]map[string]string)}
	siteFile := ""
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Sites {
			if siteFile != "" {
				return nil, fmt.Errorf("site block in %s: already declared in %s", file, siteFile)
			}
			siteFile = file
			translateSite(b, site)
		}
		for _, b := range root.Locales {
			dst, ok := site.Locales[b.Name]
			if !ok {
				dst = make(map[string]string)
				site.Locales[b.Name] = dst
			}
			if err := translateLocale(ctx, b, dst); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
	}

	site.ApplyDefaults()
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site configuration: %w", err)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "locales", len(site.Locales), "use_mode", site.UseMode)
	return site, nil
}

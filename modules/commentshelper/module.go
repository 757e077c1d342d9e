// Package commentshelper adds site helpers to the comments helper.
package commentshelper

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/menu"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	Text menu.Translator
}

// Capability holds the comment helpers.
type Capability struct {
	text menu.Translator
}

func (c *Capability) Name() string { return "comments_helper_extensions" }

// Helpers returns the helper functions by name.
func (c *Capability) Helpers() map[string]any {
	return map[string]any{
		"comment_anchor":      CommentAnchor,
		"comment_author_name": c.AuthorName,
	}
}

// CommentAnchor returns the fragment identifying comment id on a page.
func CommentAnchor(id int) string {
	return fmt.Sprintf("#comment_%d", id)
}

// AuthorName is the name shown for a comment author. Deleted and blank
// authors are shown with the localized placeholder.
func (c *Capability) AuthorName(name string, deleted bool) string {
	if deleted || strings.TrimSpace(name) == "" {
		if c.text == nil {
			return "Deleted participant"
		}
		return c.text.Translate("deleted_participant", "decidim.comments")
	}
	return name
}

// Register binds the helpers on every prepare.
func (m *Module) Register(r *registry.Registry) error {
	return r.Bind(host.CommentsHelper, &Capability{text: m.Text}, lifecycle.StagePrepare)
}

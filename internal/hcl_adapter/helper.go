package hcl_adapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
)

// isExprDefined reports whether an optional attribute was written in the
// source. gohcl fills omitted optional expressions with a zero-width
// placeholder, so only the source range tells the two apart.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	defined := rng.End.Byte > rng.Start.Byte
	if !defined {
		ctxlog.FromContext(ctx).Debug("Optional HCL attribute omitted.", "attribute", attrName, "hcl_range", rng.String())
	}
	return defined
}

package host

import (
	"reflect"

	"github.com/specialistvlad/overlaygo/internal/extension"
)

// Classes of the reference host that site extensions attach to.
const (
	UserClass                 = "decidim.user"
	ControllerBase            = "action_controller.base"
	ViewBase                  = "action_view.base"
	CommentsHelper            = "decidim.comments.comments_helper"
	ProposalParser            = "decidim.content_parsers.proposal_parser"
	NeedsTosAccepted          = "decidim.needs_tos_accepted"
	HighlightedAssembliesCell = "decidim.assemblies.content_blocks.highlighted_assemblies_cell"
	MenuRegistry              = "decidim.menu_registry"
)

// Route names drawn by the reference host.
const (
	RouteRoot       = "root"
	RouteProcesses  = "processes"
	RouteProcess    = "process"
	RoutePages      = "pages"
	RoutePage       = "page"
	RouteSignIn     = "new_user_session"
	RouteSignOut    = "destroy_user_session"
	RouteTermsOfUse = "terms_of_use"
)

func shape(types ...reflect.Type) []reflect.Type { return types }

// DefaultClasses is the class catalog of the reference host.
func DefaultClasses() []ClassDef {
	return []ClassDef{
		{Name: UserClass, Shape: shape(extension.ShapeAuthProviders)},
		{Name: ControllerBase, Shape: shape(extension.ShapeMiddleware)},
		{Name: ViewBase, Shape: shape(extension.ShapeHelpers)},
		{Name: CommentsHelper, Shape: shape(extension.ShapeHelpers)},
		{Name: ProposalParser, Shape: shape(extension.ShapeContentRewriter)},
		{Name: NeedsTosAccepted, Shape: shape(extension.ShapeMiddleware)},
		{Name: HighlightedAssembliesCell, Shape: shape(extension.ShapeHelpers)},
		{Name: MenuRegistry, Shape: shape(extension.ShapeHook)},
	}
}

// DefaultRoutes is the static route table of the reference host. Routes
// derived from class metadata are added when routes are drawn.
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteRoot, Pattern: "/"},
		{Name: RouteProcesses, Pattern: "/processes"},
		{Name: RouteProcess, Pattern: "/processes/{slug}"},
		{Name: RoutePages, Pattern: "/pages"},
		{Name: RoutePage, Pattern: "/pages/{id}"},
		{Name: RouteTermsOfUse, Pattern: "/pages/terms-and-conditions"},
		{Name: RouteSignIn, Pattern: "/users/sign_in"},
		{Name: RouteSignOut, Pattern: "/users/sign_out"},
	}
}

package app

import (
	"github.com/specialistvlad/overlaygo/internal/registry"
	"github.com/specialistvlad/overlaygo/modules/assemblyhelpers"
	"github.com/specialistvlad/overlaygo/modules/commentshelper"
	"github.com/specialistvlad/overlaygo/modules/deviseoverrides"
	"github.com/specialistvlad/overlaygo/modules/mainmenu"
	"github.com/specialistvlad/overlaygo/modules/proposalparser"
	"github.com/specialistvlad/overlaygo/modules/tosredirect"
	"github.com/specialistvlad/overlaygo/modules/userauth"
	"github.com/specialistvlad/overlaygo/modules/viewhelpers"
)

// coreModules is the definitive list of the site extensions compiled into
// the overlaygo binary, in registration order.
func coreModules(a *App) []registry.Module {
	return []registry.Module{
		&userauth.Module{Site: a.site},
		&deviseoverrides.Module{Paths: a.host},
		&commentshelper.Module{Text: a.text},
		&proposalparser.Module{Site: a.site},
		&viewhelpers.Module{Site: a.site},
		&tosredirect.Module{Paths: a.host},
		&assemblyhelpers.Module{},
		&mainmenu.Module{Slot: a.menu, Text: a.text.Upcoming(), Paths: a.host},
	}
}

// Package modules lists the site feature modules.
package modules

import (
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"github.com/louisbranch/gameforge/internal/services/site/modules/features"
	"github.com/louisbranch/gameforge/internal/services/site/modules/forms"
	"github.com/louisbranch/gameforge/internal/services/site/modules/pages"
	"github.com/louisbranch/gameforge/internal/services/site/modules/public"
)

// Default returns every module the site serves.
func Default() []module.Module {
	return []module.Module{
		public.New(),
		pages.New(),
		forms.New(),
		features.New(),
	}
}

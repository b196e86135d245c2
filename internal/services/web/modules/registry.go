// Package modules lists the web feature modules in mount order.
package modules

import (
	module "github.com/sofealabs/impactboard/internal/services/web/module"
	"github.com/sofealabs/impactboard/internal/services/web/modules/awardees"
	"github.com/sofealabs/impactboard/internal/services/web/modules/overview"
	"github.com/sofealabs/impactboard/internal/services/web/modules/programs"
)

// Default returns every dashboard module.
func Default() []module.Module {
	return []module.Module{
		overview.New(),
		programs.New(),
		awardees.New(),
	}
}

// Package all registers every built-in driver implementation with the
// process-wide registry. Import it for side effects:
//
//	import _ "github.com/devbridge-project/devbridge-go/pkg/drivers/all"
package all

import (
	_ "github.com/devbridge-project/devbridge-go/pkg/drivers/lamp"
	_ "github.com/devbridge-project/devbridge-go/pkg/drivers/powerswitch"
	_ "github.com/devbridge-project/devbridge-go/pkg/drivers/vacuum"
)

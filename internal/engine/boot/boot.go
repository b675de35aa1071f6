// Released under an MIT license. See LICENSE.

// Package boot provides the prelude evaluated into every global environment.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lsp
var script string //nolint:gochecknoglobals

// Script returns the prelude. Each line holds one term.
func Script() string {
	return script
}

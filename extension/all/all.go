// Package all imports all built-in sitekit extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/openticketai/sitekit/extension/check"
	_ "github.com/openticketai/sitekit/extension/content"
	_ "github.com/openticketai/sitekit/extension/core"
	_ "github.com/openticketai/sitekit/extension/locale"
	_ "github.com/openticketai/sitekit/extension/site"
)

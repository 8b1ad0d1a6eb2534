// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos when flag
// names are used in both Flags().Type() definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-history" -> FlagNoHistory).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDirect    = "direct"        // Only pages directly under the prefix
	FlagDrafts    = "drafts"        // Include draft content entries
	FlagForce     = "force"         // Overwrite existing files
	FlagHTML      = "html"          // Render markdown to HTML
	FlagLinks     = "links"         // Include page anchors
	FlagLocal     = "local"         // Use local scope
	FlagLong      = "long"          // Long format output
	FlagMarkdown  = "markdown"      // Markdown report
	FlagNoHistory = "no-history"    // Do not record the run
	FlagShare     = "share-history" // Commit the run history
	FlagTree      = "tree"          // Tree view output

	// String flags

	FlagAddr      = "addr"       // Listen address
	FlagLocale    = "locale"     // Locale filter or target
	FlagLog       = "log"        // Broken links report path
	FlagOlderThan = "older-than" // Duration threshold

	// Integer flags

	FlagLimit   = "limit"   // Limit number of results
	FlagWorkers = "workers" // Parallel parsers
)

// Package cli implements the command-line interface for vnl-stats.
//
// The cli package provides the Cobra-based CLI. Run without a subcommand it scrapes every
// dataset (player rosters, team ranking, best-player leaderboards and the round-robin match
// summary) and writes one file per dataset. Subcommands scrape a single dataset, and the
// table subcommand exposes the generic table extractor for any page.
package cli

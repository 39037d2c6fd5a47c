// Package vnl extracts Volleyball Nations League datasets from volleyballworld.com.
//
// Each dataset (player rosters, team ranking, best-player leaderboards and the round-robin
// match summary) is a thin layer over table extraction: it picks the page and table, then
// renames, drops or derives columns so the result is ready to be written as a file.
// Team name to abbreviation lookups go through an explicit Teams value so callers and tests
// can substitute their own team list.
package vnl

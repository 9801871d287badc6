package commands

import "time"

// Context carries global flags into subcommand Run methods.
type Context struct {
	Timeout time.Duration
	APIURL  string
}

// CLI is the top-level kong command tree.
type CLI struct {
	Timeout time.Duration `help:"Timeout for IBGE API requests." default:"10s"`
	APIURL  string        `help:"Base URL of the IBGE census names API." env:"IBGE_API_URL" name:"api-url"`

	Lookup  LookupCmd  `cmd:"" help:"Per-decade frequency of a name."`
	Compare CompareCmd `cmd:"" help:"Compare several names across decades."`
	Ranking RankingCmd `cmd:"" help:"Most frequent names in the census."`
	TUI     TUICmd     `cmd:"" name:"tui" help:"Interactive viewer."`
}

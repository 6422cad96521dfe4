package config

// Flags holds the action inputs as given on the command line.
type Flags struct {
	Path            string
	BuildInfo       bool
	Channel         string
	Args            string
	Architecture    string
	Environment     []string
	UsePodman       bool
	StoreAuth       string
	DisableAppArmor bool
	Image           string
	DryRun          bool
	Verbose         bool
	NoColor         bool
	PrintVersion    bool
}

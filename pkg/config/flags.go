package config

type RunFlagsNameMapping struct {
	TargetsFile  string
	TargetsToken string
	Timeout      string
	Retries      string
	Workers      string
	Backoff      string
	Output       string
	Format       string
}

package param

type GlobalOpts struct {
	Owner       string   `arg:"-o,--owner,env:FNAUDIT_OWNER" help:"GitHub owner of the repositories (default: git origin owner, then Mikeysauce)"`
	Repos       []string `arg:"-r,--repo,separate" help:"repository to inspect, repeatable (default: built-in list)"`
	Concurrency int      `arg:"-c,--concurrency,env:FNAUDIT_CONCURRENCY" help:"page conversions in flight while listing functions" default:"10"`
	Json        bool     `arg:"-j,--json" help:"render output as JSON"`
}

type Functions struct{}

type Versions struct{}

type Report struct {
	NoAccount bool `arg:"--no-account" help:"skip the caller identity header"`
}

type Config struct{}

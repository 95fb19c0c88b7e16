package cli

import "github.com/viant/policyadmin"

const (
	ActionLogin     = "login"
	ActionLogout    = "logout"
	ActionWhoami    = "whoami"
	ActionGet       = "get"
	ActionDashboard = "dashboard"
	ActionBranches  = "branches"
	ActionAgents    = "agents"
	ActionPolicies  = "policies"
)

// Options represents command line options
type Options struct {
	policyadmin.ClientOptions
	ConfigURL string `short:"c" long:"config" description:"client options YAML URL"`
	Username  string `long:"username" description:"login username"`
	Password  string `long:"password" description:"login password"`
	SecretURL string `long:"secret" description:"scy secret resource URL holding basic credentials"`
	SecretKey string `long:"key" description:"scy secret key, e.g. blowfish://default"`
	Branch    int    `short:"b" long:"branch" description:"branch filter for agents"`
	Args      struct {
		Action string `positional-arg-name:"action" description:"login|logout|whoami|get|dashboard|branches|agents|policies"`
		Path   string `positional-arg-name:"path" description:"API path for get"`
	} `positional-args:"yes"`
}

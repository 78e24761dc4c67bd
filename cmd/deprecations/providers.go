package main

import "fmt"

// Run executes the providers command.
func (c *ProvidersCmd) Run(deps *Dependencies) error {
	for _, strategy := range deps.Registry.List() {
		status := "enabled"
		if !deps.Config.Enabled(strategy.Provider()) {
			status = "disabled"
		}
		fmt.Fprintf(deps.Stdout, "%-24s %-8s %s\n", strategy.Provider(), status, strategy.URL())
	}
	return nil
}

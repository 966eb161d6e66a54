package main

import "fmt"

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	rules, err := loadRules(c.Rules)
	if err != nil {
		return err
	}

	sites := rules.Sites()
	if len(sites) == 0 {
		fmt.Fprintln(deps.Stdout, "No rules configured.")
		return nil
	}

	for _, site := range sites {
		fmt.Fprintln(deps.Stdout, site)
		for _, rule := range rules.Rules(site) {
			fmt.Fprintf(deps.Stdout, "  %-24s %s\n", rule.Name, rule.Strategy)
		}
	}
	return nil
}

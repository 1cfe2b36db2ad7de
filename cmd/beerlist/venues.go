package main

import (
	"fmt"
)

// Run executes the venues command.
func (c *VenuesCmd) Run(deps *Dependencies) error {
	if len(deps.Venues) == 0 {
		fmt.Fprintln(deps.Stdout, "No venues configured.")
		return nil
	}

	for _, v := range deps.Venues {
		js := ""
		if v.RequiresJS {
			js = "  (browser)"
		}
		fmt.Fprintf(deps.Stdout, "%-30s %-15s %s  [%s]%s\n",
			v.Name, v.City, v.SourceURL, v.Format, js)
	}

	return nil
}

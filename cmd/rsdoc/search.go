package main

import (
	"fmt"

	"github.com/fwojciec/rsdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	result, err := deps.Service.SearchCrates(deps.Ctx, c.Query, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rsdoc.FormatSearchResult(c.Query, result))
	return nil
}

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	symbols, err := deps.Service.SearchInCrate(deps.Ctx, c.Crate, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rsdoc.FormatSymbols(c.Crate, c.Query, symbols))
	return nil
}

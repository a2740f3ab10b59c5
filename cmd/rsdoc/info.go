package main

import (
	"fmt"

	"github.com/fwojciec/rsdoc"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	info, err := deps.Service.CrateInfo(deps.Ctx, c.Crate)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rsdoc.FormatCrateInfo(c.Crate, info))
	return nil
}

// Run executes the features command.
func (c *FeaturesCmd) Run(deps *Dependencies) error {
	features, err := deps.Service.CrateFeatures(deps.Ctx, c.Crate)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rsdoc.FormatFeatures(c.Crate, features))
	return nil
}

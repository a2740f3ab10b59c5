package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/rsdoc"
)

// Run executes the item command.
func (c *ItemCmd) Run(deps *Dependencies) error {
	def, err := deps.Service.ItemDefinition(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	}

	fmt.Fprintln(deps.Stdout, rsdoc.FormatItemDefinition(c.Path, def))
	return nil
}

// Run executes the example command.
func (c *ExampleCmd) Run(deps *Dependencies) error {
	examples, err := deps.Service.ItemExamples(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	if c.N == 0 {
		fmt.Fprintln(deps.Stdout, rsdoc.FormatExamples(c.Path, examples))
		return nil
	}

	example, err := rsdoc.SelectExample(c.Path, examples, c.N)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rsdoc.FormatExample(c.Path, c.N, len(examples), example))
	return nil
}

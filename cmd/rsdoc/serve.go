package main

import (
	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/mcp"
)

// Run executes the serve command. It blocks until stdin is closed.
func (c *ServeCmd) Run(deps *Dependencies) error {
	deps.Logger.Info("serving MCP tools on stdio", "version", rsdoc.Version)
	return mcp.NewServer(deps.Service).ServeStdio()
}

// Package mcp exposes rsdoc.DocService as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"

	"github.com/fwojciec/rsdoc"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolSearchCrates      = "search_crates"
	ToolGetCrateInfo      = "get_crate_info"
	ToolListCrateFeatures = "list_crate_features"
	ToolGetItemDefinition = "get_item_definition"
	ToolGetItemExamples   = "get_item_examples"
	ToolSearchInCrate     = "search_in_crate"
)

// Server serves documentation tools backed by a DocService.
type Server struct {
	service rsdoc.DocService
	srv     *server.MCPServer
}

// NewServer creates a Server with every tool registered.
func NewServer(service rsdoc.DocService) *Server {
	s := &Server{
		service: service,
		srv: server.NewMCPServer(
			"rsdoc",
			rsdoc.Version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
			server.WithInstructions("Look up Rust crate and standard library documentation from docs.rs and doc.rust-lang.org. Item paths are fully qualified, e.g. tokio::sync::Mutex or std::collections::HashMap."),
		),
	}

	s.srv.AddTool(mcp.NewTool(ToolSearchCrates,
		mcp.WithDescription("Search crates.io for crates matching a query."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search terms")),
		mcp.WithNumber("page", mcp.Description("Result page, starting at 1")),
	), s.HandleSearchCrates)

	s.srv.AddTool(mcp.NewTool(ToolGetCrateInfo,
		mcp.WithDescription("Get a crate's description and top-level modules."),
		mcp.WithString("crate", mcp.Required(), mcp.Description("Crate name, e.g. tokio or std")),
	), s.HandleCrateInfo)

	s.srv.AddTool(mcp.NewTool(ToolListCrateFeatures,
		mcp.WithDescription("List the feature flags of a crate."),
		mcp.WithString("crate", mcp.Required(), mcp.Description("Crate name")),
	), s.HandleCrateFeatures)

	s.srv.AddTool(mcp.NewTool(ToolGetItemDefinition,
		mcp.WithDescription("Get the declaration, documentation, fields, methods and trait implementations of an item."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Fully qualified item path, e.g. tokio::sync::Mutex")),
	), s.HandleItemDefinition)

	s.srv.AddTool(mcp.NewTool(ToolGetItemExamples,
		mcp.WithDescription("Get the code examples from an item's documentation."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Fully qualified item path")),
		mcp.WithNumber("n", mcp.Description("Return only the n-th example, starting at 1")),
	), s.HandleItemExamples)

	s.srv.AddTool(mcp.NewTool(ToolSearchInCrate,
		mcp.WithDescription("Search the items of a crate by name."),
		mcp.WithString("crate", mcp.Required(), mcp.Description("Crate name")),
		mcp.WithString("query", mcp.Required(), mcp.Description("Case-insensitive substring of the item path")),
	), s.HandleSearchInCrate)

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.srv
}

// ServeStdio serves requests on stdin and stdout until stdin closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.srv)
}

// HandleSearchCrates handles the search_crates tool.
func (s *Server) HandleSearchCrates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := s.service.SearchCrates(ctx, query, req.GetInt("page", 1))
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(rsdoc.FormatSearchResult(query, result)), nil
}

// HandleCrateInfo handles the get_crate_info tool.
func (s *Server) HandleCrateInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crate, err := req.RequireString("crate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := s.service.CrateInfo(ctx, crate)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(rsdoc.FormatCrateInfo(crate, info)), nil
}

// HandleCrateFeatures handles the list_crate_features tool.
func (s *Server) HandleCrateFeatures(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crate, err := req.RequireString("crate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	features, err := s.service.CrateFeatures(ctx, crate)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(rsdoc.FormatFeatures(crate, features)), nil
}

// HandleItemDefinition handles the get_item_definition tool.
func (s *Server) HandleItemDefinition(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	def, err := s.service.ItemDefinition(ctx, path)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(rsdoc.FormatItemDefinition(path, def)), nil
}

// HandleItemExamples handles the get_item_examples tool. Without n, every
// example is returned.
func (s *Server) HandleItemExamples(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	examples, err := s.service.ItemExamples(ctx, path)
	if err != nil {
		return toolError(err), nil
	}

	n := req.GetInt("n", 0)
	if n == 0 {
		return mcp.NewToolResultText(rsdoc.FormatExamples(path, examples)), nil
	}
	example, err := rsdoc.SelectExample(path, examples, n)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(rsdoc.FormatExample(path, n, len(examples), example)), nil
}

// HandleSearchInCrate handles the search_in_crate tool.
func (s *Server) HandleSearchInCrate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crate, err := req.RequireString("crate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	symbols, err := s.service.SearchInCrate(ctx, crate, query)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(rsdoc.FormatSymbols(crate, query, symbols)), nil
}

// toolError reports a service failure as a tool-level error result so the
// client sees the message rather than a protocol error.
func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(rsdoc.ErrorMessage(err))
}

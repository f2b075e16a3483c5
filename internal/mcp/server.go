// Package mcp exposes the paperwork pipeline as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/paperpilot/paperpilot/internal/analysis"
	"github.com/paperpilot/paperpilot/internal/config"
	"github.com/paperpilot/paperpilot/internal/extract"
	"github.com/paperpilot/paperpilot/internal/paperwork"
)

// Server represents the MCP server instance
type Server struct {
	config  *config.Config
	service *paperwork.Service
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *paperwork.Service) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:  cfg,
		service: service,
		mcp:     mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	analyzeTool := mcp.NewTool(
		"paperwork_analyze_document",
		mcp.WithDescription("Analyze an official document (PDF, scanned image, or docx) and produce a ranked action-step checklist"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document"),
		),
		mcp.WithString("applicant_type",
			mcp.Description("Optional: student, working professional, self-employed, or other"),
		),
		mcp.WithBoolean("first_time",
			mcp.Description("Optional: whether this is the applicant's first application"),
		),
		mcp.WithString("country",
			mcp.Description("Optional: country of application"),
		),
	)
	s.mcp.AddTool(analyzeTool, s.handleAnalyzeDocument)

	extractTool := mcp.NewTool(
		"paperwork_extract_document",
		mcp.WithDescription("Extract raw text or fillable-field structure from a document without synthesizing steps"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document"),
		),
	)
	s.mcp.AddTool(extractTool, s.handleExtractDocument)

	validateTool := mcp.NewTool(
		"paperwork_validate_answer",
		mcp.WithDescription("Validate a user's answer for a single form field (format checks only)"),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("The field label the answer belongs to"),
		),
		mcp.WithString("answer",
			mcp.Required(),
			mcp.Description("The answer to validate"),
		),
	)
	s.mcp.AddTool(validateTool, s.handleValidateAnswer)

	questionsTool := mcp.NewTool(
		"paperwork_context_questions",
		mcp.WithDescription("List the context questions whose answers refine step applicability"),
	)
	s.mcp.AddTool(questionsTool, s.handleContextQuestions)

	serverInfoTool := mcp.NewTool(
		"paperwork_server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcp.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleAnalyzeDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := paperwork.AnalyzeDocumentRequest{
		Path:      path,
		Extension: strings.TrimPrefix(filepath.Ext(path), "."),
		Context:   contextFromArgs(request.GetArguments()),
	}

	result, err := s.service.AnalyzeDocument(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatAnalyzeResult(result)), nil
}

func (s *Server) handleExtractDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := paperwork.ExtractDocumentRequest{
		Path:      path,
		Extension: strings.TrimPrefix(filepath.Ext(path), "."),
	}

	result, err := s.service.ExtractDocument(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatExtractResult(path, result)), nil
}

func (s *Server) handleValidateAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field, err := request.RequireString("field")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	answer, err := request.RequireString("answer")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ValidateAnswer(paperwork.ValidateAnswerRequest{
		Field:  field,
		Answer: answer,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status := "valid"
	if !result.Valid {
		status = "invalid"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Answer for %q is %s: %s", field, status, result.Message)), nil
}

func (s *Server) handleContextQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	questions := s.service.ContextQuestions()

	text := "Context questions:\n"
	for i, q := range questions {
		text += fmt.Sprintf("%d. [%s] %s (%s)\n", i+1, q.Key, q.Question, q.Type)
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Document Directory: %s\n", s.config.DocumentDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n", s.config.MaxFileSize/(1024*1024))
	text += "Supported formats: pdf, png, jpg, jpeg, docx\n"
	text += "\nAvailable Tools:\n"
	text += "- paperwork_analyze_document: full pipeline, returns a ranked action-step checklist\n"
	text += "- paperwork_extract_document: extraction only (text layer, acroform fields, OCR, docx)\n"
	text += "- paperwork_validate_answer: per-field format validation\n"
	text += "- paperwork_context_questions: applicability questionnaire\n"
	text += "- paperwork_server_info: this summary\n"
	text += "\nAnalyze a document first; answer the context questions to refine applicability tags."

	return mcp.NewToolResultText(text), nil
}

// contextFromArgs builds optional context answers from tool arguments.
// Absent keys stay nil: unknown is never treated as false or empty.
func contextFromArgs(args map[string]any) *analysis.Context {
	ctx := &analysis.Context{}
	if v, ok := args["applicant_type"].(string); ok && v != "" {
		ctx.ApplicantType = &v
	}
	if v, ok := args["first_time"].(bool); ok {
		ctx.FirstTime = &v
	}
	if v, ok := args["country"].(string); ok && v != "" {
		ctx.Country = &v
	}
	return ctx
}

// Formatting methods
func (s *Server) formatAnalyzeResult(result *paperwork.AnalyzeDocumentResult) string {
	plan := result.Plan

	text := fmt.Sprintf("Analyzed: %s\n", result.Path)
	text += fmt.Sprintf("Extraction method: %s\n", result.Method)
	text += fmt.Sprintf("Overview: %s\n", plan.Overview)
	text += fmt.Sprintf("Steps: %d total (%d mandatory, %d optional)\n",
		plan.TotalSteps, plan.Mandatory, plan.Optional)

	if plan.TotalSteps == 0 {
		text += "\nNothing detected: the document yielded no recognizable fields.\n"
		return text
	}

	for _, step := range plan.Steps {
		requiredness := "optional"
		if step.Required {
			requiredness = "required"
		}
		text += fmt.Sprintf("\nStep %d: %s [%s, risk: %s", step.ID, step.Title, requiredness, step.Risk)
		if step.Applicability != "" {
			text += fmt.Sprintf(", applicability: %s", step.Applicability)
		}
		text += "]\n"
		text += fmt.Sprintf("  %s\n", step.WhatToDo)
		text += fmt.Sprintf("  Risk: %s\n", step.RiskReason)
		text += fmt.Sprintf("  Tip: %s\n", step.RemediationTip)
		for _, field := range step.Fields {
			text += fmt.Sprintf("  - %s\n", field.Label)
			text += fmt.Sprintf("    Tip: %s\n", field.Tip)
			if field.SuggestedAnswer != "" {
				text += fmt.Sprintf("    Suggested: %s\n", field.SuggestedAnswer)
			}
		}
		text += fmt.Sprintf("  Why: %s\n", step.Companion)
	}

	return text
}

func (s *Server) formatExtractResult(path string, result *extract.Result) string {
	text := fmt.Sprintf("Extracted: %s\n", path)
	text += fmt.Sprintf("Method: %s\n", result.Method)

	if result.IsFields() {
		text += fmt.Sprintf("Fillable fields: %d\n", len(result.Fields))
		for i, field := range result.Fields {
			text += fmt.Sprintf("%d. %s (type: %s, page: %d)\n", i+1, field.Name, field.Type, field.Page)
		}
		return text
	}

	text += fmt.Sprintf("Characters: %d\n", len(result.Text))
	preview := result.Text
	if len(preview) > 1000 {
		// Cut on a rune boundary so the preview stays valid UTF-8.
		cut := 1000
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut] + "..."
	}
	text += "\nText preview:\n" + preview
	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting paperwork MCP server in stdio mode")
		log.Printf("Document directory: %s", s.config.DocumentDirectory)
	}

	if err := server.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs library handles transport differently; stdio is the
	// supported mode for now.
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}

package packscan

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/coursepack/kit"
)

// RegisterMCP registers packscan tools on an MCP server.
func (p *Pipeline) RegisterMCP(srv *mcp.Server) {
	p.registerInspectTool(srv)
	p.registerDetectTool(srv)
	p.registerFormatsTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- inspect ---

type inspectReq struct {
	Path string `json:"path"`
}

func (p *Pipeline) registerInspectTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "coursepack_inspect",
		Description: "Classify a course package (SCORM, xAPI, cmi5, AICC, HTML5, PDF) and extract normalized metadata.",
		InputSchema: inputSchema(map[string]any{
			"path": map[string]any{"type": "string", "description": "Package file path to inspect"},
		}, []string{"path"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*inspectReq)
		data, err := os.ReadFile(r.Path)
		if err != nil {
			return nil, err
		}
		return p.Inspect(ctx, filepath.Base(r.Path), data)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r inspectReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- detect ---

type detectReq struct {
	Path string `json:"path"`
}

func (p *Pipeline) registerDetectTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "coursepack_detect",
		Description: "Detect a course package's format without parsing its manifest.",
		InputSchema: inputSchema(map[string]any{
			"path": map[string]any{"type": "string", "description": "Package file path to classify"},
		}, []string{"path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		r := req.(*detectReq)
		if isDocumentFilename(r.Path) {
			return Detection{Format: FormatPDF}, nil
		}
		data, err := os.ReadFile(r.Path)
		if err != nil {
			return nil, err
		}
		archive, err := OpenArchive(data)
		if err != nil {
			return nil, err
		}
		return Classify(archive), nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r detectReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- formats ---

func (p *Pipeline) registerFormatsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "coursepack_formats",
		Description: "List the course-package formats packscan can classify.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return map[string]any{"formats": SupportedFormats()}, nil
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

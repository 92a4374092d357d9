package packscan

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testMCPImpl = &mcp.Implementation{Name: "coursepack-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	pipe := New(Config{})
	srv := mcp.NewServer(testMCPImpl, nil)
	pipe.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if err := result.GetError(); err != nil {
		t.Fatalf("CallTool(%s) tool error: %v", name, err)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

func TestMCP_Formats(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "coursepack_formats", map[string]any{})

	var resp struct {
		Formats []Format `json:"formats"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Formats) != 7 {
		t.Errorf("expected 7 formats, got %d: %v", len(resp.Formats), resp.Formats)
	}
}

func TestMCP_Detect(t *testing.T) {
	session := mcpSession(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "course.zip")
	data := buildZip(t, map[string]string{"tincan.xml": tincanManifest})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text := mcpCallTool(t, session, "coursepack_detect", map[string]any{"path": path})

	var det Detection
	if err := json.Unmarshal([]byte(text), &det); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if det.Format != FormatXAPI {
		t.Errorf("Format = %q, want %q", det.Format, FormatXAPI)
	}

	// Document extensions classify without reading the file at all.
	text = mcpCallTool(t, session, "coursepack_detect", map[string]any{"path": "manual.pdf"})
	json.Unmarshal([]byte(text), &det)
	if det.Format != FormatPDF {
		t.Errorf("Format = %q, want %q", det.Format, FormatPDF)
	}
}

func TestMCP_Inspect(t *testing.T) {
	session := mcpSession(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "fire-safety.zip")
	data := buildZip(t, map[string]string{"imsmanifest.xml": scorm12Manifest})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text := mcpCallTool(t, session, "coursepack_inspect", map[string]any{"path": path})

	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Detection.Format != FormatScorm12 {
		t.Errorf("Format = %q, want %q", res.Detection.Format, FormatScorm12)
	}
	if res.Metadata.Title == "" {
		t.Error("expected non-empty Title")
	}
}

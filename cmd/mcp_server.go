package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/output"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/kweiss/xwinctl/internal/version"
)

// mcpServer wraps the MCP server with a persistent X connection and the
// window list cache.
type mcpServer struct {
	provider   *platform.Provider
	cache      *windowCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer connects to the X server once and registers all tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := newProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		provider: provider,
		cache:    newWindowCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer("xwinctl", version.Version)
	s.registerTools()
	return s, nil
}

func (s *mcpServer) close() {
	s.provider.Close()
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List top-level X11 windows with their ID, title, class, PID, geometry, and map state"),
			mcp.WithString("title", mcp.Description("Filter by title regex")),
			mcp.WithString("class", mcp.Description("Filter by WM_CLASS substring")),
			mcp.WithBoolean("mapped", mcp.Description("Only show viewable windows")),
		),
		s.handleList,
	)

	s.mcp.AddTool(
		mcp.NewTool("move",
			mcp.WithDescription("Move every window whose title matches the regex; size is unchanged"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
			mcp.WithNumber("x", mcp.Description("Target X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Target Y coordinate"), mcp.Required()),
			mcp.WithBoolean("first", mcp.Description("Act on only the first match")),
		),
		s.actionHandler("move", func(m platform.Manager, w *model.Window, p map[string]interface{}) error {
			x, y := intParam(p, "x", 0), intParam(p, "y", 0)
			if err := m.Move(w.ID, x, y); err != nil {
				return err
			}
			w.Bounds[0], w.Bounds[1] = x, y
			return nil
		}),
	)

	s.mcp.AddTool(
		mcp.NewTool("resize",
			mcp.WithDescription("Resize every window whose title matches the regex; position is unchanged"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
			mcp.WithNumber("width", mcp.Description("Target width in pixels"), mcp.Required()),
			mcp.WithNumber("height", mcp.Description("Target height in pixels"), mcp.Required()),
			mcp.WithBoolean("first", mcp.Description("Act on only the first match")),
		),
		s.actionHandler("resize", func(m platform.Manager, w *model.Window, p map[string]interface{}) error {
			width, height := intParam(p, "width", 0), intParam(p, "height", 0)
			if width <= 0 || height <= 0 {
				return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
			}
			if err := m.Resize(w.ID, width, height); err != nil {
				return err
			}
			w.Bounds[2], w.Bounds[3] = width, height
			return nil
		}),
	)

	s.mcp.AddTool(
		mcp.NewTool("hide",
			mcp.WithDescription("Unmap every window whose title matches the regex; hidden windows can be restored with show"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
			mcp.WithBoolean("first", mcp.Description("Act on only the first match")),
		),
		s.actionHandler("hide", func(m platform.Manager, w *model.Window, p map[string]interface{}) error {
			if err := m.Hide(w.ID); err != nil {
				return err
			}
			w.Mapped = false
			return nil
		}),
	)

	s.mcp.AddTool(
		mcp.NewTool("show",
			mcp.WithDescription("Map every hidden window whose title matches the regex"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
			mcp.WithBoolean("first", mcp.Description("Act on only the first match")),
		),
		s.actionHandler("show", func(m platform.Manager, w *model.Window, p map[string]interface{}) error {
			if err := m.Show(w.ID); err != nil {
				return err
			}
			w.Mapped = true
			return nil
		}),
	)

	s.mcp.AddTool(
		mcp.NewTool("raise",
			mcp.WithDescription("Restack every window whose title matches the regex above its siblings"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
			mcp.WithBoolean("first", mcp.Description("Act on only the first match")),
		),
		s.actionHandler("raise", func(m platform.Manager, w *model.Window, p map[string]interface{}) error {
			return m.Raise(w.ID)
		}),
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Activate the first window whose title matches the regex, raising it and giving it input focus"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
		),
		s.handleFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("wait",
			mcp.WithDescription("Wait for a window whose title matches the regex to appear or disappear"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
			mcp.WithBoolean("gone", mcp.Description("Wait until NO window matches")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: 30)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: 500)")),
		),
		s.handleWait,
	)

	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Capture the pixels of the first viewable window whose title matches the regex"),
			mcp.WithString("title", mcp.Description("Title regex"), mcp.Required()),
			mcp.WithString("format", mcp.Description("Image format: png, jpg (default: png)")),
			mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100 (default: 80)")),
			mcp.WithNumber("scale", mcp.Description("Scale factor 0.1-1.0 (default: 0.5)")),
		),
		s.handleScreenshot,
	)
}

// resolveMatches compiles the title param and returns matching windows from
// the cache. The caller must hold providerMu.
func (s *mcpServer) resolveMatches(params map[string]interface{}) ([]model.Window, string, error) {
	pattern := stringParam(params, "title", "")
	if pattern == "" {
		return nil, "", fmt.Errorf("title parameter is required")
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, pattern, err
	}
	windows, err := s.cache.list(s.provider.Lister)
	if err != nil {
		return nil, pattern, err
	}
	matches := model.FilterWindows(windows, model.Filter{Title: re})
	if len(matches) == 0 {
		return nil, pattern, fmt.Errorf("no window title matches %q", pattern)
	}
	return matches, pattern, nil
}

// actionHandler wraps a per-window manager call into an MCP tool handler:
// resolve matches, apply, invalidate the cache, report an ActionResult.
func (s *mcpServer) actionHandler(action string, fn func(platform.Manager, *model.Window, map[string]interface{}) error) mcpserver.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := request.GetArguments()

		s.providerMu.Lock()
		defer s.providerMu.Unlock()

		matches, pattern, err := s.resolveMatches(params)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if boolParam(params, "first", false) && len(matches) > 1 {
			matches = matches[:1]
		}

		for i := range matches {
			w := &matches[i]
			if err := fn(s.provider.Manager, w, params); err != nil {
				s.cache.invalidate()
				return mcp.NewToolResultError(fmt.Sprintf("%s window %#x (%q): %v", action, w.ID, w.Title, err)), nil
			}
		}
		s.cache.invalidate()

		return mcp.NewToolResultText(output.MarshalYAML(output.ActionResult{
			OK:      true,
			Action:  action,
			Pattern: pattern,
			Windows: matches,
		})), nil
	}
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.cache.list(s.provider.Lister)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	f := model.Filter{
		Class:      stringParam(params, "class", ""),
		MappedOnly: boolParam(params, "mapped", false),
	}
	if pattern := stringParam(params, "title", ""); pattern != "" {
		re, err := compilePattern(pattern)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		f.Title = re
	}
	windows = model.FilterWindows(windows, f)
	if windows == nil {
		windows = []model.Window{}
	}

	return mcp.NewToolResultText(output.MarshalYAML(output.ListResult{
		Display: displayName,
		TS:      time.Now().Unix(),
		Windows: windows,
	})), nil
}

func (s *mcpServer) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	matches, pattern, err := s.resolveMatches(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target := matches[0]
	if err := s.provider.Manager.Activate(target.ID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target.Focused = true
	s.cache.invalidate()

	return mcp.NewToolResultText(output.MarshalYAML(output.ActionResult{
		OK:      true,
		Action:  "focus",
		Pattern: pattern,
		Windows: []model.Window{target},
	})), nil
}

func (s *mcpServer) handleWait(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	pattern := stringParam(params, "title", "")
	if pattern == "" {
		return mcp.NewToolResultError("title parameter is required"), nil
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	gone := boolParam(params, "gone", false)
	timeout := time.Duration(intParam(params, "timeout", 30)) * time.Second
	interval := time.Duration(intParam(params, "interval", 500)) * time.Millisecond

	start := time.Now()
	deadline := start.Add(timeout)

	for {
		if err := ctx.Err(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		// Waiting is inherently about fresh state, so bypass the cache.
		s.providerMu.Lock()
		windows, err := s.provider.Lister.ListWindows(platform.ListOptions{})
		s.providerMu.Unlock()

		if err == nil {
			matched := len(model.FilterWindows(windows, model.Filter{Title: re})) > 0
			if matched != gone {
				return mcp.NewToolResultText(output.MarshalYAML(output.WaitResult{
					OK:      true,
					Action:  "wait",
					Pattern: pattern,
					Elapsed: fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
				})), nil
			}
		}

		if time.Now().After(deadline) {
			return mcp.NewToolResultError(output.MarshalYAML(output.WaitResult{
				OK:       false,
				Action:   "wait",
				Pattern:  pattern,
				Elapsed:  fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
				TimedOut: true,
			})), nil
		}

		time.Sleep(interval)
	}
}

func (s *mcpServer) handleScreenshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	format := stringParam(params, "format", "png")
	quality := intParam(params, "quality", 80)
	scale := floatParam(params, "scale", 0.5)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.Screenshotter == nil {
		return mcp.NewToolResultError("screenshots not available on this platform"), nil
	}

	matches, _, err := s.resolveMatches(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target := matches[0]
	if !target.Mapped {
		return mcp.NewToolResultError(fmt.Sprintf("window %#x (%q) is not viewable; show it first", target.ID, target.Title)), nil
	}

	data, err := s.provider.Screenshotter.CaptureWindow(platform.ScreenshotOptions{
		WindowID: target.ID,
		Format:   format,
		Quality:  quality,
		Scale:    scale,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mimeType := "image/png"
	if format == "jpg" || format == "jpeg" {
		mimeType = "image/jpeg"
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(data),
				MIMEType: mimeType,
			},
		},
	}, nil
}

// Param helpers: MCP arguments arrive as generic JSON values, so numbers are
// float64 and missing keys fall back to the default.

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

func floatParam(params map[string]interface{}, key string, def float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

package markup

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/net/html"

	"github.com/dpotapov/go-markup/diag"
	"github.com/dpotapov/go-markup/dom"
)

const (
	cssExt  = ".css"
	htmlExt = ".html"
)

// wsUpgrader is a Gorilla WebSocket instance, used to respond HTTP requests with WebSocket.
var wsUpgrader = websocket.Upgrader{}

// Handler serves the files of FileSystem. Stylesheets and HTML pages are parsed and sent back
// in canonical form; other files are served as they are.
//
// A WebSocket request for a stylesheet starts a live-edit session: the client sends
// EditRequest messages, and every client of the same stylesheet receives an EditResponse
// with the new canonical text after each change. Edits live in memory only.
type Handler struct {
	// FileSystem to serve stylesheets, pages and other web assets from.
	FileSystem fs.FS

	// OnError is a callback that is called when an error occurs while serving a request.
	OnError func(*http.Request, error)

	// Logger configures logging for internal events.
	Logger *slog.Logger

	// init is used to initialize the handler only once.
	init sync.Once

	// logger is a private logger instance that is used to log internal events.
	logger *slog.Logger

	mu     sync.Mutex
	sheets map[string]*stylesheet
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.init.Do(func() {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		if h.Logger != nil {
			h.logger = h.Logger
		}
		h.sheets = make(map[string]*stylesheet)
	})

	if err := h.handleRequest(w, r); err != nil {
		h.logger.Error("Serve HTTP request", "url", r.URL.Redacted(), "error", err)

		if h.OnError != nil {
			h.OnError(r, err)
		}
	}
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) error {
	fsPath, ok := h.matchFS(cleanPath(r.URL.Path))
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return nil
	}

	switch path.Ext(fsPath) {
	case cssExt:
		sheet, err := h.stylesheet(r.Context(), fsPath)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return err
		}
		if websocket.IsWebSocketUpgrade(r) {
			return h.serveLiveEdit(w, r, fsPath, sheet)
		}
		return h.serveStylesheet(w, r, sheet)
	case htmlExt:
		if xpath := r.URL.Query().Get("xpath"); xpath != "" {
			return h.servePageSelection(w, r, fsPath, xpath)
		}
		return h.servePage(w, r, fsPath)
	}
	return h.serveFile(w, r, fsPath)
}

// matchFS maps a URL path to a regular file in the FileSystem. A directory maps to its
// index.html. Hidden files and directories are never matched.
func (h *Handler) matchFS(urlPath string) (string, bool) {
	p := strings.TrimPrefix(urlPath, "/")
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index" + htmlExt
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg[0] == '.' {
			return "", false
		}
	}
	fi, err := fs.Stat(h.FileSystem, p)
	if err != nil || fi.IsDir() {
		return "", false
	}
	return p, true
}

// stylesheet returns the parsed stylesheet at fsPath. The file is read and parsed on first
// use; later requests and live-edit sessions share the result.
func (h *Handler) stylesheet(ctx context.Context, fsPath string) (*stylesheet, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sheets[fsPath]; ok {
		return s, nil
	}

	src, err := fs.ReadFile(h.FileSystem, fsPath)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	s := newStylesheet(string(src))
	h.logDiagnostics(ctx, fsPath, s.diags)
	h.sheets[fsPath] = s
	return s, nil
}

// serveStylesheet writes the canonical text of sheet. With a "q" query parameter only the
// top-level and nested rules matching the css.Find query are written.
func (h *Handler) serveStylesheet(w http.ResponseWriter, r *http.Request, sheet *stylesheet) error {
	var body string
	if q := r.URL.Query().Get("q"); q != "" {
		rules, err := sheet.find(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}
		body = strings.Join(rules, "\n")
	} else {
		body = sheet.snapshot().CSS
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, err := io.WriteString(w, body+"\n")
	return err
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, fsPath string) error {
	src, err := fs.ReadFile(h.FileSystem, fsPath)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("read page: %w", err)
	}

	doc, diags := dom.Parse(string(src))
	h.logDiagnostics(r.Context(), fsPath, diags)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dom.Render(w, doc.Root); err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}
	return nil
}

// servePageSelection writes the nodes of the page matching the XPath expression, one after
// another.
func (h *Handler) servePageSelection(w http.ResponseWriter, r *http.Request, fsPath, xpath string) error {
	src, err := fs.ReadFile(h.FileSystem, fsPath)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("read page: %w", err)
	}

	nodes, diags, err := dom.Select(string(src), xpath)
	h.logDiagnostics(r.Context(), fsPath, diags)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render HTML: %w", err)
		}
	}
	return nil
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, fsPath string) error {
	r.URL.Path = fsPath
	r.URL.RawPath = fsPath
	http.FileServer(http.FS(h.FileSystem)).ServeHTTP(w, r)
	return nil
}

// serveLiveEdit runs a live-edit session for sheet until the client disconnects.
func (h *Handler) serveLiveEdit(w http.ResponseWriter, r *http.Request, fsPath string, sheet *stylesheet) error {
	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	// Push the stylesheet on:
	// 1. session start
	// 2. every change made by any session
	// Replies to failed requests go to this session only.

	changed := sheet.subscribe()
	defer sheet.unsubscribe(changed)

	failed := make(chan EditResponse, 1)
	done := make(chan error, 1) // completion of the read loop
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			var req EditRequest
			if err := ws.ReadJSON(&req); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					err = nil
				} else {
					err = fmt.Errorf("read websocket message: %w", err)
				}
				done <- err
				return
			}

			if err := sheet.edit(req); err != nil {
				h.logger.Debug("Edit stylesheet", "path", fsPath, "op", req.Op, "error", err)
				resp := sheet.snapshot()
				resp.Error = err.Error()
				select {
				case failed <- resp:
				case <-quit:
					return
				}
				continue
			}
			h.logger.Debug("Edit stylesheet", "path", fsPath, "op", req.Op)
		}
	}()

	for {
		var resp EditResponse
		select {
		case <-changed:
			resp = sheet.snapshot()
		case resp = <-failed:
		case err := <-done:
			return err
		}
		if err := ws.WriteJSON(resp); err != nil {
			return fmt.Errorf("write websocket message: %w", err)
		}
	}
}

func (h *Handler) logDiagnostics(ctx context.Context, fsPath string, diags diag.List) {
	for _, d := range diags {
		level := slog.LevelWarn
		if d.Severity == diag.Advisory {
			level = slog.LevelInfo
		}
		h.logger.Log(ctx, level, "Parse file",
			"path", fsPath, "code", d.Code, "line", d.Span.Line, "column", d.Span.Column, "message", d.Message)
	}
}

// cleanPath returns the canonical path for p, eliminating . and .. elements.
//
// Copied from net/http/server.go
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		// Fast path for common case of p being the string we want:
		if len(p) == len(np)+1 && strings.HasPrefix(p, np) {
			np = p
		} else {
			np += "/"
		}
	}
	return np
}

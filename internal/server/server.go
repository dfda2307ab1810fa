// Package server serves a directory over HTTP with corrected MIME types.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/modserve/internal/mimetypes"
)

const indexPage = "index.html"

// Server maps request paths onto a filesystem root and serves the files
// with a Content-Type from the mimetypes table. Path resolution, directory
// indexes and error responses are left to http.FileServer.
type Server struct {
	cfg   Config
	fs    afero.Fs
	files http.Handler
}

// New builds a Server. The root is made absolute here so later changes to
// the working directory do not move it.
func New(cfg Config) (*Server, error) {
	cfg.validate()

	fsys := cfg.Fs
	if fsys == nil {
		absRoot, err := filepath.Abs(cfg.Root)
		if err != nil {
			return nil, fmt.Errorf("invalid root directory: %w", err)
		}
		cfg.Root = absRoot
		fsys = afero.NewBasePathFs(afero.NewOsFs(), absRoot)
	}

	return &Server{
		cfg:   cfg,
		fs:    fsys,
		files: http.FileServer(afero.NewHttpFs(fsys)),
	}, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := validatePath(r.URL.Path)
	if err != nil {
		http.Error(w, "403 - Forbidden: Invalid path", http.StatusForbidden)
		return
	}

	if file := s.resolveFile(r.URL.Path, name); file != "" {
		if ctype := mimetypes.Resolve(file); ctype != "" {
			w.Header().Set("Content-Type", ctype)
		}
	}

	s.files.ServeHTTP(w, r)
}

// resolveFile returns the file http.FileServer will send for a 200 response,
// or "" when the request ends in a redirect, listing or error.
func (s *Server) resolveFile(urlPath, name string) string {
	// FileServer redirects these to the directory
	if strings.HasSuffix(urlPath, "/"+indexPage) {
		return ""
	}

	info, err := s.fs.Stat(name)
	if err != nil {
		return ""
	}

	wantDir := strings.HasSuffix(urlPath, "/")
	if !info.IsDir() {
		if wantDir {
			return ""
		}
		return name
	}
	if !wantDir {
		return ""
	}

	index := path.Join(name, indexPage)
	if fi, err := s.fs.Stat(index); err == nil && !fi.IsDir() {
		return index
	}
	return ""
}

// Listen binds the configured port on all interfaces.
func (s *Server) Listen() (net.Listener, error) {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", addr, err)
	}
	return ln, nil
}

// Serve prints the startup banner and serves on ln until ctx is cancelled,
// then shuts down gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := s.cfg.Logger

	port := s.cfg.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}

	httpServer := &http.Server{
		Handler:  s,
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	_, _ = fmt.Fprintf(s.cfg.Stdout, "Server running at http://localhost:%d\n", port)
	_, _ = fmt.Fprintln(s.cfg.Stdout, "Press Ctrl+C to stop")
	logger.Debug("Listening", "addr", ln.Addr().String(), "root", s.cfg.Root)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		logger.Error("HTTP server failed", "error", err)
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown error", "error", err)
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// Run binds and serves cfg.Root until ctx is cancelled. A bind failure is
// returned before anything is printed.
func Run(ctx context.Context, cfg Config) error {
	srv, err := New(cfg)
	if err != nil {
		return err
	}

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	return srv.Serve(ctx, ln)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/config"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

var (
	// ErrNotInitialized indicates no rpt2rdf.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in an rpt2rdf project (rpt2rdf.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrReportsNotFound indicates the reports directory holds no report definitions.
	ErrReportsNotFound = errors.New("no report definitions found")

	// ErrInvalidReport indicates a report definition file couldn't be parsed.
	ErrInvalidReport = errors.New("invalid report definition")
)

// ConfigFileName is the name of the rpt2rdf configuration file.
const ConfigFileName = "rpt2rdf.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the parsed report
// definitions, in file-name order.
type Context struct {
	// Config is the validated project configuration.
	Config *config.Config

	// Reports are the parsed report definitions from the reports directory.
	Reports []*rpt.Report
}

// Report returns the loaded report with the given name, or nil.
func (c *Context) Report(name string) *rpt.Report {
	for _, r := range c.Reports {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// ReportNames returns the names of all loaded reports in load order.
func (c *Context) ReportNames() []string {
	names := make([]string, 0, len(c.Reports))
	for _, r := range c.Reports {
		names = append(names, r.Name)
	}
	return names
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the rpt2rdf Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	reportsDir := cfg.Reports
	if !filepath.IsAbs(reportsDir) {
		reportsDir = filepath.Join(cwd, reportsDir)
	}

	paths, err := findReportFiles(reportsDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no *.rpt.yaml or *.rpt.json in %s", ErrReportsNotFound, reportsDir)
	}

	reports := make([]*rpt.Report, 0, len(paths))
	for _, p := range paths {
		rep, parseErr := rpt.ParseFile(p)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidReport, filepath.Base(p), parseErr)
		}
		reports = append(reports, rep)
	}

	runCtx := &Context{
		Config:  cfg,
		Reports: reports,
	}

	return context.WithValue(ctx, contextKey{}, runCtx), nil
}

// findReportFiles lists the report definition files in dir, sorted by
// file name so load order is stable.
func findReportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: reports directory %s does not exist", ErrReportsNotFound, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.HasSuffix(name, ".rpt.yaml") || strings.HasSuffix(name, ".rpt.yml") || strings.HasSuffix(name, ".rpt.json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// From extracts the rpt2rdf Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if runCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return runCtx
	}
	return nil
}

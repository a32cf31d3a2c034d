// Package demo runs the labeled-table demo: it resolves the configuration
// value, prints the greeting table and then prints the value.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tabledemo/internal/config"
	"tabledemo/internal/env"
	"tabledemo/internal/frame"
	"tabledemo/internal/render"
)

// Value sources reported in logs.
const (
	SourceEnv     = "env"
	SourceDefault = "default"
)

// Runner prints the demo table followed by the configuration value.
type Runner struct {
	out      io.Writer
	env      env.Reader
	renderer render.Renderer
	secret   config.SecretConfig
	logger   *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithRenderer sets the table renderer. The default is render.Plain.
func WithRenderer(r render.Renderer) Option {
	return func(rn *Runner) { rn.renderer = r }
}

// WithSecret sets the variable name and fallback message. The default is
// config.DefaultConfig().Secret.
func WithSecret(s config.SecretConfig) Option {
	return func(rn *Runner) { rn.secret = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(rn *Runner) { rn.logger = l }
}

// NewRunner returns a Runner writing to out and reading variables from r.
func NewRunner(out io.Writer, r env.Reader, opts ...Option) *Runner {
	rn := &Runner{
		out:      out,
		env:      r,
		renderer: render.Plain{},
		secret:   config.DefaultConfig().Secret,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rn)
	}
	if rn.logger == nil {
		rn.logger = zap.NewNop()
	}
	return rn
}

// Resolve returns the configuration value and where it came from.
func (r *Runner) Resolve() (value, source string) {
	if v, ok := lookup(r.env, r.secret.EnvVar); ok {
		return v, SourceEnv
	}
	return r.secret.Default, SourceDefault
}

func lookup(r env.Reader, key string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.LookupEnv(key)
}

// Run prints the table and then the configuration value, each followed by
// a newline.
func (r *Runner) Run(ctx context.Context) error {
	log := r.logger.With(zap.String("run_id", uuid.New().String()))

	value, source := r.Resolve()
	// The value itself is never logged.
	log.Debug("Resolved configuration value",
		zap.String("env_var", r.secret.EnvVar),
		zap.String("source", source))

	tbl := frame.Greeting()
	rows, cols := tbl.Shape()
	log.Debug("Built labeled table", zap.Int("rows", rows), zap.Int("cols", cols))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run cancelled: %w", err)
	}

	if err := r.renderer.Render(r.out, tbl); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	if _, err := fmt.Fprintln(r.out, value); err != nil {
		return fmt.Errorf("failed to write configuration value: %w", err)
	}

	log.Debug("Run complete")
	return nil
}

// Command talentlink renders one screen of the talent platform client per
// invocation: resolve the given path against the route table, fetch, render to
// stdout. Form fields and filter state come in as flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/beksultan/talentlink/internal/app"
	"github.com/beksultan/talentlink/internal/config"
	"github.com/beksultan/talentlink/internal/domain/filter"
	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/pkg/logger"
	"github.com/beksultan/talentlink/pkg/metrics"
)

const metricsReadHeaderTimeout = 5 * time.Second

// fieldFlags collects repeated -f key=value form field flags.
type fieldFlags map[string]string

func (f fieldFlags) String() string {
	pairs := make([]string, 0, len(f))
	for k, v := range f {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (f fieldFlags) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	f[key] = value
	return nil
}

func main() {
	fields := fieldFlags{}
	attachments := fieldFlags{}
	var (
		search   = flag.String("search", "", "Filter events by a search term")
		faculty  = flag.String("faculty", "", `Filter events by faculty id ("all" for no restriction)`)
		skills   = flag.String("skills", "", "Filter events by skill ids, comma-separated")
		message  = flag.String("message", "", "Application message when applying to an event")
		decision = flag.String("decision", "", "Review decision: approved or rejected")
		comment  = flag.String("comment", "", "Organizer comment attached to a review")
		image    = flag.String("image", "", "Path of an image to attach, shorthand for -attach image=<path>")
		refresh  = flag.Bool("refresh", false, "Drop cached skill and faculty lists before rendering")
	)
	flag.Var(fields, "f", "Form field as key=value, repeatable")
	flag.Var(attachments, "attach", "File attachment as field=path (e.g. avatar=me.png), repeatable")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optional metrics listener for long-running scripted use.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr, log)
	}

	client, err := app.New(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to assemble client", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	if *refresh {
		if err := client.RefreshReferences(ctx); err != nil {
			log.Warn(ctx, "could not drop cached reference lists", logger.Error(err))
		}
	}

	if *image != "" {
		attachments["image"] = *image
	}
	in, err := buildInput(fields, attachments, *search, *faculty, *skills, *message, *decision, *comment)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	path := flag.Arg(0)
	if path == "" {
		path = "/"
	}

	if err := client.Run(ctx, path, in, os.Stdout); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func buildInput(fields, attachments fieldFlags, search, faculty, skills, message, decision, comment string) (app.Input, error) {
	form := forms.New(fields)
	for field, path := range attachments {
		content, err := os.ReadFile(path)
		if err != nil {
			return app.Input{}, fmt.Errorf("reading %s attachment %s: %w", field, path, err)
		}
		form.Attach(field, forms.File{Name: filepath.Base(path), Content: content})
	}

	f := filter.Filter{SearchTerm: search, FacultyID: faculty}
	for _, part := range strings.Split(skills, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return app.Input{}, fmt.Errorf("bad skill id %q", part)
		}
		f.SkillIDs = append(f.SkillIDs, id)
	}

	return app.Input{
		Form:     form,
		Filter:   f,
		Message:  message,
		Decision: decision,
		Comment:  comment,
	}, nil
}

func serveMetrics(ctx context.Context, addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(ctx, "metrics server failed", logger.Error(err))
	}
}

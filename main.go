package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-prompt/pkg/aiEndpoint/gemini"
	"github.com/zicongmei/ai-prompt/pkg/config"
	"github.com/zicongmei/ai-prompt/pkg/flow"
	"github.com/zicongmei/ai-prompt/pkg/utils"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

// cliFlags holds the raw command-line values. Only flags that were actually
// set on the command line override the environment.
type cliFlags struct {
	EnvFile     string
	Model       string
	Prompt      string
	APIVersion  string
	BaseURL     string
	Timeout     time.Duration
	Debug       bool
	CountTokens bool
	Format      string
	SaveDir     string
}

func main() {
	// Logs go to stderr and files by default; stdout is reserved for the completion.
	if err := flag.Set("alsologtostderr", "true"); err != nil {
		glog.Errorf("Failed to set default for -alsologtostderr: %v", err)
	}

	var f cliFlags
	flag.StringVar(&f.EnvFile, "env-file", config.DefaultEnvFile, "Environment file to load before reading "+config.APIKeyEnv)
	flag.StringVar(&f.Model, "model", config.DefaultModel, "Model to use (overrides "+config.ModelEnv+")")
	flag.StringVar(&f.Prompt, "prompt", "", "Prompt to send (default \"1 + 1 = ?\")")
	flag.StringVar(&f.APIVersion, "api-version", config.DefaultAPIVersion, "Gemini API version")
	flag.StringVar(&f.BaseURL, "base-url", "", "Override the Gemini API base URL (overrides "+config.BaseURLEnv+")")
	flag.DurationVar(&f.Timeout, "timeout", 0, "Request timeout, 0 waits indefinitely")
	flag.BoolVar(&f.Debug, "debug", false, "Print a redacted credential diagnostic before the request")
	flag.BoolVar(&f.CountTokens, "count-tokens", false, "Print the prompt's token count instead of a completion")
	flag.StringVar(&f.Format, "format", "text", "Output format: text or html")
	flag.StringVar(&f.SaveDir, "save-dir", "", "Directory to save a markdown transcript of the run")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	envFiles := []string{}
	if set["env-file"] {
		envFiles = append(envFiles, f.EnvFile)
	}
	if err := config.LoadEnvFile(envFiles...); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(exitConfig)
	}

	cfg := config.FromEnv(os.LookupEnv)
	applyFlags(&cfg, f, set)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, os.Stdout)
	stop()

	code := exitCode(err)
	if err != nil {
		glog.Errorf("Prompt run failed: %v", err)
	} else {
		glog.V(0).Info("Prompt run finished successfully.")
	}
	glog.Flush()
	os.Exit(code)
}

func applyFlags(cfg *config.Config, f cliFlags, set map[string]bool) {
	if set["model"] {
		cfg.Model = f.Model
	}
	if set["prompt"] {
		cfg.Prompt = f.Prompt
	}
	if set["api-version"] {
		cfg.APIVersion = f.APIVersion
	}
	if set["base-url"] {
		cfg.BaseURL = f.BaseURL
	}
	if set["format"] {
		cfg.Format = f.Format
	}
	cfg.Timeout = f.Timeout
	cfg.Debug = f.Debug
	cfg.CountTokens = f.CountTokens
	cfg.SaveDir = f.SaveDir
}

// run validates cfg, builds the Gemini client and sends the prompt, writing
// program output to stdout.
func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	flow.LogTransition(flow.StateStart)
	if err := cfg.Validate(); err != nil {
		flow.LogTransition(flow.StateFailed)
		return err
	}
	flow.LogTransition(flow.StateCredentialLoaded)

	glog.V(0).Infof("  Model: %q", cfg.Model)
	glog.V(1).Infof("  API version: %q, format: %q, count tokens: %t", cfg.APIVersion, cfg.Format, cfg.CountTokens)
	if cfg.Debug {
		if _, err := fmt.Fprintf(stdout, "%s: %s\n", config.APIKeyEnv, utils.RedactSecret(cfg.APIKey)); err != nil {
			return fmt.Errorf("failed to write diagnostic: %w", err)
		}
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	engine, err := gemini.NewClient(ctx, gemini.Options{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		APIVersion: cfg.APIVersion,
		BaseURL:    cfg.BaseURL,
	})
	if err != nil {
		flow.LogTransition(flow.StateFailed)
		return fmt.Errorf("failed to initialize AI engine: %w", err)
	}
	defer engine.Close()
	flow.LogTransition(flow.StateClientConstructed)

	return flow.Run(ctx, engine, flow.Options{
		Prompt:      cfg.Prompt,
		Out:         stdout,
		Format:      cfg.Format,
		CountTokens: cfg.CountTokens,
		SaveDir:     cfg.SaveDir,
	})
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrCredentialMissing),
		errors.Is(err, config.ErrEmptyModel),
		errors.Is(err, config.ErrInvalidTimeout),
		errors.Is(err, config.ErrUnknownFormat):
		return exitConfig
	default:
		return exitFailure
	}
}

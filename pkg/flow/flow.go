package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-prompt/pkg/aiEndpoint"
	"github.com/zicongmei/ai-prompt/pkg/display"
	"github.com/zicongmei/ai-prompt/pkg/prompt"
	"github.com/zicongmei/ai-prompt/pkg/utils"
)

// State is a step of a single prompt run.
type State string

const (
	StateStart             State = "start"
	StateCredentialLoaded  State = "credential_loaded"
	StateClientConstructed State = "client_constructed"
	StateRequestSent       State = "request_sent"
	StateResponsePrinted   State = "response_printed"
	StateFailed            State = "failed"
)

// Options controls what a run sends and where the result goes.
type Options struct {
	Prompt      string
	Out         io.Writer
	Format      string
	CountTokens bool
	SaveDir     string // empty disables transcript saving
}

// Run sends one prompt through engine and writes the result to opts.Out.
// The engine must already be constructed; Run drives the remaining steps.
// Nothing is written to opts.Out when the request fails.
func Run(ctx context.Context, engine aiEndpoint.AIEngine, opts Options) error {
	if engine == nil {
		return errors.New("flow: nil AI engine")
	}
	if opts.Out == nil {
		return errors.New("flow: nil output writer")
	}

	text := prompt.Resolve(opts.Prompt)
	glog.V(0).Infof("Starting prompt run (prompt length: %d characters).", len(text))
	glog.V(1).Infof("Prompt (truncated): %q", utils.TruncateString(text, 100))

	LogTransition(StateRequestSent)
	if opts.CountTokens {
		tokens, err := engine.CountTokens(ctx, text)
		if err != nil {
			LogTransition(StateFailed)
			return fmt.Errorf("failed to count tokens: %w", err)
		}
		if _, err := fmt.Fprintln(opts.Out, strconv.Itoa(tokens)); err != nil {
			LogTransition(StateFailed)
			return fmt.Errorf("failed to write token count: %w", err)
		}
		glog.V(0).Infof("Prompt contains %d tokens.", tokens)
		LogTransition(StateResponsePrinted)
		return nil
	}

	completion, err := engine.SendPrompt(ctx, text)
	if err != nil {
		LogTransition(StateFailed)
		return fmt.Errorf("failed to get AI response: %w", err)
	}
	glog.V(1).Infof("AI responded. Response length: %d bytes.", len(completion))

	if err := display.WriteCompletion(opts.Out, completion, opts.Format); err != nil {
		LogTransition(StateFailed)
		return fmt.Errorf("failed to print AI response: %w", err)
	}
	LogTransition(StateResponsePrinted)

	if opts.SaveDir != "" {
		// Saving is secondary; the completion is already printed.
		if _, err := display.SaveTranscript(opts.SaveDir, text, completion); err != nil {
			glog.Warningf("Transcript not saved: %v", err)
		}
	}

	glog.V(0).Info("Prompt run completed.")
	return nil
}

// LogTransition records that a run reached state s.
func LogTransition(s State) {
	glog.V(1).Infof("Prompt runner state: %s", s)
}

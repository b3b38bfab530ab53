package flow

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/zicongmei/ai-prompt/pkg/aiEndpoint"
	"github.com/zicongmei/ai-prompt/pkg/aiEndpoint/fake"
)

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		engine     *fake.Engine
		opts       Options
		wantOut    string
		wantPrompt string
		wantErr    error
	}{
		{
			name:       "prints completion",
			engine:     fake.New("2"),
			opts:       Options{Prompt: "1 + 1 = ?"},
			wantOut:    "2\n",
			wantPrompt: "1 + 1 = ?",
		},
		{
			name:       "empty prompt uses default",
			engine:     fake.New("2"),
			opts:       Options{},
			wantOut:    "2\n",
			wantPrompt: "1 + 1 = ?",
		},
		{
			name:       "auth failure prints nothing",
			engine:     fake.New("2").WithError(aiEndpoint.ErrAuthFailed),
			opts:       Options{Prompt: "1 + 1 = ?"},
			wantPrompt: "1 + 1 = ?",
			wantErr:    aiEndpoint.ErrAuthFailed,
		},
		{
			name:       "count tokens",
			engine:     fake.New("unused").WithTokens(5),
			opts:       Options{Prompt: "1 + 1 = ?", CountTokens: true},
			wantOut:    "5\n",
			wantPrompt: "1 + 1 = ?",
		},
		{
			name:       "html format",
			engine:     fake.New("*2*"),
			opts:       Options{Prompt: "1 + 1 = ?", Format: "html"},
			wantOut:    "<p><em>2</em></p>\n",
			wantPrompt: "1 + 1 = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.opts.Out = &out

			err := Run(context.Background(), tt.engine, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}

			if out.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
			prompts := tt.engine.Prompts()
			if len(prompts) != 1 || prompts[0] != tt.wantPrompt {
				t.Errorf("engine received %q, want exactly [%q]", prompts, tt.wantPrompt)
			}
		})
	}
}

func TestRun_Independent(t *testing.T) {
	engine := fake.New("2")
	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		if err := Run(context.Background(), engine, Options{Prompt: "1 + 1 = ?", Out: &out}); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if out.String() != "2\n" {
			t.Errorf("run %d: output = %q, want %q", i, out.String(), "2\n")
		}
	}
	if n := len(engine.Prompts()); n != 2 {
		t.Errorf("engine received %d prompts, want 2", n)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, fake.New("2"), Options{Out: &out})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestRun_SavesTranscript(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := Run(context.Background(), fake.New("2"), Options{Out: &out, SaveDir: dir}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("found %d transcripts, want 1", len(matches))
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	if err := Run(context.Background(), nil, Options{Out: &bytes.Buffer{}}); err == nil {
		t.Error("Run() with nil engine expected an error")
	}
	if err := Run(context.Background(), fake.New("2"), Options{}); err == nil {
		t.Error("Run() with nil writer expected an error")
	}
}

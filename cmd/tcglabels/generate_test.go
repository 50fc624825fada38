package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"

	tcglabels "github.com/alnah/go-tcglabels"
	"github.com/alnah/go-tcglabels/internal/config"
)

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Render.Timeout = "45s"

	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr error
	}{
		{name: "config value", want: 45 * time.Second},
		{name: "flag wins", flag: "2m", want: 2 * time.Minute},
		{name: "not a duration", flag: "soon", wantErr: ErrUsage},
		{name: "zero", flag: "0s", wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flag, cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveTimeout(%q) error = %v, want %v", tt.flag, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveTimeout(%q) unexpected error: %v", tt.flag, err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestBuildPageSettings(t *testing.T) {
	t.Parallel()

	got := buildPageSettings(config.PageConfig{Margin: 0.1})
	if got.Width != tcglabels.DefaultPageWidth || got.Height != tcglabels.DefaultPageHeight {
		t.Errorf("zero size = %vx%v, want label stock default", got.Width, got.Height)
	}
	if got.Margin != 0.1 {
		t.Errorf("Margin = %v, want 0.1", got.Margin)
	}

	got = buildPageSettings(config.PageConfig{Width: 4, Height: 4, PreferCSSPageSize: true})
	if got.Width != 4 || got.Height != 4 || !got.PreferCSSPageSize {
		t.Errorf("buildPageSettings() = %+v", got)
	}
}

func TestWithHint(t *testing.T) {
	t.Parallel()

	job := tcglabels.Job{ReturnAddressFile: "return_address.txt"}
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"missing return address", fmt.Errorf("%w: %w", tcglabels.ErrReturnAddress, fs.ErrNotExist), "create return_address.txt"},
		{"missing template", fmt.Errorf("%w: %w", tcglabels.ErrReadTemplate, fs.ErrNotExist), "tcglabels init"},
		{"missing stylesheet", fmt.Errorf("%w: %w", tcglabels.ErrReadStylesheet, fs.ErrNotExist), "tcglabels init"},
		{"malformed orders", fmt.Errorf("%w: line 3", tcglabels.ErrParseOrders), "header row"},
		{"unreadable return address", fmt.Errorf("%w: %w", tcglabels.ErrReturnAddress, fs.ErrPermission), ""},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withHint(tt.err, job)
			if !errors.Is(got, tt.err) {
				t.Errorf("withHint() lost the error chain: %v", got)
			}
			hasHint := strings.Contains(got.Error(), "hint:")
			if tt.wantHint == "" {
				if hasHint {
					t.Errorf("withHint() = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got.Error(), tt.wantHint) {
				t.Errorf("withHint() = %q, want hint %q", got, tt.wantHint)
			}
		})
	}
}

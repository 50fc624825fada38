package tcglabels

import (
	"errors"
	"testing"
	"time"
)

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{name: "nil means defaults", page: nil},
		{name: "defaults", page: DefaultPageSettings()},
		{name: "letter with margin", page: &PageSettings{Width: 8.5, Height: 11, Margin: 0.5}},
		{name: "zero width", page: &PageSettings{Width: 0, Height: 6}, wantErr: ErrInvalidPageSize},
		{name: "too tall", page: &PageSettings{Width: 4, Height: 60}, wantErr: ErrInvalidPageSize},
		{name: "negative margin", page: &PageSettings{Width: 4, Height: 6, Margin: -1}, wantErr: ErrInvalidMargin},
		{name: "margin covers page", page: &PageSettings{Width: 4, Height: 6, Margin: 2}, wantErr: ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestJob_WithDefaults(t *testing.T) {
	t.Parallel()

	got := Job{OrderFile: "orders.csv", StylesheetFile: "custom.css"}.withDefaults()

	if got.ReturnAddressFile != DefaultReturnAddressFile {
		t.Errorf("ReturnAddressFile = %q, want %q", got.ReturnAddressFile, DefaultReturnAddressFile)
	}
	if got.TemplateFile != DefaultTemplateFile {
		t.Errorf("TemplateFile = %q, want %q", got.TemplateFile, DefaultTemplateFile)
	}
	if got.StylesheetFile != "custom.css" {
		t.Errorf("StylesheetFile = %q, want custom.css kept", got.StylesheetFile)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("WithTimeout(%v) did not panic", d)
				}
			}()
			WithTimeout(d)
		}()
	}
}

package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithListMode()(cfg)
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}

	WithCheckMode()(cfg)
	if cfg.mode != ModeCheck {
		t.Fatalf("WithCheckMode() mode = %v, want %v", cfg.mode, ModeCheck)
	}

	WithGenerateMode()(cfg)
	if cfg.mode != ModeGenerate {
		t.Fatalf("WithGenerateMode() mode = %v, want %v", cfg.mode, ModeGenerate)
	}

	if got := newStartConfig(nil).mode; got != ModeGenerate {
		t.Fatalf("default mode = %v, want %v", got, ModeGenerate)
	}
}

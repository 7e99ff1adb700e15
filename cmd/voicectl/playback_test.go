package main

import (
	"testing"
)

func TestBuildFxRequestNoFlags(t *testing.T) {
	cmd := newFxCommand()
	req, changed := buildFxRequest(cmd.Flags())
	if changed {
		t.Errorf("changed = true with no flags set, req = %+v", req)
	}
}

func TestBuildFxRequestPartial(t *testing.T) {
	cmd := newFxCommand()
	if err := cmd.Flags().Set("pan", "-0.5"); err != nil {
		t.Fatalf("set pan: %v", err)
	}
	if err := cmd.Flags().Set("swap-lr", "true"); err != nil {
		t.Fatalf("set swap-lr: %v", err)
	}

	req, changed := buildFxRequest(cmd.Flags())
	if !changed {
		t.Fatal("changed = false")
	}
	if !req.SetPan || req.Pan != -0.5 {
		t.Errorf("pan = (%v, %v), want (true, -0.5)", req.SetPan, req.Pan)
	}
	if !req.SetSwapLr || !req.SwapLr {
		t.Errorf("swap_lr = (%v, %v), want (true, true)", req.SetSwapLr, req.SwapLr)
	}
	// Untouched effects stay unset so the daemon keeps their current values.
	if req.SetWidth || req.SetBassDb || req.SetReverbMix {
		t.Errorf("unexpected fields set: %+v", req)
	}
}

func TestBuildFxRequestDefaultsCountWhenExplicit(t *testing.T) {
	cmd := newFxCommand()
	// Explicitly passing the default value is still an update.
	if err := cmd.Flags().Set("width", "1"); err != nil {
		t.Fatalf("set width: %v", err)
	}
	req, changed := buildFxRequest(cmd.Flags())
	if !changed || !req.SetWidth || req.Width != 1 {
		t.Errorf("req = %+v, changed = %v", req, changed)
	}
}

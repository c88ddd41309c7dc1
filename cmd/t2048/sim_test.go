package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t2048.SetConfigPath("")
	t2048.SetDifficultyPreset("")
}

func TestParseScript(t *testing.T) {
	dirs, err := parseScript("l R, u d")
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}
	got := make([]string, len(dirs))
	for i, d := range dirs {
		got[i] = d.String()
	}
	if strings.Join(got, " ") != "left right up down" {
		t.Errorf("parseScript() = %v", got)
	}

	if _, err := parseScript("lx"); err == nil {
		t.Error("parseScript(lx) should fail")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	isolate(t)
	v, _ := t2048.VariantByID("2048")
	opts := simOptions{Variant: v, Script: "lurdlurdlurd", Seed: 7, Step: -1}

	var out1, out2 bytes.Buffer
	r1, err := simulate(&out1, opts)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	r2, err := simulate(&out2, opts)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if out1.String() != out2.String() {
		t.Errorf("same seed gave different reports:\n%s\nvs\n%s", out1.String(), out2.String())
	}
	if r1.Score != r2.Score || r1.Moves != r2.Moves {
		t.Errorf("results differ: %+v vs %+v", r1, r2)
	}
	if r1.Moves == 0 {
		t.Error("script made no effective moves")
	}

	cfg, _ := t2048.ResolveConfig(v)
	if want := cfg.Spawn.InitialTiles + r1.Moves; r1.Spawned != want {
		t.Errorf("Spawned = %d, want %d", r1.Spawned, want)
	}
}

func TestSimulateQueuedMovesPlayOut(t *testing.T) {
	isolate(t)
	v, _ := t2048.VariantByID("2048-mini")

	// With no time between keypresses every move after the first waits in
	// the queue and still runs.
	var queued, spaced bytes.Buffer
	rq, err := simulate(&queued, simOptions{Variant: v, Script: "lrlrlr", Seed: 3, Step: 0})
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	rs, err := simulate(&spaced, simOptions{Variant: v, Script: "lrlrlr", Seed: 3, Step: -1})
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if rq.Moves != rs.Moves || rq.Score != rs.Score {
		t.Errorf("queued run %+v differs from spaced run %+v", rq, rs)
	}
}

func TestSimulateEvents(t *testing.T) {
	isolate(t)
	v, _ := t2048.VariantByID("2048")

	var out bytes.Buffer
	if _, err := simulate(&out, simOptions{Variant: v, Script: "l", Seed: 1, Step: -1, Events: true}); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	for _, want := range []string{"insert 2 at", "status playing", "board 2048 (4x4, goal 2048)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report missing %q:\n%s", want, out.String())
		}
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"rummy/internal/domain"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func TestRunEvaluatesTenCards(t *testing.T) {
	var buf bytes.Buffer
	if err := run(strings.Fields("QH KH AH 2D 3D 4D 5C 5S 5H 5D"), &buf); err != nil {
		t.Fatalf("run error: %v", err)
	}
	var out output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output %q: %v", buf.String(), err)
	}
	if !out.Result.IsComplete || out.Discard != nil {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestRunDiscardsFromElevenCards(t *testing.T) {
	var buf bytes.Buffer
	args := strings.Fields("-level smart 4S 4D 4H 4C 3H 6H 5H 5S 5C 5D KD")
	if err := run(args, &buf); err != nil {
		t.Fatalf("run error: %v", err)
	}
	var out output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output %q: %v", buf.String(), err)
	}
	if out.Discard == nil || out.Discard.String() != "K♦" || !out.Result.IsComplete {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestRunUsesConfigLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	if err := os.WriteFile(path, []byte(`{"bot_level":"basic"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	args := append([]string{"-config", path}, strings.Fields("5S 5H 5D 2C 9H KD 3S 8C JD QC 4H")...)
	if err := run(args, &buf); err != nil {
		t.Fatalf("run error: %v", err)
	}
	var out output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output %q: %v", buf.String(), err)
	}
	if out.Discard == nil || out.Discard.String() != "2♣" {
		t.Fatalf("Expected the basic bot to throw 2♣, got %s", buf.String())
	}
}

func TestRunRejects(t *testing.T) {
	var buf bytes.Buffer
	if err := run(strings.Fields("QH KH"), &buf); !errors.Is(err, domain.ErrInvalidHand) {
		t.Fatalf("Expected ErrInvalidHand, got %v", err)
	}
	if err := run(strings.Fields("QH ZZ"), &buf); err == nil {
		t.Fatal("Expected a parse error")
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written on error, got %q", buf.String())
	}
}

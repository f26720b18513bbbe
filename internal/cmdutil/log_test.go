package cmdutil

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"cloudeng.io/logging/ctxlog"
)

func TestNewLoggerLevels(t *testing.T) {
	var quiet, verbose bytes.Buffer
	ctxlog.Logger(NewLogger(context.Background(), &quiet, false)).Debug("hidden")
	ctx := NewLogger(context.Background(), &verbose, true)
	ctxlog.Logger(ctx).Debug("shown", "cells", 25)
	if quiet.Len() != 0 {
		t.Fatalf("debug logged at warn level: %s", quiet.String())
	}
	var rec map[string]any
	if err := json.Unmarshal(verbose.Bytes(), &rec); err != nil {
		t.Fatalf("not JSON: %v (%s)", err, verbose.String())
	}
	if rec["msg"] != "shown" || rec["cells"] != float64(25) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "x %d", 1)
	if b.Len() != 0 {
		t.Fatal("quiet warning printed")
	}
	Warnf(&b, false, "x %d", 1)
	if strings.TrimSpace(b.String()) != "WARN: x 1" {
		t.Fatalf("got %q", b.String())
	}
}

package log

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLevelAppliesToExistingLoggers(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel("warn")

	logger := NewLogger("test")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at warn level: %q", buf.String())
	}
	if err := SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "name=test") {
		t.Errorf("expected debug record with name field, got %q", buf.String())
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestTracerWritesWarnFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "tracer")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	SetOutput(ioutil.Discard)
	defer SetOutput(os.Stderr)

	path := filepath.Join(dir, "hamming")
	logger := NewLogger("tracer")
	AddTracer(logger.Logger, path)
	logger.Warn("parity")

	data, err := ioutil.ReadFile(path + ".warn")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"parity"`) {
		t.Errorf("unexpected trace file content %q", data)
	}
}

func TestNewLoggerReusesModule(t *testing.T) {
	if NewLogger("reuse") != NewLogger("reuse") {
		t.Error("expected one logger per module")
	}
}

func TestSetTracerReachesLaterLoggers(t *testing.T) {
	SetOutput(ioutil.Discard)
	defer SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "hamming")
	SetTracer(path)
	defer SetTracer("")
	SetTracer(path)

	logger := NewLogger("later")
	if n := len(logger.Logger.Hooks[logrus.WarnLevel]); n != 1 {
		t.Fatalf("expected one tracer hook, got %d", n)
	}
	logger.Warn("late")

	data, err := ioutil.ReadFile(path + ".warn")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name":"later"`) {
		t.Errorf("unexpected trace file content %q", data)
	}

	SetTracer("")
	if n := len(logger.Logger.Hooks[logrus.WarnLevel]); n != 0 {
		t.Errorf("expected tracer removed, %d hooks left", n)
	}
}

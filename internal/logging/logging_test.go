package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWithCoreRecordsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewWithCore(core)

	logger.Infow("Transcription complete", "words", 3, "provider", "gemini")
	logger.Debugw("dropped below level")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Message != "Transcription complete" {
		t.Errorf("message = %q", entry.Message)
	}
	fields := entry.ContextMap()
	if fields["words"] != int64(3) {
		t.Errorf("words field = %v (%T), want 3", fields["words"], fields["words"])
	}
	if fields["provider"] != "gemini" {
		t.Errorf("provider field = %v", fields["provider"])
	}
}

func TestNewLoggerLevels(t *testing.T) {
	quiet := NewLogger(false)
	if quiet.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("non-verbose logger should not enable info")
	}
	if !quiet.Desugar().Core().Enabled(zapcore.WarnLevel) {
		t.Error("non-verbose logger should enable warn")
	}

	verbose := NewLogger(true)
	if !verbose.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should enable debug")
	}
}

func TestNopAndNilClose(t *testing.T) {
	NewNop().Infow("ignored")
	NewNop().Close()

	var l *Logger
	l.Close()
}

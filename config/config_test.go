package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Mode != "checked" {
		t.Errorf("Mode = %q, want checked", c.Mode)
	}
	want := OutputConf{Format: "text", ShowElapsed: false}
	if diff := cmp.Diff(want, c.Output); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
	if c.Gops.Enabled {
		t.Error("gops agent should be disabled by default")
	}
	if c.Kafka.Enabled() {
		t.Errorf("kafka should be disabled by default, brokers = %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "common-numbers" {
		t.Errorf("Kafka.Topic = %q", c.Kafka.Topic)
	}
	if c.Log.Mode != "console" {
		t.Errorf("Log.Mode = %q, want console", c.Log.Mode)
	}
}

func TestLoadYaml(t *testing.T) {
	path := writeConfig(t, "bench.yaml", `
Mode: detached
Output:
  Format: json
  ShowElapsed: true
Gops:
  Enabled: true
  Addr: 127.0.0.1:0
Kafka:
  Brokers:
    - localhost:9092
  Topic: results
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Mode != "detached" {
		t.Errorf("Mode = %q, want detached", c.Mode)
	}
	if diff := cmp.Diff(OutputConf{Format: "json", ShowElapsed: true}, c.Output); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(GopsConf{Enabled: true, Addr: "127.0.0.1:0"}, c.Gops); diff != "" {
		t.Errorf("Gops mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(KafkaConf{Brokers: []string{"localhost:9092"}, Topic: "results"}, c.Kafka); diff != "" {
		t.Errorf("Kafka mismatch (-want +got):\n%s", diff)
	}
	if !c.Kafka.Enabled() {
		t.Error("kafka should be enabled when brokers are set")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "bench.json", `{"Output": {"ShowElapsed": true}}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Mode != "checked" || c.Output.Format != "text" || !c.Output.ShowElapsed {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestLoadRejectsUnknownOptions(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"mode", "Mode: eager\n"},
		{"format", "Output:\n  Format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "bench.yaml", tt.content)
			if _, err := Load(path); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

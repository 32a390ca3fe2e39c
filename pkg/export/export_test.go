package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/hostfetch/pkg/sysinfo"
)

func sampleReport() *sysinfo.HostReport {
	return &sysinfo.HostReport{
		OS:          sysinfo.TagUbuntu,
		Kernel:      "6.8.0-45-generic",
		Hostname:    "devbox",
		Uptime:      "1d 1h 0m",
		CPU:         "Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz",
		GPU:         "Intel Corporation UHD Graphics 620 (rev 07)",
		Memory:      "2.0GB/8.0GB",
		Disk:        "40.0GB/100.0GB (40.0%)",
		Temperature: "48.0°C",
		Battery:     "87% (Charging)",
		Networks:    map[string]string{"eth0": "10.0.0.5"},
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	r := sampleReport()
	if err := Write(path, r); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("exported file is not a flat JSON object: %v", err)
	}
	if len(got) != 9 {
		t.Errorf("exported %d keys, want 9: %v", len(got), got)
	}
	for _, f := range Fields(r) {
		if got[f.Label] != f.Value {
			t.Errorf("%s = %q, want %q", f.Label, got[f.Label], f.Value)
		}
	}
	if !strings.Contains(string(data), "\n  \"OS\": \"ubuntu\"") {
		t.Errorf("expected 2-space indentation:\n%s", data)
	}
	if strings.Contains(string(data), "eth0") || strings.Contains(string(data), "devbox") {
		t.Errorf("network map or hostname leaked into export:\n%s", data)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "xxx") {
		t.Error("previous content not replaced")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yml")
	if err := Write(path, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if len(got) != 9 || got["Battery"] != "87% (Charging)" {
		t.Errorf("yaml export = %v", got)
	}
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	if err := Write(path, sampleReport()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"out.json":   JSON,
		"out":        JSON,
		"out.YAML":   YAML,
		"a/b/c.yml":  YAML,
		"report.txt": JSON,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFieldsOrder(t *testing.T) {
	want := []string{"OS", "Kernel", "Uptime", "CPU", "GPU", "Memory", "Disk", "Temperature", "Battery"}
	fields := Fields(sampleReport())
	if len(fields) != len(want) {
		t.Fatalf("len(Fields) = %d", len(fields))
	}
	for i, f := range fields {
		if f.Label != want[i] {
			t.Errorf("Fields[%d].Label = %q, want %q", i, f.Label, want[i])
		}
	}
}

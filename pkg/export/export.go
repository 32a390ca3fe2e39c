// Package export serializes the scalar part of a host report to a file.
// The same labelled fields drive the rendered report lines, so an exported
// value always equals the text after "Label: " on screen.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/hostfetch/pkg/sysinfo"
)

// Document is the exported record. Field order is the key order in the
// output file.
type Document struct {
	OS          string `json:"OS" yaml:"OS"`
	Kernel      string `json:"Kernel" yaml:"Kernel"`
	Uptime      string `json:"Uptime" yaml:"Uptime"`
	CPU         string `json:"CPU" yaml:"CPU"`
	GPU         string `json:"GPU" yaml:"GPU"`
	Memory      string `json:"Memory" yaml:"Memory"`
	Disk        string `json:"Disk" yaml:"Disk"`
	Temperature string `json:"Temperature" yaml:"Temperature"`
	Battery     string `json:"Battery" yaml:"Battery"`
}

// Field is one labelled report value.
type Field struct {
	Label string
	Value string
}

// NewDocument copies the exported fields out of r.
func NewDocument(r *sysinfo.HostReport) Document {
	return Document{
		OS:          string(r.OS),
		Kernel:      r.Kernel,
		Uptime:      r.Uptime,
		CPU:         r.CPU,
		GPU:         r.GPU,
		Memory:      r.Memory,
		Disk:        r.Disk,
		Temperature: r.Temperature,
		Battery:     r.Battery,
	}
}

// Fields returns the labelled scalar fields of r in display order.
func Fields(r *sysinfo.HostReport) []Field {
	d := NewDocument(r)
	return []Field{
		{"OS", d.OS},
		{"Kernel", d.Kernel},
		{"Uptime", d.Uptime},
		{"CPU", d.CPU},
		{"GPU", d.GPU},
		{"Memory", d.Memory},
		{"Disk", d.Disk},
		{"Temperature", d.Temperature},
		{"Battery", d.Battery},
	}
}

// Format selects the export encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFor picks YAML for .yaml/.yml paths and JSON otherwise.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Encode serializes the report's exported fields with 2-space indentation.
func Encode(r *sysinfo.HostReport, f Format) ([]byte, error) {
	doc := NewDocument(r)
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Write encodes r in the format implied by path's extension and replaces
// the file at path.
func Write(path string, r *sysinfo.HostReport) error {
	data, err := Encode(r, FormatFor(path))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := atomicWrite(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// atomicWrite writes data to path via a temporary file in the same
// directory and a rename.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hostfetch-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}

// Package config loads CLI settings from the environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/docpatterns/factory"
)

// ReportInput holds the values the mixin demo builds its report from.
type ReportInput struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Author  string `yaml:"author"`
	Source  string `yaml:"source"`
}

// ResumeInput holds the values the mixin demo builds its resume from.
type ResumeInput struct {
	Title         string   `yaml:"title"`
	Content       string   `yaml:"content"`
	ApplicantName string   `yaml:"applicant_name"`
	Certificates  []string `yaml:"certificates"`
}

// Demo is the file-backed part of the configuration.
type Demo struct {
	// FactoryKind limits the factory demo to one kind. Empty means all kinds.
	// Validate rejects kinds the factory demo cannot generate.
	FactoryKind string      `yaml:"factory_kind"`
	Report      ReportInput `yaml:"report"`
	Resume      ResumeInput `yaml:"resume"`
}

type Config struct {
	Debug      bool
	NoColor    bool
	ConfigPath string
	Demo       Demo
}

// ErrInvalidDemo is returned when a demo file leaves a required field empty.
var ErrInvalidDemo = errors.New("config: invalid demo")

// DefaultDemo returns the sample inputs used when no file is given.
func DefaultDemo() Demo {
	return Demo{
		Report: ReportInput{
			Title:   "Quarterly Report",
			Content: "Financial summary for Q1 2024...",
			Author:  "John Doe",
			Source:  "Finance Department",
		},
		Resume: ResumeInput{
			Title:         "Software Developer Resume",
			Content:       "Experienced Python developer...",
			ApplicantName: "Jane Smith",
			Certificates:  []string{"Python Developer Certificate", "Software Engineering Certificate"},
		},
	}
}

// LoadFromEnv reads PATTERNS_* variables and, if PATTERNS_CONFIG is set,
// the demo file it points to.
func LoadFromEnv() (Config, error) {
	return Load("")
}

// Load reads PATTERNS_* variables and the demo file at path. An empty path
// falls back to PATTERNS_CONFIG. Only one file is ever read, so a path given
// on the command line wins over the environment.
func Load(path string) (Config, error) {
	cfg := Config{
		Debug:      getenvBool("PATTERNS_DEBUG", false),
		NoColor:    getenvBool("PATTERNS_NO_COLOR", os.Getenv("NO_COLOR") != ""),
		ConfigPath: path,
		Demo:       DefaultDemo(),
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = getenv("PATTERNS_CONFIG", "")
	}
	if cfg.ConfigPath != "" {
		demo, err := LoadFile(cfg.ConfigPath)
		if err != nil {
			return Config{}, err
		}
		cfg.Demo = demo
	}
	return cfg, nil
}

// LoadFile reads a YAML demo file. Fields missing from the file keep their
// DefaultDemo values.
func LoadFile(path string) (Demo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Demo{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML demo document over DefaultDemo and validates it.
func Parse(data []byte) (Demo, error) {
	demo := DefaultDemo()
	if err := yaml.Unmarshal(data, &demo); err != nil {
		return Demo{}, fmt.Errorf("config: decode demo: %w", err)
	}
	if err := demo.Validate(); err != nil {
		return Demo{}, err
	}
	return demo, nil
}

// Validate checks that the required demo fields are present.
func (d Demo) Validate() error {
	required := []struct{ name, val string }{
		{"report.title", d.Report.Title},
		{"report.author", d.Report.Author},
		{"resume.title", d.Resume.Title},
		{"resume.applicant_name", d.Resume.ApplicantName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidDemo, r.name)
		}
	}
	if d.FactoryKind != "" {
		kind := factory.Kind(strings.ToLower(strings.TrimSpace(d.FactoryKind)))
		if !slices.Contains(factory.DemoKinds, kind) {
			return fmt.Errorf("%w: factory_kind %q is not one of %v", ErrInvalidDemo, d.FactoryKind, factory.DemoKinds)
		}
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// FILE: example/main.go
package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/ncl"
	"github.com/lixenwraith/ncl/term"
)

// ProviderConfig is one entry of terraform.required_providers.
type ProviderConfig struct {
	Source  string `toml:"source" doc:"Registry address of the provider"`
	Version string `toml:"version" ncl:"optional,type=string"`
}

// AppConfig holds the defaults written into the generated record.
type AppConfig struct {
	Region string         `toml:"region" doc:"Deployment region" ncl:"contract=std.string.NonEmpty"`
	AWS    ProviderConfig `toml:"aws"`
	Debug  bool           `toml:"debug" ncl:"not_exported"`
}

func main() {
	dir, err := os.MkdirTemp("", "ncl-example")
	if err != nil {
		log.Fatalf("❌ Failed to create work directory: %v", err)
	}
	defer os.RemoveAll(dir)

	// =========================================================================
	// PART 1: BUILDING A RECORD FIELD BY FIELD
	// Dotted paths are nested for us; same-key fields are merged when built.
	// =========================================================================
	log.Println("➡️  PART 1: Building a record with the fluent API...")

	r := ncl.NewRecord().
		Path("terraform", "required_providers", "aws", "source").
		Doc("AWS provider").
		Value(term.Str("hashicorp/aws")).
		Path("terraform", "backend").
		Priority(term.PriorityBottom).
		Value(term.Str("local")).
		Field("variable").
		Optional().
		Contract(term.Contract("std.string.NonEmpty")).
		NoValue()

	r.Fields(
		ncl.PathField("terraform", "required_version").Value(term.Str(">= 1.5")),
		ncl.Name("tags").ValueOf(map[string]any{"team": "platform"}),
	)

	built := r.Build()
	log.Printf("✅ Built record with %d top-level fields:\n%s", built.(*term.RecordData).Len(), term.Print(built))

	// =========================================================================
	// PART 2: DEFAULTS FROM A STRUCT, OVERRIDES FROM A FILE
	// Struct values sit at bottom priority, so the file wins on export.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Overlaying a file on struct defaults...")

	overrides := filepath.Join(dir, "overrides.yaml")
	if err := os.WriteFile(overrides, []byte("region: eu-west-1\naws:\n  version: \"~> 5.0\"\n"), 0644); err != nil {
		log.Fatalf("❌ Failed to write overrides: %v", err)
	}

	defaults := &AppConfig{
		Region: "us-east-1",
		AWS:    ProviderConfig{Source: "hashicorp/aws"},
	}
	merged, err := ncl.Quick(defaults, overrides)
	if err != nil && !errors.Is(err, ncl.ErrNotFound) {
		log.Fatalf("❌ Quick failed: %v", err)
	}

	var cfg AppConfig
	if err := ncl.Decode(merged, &cfg); err != nil {
		log.Fatalf("❌ Decode failed: %v", err)
	}
	log.Printf("✅ Region=%s AWS.Source=%s AWS.Version=%s", cfg.Region, cfg.AWS.Source, cfg.AWS.Version)

	// =========================================================================
	// PART 3: WRITING EVERY FORMAT
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Saving in every output format...")

	for _, format := range ncl.Formats {
		path := filepath.Join(dir, "main."+string(format))
		if err := ncl.Save(path, merged, format); err != nil {
			log.Fatalf("❌ Save %s failed: %v", format, err)
		}
		data, _ := os.ReadFile(path)
		log.Printf("✅ %s:\n%s", format, data)
	}
}

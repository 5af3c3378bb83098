package scaffold

import (
	"bytes"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/rolodex-labs/rolodex/internal/branding"
	"github.com/rolodex-labs/rolodex/internal/document"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Project kinds understood by Generate.
const (
	KindCLI     = "cli"
	KindLibrary = "library"
)

var titleCaser = cases.Title(language.English)

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	Name          string // e.g., "blog-post"
	TypeName      string // Derived: "BlogPost"
	PackageName   string // Derived: "blogpost"
	ModulePath    string // Derived: github.com/rolodex-labs/blog-post
	Description   string
	Version       string // Semver, e.g., "0.1.0"
	FormatVersion string // export document format for seed files
	Year          int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// ValidateName checks that an entity name can be used for identifiers,
// paths and as a Go package name.
func ValidateName(name string) error {
	if err := document.ValidateEntity(name); err != nil {
		return err
	}
	if token.IsKeyword(strings.ReplaceAll(name, "-", "")) {
		return fmt.Errorf("invalid name %q: Go keyword cannot be a package name", name)
	}
	return nil
}

// NewScaffoldData creates a ScaffoldData with derived fields populated.
func NewScaffoldData(name, kind string) *ScaffoldData {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}

	module := branding.GoModule()
	if i := strings.LastIndex(module, "/"); i >= 0 {
		module = module[:i]
	}

	return &ScaffoldData{
		Name:          name,
		TypeName:      strings.Join(parts, ""),
		PackageName:   strings.ReplaceAll(name, "-", ""),
		ModulePath:    module + "/" + name,
		Description:   fmt.Sprintf("%s %s for %s records", branding.DisplayName(), kind, name),
		Version:       "0.1.0",
		FormatVersion: document.FormatVersion,
		Year:          time.Now().Year(),
	}
}

// Kinds returns the available template sets.
func Kinds() []string {
	entries, err := fs.ReadDir(scaffoldFS, "scaffolds")
	if err != nil {
		return nil
	}
	var kinds []string
	for _, e := range entries {
		if e.IsDir() {
			kinds = append(kinds, e.Name())
		}
	}
	sort.Strings(kinds)
	return kinds
}

// Generate renders the template set for kind into outputDir.
func Generate(kind string, data *ScaffoldData, outputDir string) (*Result, error) {
	if err := ValidateName(data.Name); err != nil {
		return nil, err
	}

	// embed.FS paths always use forward slashes.
	templatesDir := path.Join("scaffolds", kind)

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", kind, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Refuse to overwrite anything.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := path.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)

		tmpl, err := template.New(entry.Name()).Option("missingkey=error").Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	// Seed documents must load with "rolodex validate".
	seedFile := filepath.Join(outputDir, "seed.yaml")
	if _, err := os.Stat(seedFile); err == nil {
		valResult, valErr := document.ValidateFile(seedFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate seed document: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				result.Warnings = append(result.Warnings, issue.String())
			}
		}
	}

	return result, nil
}

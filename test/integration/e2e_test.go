//go:build integration

package integration_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rolodex-labs/rolodex/internal/document"
	"github.com/rolodex-labs/rolodex/internal/entity"
	"github.com/rolodex-labs/rolodex/internal/scaffold"
)

// TestFullFlowCreateExportReload covers the documented scenario end to end:
// create two records, query them, export in both encodings, validate the
// files and reload them into fresh registries.
func TestFullFlowCreateExportReload(t *testing.T) {
	env := setupTestEnv(t)

	reg := entity.NewRegistry()

	// Step 1: create records.
	john, err := reg.Create("John Doe", "john@example.com")
	if err != nil {
		t.Fatalf("Create(John Doe): %v", err)
	}
	jane, err := reg.Create("Jane", "jane@example.com")
	if err != nil {
		t.Fatalf("Create(Jane): %v", err)
	}
	if john.ID != 1 || jane.ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", john.ID, jane.ID)
	}

	// Step 2: query.
	if got, ok := reg.Get(1); !ok || got != john {
		t.Errorf("Get(1) = %+v, %v", got, ok)
	}
	if got := reg.FindByName("Jane"); len(got) != 1 || got[0] != jane {
		t.Errorf("FindByName(Jane) = %+v", got)
	}
	if got := reg.FindByName("J"); len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("FindByName(J) = %+v", got)
	}

	// Step 3: export, validate and reload each encoding.
	for _, name := range []string{"records.yaml", "records.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(env.ProjectDir, name)
			if err := reg.ExportFile(path, document.EncodingForPath(path)); err != nil {
				t.Fatalf("ExportFile: %v", err)
			}
			assertFileContains(t, path, "john@example.com")

			result, err := document.ValidateFile(path)
			if err != nil {
				t.Fatalf("ValidateFile: %v", err)
			}
			if !result.Valid {
				t.Fatalf("exported document invalid: %+v", result.Issues)
			}

			reloaded := entity.NewRegistry()
			if err := reloaded.LoadFile(path); err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if reloaded.Len() != reg.Len() {
				t.Fatalf("reloaded %d records, want %d", reloaded.Len(), reg.Len())
			}
			for _, want := range reg.All() {
				got, ok := reloaded.Get(want.ID)
				if !ok || got != want {
					t.Errorf("reloaded Get(%d) = %+v, %v; want %+v", want.ID, got, ok, want)
				}
			}
		})
	}
}

// TestHandEditedDocumentWithGapIsRejected checks that a document which
// passes the schema but would break id assignment does not load.
func TestHandEditedDocumentWithGapIsRejected(t *testing.T) {
	env := setupTestEnv(t)

	path := filepath.Join(env.ProjectDir, "gap.yaml")
	writeFile(t, path, `format_version: "1.0.0"
entity: user
records:
  1:
    id: 1
    name: A
    email: a@example.com
  3:
    id: 3
    name: C
    email: c@example.com
`)

	result, err := document.ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected schema-valid document, got %+v", result.Issues)
	}

	err = entity.NewRegistry().LoadFile(path)
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("LoadFile error = %v, want ErrInvalidInput", err)
	}
}

// TestScaffoldedSeedLoads generates a library and loads its seed document.
func TestScaffoldedSeedLoads(t *testing.T) {
	env := setupTestEnv(t)

	outDir := filepath.Join(env.ProjectDir, "blog-post")
	result, err := scaffold.Generate(scaffold.KindLibrary, scaffold.NewScaffoldData("blog-post", scaffold.KindLibrary), outDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	assertFileExists(t, filepath.Join(outDir, "service.go"))

	reg := entity.NewRegistry()
	if err := reg.LoadFile(filepath.Join(outDir, "seed.yaml")); err != nil {
		t.Fatalf("LoadFile(seed.yaml): %v", err)
	}
	if reg.EntityName() != "blog-post" || reg.Len() != 0 {
		t.Errorf("seed registry = %s/%d, want blog-post/0", reg.EntityName(), reg.Len())
	}

	rec, err := reg.Create("First post", "author@example.com")
	if err != nil || rec.ID != 1 {
		t.Errorf("Create after seed = %+v, %v", rec, err)
	}
}

package document

import "testing"

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid.yaml", "valid.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
				t.Fatal("expected valid document")
			}
		})
	}
}

func TestValidateFile_IssueFields(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-missing-name.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid document")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Keyword == "required" && issue.Path == "/records/1" {
			found = true
		}
		if issue.Message == "" {
			t.Errorf("issue at %q has empty message", issue.Path)
		}
	}
	if !found {
		t.Errorf("expected a 'required' issue at /records/1, got %+v", result.Issues)
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestSchemaErrorMessage(t *testing.T) {
	err := &SchemaError{Issues: []ValidationIssue{
		{Path: "/records/1", Message: "missing property 'name'"},
		{Message: "bad"},
	}}
	want := "document does not match export schema: /records/1: missing property 'name'; bad"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

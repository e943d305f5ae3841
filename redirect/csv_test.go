package redirect

import (
	"strings"
	"testing"
)

func TestImportCSV(t *testing.T) {
	t.Run("ValidLines", func(t *testing.T) {
		s := NewService(DefaultSettings())

		csv := `# migrated rules
"/old-about","/about",301
"/old-shop","/shop",302
/plain/source,/plain/target
`
		result := s.ImportCSV(csv)

		if result.Imported != 3 {
			t.Fatalf("Expected 3 imported, got %d (errors: %v)", result.Imported, result.Errors)
		}
		if result.Skipped != 0 {
			t.Errorf("Expected 0 skipped, got %d", result.Skipped)
		}

		rules := s.List()
		if rules[0].SourceURL != "/old-about" || rules[0].Type != Permanent {
			t.Errorf("Unexpected first rule: %+v", rules[0])
		}
		if rules[1].Type != Temporary {
			t.Errorf("Expected 302 type, got %v", rules[1].Type)
		}
		if rules[2].SourceURL != "/plain/source" || rules[2].Type != Permanent {
			t.Errorf("Unexpected unquoted rule: %+v", rules[2])
		}
	})

	t.Run("TypeCodes", func(t *testing.T) {
		s := NewService(DefaultSettings())

		csv := `"/a","/1",permanent
"/b","/2",temporary
"/c","/3",307
"/d","/4",308
"/e","/5",gone
"/f","/6",banana
`
		result := s.ImportCSV(csv)
		if result.Imported != 6 {
			t.Fatalf("Expected 6 imported, got %d", result.Imported)
		}

		want := []Type{Permanent, Temporary, TemporaryPreserve, PermanentPreserve, Gone, Permanent}
		for i, rule := range s.List() {
			if rule.Type != want[i] {
				t.Errorf("Rule %d: expected type %v, got %v", i, want[i], rule.Type)
			}
		}
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		s := NewService(DefaultSettings())

		result := s.ImportCSV("just-one-field\n\"/ok\",\"/fine\"\n")

		if result.Imported != 1 || result.Skipped != 1 {
			t.Fatalf("Expected 1 imported and 1 skipped, got %+v", result)
		}
		if len(result.Errors) != 1 || result.Errors[0] != "Line 1: Invalid format" {
			t.Errorf("Unexpected errors: %v", result.Errors)
		}
	})

	t.Run("DuplicateSource", func(t *testing.T) {
		s := NewService(DefaultSettings())

		result := s.ImportCSV("\"/dup\",\"/first\"\n\"/dup\",\"/second\"\n")

		if result.Imported != 1 || result.Skipped != 1 {
			t.Fatalf("Expected 1 imported and 1 skipped, got %+v", result)
		}
		if len(result.Errors) != 1 || result.Errors[0] != "Line 2: Duplicate source URL" {
			t.Errorf("Unexpected errors: %v", result.Errors)
		}
	})

	t.Run("DuplicateAgainstExistingRules", func(t *testing.T) {
		s := NewService(DefaultSettings())
		s.Add301("/present", "/elsewhere")

		result := s.ImportCSV("\"/present\",\"/new\"\n")
		if result.Imported != 0 || result.Skipped != 1 {
			t.Errorf("Expected existing rule to block the import, got %+v", result)
		}
	})
}

func TestExportCSV(t *testing.T) {
	s := NewService(DefaultSettings())
	s.Add301("/old", "/new")
	s.Add302("/tmp", "/elsewhere")

	out := s.ExportCSV()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "source,target,type" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != `"/old","/new",301` {
		t.Errorf("Unexpected first row: %q", lines[1])
	}
	if lines[2] != `"/tmp","/elsewhere",302` {
		t.Errorf("Unexpected second row: %q", lines[2])
	}
}

package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSafeDeleteRefusesProtectedRoots(t *testing.T) {
	t.Setenv("WINDIR", `C:\Windows`)
	t.Setenv("SYSTEMDRIVE", "C:")
	t.Setenv("PROGRAMDATA", `C:\ProgramData`)

	protected := []string{
		`C:\`,
		`C:\Windows`,
		`C:\Windows\System32`,
		`C:\Windows\Prefetch`,
		`C:\Windows\Temp`,
		`C:\ProgramData`,
		`c:\windows`, // case-insensitive
	}

	for _, path := range protected {
		if _, err := SafeDelete(path, false); err == nil {
			t.Errorf("SafeDelete(%q) succeeded, want refusal", path)
		}
		if !IsProtected(path) {
			t.Errorf("IsProtected(%q) = false, want true", path)
		}
	}

	// Children of protected roots are allowed targets.
	if IsProtected(`C:\Windows\Temp\work.tmp`) {
		t.Error("child of protected root reported as protected")
	}
}

func TestSafeDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.tmp")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	freed, err := SafeDelete(path, false)
	if err != nil {
		t.Fatalf("SafeDelete: %v", err)
	}
	if freed != 10 {
		t.Errorf("freed = %d, want 10", freed)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after SafeDelete")
	}
}

func TestSafeDeleteDryRun(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "cache")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "a.db"), []byte("abcd"), 0o644); err != nil {
		t.Fatal(err)
	}

	freed, err := SafeDelete(sub, true)
	if err != nil {
		t.Fatalf("SafeDelete dry-run: %v", err)
	}
	if freed != 4 {
		t.Errorf("freed = %d, want 4", freed)
	}
	if _, err := os.Stat(sub); err != nil {
		t.Error("dry-run removed the directory")
	}
}

func TestSafeDeleteMissingPath(t *testing.T) {
	if _, err := SafeDelete(filepath.Join(t.TempDir(), "absent"), false); err == nil {
		t.Error("expected error for missing path")
	}
}

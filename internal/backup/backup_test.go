package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

func setupTestStore(t *testing.T) (string, *Manager) {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "lifelog.json")
	if err := os.WriteFile(storePath, []byte(`{"version":"1.0","snapshots":{}}`), 0600); err != nil {
		t.Fatalf("writing store: %v", err)
	}
	return storePath, NewManager(storePath)
}

func TestCreateBackup(t *testing.T) {
	storePath, mgr := setupTestStore(t)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filepath.Dir(backupPath) != mgr.BackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(backupPath), mgr.BackupDir())
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, ".json") {
		t.Errorf("backup name %q, want prefix %q and the store's extension", name, constants.BackupFilePrefix)
	}

	want, _ := os.ReadFile(storePath)
	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(got) != string(want) {
		t.Error("backup content differs from the store")
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "lifelog.json"))
	if _, err := mgr.Create(); err == nil {
		t.Fatal("Create() succeeded for a missing store, want error")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	_, mgr := setupTestStore(t)
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, stamp := range []string{"20260825-0900", "20260827-0900", "20260826-0900"} {
		path := filepath.Join(mgr.BackupDir(), constants.BackupFilePrefix+stamp+".json")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatalf("writing backup: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Fatal("backups not sorted newest first")
		}
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	_, mgr := setupTestStore(t)
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"notes.txt", "lifelog-garbage.json", constants.BackupFilePrefix + "20260827-0900" + ".json"} {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("writing file: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("got %d backups, want only the well-formed one", len(backups))
	}
}

func TestRotationPrunesOldBackups(t *testing.T) {
	_, mgr := setupTestStore(t)
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Seed more than the retention limit, all older than today
	for day := 1; day <= constants.MaxBackups+3; day++ {
		stamp := fmt.Sprintf("202601%02d-0900", day)
		path := filepath.Join(mgr.BackupDir(), constants.BackupFilePrefix+stamp+".json")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatalf("writing backup: %v", err)
		}
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("got %d backups after rotation, want %d", len(backups), constants.MaxBackups)
	}
}

func TestRestoreReplacesStore(t *testing.T) {
	storePath, mgr := setupTestStore(t)
	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	original, _ := os.ReadFile(storePath)

	if err := os.WriteFile(storePath, []byte(`{"version":"1.0","snapshots":{"k":{}}}`), 0600); err != nil {
		t.Fatalf("mutating store: %v", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	got, _ := os.ReadFile(storePath)
	if string(got) != string(original) {
		t.Error("store content not restored from backup")
	}
}

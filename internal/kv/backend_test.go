package kv

import (
	"os"
	"path/filepath"
	"testing"
)

// backendUnderTest exercises the Backend contract shared by all
// implementations.
func backendUnderTest(t *testing.T, b Backend) {
	t.Helper()

	key := Key("quests")

	ok, err := b.Has(key)
	if err != nil {
		t.Fatalf("Has() on empty store failed: %v", err)
	}
	if ok {
		t.Fatal("Has() on empty store = true, want false")
	}

	if _, found, err := b.Get(key); err != nil || found {
		t.Fatalf("Get() on empty store = (found=%v, err=%v), want absent", found, err)
	}

	if err := b.Set(key, []byte(`[{"id":"q1"}]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, found, err := b.Get(key)
	if err != nil || !found {
		t.Fatalf("Get() after Set = (found=%v, err=%v)", found, err)
	}
	if string(got) != `[{"id":"q1"}]` {
		t.Errorf("Get() = %q, want stored value", got)
	}

	// Overwrite replaces the previous value.
	if err := b.Set(key, []byte(`[]`)); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	got, _, _ = b.Get(key)
	if string(got) != `[]` {
		t.Errorf("Get() after overwrite = %q, want []", got)
	}

	if ok, _ := b.Has(key); !ok {
		t.Error("Has() after Set = false, want true")
	}
}

func TestMemory_Contract(t *testing.T) {
	backendUnderTest(t, NewMemory())
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	if err := m.Set("k", []byte("abc")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, _, _ := m.Get("k")
	got[0] = 'x'
	again, _, _ := m.Get("k")
	if string(again) != "abc" {
		t.Errorf("mutating a returned value leaked into the store: %q", again)
	}
}

func TestDir_Contract(t *testing.T) {
	d, err := OpenDir(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}
	defer d.Close()
	backendUnderTest(t, d)
}

func TestDir_PersistsAcrossReopen(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")

	d1, err := OpenDir(root)
	if err != nil {
		t.Fatalf("first OpenDir() failed: %v", err)
	}
	if err := d1.Set(Key("worlds"), []byte(`[{"id":"w1"}]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	d1.Close()

	d2, err := OpenDir(root)
	if err != nil {
		t.Fatalf("second OpenDir() failed: %v", err)
	}
	defer d2.Close()

	got, found, err := d2.Get(Key("worlds"))
	if err != nil || !found {
		t.Fatalf("Get() after reopen = (found=%v, err=%v)", found, err)
	}
	if string(got) != `[{"id":"w1"}]` {
		t.Errorf("Get() after reopen = %q", got)
	}
}

func TestDir_EscapesKeyInFileName(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")
	d, err := OpenDir(root)
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}
	defer d.Close()

	// A key with a path separator must not escape the root.
	if err := d.Set("table:a/b", []byte("v")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one file in root, got %d", len(entries))
	}
}

func TestSQLite_Contract(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "quest.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()
	backendUnderTest(t, s)
}

func TestSQLite_OpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.db")

	for i := 0; i < 3; i++ {
		s, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite() iteration %d failed: %v", i, err)
		}
		s.Close()
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.db")

	s1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("first OpenSQLite() failed: %v", err)
	}
	if err := s1.Set(Key("quests"), []byte(`[{"id":"q1"}]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	s1.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second OpenSQLite() failed: %v", err)
	}
	defer s2.Close()

	got, found, err := s2.Get(Key("quests"))
	if err != nil || !found {
		t.Fatalf("Get() after reopen = (found=%v, err=%v)", found, err)
	}
	if string(got) != `[{"id":"q1"}]` {
		t.Errorf("Get() after reopen = %q", got)
	}
}

func TestLabels(t *testing.T) {
	if NewMemory().Label() != "memory://questlog" {
		t.Errorf("Memory label = %q", NewMemory().Label())
	}

	root := t.TempDir()
	d, err := OpenDir(root)
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}
	defer d.Close()
	if d.Label() != "dir://"+root {
		t.Errorf("Dir label = %q", d.Label())
	}
}

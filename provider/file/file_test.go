package file

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestGetMissing(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "cache.json"), 0)
	b, ok, err := p.Get(context.Background())
	if err != nil || ok || b != nil {
		t.Fatalf("Get on missing file: b=%q ok=%v err=%v", b, ok, err)
	}
}

func TestPutThenGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")
	p := New(path, 0)

	for _, doc := range [][]byte{[]byte(`[1,2,3]`), []byte(`{"a":1}`)} {
		if err := p.Put(ctx, doc); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, ok, err := p.Get(ctx)
		if err != nil || !ok || !bytes.Equal(got, doc) {
			t.Fatalf("Get: got=%q ok=%v err=%v want %q", got, ok, err, doc)
		}
	}
	if _, err := os.Stat(p.TempPath()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("temp file left behind: err=%v", err)
	}
}

func TestPutUsesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	p := New(path, 0o600)
	if err := p.Put(context.Background(), []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm()&0o077 != 0 {
		t.Fatalf("mode=%v want no group/other bits", st.Mode().Perm())
	}
}

func TestPutMissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "cache.json")
	p := New(path, 0)
	err := p.Put(context.Background(), []byte(`[]`))
	if err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
	if !IsNotExist(err) {
		t.Fatalf("err=%v want fs.ErrNotExist in chain", err)
	}
}

func TestOrphanTempDoesNotAffectGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")
	p := New(path, 0)
	if err := p.Put(ctx, []byte(`["kept"]`)); err != nil {
		t.Fatal(err)
	}
	// simulate a crash between temp write and rename
	if err := os.WriteFile(p.TempPath(), []byte(`["half`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, ok, err := p.Get(ctx)
	if err != nil || !ok || string(got) != `["kept"]` {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}
	// next Put overwrites the orphan
	if err := p.Put(ctx, []byte(`["next"]`)); err != nil {
		t.Fatal(err)
	}
	got, _, _ = p.Get(ctx)
	if string(got) != `["next"]` {
		t.Fatalf("got=%q want [\"next\"]", got)
	}
}

package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/cache"
	"github.com/funvibe/nyxc/internal/value"
)

func sampleProgram() *bytecode.Program {
	prog := bytecode.NewProgram()
	r := prog.Program
	r.EmitOp(bytecode.PUSH, 1)
	r.InternConstant(value.Int(1), 1)
	r.EmitOp(bytecode.EXIT, 1)
	return prog
}

func TestKeyIsStableAndContentAddressed(t *testing.T) {
	k1 := cache.Key([]byte("print 1"))
	k2 := cache.Key([]byte("print 1"))
	k3 := cache.Key([]byte("print 2"))
	if k1 != k2 {
		t.Fatalf("same source produced different keys: %s vs %s", k1, k2)
	}
	if k1 == k3 {
		t.Fatalf("different sources produced the same key")
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	store := cache.New(t.TempDir())
	key := cache.Key([]byte("print 1"))
	want := sampleProgram()

	if err := store.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := store.Get(key)
	if !ok {
		t.Fatal("Get reported a miss after Put")
	}
	if len(got.Program.Code) != len(want.Program.Code) {
		t.Fatalf("code length = %d, want %d", len(got.Program.Code), len(want.Program.Code))
	}
	for i := range want.Program.Code {
		if got.Program.Code[i] != want.Program.Code[i] {
			t.Errorf("code[%d] = %d, want %d", i, got.Program.Code[i], want.Program.Code[i])
		}
	}
	for i := range want.Program.Constants {
		if got.Program.Constants[i] != want.Program.Constants[i] {
			t.Errorf("constant[%d] = %v, want %v", i, got.Program.Constants[i], want.Program.Constants[i])
		}
	}
}

func TestGetMissReturnsFalse(t *testing.T) {
	store := cache.New(t.TempDir())
	_, ok := store.Get(cache.Key([]byte("nothing stored for this key")))
	if ok {
		t.Fatal("expected a miss on an empty store")
	}
}

func TestGetOnCorruptEntryIsATreatedMiss(t *testing.T) {
	dir := t.TempDir()
	store := cache.New(dir)
	key := cache.Key([]byte("print 1"))

	if err := store.Put(key, sampleProgram()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	corruptPath := filepath.Join(dir, key+".nyxc")
	if err := os.WriteFile(corruptPath, []byte("not a cache file"), 0o644); err != nil {
		t.Fatalf("corrupting cache entry: %v", err)
	}

	if _, ok := store.Get(key); ok {
		t.Fatal("expected a miss for a corrupt cache entry, got a hit")
	}
}

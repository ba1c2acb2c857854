package driver_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/driver"
)

func silentLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestCompileWithoutCache(t *testing.T) {
	prog, err := driver.Compile([]byte("print 1 + 2"), driver.Options{Logger: silentLogger()})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if prog.Program.Len() == 0 {
		t.Fatal("expected a non-empty program region")
	}
}

func TestCompilePropagatesParseErrors(t *testing.T) {
	_, err := driver.Compile([]byte("print +"), driver.Options{Logger: silentLogger()})
	if err == nil {
		t.Fatal("expected a parse error for malformed source")
	}
}

func TestCompileCachesAcrossCalls(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	source := []byte("x: int = 5")

	first, err := driver.Compile(source, driver.Options{CachePath: dir, Logger: silentLogger()})
	if err != nil {
		t.Fatalf("first Compile: %v", err)
	}

	second, err := driver.Compile(source, driver.Options{CachePath: dir, Logger: silentLogger()})
	if err != nil {
		t.Fatalf("second Compile (cache hit): %v", err)
	}

	if !regionsEqual(first.Program, second.Program) {
		t.Fatal("cached program differs from the originally compiled program")
	}
}

func regionsEqual(a, b *bytecode.Region) bool {
	if len(a.Code) != len(b.Code) {
		return false
	}
	for i := range a.Code {
		if a.Code[i] != b.Code[i] {
			return false
		}
	}
	if len(a.Constants) != len(b.Constants) {
		return false
	}
	for i := range a.Constants {
		if a.Constants[i] != b.Constants[i] {
			return false
		}
	}
	return true
}

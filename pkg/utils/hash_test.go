package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func patternBytes(size int, f func(i int) byte) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = f(i)
	}
	return b
}

func TestPartialHashIdenticalFiles(t *testing.T) {
	content := patternBytes(20*1024, func(i int) byte { return byte(i % 251) })
	a := writeFile(t, "a.bin", content)
	b := writeFile(t, "b.bin", content)

	ha, err := PartialHash(a)
	if err != nil {
		t.Fatalf("hash a: %v", err)
	}
	hb, err := PartialHash(b)
	if err != nil {
		t.Fatalf("hash b: %v", err)
	}
	if ha != hb {
		t.Errorf("identical files hashed differently: %s vs %s", ha, hb)
	}
}

func TestPartialHashSmallFileFullContent(t *testing.T) {
	// At 6 KB the whole file is hashed, so a middle-byte change is seen
	content := patternBytes(6*1024, func(i int) byte { return byte(i % 251) })
	a := writeFile(t, "a.bin", content)

	content[5000] ^= 0xFF
	b := writeFile(t, "b.bin", content)

	ha, _ := PartialHash(a)
	hb, _ := PartialHash(b)
	if ha == hb {
		t.Error("small files differing mid-content must hash differently")
	}
}

func TestPartialHashDetectsTailChange(t *testing.T) {
	content := patternBytes(20*1024, func(i int) byte { return byte(i % 251) })
	a := writeFile(t, "a.bin", content)

	content[len(content)-1] ^= 0xFF
	b := writeFile(t, "b.bin", content)

	ha, _ := PartialHash(a)
	hb, _ := PartialHash(b)
	if ha == hb {
		t.Error("tail change not reflected in hash")
	}
}

func TestPartialHashMiddleBlindSpot(t *testing.T) {
	// Large files are fingerprinted by head and tail only. A change
	// confined to the middle is invisible, which is the accepted
	// trade-off of the pre-filter.
	content := patternBytes(20*1024, func(i int) byte { return byte(i % 251) })
	a := writeFile(t, "a.bin", content)

	content[10*1024] ^= 0xFF
	b := writeFile(t, "b.bin", content)

	ha, _ := PartialHash(a)
	hb, _ := PartialHash(b)
	if ha != hb {
		t.Error("middle-only change should not affect the partial hash")
	}
}

func TestPartialHashBoundarySize(t *testing.T) {
	// Exactly 8 KB still hashes in full; one byte more switches to
	// head+tail mode. Both must succeed.
	exact := writeFile(t, "exact.bin",
		patternBytes(2*PartialHashBlock, func(i int) byte { return byte(i) }))
	over := writeFile(t, "over.bin",
		patternBytes(2*PartialHashBlock+1, func(i int) byte { return byte(i) }))

	if _, err := PartialHash(exact); err != nil {
		t.Errorf("hash at boundary failed: %v", err)
	}
	if _, err := PartialHash(over); err != nil {
		t.Errorf("hash above boundary failed: %v", err)
	}
}

func TestPartialHashMissingFile(t *testing.T) {
	if _, err := PartialHash(filepath.Join(t.TempDir(), "gone.bin")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPartialHashEmptyFile(t *testing.T) {
	a := writeFile(t, "empty1.bin", nil)
	b := writeFile(t, "empty2.bin", nil)

	ha, err := PartialHash(a)
	if err != nil {
		t.Fatalf("hash empty: %v", err)
	}
	hb, _ := PartialHash(b)
	if ha != hb {
		t.Error("empty files must share a hash")
	}
}

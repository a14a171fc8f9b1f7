package testutil

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadHex returns a trimmed hex string from a testdata relative path.
func LoadHex(t *testing.T, rel string) string {
	t.Helper()
	return strings.TrimSpace(string(readTestdata(t, rel)))
}

// LoadPayload decodes a hex fixture into raw payload bytes.
func LoadPayload(t *testing.T, rel string) []byte {
	t.Helper()
	raw := LoadHex(t, rel)
	payload, err := hex.DecodeString(raw)
	if err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
	return payload
}

// LoadJSON loads a JSON fixture from testdata relative to the repo root.
func LoadJSON(t *testing.T, rel string, v any) {
	t.Helper()
	if err := json.Unmarshal(readTestdata(t, rel), v); err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
}

// readTestdata resolves rel against testdata/ from the package directory
// upward, so fixtures live once at the repo root.
func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	for _, up := range []string{".", "..", filepath.Join("..", "..")} {
		path := filepath.Join(up, "testdata", rel)
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}

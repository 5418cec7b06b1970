package test_helpers

import (
	"encoding/json"
	"github.com/kr/pretty"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// FixtureDir is relative to the directory of the package under test
var FixtureDir = filepath.Join("..", "test_resources", "ldb")

// LoadFixture reads a SOAP payload from FixtureDir
func LoadFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(FixtureDir, name))
	if err != nil {
		t.Fatalf("cannot load fixture %s: %s\n", name, err.Error())
	}
	return b
}

func AssertBoolean(t *testing.T, got bool, want bool) {
	t.Helper()
	if got != want {
		t.Errorf("got '%t' want '%t'\n", got, want)
	}
}

func AssertString(t *testing.T, got string, want string) {
	t.Helper()
	if got != want {
		t.Errorf("got '%s' want '%s'\n", got, want)
	}
}

// AssertStringPtr fails if got is absent or differs from want
func AssertStringPtr(t *testing.T, got *string, want string) {
	t.Helper()
	if got == nil {
		t.Errorf("got nil want '%s'\n", want)
		return
	}
	AssertString(t, *got, want)
}

func AssertBoolPtr(t *testing.T, got *bool, want bool) {
	t.Helper()
	if got == nil {
		t.Errorf("got nil want '%t'\n", want)
		return
	}
	AssertBoolean(t, *got, want)
}

func AssertJSONEquality(t *testing.T, body []byte, expected string) {
	t.Helper()
	var got interface{}
	var want interface{}

	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("%s\n", err.Error())
	}

	if err := json.Unmarshal([]byte(expected), &want); err != nil {
		t.Fatalf("%s\n", err.Error())
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected body: got %#v, wanted %#v\n", string(body), expected)
	}
}

// AssertRecordEquality compares two records field by field and reports
// every differing field
func AssertRecordEquality(t *testing.T, got interface{}, want interface{}) {
	t.Helper()
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("records differ (want -> got):\n%s\n", strings.Join(diff, "\n"))
	}
}

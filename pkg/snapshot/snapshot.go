// Package snapshot compares values against JSON files stored in testdata/
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv forces snapshots to be rewritten when set to "1"
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	lock      sync.Mutex
	callCount = make(map[string]int)
)

// ValidateSnapshot performs snapshot testing
// The first call for a test is stored in testdata/{TestName}-0.json, the second in -1.json and so on.
// If the file does not exist, it is created and the assertion passes.
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(t.Name())
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) == "1" {
		if err := write(filename, objJSON); err != nil {
			t.Fatalf("could not write snapshot: %v", err)
		}

		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(testName string) string {
	lock.Lock()
	defer lock.Unlock()

	name := strings.ReplaceAll(testName, "/", "_")
	call := callCount[name]
	callCount[name] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}

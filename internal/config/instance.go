package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// parseInstanceFile loads the machine-local override file from dir.
//
// The file is a flat JSON object whose recognized keys are "secret_key",
// "debug", and "testing"; unrecognized keys are ignored. Returns (nil, nil)
// when the file does not exist, because machine-local overrides are
// optional. Any other failure (unreadable file, malformed JSON) is returned
// as an error and aborts resolution.
func parseInstanceFile(dir string) (*Overrides, error) {
	path := filepath.Join(dir, instanceFileName)

	instanceFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading instance config %s: %w", path, err)
	}
	defer instanceFile.Close()

	overrides := new(Overrides)
	if err := json.NewDecoder(instanceFile).Decode(overrides); err != nil {
		return nil, fmt.Errorf("error decoding instance config %s: %w", path, err)
	}

	return overrides, nil
}

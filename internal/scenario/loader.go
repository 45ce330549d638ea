package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/validate"
	"gopkg.in/yaml.v3"
)

// LoadScenarios loads scenarios from a YAML file or from every *.yaml and
// *.yml file below a directory, sorted by path. A file may hold several
// scenarios as separate YAML documents.
func LoadScenarios(path string) ([]Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("scenario path does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to stat scenario path: %w", err)
	}

	if !info.IsDir() {
		return LoadFile(path)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isYAMLFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", path, err)
	}
	sort.Strings(files)

	var scenarios []Scenario
	for _, file := range files {
		loaded, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, loaded...)
	}

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios found in %s", path)
	}
	logging.Debug("Loaded %d scenarios from %s", len(scenarios), path)
	return scenarios, nil
}

// LoadFile loads every scenario document in a single YAML file.
func LoadFile(path string) ([]Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	scenarios, err := Decode(content)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario file %s: %w", path, err)
	}
	for i := range scenarios {
		scenarios[i].Path = path
	}
	return scenarios, nil
}

// Decode parses and validates one or more YAML scenario documents. Unknown
// keys are rejected so typos in expectations do not silently pass.
func Decode(content []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var scenarios []Scenario
	for {
		var sc Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if err := Validate(sc); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenario documents")
	}
	return scenarios, nil
}

// Validate checks variable names, struct tags and template syntax of every
// step.
func Validate(sc Scenario) error {
	if err := validateNames(sc); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err := validate.Struct(sc); err != nil {
		if sc.Name != "" {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		return err
	}

	check := func(kind string, steps []Step) error {
		for i, step := range steps {
			if _, err := parseTemplate(step.Command); err != nil {
				return fmt.Errorf("scenario %q: %s %d (%s): %w", sc.Name, kind, i+1, step.Name, err)
			}
		}
		return nil
	}
	if err := check("step", sc.Steps); err != nil {
		return err
	}
	return check("cleanup step", sc.Cleanup)
}

// validateNames checks vars and capture names before the struct tags so the
// error names the offending variable instead of the map field.
func validateNames(sc Scenario) error {
	for _, name := range sortedKeys(sc.Vars) {
		if err := validate.VariableName(name); err != nil {
			return fmt.Errorf("vars: %w", err)
		}
	}
	for _, steps := range [][]Step{sc.Steps, sc.Cleanup} {
		for _, step := range steps {
			for _, name := range sortedKeys(step.Capture) {
				if err := validate.VariableName(name); err != nil {
					return fmt.Errorf("step %q capture: %w", step.Name, err)
				}
			}
		}
	}
	return nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

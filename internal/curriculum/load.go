package curriculum

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// MinVersion is the oldest curriculum file format this build understands.
const MinVersion = "1.0.0"

//go:embed curriculum.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// curriculumFile mirrors the on-disk JSON layout. Module ordinals are not
// part of the format; they are assigned from array position.
type curriculumFile struct {
	Version  string `json:"version"`
	Galaxies []struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Modules []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			XP          int    `json:"xp"`
			Tokens      int    `json:"tokens"`
			Challenge   bool   `json:"challenge"`
		} `json:"modules"`
	} `json:"galaxies"`
}

// LoadJSON parses and validates a curriculum file and builds its Graph.
// The file must match the embedded JSON schema and carry a version of at
// least MinVersion.
func LoadJSON(data []byte) (*Graph, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse curriculum: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("curriculum schema validation failed: %w", err)
	}

	var f curriculumFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}

	if !semver.IsValid("v" + f.Version) {
		return nil, fmt.Errorf("curriculum version %q is not a valid semver", f.Version)
	}
	if semver.Compare("v"+f.Version, "v"+MinVersion) < 0 {
		return nil, fmt.Errorf("curriculum version %s is older than the minimum supported %s", f.Version, MinVersion)
	}

	galaxies := make([]Galaxy, len(f.Galaxies))
	for gi, fg := range f.Galaxies {
		gal := Galaxy{ID: fg.ID, Name: fg.Name, Modules: make([]Module, len(fg.Modules))}
		for mi, fm := range fg.Modules {
			gal.Modules[mi] = Module{
				ID:           fm.ID,
				Title:        fm.Title,
				Description:  fm.Description,
				Ordinal:      mi,
				XPReward:     fm.XP,
				TokenReward:  fm.Tokens,
				HasChallenge: fm.Challenge,
			}
		}
		galaxies[gi] = gal
	}
	return New(galaxies)
}

// compiledSchema compiles the embedded curriculum schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			schemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://curriculum.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
	})
	return schema, schemaErr
}

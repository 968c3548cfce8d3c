// Package config loads batch scenario files for the pathfind command.
//
// A scenario file is YAML:
//
//	scenarios:
//	  - name: sample
//	    grid: grids/sample.txt   # relative to the scenario file
//	    algorithm: astar         # bfs | dijkstra | astar
//	    start: "0,0"             # optional, default S marker or top-left
//	    goal: "9,9"              # optional, default E marker or bottom-right
//	    tile: 5                  # optional, default 1
//	    connectivity: 4          # optional, 4 or 8, default 4
//	    expect_cost: 315         # optional
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind/gridgraph"
)

// ErrInvalid wraps every validation failure reported by Decode and Load.
var ErrInvalid = errors.New("config: invalid scenario file")

// Algorithm names accepted in scenarios and on the command line.
const (
	AlgoBFS      = "bfs"
	AlgoDijkstra = "dijkstra"
	AlgoAStar    = "astar"
)

// File is a parsed scenario file.
type File struct {
	Scenarios []Scenario `yaml:"scenarios" validate:"required,min=1,dive"`
}

// Scenario is one search to run and, optionally, the cost it must produce.
type Scenario struct {
	Name         string `yaml:"name" validate:"required"`
	Grid         string `yaml:"grid" validate:"required"`
	Algorithm    string `yaml:"algorithm" validate:"required,oneof=bfs dijkstra astar"`
	Start        string `yaml:"start" validate:"omitempty,point"`
	Goal         string `yaml:"goal" validate:"omitempty,point"`
	Tile         int    `yaml:"tile" validate:"gte=1,lte=25"`
	Connectivity int    `yaml:"connectivity" validate:"oneof=4 8"`
	ExpectCost   *int64 `yaml:"expect_cost" validate:"omitempty,gte=0"`
}

// Conn maps the Connectivity field onto gridgraph's constants.
func (s Scenario) Conn() gridgraph.Connectivity {
	if s.Connectivity == 8 {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("point", func(fl validator.FieldLevel) bool {
		_, err := gridgraph.ParsePoint(fl.Field().String())
		return err == nil
	})
	return v
}

// Load reads and validates the scenario file at path. Relative grid paths
// are resolved against the file's directory.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range cfg.Scenarios {
		if g := cfg.Scenarios[i].Grid; !filepath.IsAbs(g) {
			cfg.Scenarios[i].Grid = filepath.Join(dir, g)
		}
	}

	return cfg, nil
}

// Decode parses a scenario file from r, fills defaults and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg File
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	for i := range cfg.Scenarios {
		applyDefaults(&cfg.Scenarios[i])
	}
	if err := ValidateStruct(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(s *Scenario) {
	if s.Tile == 0 {
		s.Tile = 1
	}
	if s.Connectivity == 0 {
		s.Connectivity = 4
	}
}

// ValidateStruct validates s against its validate tags. All failures are
// joined into one message wrapped in ErrInvalid.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// formatFieldError renders one failure using the yaml key path, e.g.
// "scenarios[1].algorithm must be one of: bfs dijkstra astar".
func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "point":
		return fmt.Sprintf("%s must be formatted as x,y", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

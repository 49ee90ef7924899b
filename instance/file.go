// Package instance — YAML instance files.
//
// Format:
//
//	name: small
//	resources: 1
//	capacity: 1
//	max_length: 100
//	distances:
//	  - [0, 5]
//	  - [5, 0]
//	costs:            # explicit reduced costs, or
//	  - [0, -3]
//	  - [0, 0]
//	duals: [0, 13]    # reduced cost d(i,j) − duals[j]
//
// Exactly one of costs/duals must be present. Unknown keys are rejected.
package instance

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a decoded instance file: the oracle plus the solver parameters.
type File struct {
	Name      string
	Resources int
	Capacity  int
	MaxLength float64
	Instance  *Instance
}

// fileDoc is the on-disk shape of an instance file.
type fileDoc struct {
	Name      string      `yaml:"name"`
	Resources int         `yaml:"resources"`
	Capacity  int         `yaml:"capacity"`
	MaxLength *float64    `yaml:"max_length"`
	Distances [][]float64 `yaml:"distances"`
	Costs     [][]float64 `yaml:"costs"`
	Duals     []float64   `yaml:"duals"`
}

// Load decodes one instance document from r.
//
// A missing max_length means "unbounded" (+Inf). Shape and value errors of the
// matrices surface as the constructor sentinels (ErrNonSquare, ErrNonFinite, …);
// format violations as ErrBadFile.
func Load(r io.Reader) (*File, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFile, err)
	}

	if len(doc.Distances) == 0 {
		return nil, fmt.Errorf("%w: missing distances", ErrBadFile)
	}
	if (doc.Costs == nil) == (doc.Duals == nil) {
		return nil, fmt.Errorf("%w: exactly one of costs and duals is required", ErrBadFile)
	}
	if doc.Resources < 0 || doc.Capacity < 0 {
		return nil, fmt.Errorf("%w: negative resources or capacity", ErrBadFile)
	}

	maxLen := math.Inf(1)
	if doc.MaxLength != nil {
		maxLen = *doc.MaxLength
		if math.IsNaN(maxLen) || maxLen < 0 {
			return nil, fmt.Errorf("%w: max_length %g", ErrBadFile, maxLen)
		}
	}

	var (
		in  *Instance
		err error
	)
	if doc.Costs != nil {
		in, err = NewFromRows(doc.Distances, doc.Costs)
	} else {
		in, err = FromDualsRows(doc.Distances, doc.Duals)
	}
	if err != nil {
		return nil, err
	}

	return &File{
		Name:      doc.Name,
		Resources: doc.Resources,
		Capacity:  doc.Capacity,
		MaxLength: maxLen,
		Instance:  in,
	}, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

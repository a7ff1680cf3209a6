package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/MShaffar19/OpenJij/model"
	"github.com/MShaffar19/OpenJij/sampler"
)

// problemFile is the YAML input:
//
//	vartype: SPIN
//	linear: {0: 1.0, 1: 1.0}
//	quadratic: [{i: 0, j: 1, value: -1.0}]
type problemFile struct {
	Vartype   string          `yaml:"vartype"`
	Linear    map[int]float64 `yaml:"linear"`
	Quadratic []termYAML      `yaml:"quadratic"`
	Offset    float64         `yaml:"offset,omitempty"`
}

type termYAML struct {
	I     int     `yaml:"i"`
	J     int     `yaml:"j"`
	Value float64 `yaml:"value"`
}

// responseFile is the YAML output.
type responseFile struct {
	ID         string     `yaml:"id"`
	Vartype    string     `yaml:"vartype"`
	Indices    []int      `yaml:"indices,flow"`
	Lowest     readYAML   `yaml:"lowest"`
	MeanEnergy float64    `yaml:"mean_energy"`
	Reads      []readYAML `yaml:"reads"`
}

type readYAML struct {
	State  []int   `yaml:"state,flow"`
	Energy float64 `yaml:"energy"`
}

// loadProblem reads a problem from path; "-" reads stdin.
func loadProblem(path string, stdin io.Reader) (*model.BQM, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open problem: %w", err)
		}
		defer f.Close()
		r = f
	}

	return decodeProblem(r)
}

// decodeProblem parses YAML into a model. Vartype defaults to SPIN and
// repeated pairs are summed.
func decodeProblem(r io.Reader) (*model.BQM, error) {
	var p problemFile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	vt := model.Spin
	if p.Vartype != "" {
		var err error
		if vt, err = model.ParseVartype(p.Vartype); err != nil {
			return nil, err
		}
	}
	quad := make(model.Quadratic, len(p.Quadratic))
	for _, t := range p.Quadratic {
		quad[[2]int{t.I, t.J}] += t.Value
	}

	return model.New(p.Linear, quad, p.Offset, vt)
}

// writeResponse encodes resp as YAML.
func writeResponse(w io.Writer, resp *sampler.Response) error {
	out := responseFile{
		ID:      resp.ID.String(),
		Vartype: resp.Vartype.String(),
		Indices: resp.Indices,
		Reads:   make([]readYAML, resp.Len()),
	}
	for k := range resp.States {
		out.Reads[k] = readYAML{State: resp.States[k], Energy: resp.Energies[k]}
	}
	if resp.Len() > 0 {
		state, energy := resp.Lowest()
		out.Lowest = readYAML{State: state, Energy: energy}
		out.MeanEnergy = resp.MeanEnergy()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	return enc.Close()
}

// encodeProblem writes m in the problemFile layout, pairs sorted.
func encodeProblem(w io.Writer, m *model.BQM) error {
	p := problemFile{
		Vartype: m.Vartype().String(),
		Linear:  m.Linear(),
		Offset:  m.Offset(),
	}
	quad := m.Quadratic()
	keys := slices.SortedFunc(maps.Keys(quad), func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	for _, k := range keys {
		p.Quadratic = append(p.Quadratic, termYAML{I: k[0], J: k[1], Value: quad[k]})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode problem: %w", err)
	}

	return enc.Close()
}

package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpack/knapsack"
)

// rawThing mirrors one [[things]] entry. Pointers distinguish an absent
// field from a zero value.
type rawThing struct {
	Name  *string  `toml:"name" yaml:"name" json:"name"`
	Value *float64 `toml:"value" yaml:"value" json:"value"`
	Num   *int     `toml:"num" yaml:"num" json:"num"`
	Costs *[]int   `toml:"costs" yaml:"costs" json:"costs"`
}

// rawProblem mirrors a problem document. go-toml matches keys
// case-insensitively, so "Things" lands in Things for TOML; YAML and JSON
// need the explicit alias field.
type rawProblem struct {
	Things      []rawThing `toml:"things" yaml:"things" json:"things"`
	ThingsAlias []rawThing `toml:"-" yaml:"Things" json:"Things"`
	Costs       *[]int     `toml:"costs" yaml:"costs" json:"costs"`
}

// thingDoc and problemDoc are the encoding side of rawThing and rawProblem.
type thingDoc struct {
	Name  string  `toml:"name" yaml:"name" json:"name"`
	Value float64 `toml:"value" yaml:"value" json:"value"`
	Num   int     `toml:"num" yaml:"num" json:"num"`
	Costs []int   `toml:"costs" yaml:"costs,flow" json:"costs"`
}

type problemDoc struct {
	Costs  []int      `toml:"costs" yaml:"costs,flow" json:"costs"`
	Things []thingDoc `toml:"things" yaml:"things" json:"things"`
}

// DecodeProblem reads a problem document in format f and returns a
// validated knapsack.Problem.
//
// Errors: syntax errors from the underlying decoder (wrapped),
// ErrMissingField, ErrDuplicateField, ErrUnknownFormat, and
// knapsack.Validate sentinels.
func DecodeProblem(r io.Reader, f Format) (knapsack.Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return knapsack.Problem{}, fmt.Errorf("codec: read problem: %w", err)
	}

	var raw rawProblem
	if err = unmarshal(data, f, &raw); err != nil {
		return knapsack.Problem{}, err
	}

	p, err := raw.problem()
	if err != nil {
		return knapsack.Problem{}, err
	}
	if err = knapsack.Validate(p); err != nil {
		return knapsack.Problem{}, err
	}

	return p, nil
}

// EncodeProblem writes p as a problem document in format f.
func EncodeProblem(w io.Writer, f Format, p knapsack.Problem) error {
	doc := problemDoc{
		Costs:  p.Bounds,
		Things: make([]thingDoc, len(p.Items)),
	}
	for i, it := range p.Items {
		doc.Things[i] = thingDoc{Name: it.Name, Value: it.Value, Num: it.MaxCount, Costs: it.Cost}
	}

	return marshal(w, f, doc)
}

func (raw rawProblem) problem() (knapsack.Problem, error) {
	if raw.Costs == nil {
		return knapsack.Problem{}, fmt.Errorf("%w: costs", ErrMissingField)
	}

	things := raw.Things
	if len(raw.ThingsAlias) > 0 {
		if len(things) > 0 {
			return knapsack.Problem{}, fmt.Errorf("%w: things and Things", ErrDuplicateField)
		}
		things = raw.ThingsAlias
	}
	p := knapsack.Problem{
		Bounds: *raw.Costs,
		Items:  make([]knapsack.Item, len(things)),
	}
	for i, th := range things {
		switch {
		case th.Name == nil:
			return knapsack.Problem{}, fmt.Errorf("%w: things[%d].name", ErrMissingField, i)
		case th.Value == nil:
			return knapsack.Problem{}, fmt.Errorf("%w: things[%d].value", ErrMissingField, i)
		case th.Num == nil:
			return knapsack.Problem{}, fmt.Errorf("%w: things[%d].num", ErrMissingField, i)
		case th.Costs == nil:
			return knapsack.Problem{}, fmt.Errorf("%w: things[%d].costs", ErrMissingField, i)
		}
		p.Items[i] = knapsack.Item{
			Name:     *th.Name,
			Value:    *th.Value,
			MaxCount: *th.Num,
			Cost:     *th.Costs,
		}
	}

	return p, nil
}

func unmarshal(data []byte, f Format, v any) error {
	var err error
	switch f {
	case TOML, "":
		err = toml.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	case JSON:
		err = json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: decode %s: %w", formatName(f), err)
	}

	return nil
}

func marshal(w io.Writer, f Format, v any) error {
	var err error
	switch f {
	case TOML, "":
		err = toml.NewEncoder(w).Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", formatName(f), err)
	}

	return nil
}

func formatName(f Format) string {
	if f == "" {
		return string(TOML)
	}

	return string(f)
}

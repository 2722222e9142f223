package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvpack/knapsack"
)

// SolutionDoc is the serialized form of a knapsack.Solution.
type SolutionDoc struct {
	Value  float64        `toml:"value" yaml:"value" json:"value"`
	Chosen map[string]int `toml:"chosen" yaml:"chosen" json:"chosen"`
}

// EncodeSolution writes s in format f. The value is rounded with
// knapsack.Round; chosen entries are emitted sorted by name.
func EncodeSolution(w io.Writer, f Format, s knapsack.Solution) error {
	doc := SolutionDoc{
		Value:  knapsack.Round(s.Value),
		Chosen: s.Chosen,
	}
	if doc.Chosen == nil {
		doc.Chosen = map[string]int{}
	}

	return marshal(w, f, doc)
}

// DecodeSolution reads a solution document written by EncodeSolution.
func DecodeSolution(r io.Reader, f Format) (SolutionDoc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return SolutionDoc{}, fmt.Errorf("codec: read solution: %w", err)
	}

	var doc SolutionDoc
	if err = unmarshal(data, f, &doc); err != nil {
		return SolutionDoc{}, err
	}

	return doc, nil
}

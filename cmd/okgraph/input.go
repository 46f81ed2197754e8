package main

import (
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// inputVariation gives either a measured proportion,
// or the raw counts it is estimated from.
type inputVariation struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role" validate:"omitempty,oneof=control experiment"`
	Mean     *float64 `yaml:"mean" validate:"required_without=Visitors"`
	Variance *float64 `yaml:"variance" validate:"required_with=Mean"`

	Conversions *int `yaml:"conversions" validate:"required_with=Visitors"`
	Visitors    *int `yaml:"visitors" validate:"omitempty,gt=0"`
}

// inputFile is the document read by the commands.
// Graph settings are optional, at the top level.
type inputFile struct {
	Variations []inputVariation   `yaml:"variations" validate:"dive"`
	Config     graphconfig.Config `yaml:",inline" validate:"-"`
}

var validate = validator.New()

func (v inputVariation) toVariation() (diffdist.Variation, error) {
	role, err := diffdist.ParseRole(v.Role)
	if err != nil {
		return diffdist.Variation{}, err
	}
	out := diffdist.Variation{Name: v.Name, Role: role}
	if v.Mean != nil {
		out.Proportion = diffdist.Proportion{Mean: *v.Mean, Variance: *v.Variance}
		return out, nil
	}
	out.Proportion, err = diffdist.ProportionFromCounts(*v.Conversions, *v.Visitors)
	return out, err
}

// readInput decodes and validates an input document.
func readInput(r io.Reader) ([]diffdist.Variation, graphconfig.Config, error) {
	in := inputFile{Config: graphconfig.Default()}
	if err := yaml.NewDecoder(r).Decode(&in); err != nil && err != io.EOF {
		return nil, graphconfig.Config{}, fmt.Errorf("decoding input: %w", err)
	}
	if err := validate.Struct(in); err != nil {
		return nil, graphconfig.Config{}, fmt.Errorf("invalid input: %w", err)
	}
	if err := in.Config.Validate(); err != nil {
		return nil, graphconfig.Config{}, err
	}
	variations := make([]diffdist.Variation, len(in.Variations))
	for i, v := range in.Variations {
		var err error
		variations[i], err = v.toVariation()
		if err != nil {
			return nil, graphconfig.Config{}, fmt.Errorf("variation %d: %w", i+1, err)
		}
	}
	return variations, in.Config, nil
}

func readInputFile(path string) ([]diffdist.Variation, graphconfig.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, graphconfig.Config{}, err
	}
	defer f.Close()
	return readInput(f)
}

package improvement

import (
	"errors"
	"math"
	"testing"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
	"github.com/benoitkugler/okgraph/graphdraw"
)

func TestSummarize(t *testing.T) {
	// roles given in reverse order
	vs := variations(0.10, 0.12)
	vs[0], vs[1] = vs[1], vs[0]

	s, err := Summarize(graphconfig.Default(), vs)
	if err != nil {
		t.Fatal(err)
	}
	if s.Control.Name != "control" || s.Experiment.Name != "experiment" {
		t.Errorf("unexpected roles %s / %s", s.Control.Name, s.Experiment.Name)
	}
	if math.Abs(s.Mean-0.02) > 1e-15 || math.Abs(s.StdDev-math.Sqrt(0.0013)) > 1e-15 {
		t.Errorf("unexpected distribution %v ± %v", s.Mean, s.StdDev)
	}
	if s.Improvement != 20 {
		t.Errorf("expected +20%%, got %d", s.Improvement)
	}
	if !(s.ProbabilityOfImprovement > 0.7 && s.ProbabilityOfImprovement < 0.72) {
		t.Errorf("unexpected probability of improvement %v", s.ProbabilityOfImprovement)
	}
	if len(s.Axis.Ticks) != 7 {
		t.Errorf("expected 7 ticks, got %d", len(s.Axis.Ticks))
	}

	// same ticks as the drawn graph
	rec := render(t, vs)
	texts := rec.Filter(graphdraw.OpText)
	for i, tick := range s.Axis.Ticks {
		if texts[i].Text != tick.Label {
			t.Errorf("tick %d: summary label %s, drawn label %s", i, tick.Label, texts[i].Text)
		}
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize(graphconfig.Default(), variations(0, 0.1)); !errors.Is(err, ErrDegenerateControlMean) {
		t.Errorf("expected ErrDegenerateControlMean, got %v", err)
	}
	vs := variations(0.1, 0.2)
	vs[1].Role = diffdist.RoleControl
	if _, err := Summarize(graphconfig.Default(), vs); !errors.Is(err, diffdist.ErrDuplicateRole) {
		t.Errorf("expected ErrDuplicateRole, got %v", err)
	}
}

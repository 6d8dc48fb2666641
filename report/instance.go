package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lvlath/go/matrix"
)

// ErrBadInstance is returned when an instance document is structurally
// unusable: missing labels, a ragged or mis-sized distance table, absent
// endpoints, or a non-positive trial budget.
var ErrBadInstance = errors.New("report: invalid instance document")

// Instance is one evaluation problem as stored on disk.
type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`

	// Labels name the matrix rows/columns, in index order.
	Labels []string `json:"labels"`

	// Distances is the full n×n matrix; may be asymmetric.
	Distances [][]float64 `json:"distances"`

	// Start and End are the required path endpoints.
	Start string `json:"start"`
	End   string `json:"end"`

	// Methods is the ordered method-id list; empty means "use the registry
	// defaults".
	Methods []string `json:"methods,omitempty"`

	// Trials is the per-method trial budget.
	Trials int `json:"trials"`
}

// LoadInstance reads and validates an instance JSON document.
func LoadInstance(path string) (Instance, error) {
	var inst Instance

	raw, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, fmt.Errorf("report: read instance: %w", err)
	}
	if err = json.Unmarshal(raw, &inst); err != nil {
		return Instance{}, fmt.Errorf("report: parse instance: %w", err)
	}
	if err = inst.Validate(); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// Validate checks the document's structural invariants. Endpoint topology
// (start != end, both present) is left to the bench engine, which reports
// it with its own sentinel.
func (inst Instance) Validate() error {
	n := len(inst.Labels)
	if n == 0 {
		return fmt.Errorf("%w: no labels", ErrBadInstance)
	}
	if len(inst.Distances) != n {
		return fmt.Errorf("%w: %d labels but %d matrix rows", ErrBadInstance, n, len(inst.Distances))
	}
	for i := range inst.Distances {
		if len(inst.Distances[i]) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadInstance, i, len(inst.Distances[i]), n)
		}
	}
	if inst.Start == "" || inst.End == "" {
		return fmt.Errorf("%w: start/end missing", ErrBadInstance)
	}
	if inst.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrBadInstance, inst.Trials)
	}

	return nil
}

// Matrix materializes the distance table as a *matrix.Dense.
func (inst Instance) Matrix() (*matrix.Dense, error) {
	n := len(inst.Labels)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInstance, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, inst.Distances[i][j]); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadInstance, err)
			}
		}
	}

	return m, nil
}

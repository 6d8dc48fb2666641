package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/tourbench/bench"
)

// Document is the persisted outcome of one evaluation run: the three result
// tables plus enough context (instance name, host, wall time) to compare
// runs recorded on different machines or days.
type Document struct {
	Instance string  `json:"instance"`
	Comment  string  `json:"comment,omitempty"`
	System   SysInfo `json:"system"`
	Time     string  `json:"time"`

	Best         []bench.BestRow         `json:"best"`
	Routes       []bench.RouteRow        `json:"routes"`
	Distribution []bench.DistributionRow `json:"distribution"`
}

// NewDocument assembles a Document from an aggregated Result.
func NewDocument(instance, comment, elapsed string, res bench.Result) Document {
	return Document{
		Instance:     instance,
		Comment:      comment,
		System:       CollectSysInfo(),
		Time:         elapsed,
		Best:         res.BestTable(),
		Routes:       res.RouteTable(),
		Distribution: res.DistributionTable(),
	}
}

// WriteDocument writes the document as indented JSON.
func WriteDocument(path string, doc Document) error {
	raw, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return fmt.Errorf("report: encode document: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("report: write document: %w", err)
	}

	return nil
}

package report

import (
	"encoding/json"

	"github.com/Marym-Saleh/jrp-planner/internal/solver"
)

// jsonRecord mirrors the column headings of the policy table so the JSON
// export stays losslessly aligned with the HTML and PDF documents.
type jsonRecord struct {
	ID          string  `json:"ID"`
	Multiplier  int     `json:"Multiplier (m)"`
	Cycle       float64 `json:"Individual Cycle (Ti)"`
	SetupCost   float64 `json:"Setup Cost ($)"`
	HoldingCost float64 `json:"Holding Cost ($)"`
	TotalCost   float64 `json:"Total Item Cost ($)"`
}

// RenderJSON serializes the per-item policy records.
func RenderJSON(policy solver.Policy) ([]byte, error) {
	records := make([]jsonRecord, len(policy.Items))
	for i, item := range policy.Items {
		records[i] = jsonRecord{
			ID:          item.ID,
			Multiplier:  item.Multiplier,
			Cycle:       item.Cycle,
			SetupCost:   item.SetupCost,
			HoldingCost: item.HoldingCost,
			TotalCost:   item.TotalCost,
		}
	}
	return json.MarshalIndent(records, "", "  ")
}

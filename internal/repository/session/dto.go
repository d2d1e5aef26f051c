package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kailas-cloud/finsite/internal/domain/dialogue"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
)

// formRow is the JSON-serializable representation of an open demo form.
type formRow struct {
	Product string              `json:"product"`
	Step    int                 `json:"step"`
	Fields  dialogue.DemoFields `json:"fields"`
}

// conversationRow is the JSON-serializable representation of a dialogue session.
type conversationRow struct {
	ID            string             `json:"id"`
	Stage         string             `json:"stage"`
	Profile       dialogue.Profile   `json:"profile"`
	Messages      []dialogue.Message `json:"messages"`
	RolesExpanded bool               `json:"roles_expanded,omitempty"`
	Recommended   []dialogue.Item    `json:"recommended,omitempty"`
	Form          *formRow           `json:"form,omitempty"`
	CreatedAt     int64              `json:"created_at"`
}

func conversationToJSON(s *dialogue.Session) ([]byte, error) {
	row := conversationRow{
		ID:            s.ID(),
		Stage:         string(s.Stage()),
		Profile:       s.Profile(),
		Messages:      s.Messages(),
		RolesExpanded: s.RolesExpanded(),
		Recommended:   s.Recommended(),
		CreatedAt:     s.CreatedAt().UnixMilli(),
	}
	if f := s.Form(); f != nil {
		row.Form = &formRow{Product: f.Product(), Step: f.Step(), Fields: f.Fields()}
	}
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("marshal conversation: %w", err)
	}
	return data, nil
}

func conversationFromJSON(data []byte) (*dialogue.Session, error) {
	var row conversationRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("unmarshal conversation: %w", err)
	}
	var form *dialogue.DemoForm
	if row.Form != nil {
		form = dialogue.ReconstructDemoForm(row.Form.Product, row.Form.Step, row.Form.Fields)
	}
	return dialogue.Reconstruct(
		row.ID,
		dialogue.Stage(row.Stage),
		row.Profile,
		row.Messages,
		row.RolesExpanded,
		row.Recommended,
		form,
		time.UnixMilli(row.CreatedAt).UTC(),
	), nil
}

// viewRow is the JSON-serializable representation of a facet view.
type viewRow struct {
	Selected map[facet.Dimension][]string `json:"selected"`
}

func selectionToJSON(sel facet.Selection) ([]byte, error) {
	data, err := json.Marshal(viewRow{Selected: sel.Snapshot()})
	if err != nil {
		return nil, fmt.Errorf("marshal facet view: %w", err)
	}
	return data, nil
}

func selectionFromJSON(data []byte) (facet.Selection, error) {
	var row viewRow
	if err := json.Unmarshal(data, &row); err != nil {
		return facet.Selection{}, fmt.Errorf("unmarshal facet view: %w", err)
	}
	return facet.Reconstruct(row.Selected), nil
}

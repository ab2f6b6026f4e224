// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StepKind tags the variant held by a Step.
type StepKind int

const (
	// StepPlain is a leaf instruction.
	StepPlain StepKind = iota
	// StepComposite is an instruction with nested sub-instructions.
	StepComposite
)

// Step is a node of a recipe's instruction tree. Kind decides which fields
// are meaningful: Substeps is only read for StepComposite.
type Step struct {
	Kind     StepKind
	Text     string
	Substeps []Step
}

// Plain returns a leaf step.
func Plain(text string) Step {
	return Step{Kind: StepPlain, Text: text}
}

// Composite returns a step carrying nested substeps. Calling it with no
// substeps yields a composite with an empty nested list.
func Composite(text string, substeps ...Step) Step {
	if substeps == nil {
		substeps = []Step{}
	}
	return Step{Kind: StepComposite, Text: text, Substeps: substeps}
}

// compositeJSON is the object form used for composite steps in stored data.
type compositeJSON struct {
	Text     string `json:"text"`
	Substeps []Step `json:"substeps"`
}

// MarshalJSON encodes plain steps as bare strings and composite steps as
// {"text": ..., "substeps": [...]}.
func (s Step) MarshalJSON() ([]byte, error) {
	if s.Kind == StepComposite {
		subs := s.Substeps
		if subs == nil {
			subs = []Step{}
		}
		return json.Marshal(compositeJSON{Text: s.Text, Substeps: subs})
	}
	return json.Marshal(s.Text)
}

// UnmarshalJSON accepts either a string or a composite object. Any other
// shape is rejected so malformed steps never reach the renderer.
func (s *Step) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("step: empty value")
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("step text: %w", err)
		}
		*s = Plain(text)
		return nil
	case '{':
		var c compositeJSON
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("composite step: %w", err)
		}
		*s = Composite(c.Text, c.Substeps...)
		return nil
	}
	return fmt.Errorf("step: expected string or object, got %s", data)
}

// Depth returns the nesting depth of the tree rooted at s (a plain step and
// a composite without substeps both have depth 1).
func (s Step) Depth() int {
	deepest := 0
	for _, sub := range s.Substeps {
		if d := sub.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

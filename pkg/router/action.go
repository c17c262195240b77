// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"encoding/json"
	"fmt"
)

// Action is the plan for one query. It is one of Search, Show, Answer or Clarify.
type Action interface {
	// Name returns the value of the "action" field for the variant.
	Name() string
	isAction()
}

const (
	ActionSearch  = "search"
	ActionShow    = "show"
	ActionAnswer  = "answer"
	ActionClarify = "clarify"
)

// Search finds files and folders whose name matches Pattern.
// An empty LocationKey means every allowed location.
type Search struct {
	Pattern       string `json:"file_pattern"`
	LocationKey   string `json:"base_path_key,omitempty"`
	IncludeHidden bool   `json:"include_hidden"`
}

// Show prints the content of the single file named FileName.
type Show struct {
	FileName      string `json:"file_name"`
	LocationKey   string `json:"base_path_key,omitempty"`
	IncludeHidden bool   `json:"include_hidden"`
}

// Answer is a direct reply that needs no file access.
type Answer struct {
	Text string
}

// Clarify asks the user one question before anything can be searched.
type Clarify struct {
	Question string
}

func (Search) Name() string  { return ActionSearch }
func (Show) Name() string    { return ActionShow }
func (Answer) Name() string  { return ActionAnswer }
func (Clarify) Name() string { return ActionClarify }

func (Search) isAction()  {}
func (Show) isAction()    {}
func (Answer) isAction()  {}
func (Clarify) isAction() {}

// Marshal encodes a in the same JSON shape the planner is asked to produce.
func Marshal(a Action) ([]byte, error) {
	plan := map[string]any{"action": a.Name()}
	switch a := a.(type) {
	case Search:
		plan[ActionSearch] = a
	case Show:
		plan[ActionShow] = a
	case Answer:
		plan[ActionAnswer] = a.Text
	case Clarify:
		plan[ActionClarify] = a.Question
	default:
		return nil, fmt.Errorf("unexpected action type %T", a)
	}
	return json.MarshalIndent(plan, "", "  ")
}

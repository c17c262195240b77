// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"encoding/json"
	"strings"
)

// fileNameFields are the field names accepted for the file name of a show plan.
var fileNameFields = []string{"file_name", "filename", "name", "file"}

// ParsePlan turns the planner output into an Action.
//
// The text is first decoded as a whole; when that fails, the substring from
// the first '{' to the last '}' is decoded instead. Text that still does not
// yield a JSON object, or whose action is unknown, becomes an Answer carrying
// the raw text. ParsePlan never fails.
//
// The returned action is not validated; see Validate.
func ParsePlan(raw string) Action {
	plan, ok := decodeObject(raw)
	if !ok {
		plan, ok = decodeObject(extractBraces(raw))
	}
	if !ok {
		return Answer{Text: raw}
	}

	name, _ := plan["action"].(string)
	switch strings.ToLower(name) {
	case ActionSearch:
		args, _ := plan[ActionSearch].(map[string]any)
		pattern, _ := args["file_pattern"].(string)
		return Search{
			Pattern:       pattern,
			LocationKey:   keyField(args),
			IncludeHidden: truthy(args["include_hidden"]),
		}
	case ActionShow:
		args, _ := plan[ActionShow].(map[string]any)
		return Show{
			FileName:      fileNameField(args),
			LocationKey:   keyField(args),
			IncludeHidden: truthy(args["include_hidden"]),
		}
	case ActionAnswer:
		return Answer{Text: textField(plan[ActionAnswer])}
	case ActionClarify:
		return Clarify{Question: textField(plan[ActionClarify])}
	default:
		return Answer{Text: raw}
	}
}

func decodeObject(s string) (map[string]any, bool) {
	if s == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func extractBraces(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// keyField returns base_path_key. A value that is not a string is kept in its
// JSON form so that validation rejects it.
func keyField(args map[string]any) string {
	switch v := args["base_path_key"].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

func fileNameField(args map[string]any) string {
	for _, f := range fileNameFields {
		v := args[f]
		if !truthy(v) {
			continue
		}
		s, _ := v.(string)
		return s
	}
	return ""
}

func textField(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// truthy follows the usual dynamic-language notion of truth for JSON values.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

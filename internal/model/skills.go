package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Skills is an ordered list of skill names. A nil Skills is stored as NULL.
//
// On the wire it accepts a single string as well as a list:
//
//	"skills": "Go"          -> ["Go"]
//	"skills": ["Go", "SQL"] -> ["Go", "SQL"]
//	"skills": "" | [] | null -> null
type Skills []string

var errSkillsType = errors.New("skills must be a string or a list of strings")

func (s *Skills) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)

	if bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var one string
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		if one == "" {
			*s = nil
		} else {
			*s = Skills{one}
		}
		return nil
	}

	var many []*string
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return errSkillsType
	}

	out := make([]string, 0, len(many))
	for _, skill := range many {
		if skill == nil {
			return errSkillsType
		}
		out = append(out, *skill)
	}
	*s = NormalizeSkills(out)
	return nil
}

// NormalizeSkills maps an empty list to nil and leaves anything else as is.
func NormalizeSkills(skills []string) Skills {
	if len(skills) == 0 {
		return nil
	}
	return Skills(skills)
}

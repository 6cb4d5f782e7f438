package dto

import (
	"encoding/json"
	"fmt"
)

// StringList is a JSON list of strings that also accepts a single scalar,
// coerced into a one-element list. Multi-step intake forms submit list fields
// both ways depending on how many options were picked.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list

		return nil
	}

	var scalar string
	if err := json.Unmarshal(data, &scalar); err != nil {
		return fmt.Errorf("value must be a string or a list of strings: %w", err)
	}

	*l = StringList{scalar}

	return nil
}

package dto

import (
	"encoding/json"
	"errors"
	"strings"
)

// RecipientList accepts either a JSON array of addresses or a single
// comma-separated string. The string form is split on commas, each element
// trimmed and empty elements dropped, before schema validation runs.
type RecipientList []string

func (r *RecipientList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*r = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return errors.New("to must be a string or an array of strings")
	}

	parts := strings.Split(single, ",")
	out := make(RecipientList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*r = out
	return nil
}

type SendEmailRequest struct {
	To      RecipientList `json:"to" binding:"required,min=1,max=20,dive,email"`
	Subject string        `json:"subject" binding:"max=200"`
	Body    string        `json:"body" binding:"max=50000"`
}

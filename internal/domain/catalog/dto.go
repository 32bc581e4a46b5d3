package catalog

import "strings"

type SaveProjectRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r SaveProjectRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrProjectIDRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrProjectNameRequired
	}
	return nil
}

type SaveActivityRequest struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r SaveActivityRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrActivityNameEmpty
	}
	if _, ok := ParseActivityType(r.Type); !ok {
		return ErrInvalidActivityType
	}
	return nil
}

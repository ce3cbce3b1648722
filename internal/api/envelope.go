package api

import "encoding/json"

// Pagination is the envelope block describing a paginated collection.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

// The backend answers list endpoints in one of three shapes:
//
//	{"data": [...], "pagination": {...}}          paginated envelope
//	{"data": [...], "total": N}                   bare array
//	{"data": {"<key>": [...], "pagination": ...}} nested object
//
// decodeCollection normalizes all three to (items, totalCount). Anything else
// is a DataFormatError, never a panic mid-render.
func decodeCollection[T any](endpoint string, raw []byte, nestedKey string) ([]T, int, error) {
	var env struct {
		Data       json.RawMessage `json:"data"`
		Pagination *Pagination     `json:"pagination"`
		Total      int             `json:"total"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, 0, &DataFormatError{Endpoint: endpoint, Detail: err.Error()}
	}
	if len(env.Data) == 0 {
		return nil, 0, &DataFormatError{Endpoint: endpoint, Detail: "missing data field"}
	}

	// Shape 1 and 2: data is the item array itself.
	var items []T
	if err := json.Unmarshal(env.Data, &items); err == nil {
		return items, collectionTotal(env.Pagination, env.Total, len(items)), nil
	}

	// Shape 3: data is an object holding the array under a resource key.
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(env.Data, &nested); err != nil {
		return nil, 0, &DataFormatError{Endpoint: endpoint, Detail: "data is neither an array nor an object"}
	}
	inner, ok := nested[nestedKey]
	if !ok {
		return nil, 0, &DataFormatError{Endpoint: endpoint, Detail: "no " + nestedKey + " field in data object"}
	}
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, 0, &DataFormatError{Endpoint: endpoint, Detail: nestedKey + " is not an array"}
	}

	pagination := env.Pagination
	if rawPage, ok := nested["pagination"]; ok {
		var p Pagination
		if err := json.Unmarshal(rawPage, &p); err == nil {
			pagination = &p
		}
	}
	return items, collectionTotal(pagination, env.Total, len(items)), nil
}

func collectionTotal(p *Pagination, total, fallback int) int {
	if p != nil && p.Total > 0 {
		return p.Total
	}
	if total > 0 {
		return total
	}
	return fallback
}

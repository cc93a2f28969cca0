// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Product is a single catalog entry. The ID is server-assigned; the remote
// products table is the source of truth and the catalog store only caches it.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Tags        TagList   `json:"tags,omitempty"`
}

// TagList is an ordered sequence of free-text tags. Duplicates are allowed.
//
// Historically the products table stored tags either as a JSON array or as a
// comma-joined string, and older rows carry no tags at all, so decoding
// tolerates all three encodings.
type TagList []string

// UnmarshalJSON accepts a JSON array of strings, a comma-joined string, or
// null (empty list).
func (t *TagList) UnmarshalJSON(data []byte) error {
	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err == nil {
		*t = TagList(asSlice)

		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*t = ParseTags(asString)

		return nil
	}

	var asNull any
	if err := json.Unmarshal(data, &asNull); err == nil && asNull == nil {
		*t = nil

		return nil
	}

	return errors.Errorf("tags: cannot decode %s", data)
}

// ParseTags splits a comma-joined tag string, trimming whitespace and
// dropping empty entries.
func ParseTags(s string) TagList {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	tags := make(TagList, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		tags = append(tags, trimmed)
	}

	if len(tags) == 0 {
		return nil
	}

	return tags
}

// Join renders the list as the comma-joined wire encoding, or nil for an
// empty list so the column stays NULL.
func (t TagList) Join() *string {
	if len(t) == 0 {
		return nil
	}

	joined := strings.Join(t, ",")

	return &joined
}

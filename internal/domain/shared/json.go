package shared

import "encoding/json"

// JSON codecs for the value objects so aggregates serialize to the dataset
// and view-model wire forms directly.

// MarshalJSON encodes the ArtifactID as its string form.
func (id ArtifactID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON decodes and validates an ArtifactID.
func (id *ArtifactID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseArtifactID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the RelationshipID as its string form.
func (id RelationshipID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON decodes and validates a RelationshipID.
func (id *RelationshipID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRelationshipID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the Title as a plain string.
func (t Title) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// UnmarshalJSON decodes and validates a Title.
func (t *Title) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewTitle(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes the Confidence as its integer value, null when unset.
func (c Confidence) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return json.Marshal(c.value)
}

// UnmarshalJSON decodes a Confidence; null means unset.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = NoConfidence()
		return nil
	}
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewConfidence(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes the Tags as a sorted string array.
func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToSlice())
}

// UnmarshalJSON decodes and normalizes a tag array.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = NewTags(raw...)
	return nil
}

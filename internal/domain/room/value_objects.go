package room

import "strings"

// Features is the set of feature tags attached to a room (projector,
// whiteboard, video conferencing, ...). Stored as comma-delimited text.
type Features []string

func NewFeatures(tags []string) Features {
	out := make(Features, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func ParseFeatures(serialized string) Features {
	if serialized == "" {
		return Features{}
	}
	return NewFeatures(strings.Split(serialized, ","))
}

func (f Features) Serialize() string {
	return strings.Join(f, ",")
}

func (f Features) Contains(tag string) bool {
	for _, t := range f {
		if t == tag {
			return true
		}
	}
	return false
}

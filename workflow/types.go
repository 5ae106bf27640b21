package workflow

import "sort"

// Attributes are category-specific key/value pairs. A nil value is an
// attribute the extractor named but could not fill.
type Attributes map[string]*string

// Str returns a pointer to s, for building Attributes literals.
func Str(s string) *string { return &s }

// Get returns the value of key and whether it is present and non-nil.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Clone copies the map and the values it points to.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		if v != nil {
			s := *v
			v = &s
		}
		out[k] = v
	}
	return out
}

// Extraction is one raw span returned by the extraction collaborator.
// Offsets are character positions into transcript.Concat of the segments.
type Extraction struct {
	Category   Category   `json:"category"`
	StartChar  int        `json:"start_char"`
	EndChar    int        `json:"end_char"`
	Text       string     `json:"text"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Entity is an Extraction resolved to audio time and speaker.
type Entity struct {
	Category   Category   `json:"category"`
	Text       string     `json:"text"`
	StartChar  int        `json:"start_char"`
	EndChar    int        `json:"end_char"`
	Start      float64    `json:"start_s"`
	End        float64    `json:"end_s"`
	Speaker    string     `json:"speaker,omitempty"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// SortExtractions orders extractions by transcript position, keeping the
// relative order of equal spans. Extraction batches assembled from
// concurrent chunk calls must go through this before MapAll.
func SortExtractions(exs []Extraction) {
	sort.SliceStable(exs, func(i, j int) bool {
		if exs[i].StartChar != exs[j].StartChar {
			return exs[i].StartChar < exs[j].StartChar
		}
		return exs[i].EndChar < exs[j].EndChar
	})
}

package workflow

import (
	"errors"
	"fmt"

	"github.com/buildercards/workflow-pipeline/transcript"
)

// Reason classifies why an extraction was skipped.
type Reason string

const (
	ReasonOutOfRange   Reason = "out_of_range"
	ReasonInvalidSpan  Reason = "invalid_span"
	ReasonTextMismatch Reason = "text_mismatch"
)

// SpanError reports an extraction whose end does not come after its start.
type SpanError struct {
	Category Category
	Start    int
	End      int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("%s: empty or reversed span [%d, %d)", e.Category, e.Start, e.End)
}

// Skip records one extraction left out of a mapping pass.
type Skip struct {
	Index      int        `json:"index"`
	Extraction Extraction `json:"extraction"`
	Reason     Reason     `json:"reason"`
	Message    string     `json:"error"`
	Err        error      `json:"-"`
}

// SchemaWarning flags an extraction that does not match the vocabulary or
// attribute schema. It never stops a pass.
type SchemaWarning struct {
	Index    int      `json:"index"`
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

func (w SchemaWarning) String() string {
	return fmt.Sprintf("extraction %d (%s): %s", w.Index, w.Category, w.Message)
}

// MapOptions tunes MapAll.
type MapOptions struct {
	// VerifyText skips extractions whose text differs from the transcript
	// substring at their offsets.
	VerifyText bool
}

// MapResult is the outcome of a batch mapping pass. Entities keep the
// order of the input extractions.
type MapResult struct {
	Entities []Entity        `json:"entities"`
	Skipped  []Skip          `json:"skipped"`
	Warnings []SchemaWarning `json:"warnings,omitempty"`
}

// Partial reports whether any extraction was skipped.
func (r *MapResult) Partial() bool { return len(r.Skipped) > 0 }

// MapOne resolves one extraction against idx. The start offset picks the
// speaker; a span that crosses into another speaker's segment keeps the
// first speaker only.
func MapOne(idx *transcript.Index, ex Extraction) (Entity, error) {
	si, sl, err := idx.Locate(ex.StartChar)
	if err != nil {
		return Entity{}, withCategory(err, ex.Category)
	}
	if ex.EndChar <= ex.StartChar {
		return Entity{}, &SpanError{Category: ex.Category, Start: ex.StartChar, End: ex.EndChar}
	}
	ei, el, err := idx.LocateEnd(ex.EndChar)
	if err != nil {
		return Entity{}, withCategory(err, ex.Category)
	}
	startSeg := idx.Segment(si)
	start := transcript.Interpolate(startSeg, sl)
	end := transcript.Interpolate(idx.Segment(ei), el)
	if end < start {
		// overlapping diarization turns
		end = start
	}
	return Entity{
		Category:   ex.Category,
		Text:       ex.Text,
		StartChar:  ex.StartChar,
		EndChar:    ex.EndChar,
		Start:      start,
		End:        end,
		Speaker:    startSeg.Speaker,
		Attributes: ex.Attributes.Clone(),
	}, nil
}

func withCategory(err error, c Category) error {
	var rerr *transcript.RangeError
	if errors.As(err, &rerr) {
		cp := *rerr
		cp.Category = string(c)
		return &cp
	}
	return err
}

// MapAll maps a whole batch. Invalid segments fail the call with a
// *transcript.DataError before any extraction is looked at; a bad
// extraction only costs itself and shows up in Skipped.
func MapAll(segs []transcript.Segment, exs []Extraction, opts MapOptions) (*MapResult, error) {
	if err := transcript.Validate(segs); err != nil {
		return nil, err
	}
	idx := transcript.Build(segs)

	var text []rune
	if opts.VerifyText {
		text = []rune(transcript.Concat(segs))
	}

	res := &MapResult{
		Entities: make([]Entity, 0, len(exs)),
		Skipped:  []Skip{},
	}
	for i, ex := range exs {
		if !ex.Category.Known() {
			res.Warnings = append(res.Warnings, SchemaWarning{
				Index: i, Category: ex.Category, Message: "unknown category",
			})
		}
		ent, err := MapOne(idx, ex)
		if err != nil {
			res.Skipped = append(res.Skipped, skip(i, ex, reasonFor(err), err))
			continue
		}
		if opts.VerifyText {
			if got := string(text[ex.StartChar:ex.EndChar]); got != ex.Text {
				err := fmt.Errorf("%s: text %q does not match transcript %q", ex.Category, ex.Text, got)
				res.Skipped = append(res.Skipped, skip(i, ex, ReasonTextMismatch, err))
				continue
			}
		}
		res.Entities = append(res.Entities, ent)
	}
	return res, nil
}

func skip(i int, ex Extraction, r Reason, err error) Skip {
	return Skip{Index: i, Extraction: ex, Reason: r, Message: err.Error(), Err: err}
}

func reasonFor(err error) Reason {
	var rerr *transcript.RangeError
	if errors.As(err, &rerr) {
		return ReasonOutOfRange
	}
	return ReasonInvalidSpan
}

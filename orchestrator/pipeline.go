package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/buildercards/workflow-pipeline/clients"
	cfg "github.com/buildercards/workflow-pipeline/config"
	"github.com/buildercards/workflow-pipeline/transcript"
	"github.com/buildercards/workflow-pipeline/workflow"
)

var ErrNoSource = errors.New("no input source configured")

type Pipeline struct {
	cfg    *cfg.Root
	http   *clients.HTTP
	log    logrus.FieldLogger
	schema workflow.Schema
	tracer trace.Tracer
}

func NewPipeline(c *cfg.Root, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		cfg:    c,
		http:   clients.NewHTTP(c.Services.Timeout),
		log:    log,
		schema: workflow.DefaultSchema(),
		tracer: otel.Tracer("github.com/buildercards/workflow-pipeline/orchestrator"),
	}
}

// Run takes one transcript from segments to a persisted workflow profile.
// Invalid segments abort the run; individual bad extractions are skipped,
// logged and reported in Result.Skipped.
func (p *Pipeline) Run(ctx context.Context, in Input) (*Result, error) {
	runID := uuid.NewString()
	ctx, span := p.tracer.Start(ctx, "pipeline.run", trace.WithAttributes(attribute.String("run_id", runID)))
	defer span.End()
	log := p.log.WithField("run_id", runID)

	segs, err := p.segments(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.Roles {
		segs = transcript.ApplyRoles(segs, transcript.AssignRoles(segs))
	}
	if err := transcript.Validate(segs); err != nil {
		return nil, fmt.Errorf("segments: %w", err)
	}
	log.WithField("segments", len(segs)).Info("segments loaded")

	exs, chunkSkips, err := p.extractions(ctx, in, segs)
	if err != nil {
		return nil, err
	}
	warnings := p.schema.ValidateAttributes(exs)

	_, mspan := p.tracer.Start(ctx, "map")
	mapped, err := workflow.MapAll(segs, exs, workflow.MapOptions{VerifyText: p.cfg.Extraction.VerifyText})
	if err != nil {
		mspan.End()
		return nil, err
	}
	mspan.SetAttributes(
		attribute.Int("extractions", len(exs)),
		attribute.Int("entities", len(mapped.Entities)),
		attribute.Int("skipped", len(mapped.Skipped)),
	)
	mspan.End()

	warnings = append(warnings, mapped.Warnings...)
	sort.SliceStable(warnings, func(i, j int) bool { return warnings[i].Index < warnings[j].Index })
	for _, w := range warnings {
		log.WithFields(logrus.Fields{"index": w.Index, "category": w.Category}).Warn("schema: " + w.Message)
	}

	skipped := append(append([]workflow.Skip{}, chunkSkips...), mapped.Skipped...)
	for _, s := range skipped {
		log.WithFields(logrus.Fields{
			"index":      s.Index,
			"category":   s.Extraction.Category,
			"start_char": s.Extraction.StartChar,
			"end_char":   s.Extraction.EndChar,
			"reason":     s.Reason,
		}).Warn("extraction skipped: " + s.Message)
	}

	profile := workflow.Aggregate(mapped.Entities, workflow.AggregateOptions{Strict: p.cfg.Aggregation.Strict})
	if profile.Dropped > 0 {
		log.WithField("dropped", profile.Dropped).Info("strict mode dropped unclassified entities")
	}

	res := &Result{
		RunID:    runID,
		Segments: segs,
		Profile:  profile,
		Cards:    workflow.Summarize(profile),
		Skipped:  skipped,
		Warnings: warnings,
		Partial:  len(skipped) > 0,
	}

	if out := p.cfg.Paths.Outputs; out != "" {
		_, pspan := p.tracer.Start(ctx, "persist")
		dir, err := persist(out, res)
		pspan.End()
		if err != nil {
			return nil, fmt.Errorf("persist: %w", err)
		}
		res.OutputDir = dir
	}

	if url := p.cfg.Services.Render.URL; url != "" {
		if _, err := p.http.Render(ctx, url, clients.RenderReq{
			RunID: runID, Profile: profile, Cards: res.Cards, Partial: res.Partial,
		}); err != nil {
			return res, fmt.Errorf("render: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"entities": profile.Count(),
		"skipped":  len(res.Skipped),
		"partial":  res.Partial,
		"output":   res.OutputDir,
	}).Info("profile ready")
	return res, nil
}

func (p *Pipeline) segments(ctx context.Context, in Input) ([]transcript.Segment, error) {
	ctx, span := p.tracer.Start(ctx, "load-segments")
	defer span.End()

	switch {
	case in.SegmentsPath != "":
		return loadSegmentsFile(in.SegmentsPath)
	case in.TranscriptPath != "":
		return loadTranscriptFile(in.TranscriptPath, in.Duration)
	case in.TranscriptID != "":
		url := p.cfg.Services.Transcription.URL
		if url == "" {
			return nil, fmt.Errorf("segments: %w: transcription service url", ErrNoSource)
		}
		resp, err := p.http.Segments(ctx, url, in.TranscriptID)
		if err != nil {
			return nil, err
		}
		return resp.Segments, nil
	}
	return nil, fmt.Errorf("segments: %w", ErrNoSource)
}

// extractions returns the batch in transcript order. Service results come
// back per chunk in any order, so offsets are shifted to the full
// transcript and the batch is re-sorted before mapping. Spans reaching
// outside their chunk are returned as skips with chunk-relative offsets.
func (p *Pipeline) extractions(ctx context.Context, in Input, segs []transcript.Segment) ([]workflow.Extraction, []workflow.Skip, error) {
	ctx, span := p.tracer.Start(ctx, "extract")
	defer span.End()

	if in.ExtractionsPath != "" {
		exs, err := loadExtractionsFile(in.ExtractionsPath)
		if err != nil {
			return nil, nil, err
		}
		workflow.SortExtractions(exs)
		return exs, nil, nil
	}
	url := p.cfg.Services.Extraction.URL
	if url == "" {
		return nil, nil, fmt.Errorf("extractions: %w", ErrNoSource)
	}

	chunks := chunkText(segs, p.cfg.Extraction.ChunkChars)
	span.SetAttributes(attribute.Int("chunks", len(chunks)))
	cats := make([]string, 0, len(workflow.Categories()))
	for _, c := range workflow.Categories() {
		cats = append(cats, string(c))
	}

	results := make([][]workflow.Extraction, len(chunks))
	skips := make([][]workflow.Skip, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, p.cfg.Extraction.Concurrency))
	for i, c := range chunks {
		g.Go(func() error {
			resp, err := p.http.Extract(gctx, url, clients.ExtractReq{Text: c.Text, Chunk: c.Number, Categories: cats})
			if err != nil {
				return fmt.Errorf("chunk %d: %w", c.Number, err)
			}
			results[i], skips[i] = rebase(c, resp.Extractions)
			p.log.WithFields(logrus.Fields{"chunk": c.Number, "extractions": len(resp.Extractions)}).Debug("chunk extracted")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		all     []workflow.Extraction
		skipped []workflow.Skip
	)
	for i := range results {
		all = append(all, results[i]...)
		skipped = append(skipped, skips[i]...)
	}
	workflow.SortExtractions(all)
	return all, skipped, nil
}

// rebase shifts chunk-relative offsets to the full transcript. An offset
// outside the chunk text would land on a neighbouring chunk, so it is
// skipped instead. Reversed spans inside the chunk are left to MapAll.
func rebase(c textChunk, exs []workflow.Extraction) ([]workflow.Extraction, []workflow.Skip) {
	n := utf8.RuneCountInString(c.Text)
	out := make([]workflow.Extraction, 0, len(exs))
	var skips []workflow.Skip
	for j, ex := range exs {
		var pos int
		switch {
		case ex.StartChar < 0 || ex.StartChar > n:
			pos = ex.StartChar
		case ex.EndChar > n:
			pos = ex.EndChar
		default:
			ex.StartChar += c.Base
			ex.EndChar += c.Base
			out = append(out, ex)
			continue
		}
		// Index is the position in the chunk's response.
		err := &transcript.RangeError{Pos: pos, Total: n, Category: string(ex.Category)}
		skips = append(skips, workflow.Skip{
			Index:      j,
			Extraction: ex,
			Reason:     workflow.ReasonOutOfRange,
			Message:    fmt.Sprintf("chunk %d: %s", c.Number, err),
			Err:        err,
		})
	}
	return out, skips
}

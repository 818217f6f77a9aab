package testutil

import (
	"fmt"
	"slices"
)

// SeedBuilder builds deterministic byte seeds for OpGenerator without
// hand-writing raw byte sequences.
//
// The builder encodes values in OpGenerator's byte consumption order and
// replays every op on its own Model, so id references resolve exactly as
// they will when the seed is generated against a fresh model.
type SeedBuilder struct {
	cfg   OpGenConfig
	model *Model
	ops   []Op
	data  []byte
}

// NewSeedBuilder creates a new builder for the given OpGenerator config.
func NewSeedBuilder(cfg *OpGenConfig) *SeedBuilder {
	if cfg == nil {
		panic("seed builder: cfg must not be nil")
	}

	return &SeedBuilder{cfg: *cfg, model: NewModel()}
}

// Bytes returns a copy of the built seed bytes.
func (b *SeedBuilder) Bytes() []byte {
	return slices.Clone(b.data)
}

// Ops returns the operations the seed encodes.
func (b *SeedBuilder) Ops() []Op {
	return slices.Clone(b.ops)
}

// Add appends an add operation.
func (b *SeedBuilder) Add(words ...string) *SeedBuilder {
	b.choose(0, b.cfg.AddRate, "add")
	b.words(words)

	return b.apply(&OpAdd{Words: words})
}

// Update appends an update operation.
func (b *SeedBuilder) Update(id IDArg, words ...string) *SeedBuilder {
	b.choose(b.cfg.AddRate, b.cfg.UpdateRate, "update")
	b.idRef(id)
	b.words(words)

	return b.apply(&OpUpdate{ID: id, Words: words})
}

// Delete appends a delete operation.
func (b *SeedBuilder) Delete(id IDArg) *SeedBuilder {
	b.choose(b.cfg.AddRate+b.cfg.UpdateRate, b.cfg.DeleteRate, "delete")
	b.idRef(id)

	return b.apply(&OpDelete{ID: id})
}

// MarkInProgress appends a mark-in-progress operation.
func (b *SeedBuilder) MarkInProgress(id IDArg) *SeedBuilder {
	b.choose(b.cfg.AddRate+b.cfg.UpdateRate+b.cfg.DeleteRate, b.cfg.MarkInProgressRate, "mark-in-progress")
	b.idRef(id)

	return b.apply(&OpMark{Status: "in-progress", ID: id})
}

// MarkDone appends a mark-done operation.
func (b *SeedBuilder) MarkDone(id IDArg) *SeedBuilder {
	start := b.cfg.AddRate + b.cfg.UpdateRate + b.cfg.DeleteRate + b.cfg.MarkInProgressRate
	b.choose(start, b.cfg.MarkDoneRate, "mark-done")
	b.idRef(id)

	return b.apply(&OpMark{Status: "done", ID: id})
}

// List appends a list operation. filter must be one of "", a status name
// or "later".
func (b *SeedBuilder) List(filter string) *SeedBuilder {
	start := b.cfg.AddRate + b.cfg.UpdateRate + b.cfg.DeleteRate + b.cfg.MarkInProgressRate + b.cfg.MarkDoneRate
	b.choose(start, 100-start, "list")
	b.push(indexOf(listFilters, filter, "list filter"))

	return b.apply(&OpList{Filter: filter})
}

func (b *SeedBuilder) choose(start, rate int, name string) {
	if rate <= 0 || start >= 100 {
		panic(fmt.Sprintf("seed builder: %s rate is zero in config", name))
	}

	b.push(start)
}

func (b *SeedBuilder) idRef(id IDArg) {
	ids := b.model.IDs()
	existing := b.cfg.InvalidIDRate + b.cfg.MissingIDRate

	switch {
	case id.Invalid:
		if b.cfg.InvalidIDRate == 0 {
			panic("seed builder: invalid id rate is zero in config")
		}

		b.push(0)
		b.push(indexOf(InvalidIDs, id.Raw, "invalid id"))
	case slices.Contains(ids, id.ID):
		if existing >= 100 {
			panic("seed builder: no room for existing ids in config")
		}

		b.push(existing)
		b.push(slices.Index(ids, id.ID))
	default:
		if b.cfg.MissingIDRate == 0 && len(ids) > 0 {
			panic("seed builder: missing id rate is zero in config")
		}

		b.push(b.cfg.InvalidIDRate)
		b.push(missingValue(b.model.MaxID(), id.ID))
	}
}

func (b *SeedBuilder) words(words []string) {
	if len(words) < 1 || len(words) > 3 {
		panic(fmt.Sprintf("seed builder: need 1-3 words, got %d", len(words)))
	}

	b.push(len(words) - 1)

	for _, w := range words {
		b.push(indexOf(Words, w, "word"))
	}
}

func (b *SeedBuilder) apply(op Op) *SeedBuilder {
	op.ApplyModel(b.model)
	b.ops = append(b.ops, op)

	return b
}

func (b *SeedBuilder) push(v int) {
	if v < 0 || v > 255 {
		panic(fmt.Sprintf("seed builder: byte out of range: %d", v))
	}

	b.data = append(b.data, byte(v))
}

// missingValue inverts missingID.
func missingValue(maxID, id int) int {
	switch {
	case id == 0:
		return 3
	case id > maxID && id <= maxID+3:
		return id - maxID - 1
	default:
		panic(fmt.Sprintf("seed builder: id %d cannot be encoded as missing (max %d)", id, maxID))
	}
}

func indexOf(choices []string, v, what string) int {
	i := slices.Index(choices, v)
	if i < 0 {
		panic(fmt.Sprintf("seed builder: unknown %s %q", what, v))
	}

	return i
}

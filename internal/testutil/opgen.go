package testutil

// OpGenConfig configures the operation generator. Op rates are percentages
// of the choice byte; whatever they leave over becomes list operations.
type OpGenConfig struct {
	AddRate            int
	UpdateRate         int
	DeleteRate         int
	MarkInProgressRate int
	MarkDoneRate       int

	// InvalidIDRate is the percentage of id references that do not parse.
	InvalidIDRate int

	// MissingIDRate is the percentage of id references to absent tasks.
	MissingIDRate int
}

// DefaultOpGenConfig returns a balanced configuration.
func DefaultOpGenConfig() OpGenConfig {
	return OpGenConfig{
		AddRate:            30,
		UpdateRate:         15,
		DeleteRate:         15,
		MarkInProgressRate: 10,
		MarkDoneRate:       10,
		InvalidIDRate:      10,
		MissingIDRate:      15,
	}
}

// Words descriptions are built from. None contain separators that would
// make list lines ambiguous.
var Words = []string{
	"buy", "milk", "call", "mom", "fix", "bug", "write", "docs",
	"-5", "degrees", "--flag", "ünïcode", "tab\there", "two  spaces",
}

// InvalidIDs are id arguments that never parse.
var InvalidIDs = []string{"abc", "1.5", "", "#2", "one", "0x1", "1e3"}

// OpGenerator generates deterministic operations from a byte stream.
//
// Byte consumption per op: one choice byte, then per id reference two
// bytes (kind, value), then per description one count byte and one byte
// per word. List consumes one filter byte.
type OpGenerator struct {
	stream *ByteStream
	config OpGenConfig
	model  *Model
}

// NewOpGenerator creates a new operation generator reading ids from model.
func NewOpGenerator(fuzzBytes []byte, model *Model, cfg *OpGenConfig) *OpGenerator {
	return &OpGenerator{
		stream: NewByteStream(fuzzBytes),
		config: *cfg,
		model:  model,
	}
}

// HasMore reports whether more operations can be generated.
func (g *OpGenerator) HasMore() bool {
	return g.stream.HasMore()
}

// NextOp generates the next operation.
func (g *OpGenerator) NextOp() Op {
	choice := g.stream.NextInt(100)
	cumulative := 0

	cumulative += g.config.AddRate
	if choice < cumulative {
		return &OpAdd{Words: g.genWords()}
	}

	cumulative += g.config.UpdateRate
	if choice < cumulative {
		id := g.genID()

		return &OpUpdate{ID: id, Words: g.genWords()}
	}

	cumulative += g.config.DeleteRate
	if choice < cumulative {
		return &OpDelete{ID: g.genID()}
	}

	cumulative += g.config.MarkInProgressRate
	if choice < cumulative {
		return &OpMark{Status: "in-progress", ID: g.genID()}
	}

	cumulative += g.config.MarkDoneRate
	if choice < cumulative {
		return &OpMark{Status: "done", ID: g.genID()}
	}

	return &OpList{Filter: NextPick(g.stream, listFilters)}
}

// listFilters includes an unknown filter, which lists everything.
var listFilters = []string{"", "todo", "in-progress", "done", "later"}

func (g *OpGenerator) genID() IDArg {
	kind := g.stream.NextInt(100)
	value := int(g.stream.NextByte())

	if kind < g.config.InvalidIDRate {
		return InvalidID(InvalidIDs[value%len(InvalidIDs)])
	}

	ids := g.model.IDs()
	if kind < g.config.InvalidIDRate+g.config.MissingIDRate || len(ids) == 0 {
		return ValidID(missingID(g.model.MaxID(), value))
	}

	return ValidID(ids[value%len(ids)])
}

// missingID picks an id no task has: just past the maximum, or zero.
func missingID(maxID, value int) int {
	if value%4 == 3 {
		return 0
	}

	return maxID + 1 + value%4
}

func (g *OpGenerator) genWords() []string {
	n := 1 + g.stream.NextInt(3)
	words := make([]string, n)

	for i := range words {
		words[i] = NextPick(g.stream, Words)
	}

	return words
}

package testutil

// Seed bundles a human-readable name with seed bytes.
//
// Curated seeds exercise scenarios that random fuzzing might take a long
// time to reach. Use RunBehavior to execute them:
//
//	testutil.RunBehavior(t, testutil.SeedBasicLifecycle(), testutil.DefaultRunConfig())
type Seed struct {
	Name string
	Data []byte
}

// CuratedSeeds returns all curated seeds with descriptive names.
func CuratedSeeds() []Seed {
	return []Seed{
		{Name: "basic_lifecycle", Data: SeedBasicLifecycle()},
		{Name: "delete_max_reuses_id", Data: SeedDeleteMaxReusesID()},
		{Name: "delete_middle_keeps_order", Data: SeedDeleteMiddle()},
		{Name: "invalid_and_missing_ids", Data: SeedInvalidAndMissingIDs()},
		{Name: "flag_like_words", Data: SeedFlagLikeWords()},
		{Name: "list_filters", Data: SeedListFilters()},
	}
}

func defaultSeedConfig() *OpGenConfig {
	cfg := DefaultOpGenConfig()

	return &cfg
}

// SeedBasicLifecycle: add, start, finish, list.
func SeedBasicLifecycle() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Add("buy", "milk").
		MarkInProgress(ValidID(1)).
		MarkDone(ValidID(1)).
		List("done").
		List("todo").
		Bytes()
}

// SeedDeleteMaxReusesID deletes the highest id; the next add takes it again.
func SeedDeleteMaxReusesID() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Add("fix", "bug").
		Add("write", "docs").
		Delete(ValidID(2)).
		Add("call", "mom").
		List("").
		Bytes()
}

// SeedDeleteMiddle deletes a non-maximal id; later ids keep counting up.
func SeedDeleteMiddle() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Add("buy").
		Add("milk").
		Add("call").
		Delete(ValidID(2)).
		Add("mom").
		Update(ValidID(3), "call", "mom").
		List("").
		Bytes()
}

// SeedInvalidAndMissingIDs touches storage only where the id parses.
func SeedInvalidAndMissingIDs() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Delete(InvalidID("abc")).
		Update(InvalidID(""), "docs").
		Add("write").
		Update(ValidID(2), "docs").
		Delete(ValidID(0)).
		MarkDone(ValidID(4)).
		MarkInProgress(InvalidID("1.5")).
		List("").
		Bytes()
}

// SeedFlagLikeWords stores descriptions that look like flags verbatim.
func SeedFlagLikeWords() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Add("-5", "degrees").
		Add("--flag").
		Update(ValidID(1), "two  spaces", "tab\there").
		Add("ünïcode").
		List("").
		Bytes()
}

// SeedListFilters lists by every status and by an unknown filter.
func SeedListFilters() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Add("buy").
		Add("milk").
		Add("docs").
		MarkInProgress(ValidID(2)).
		MarkDone(ValidID(3)).
		List("todo").
		List("in-progress").
		List("done").
		List("later").
		Bytes()
}

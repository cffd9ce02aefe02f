package reference

import "github.com/kordlan/harmonia_backend/internal/model"

// Compiled-in vocabulary served when the store is unreachable or still
// empty, and loaded by `harmonia system seed` on fresh deployments.

var fallbackGenres = []model.Genre{
	{ID: "blues", Name: "Blues"},
	{ID: "classical", Name: "Classical"},
	{ID: "country", Name: "Country"},
	{ID: "electronic", Name: "Electronic"},
	{ID: "folk", Name: "Folk"},
	{ID: "hiphop", Name: "Hip-Hop"},
	{ID: "jazz", Name: "Jazz"},
	{ID: "latin", Name: "Latin"},
	{ID: "metal", Name: "Metal"},
	{ID: "pop", Name: "Pop"},
	{ID: "rnb", Name: "R&B"},
	{ID: "rock", Name: "Rock"},
	{ID: "world", Name: "World"},
}

var fallbackInstruments = []model.Instrument{
	{ID: "violin", Name: "Violin", Category: "Strings", CategoryRank: 1, InstrumentRank: 1},
	{ID: "viola", Name: "Viola", Category: "Strings", CategoryRank: 1, InstrumentRank: 2},
	{ID: "cello", Name: "Cello", Category: "Strings", CategoryRank: 1, InstrumentRank: 3},
	{ID: "double-bass", Name: "Double Bass", Category: "Strings", CategoryRank: 1, InstrumentRank: 4},
	{ID: "guitar", Name: "Guitar", Category: "Strings", CategoryRank: 1, InstrumentRank: 5},
	{ID: "bass-guitar", Name: "Bass Guitar", Category: "Strings", CategoryRank: 1, InstrumentRank: 6},
	{ID: "harp", Name: "Harp", Category: "Strings", CategoryRank: 1, InstrumentRank: 7},

	{ID: "piano", Name: "Piano", Category: "Keyboard", CategoryRank: 2, InstrumentRank: 1},
	{ID: "organ", Name: "Organ", Category: "Keyboard", CategoryRank: 2, InstrumentRank: 2},
	{ID: "accordion", Name: "Accordion", Category: "Keyboard", CategoryRank: 2, InstrumentRank: 3},
	{ID: "synthesizer", Name: "Synthesizer", Category: "Keyboard", CategoryRank: 2, InstrumentRank: 4},

	{ID: "flute", Name: "Flute", Category: "Woodwind", CategoryRank: 3, InstrumentRank: 1},
	{ID: "oboe", Name: "Oboe", Category: "Woodwind", CategoryRank: 3, InstrumentRank: 2},
	{ID: "clarinet", Name: "Clarinet", Category: "Woodwind", CategoryRank: 3, InstrumentRank: 3},
	{ID: "bassoon", Name: "Bassoon", Category: "Woodwind", CategoryRank: 3, InstrumentRank: 4},
	{ID: "saxophone", Name: "Saxophone", Category: "Woodwind", CategoryRank: 3, InstrumentRank: 5},

	{ID: "trumpet", Name: "Trumpet", Category: "Brass", CategoryRank: 4, InstrumentRank: 1},
	{ID: "trombone", Name: "Trombone", Category: "Brass", CategoryRank: 4, InstrumentRank: 2},
	{ID: "french-horn", Name: "French Horn", Category: "Brass", CategoryRank: 4, InstrumentRank: 3},
	{ID: "tuba", Name: "Tuba", Category: "Brass", CategoryRank: 4, InstrumentRank: 4},

	{ID: "drums", Name: "Drums", Category: "Percussion", CategoryRank: 5, InstrumentRank: 1},
	{ID: "timpani", Name: "Timpani", Category: "Percussion", CategoryRank: 5, InstrumentRank: 2},
	{ID: "marimba", Name: "Marimba", Category: "Percussion", CategoryRank: 5, InstrumentRank: 3},
	{ID: "cajon", Name: "Cajón", Category: "Percussion", CategoryRank: 5, InstrumentRank: 4},

	{ID: "voice", Name: "Voice", Category: "Voice", CategoryRank: 6, InstrumentRank: 1},
}

var fallbackEducationRanks = []model.EducationRank{
	{Name: "Self-taught", Rank: 1},
	{Name: "High School", Rank: 2},
	{Name: "Diploma", Rank: 3},
	{Name: "Bachelor", Rank: 4},
	{Name: "Master", Rank: 5},
	{Name: "Doctorate", Rank: 6},
}

// FallbackVocabulary exposes the compiled-in set for the seed command.
func FallbackVocabulary() ([]model.Genre, []model.Instrument, []model.EducationRank) {
	return fallbackGenres, fallbackInstruments, fallbackEducationRanks
}

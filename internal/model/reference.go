package model

// Genre is a reference vocabulary entry used to populate search filters.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Instrument is a reference vocabulary entry. Category and the two rank
// fields drive deterministic grouped ordering in selection UIs: category
// groups by CategoryRank, instruments within a category by
// InstrumentRank then name.
type Instrument struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	CategoryRank   int    `json:"category_rank"`
	InstrumentRank int    `json:"instrument_rank"`
}

// EducationRank maps an institution or degree name to a rank; higher
// means more advanced. Consumed by the education sort criterion.
type EducationRank struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

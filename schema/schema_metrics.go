package schema

// RubricFactor is one weighted row of a rubric for display purposes.
type RubricFactor struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Weight   float64 `json:"weight"`
	Critical bool    `json:"critical,omitempty"`
	Class    string  `json:"class,omitempty"` // exposure issue class
}

// RubricSection describes the rubric of one domain.
type RubricSection struct {
	Domain     Domain             `json:"domain"`
	Purpose    string             `json:"purpose"`
	Factors    []RubricFactor     `json:"factors"`
	Formula    string             `json:"formula"`
	Thresholds map[string]float64 `json:"thresholds,omitempty"`
}

// RubricRenderModel contains all processed data needed for displaying rubric definitions.
type RubricRenderModel struct {
	Title    string          `json:"title"`
	Sections []RubricSection `json:"sections"`
	Gate     GateParams      `json:"gate"`
}

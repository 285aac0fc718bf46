package schema

// PhysicalSymptoms holds the physical group of a herx check-in.
type PhysicalSymptoms struct {
	Fatigue   int      `json:"fatigue" mapstructure:"fatigue"`
	Headache  int      `json:"headache" mapstructure:"headache"`
	BodyAches int      `json:"body_aches" mapstructure:"body_aches"`
	Nausea    int      `json:"nausea" mapstructure:"nausea"`
	Fever     int      `json:"fever" mapstructure:"fever"`
	Flagged   []string `json:"flagged,omitempty" mapstructure:"flagged"`
}

// CognitiveSymptoms holds the cognitive group of a herx check-in.
type CognitiveSymptoms struct {
	BrainFog      int      `json:"brain_fog" mapstructure:"brain_fog"`
	Concentration int      `json:"concentration" mapstructure:"concentration"`
	Memory        int      `json:"memory" mapstructure:"memory"`
	Processing    int      `json:"processing" mapstructure:"processing"`
	Flagged       []string `json:"flagged,omitempty" mapstructure:"flagged"`
}

// EmotionalSymptoms holds the emotional group of a herx check-in.
type EmotionalSymptoms struct {
	Mood         int      `json:"mood" mapstructure:"mood"`
	Anxiety      int      `json:"anxiety" mapstructure:"anxiety"`
	Irritability int      `json:"irritability" mapstructure:"irritability"`
	Motivation   int      `json:"motivation" mapstructure:"motivation"`
	Flagged      []string `json:"flagged,omitempty" mapstructure:"flagged"`
}

// HerxInput is a full detox-reaction check-in.
type HerxInput struct {
	Physical  PhysicalSymptoms  `json:"physical" mapstructure:"physical"`
	Cognitive CognitiveSymptoms `json:"cognitive" mapstructure:"cognitive"`
	Emotional EmotionalSymptoms `json:"emotional" mapstructure:"emotional"`
}

// SymptomValue is a named sub-metric value.
type SymptomValue struct {
	Key   string
	Value int
}

// PhysicalValues returns the physical sub-metrics in declaration order.
func (h HerxInput) PhysicalValues() []SymptomValue {
	p := h.Physical
	return []SymptomValue{
		{"fatigue", p.Fatigue}, {"headache", p.Headache}, {"body_aches", p.BodyAches},
		{"nausea", p.Nausea}, {"fever", p.Fever},
	}
}

// CognitiveValues returns the cognitive sub-metrics in declaration order.
func (h HerxInput) CognitiveValues() []SymptomValue {
	c := h.Cognitive
	return []SymptomValue{
		{"brain_fog", c.BrainFog}, {"concentration", c.Concentration},
		{"memory", c.Memory}, {"processing", c.Processing},
	}
}

// EmotionalValues returns the emotional sub-metrics in declaration order.
func (h HerxInput) EmotionalValues() []SymptomValue {
	e := h.Emotional
	return []SymptomValue{
		{"mood", e.Mood}, {"anxiety", e.Anxiety},
		{"irritability", e.Irritability}, {"motivation", e.Motivation},
	}
}

// AllValues returns the sub-metrics of all three groups.
func (h HerxInput) AllValues() []SymptomValue {
	out := h.PhysicalValues()
	out = append(out, h.CognitiveValues()...)
	return append(out, h.EmotionalValues()...)
}

// FlaggedSymptoms returns every flagged symptom across the three groups.
func (h HerxInput) FlaggedSymptoms() []string {
	out := make([]string, 0, len(h.Physical.Flagged)+len(h.Cognitive.Flagged)+len(h.Emotional.Flagged))
	out = append(out, h.Physical.Flagged...)
	out = append(out, h.Cognitive.Flagged...)
	out = append(out, h.Emotional.Flagged...)
	return out
}

// HerxAssessment is the severity assessment of one check-in.
type HerxAssessment struct {
	Physical          int       `json:"physical"`
	Cognitive         int       `json:"cognitive"`
	Emotional         int       `json:"emotional"`
	Overall           int       `json:"overall"`
	RiskLevel         RiskLevel `json:"risk_level"`
	EmergencyTriggers []string  `json:"emergency_triggers,omitempty"`
}

// Result converts the assessment to the shared score shape.
func (a HerxAssessment) Result() ScoreResult {
	return ScoreResult{Domain: HerxDomain, Score: a.Overall, Level: string(a.RiskLevel)}
}

// DosageAdjustment is the binder dosage guidance for a severity.
type DosageAdjustment struct {
	Action   DosageAction `json:"action"`
	NewDose  string       `json:"new_dose"`
	Timeline string       `json:"timeline"`
}

// Milestone is one expected recovery checkpoint.
type Milestone struct {
	Day         int    `json:"day"`
	Description string `json:"description"`
}

// DurationEstimate is the expected course of a reaction.
type DurationEstimate struct {
	Peak       string      `json:"peak"`
	Total      string      `json:"total"`
	Milestones []Milestone `json:"milestones"`
}

// HerxReport bundles everything shown for a check-in.
type HerxReport struct {
	Assessment      HerxAssessment   `json:"assessment"`
	Recommendations []string         `json:"recommendations"`
	Dosage          DosageAdjustment `json:"dosage"`
	Duration        DurationEstimate `json:"duration"`
	Trend           TrendReport      `json:"trend"`
}

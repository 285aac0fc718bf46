package schema

import (
	"math"
	"strings"
)

// RubricEntry is one weighted drainage metric.
type RubricEntry struct {
	Key      MetricKey `json:"key"`
	Label    string    `json:"label"`
	Weight   float64   `json:"weight"`
	Critical bool      `json:"critical"`
	MinValue int       `json:"min_value,omitempty"` // only meaningful when Critical
}

// DrainageRubric is the weighted table for drainage readiness.
type DrainageRubric struct {
	Entries     []RubricEntry
	CriticalCap int
}

// WeightSum returns the sum of all entry weights.
func (r *DrainageRubric) WeightSum() float64 {
	sum := 0.0
	for _, e := range r.Entries {
		sum += e.Weight
	}
	return sum
}

// Entry looks up the rubric entry for a key.
func (r *DrainageRubric) Entry(key MetricKey) (RubricEntry, bool) {
	for _, e := range r.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return RubricEntry{}, false
}

// WithWeights returns a copy of the rubric with the given weights replaced.
// Keys that are not part of the rubric are ignored.
func (r *DrainageRubric) WithWeights(weights map[MetricKey]float64) *DrainageRubric {
	out := &DrainageRubric{
		Entries:     make([]RubricEntry, len(r.Entries)),
		CriticalCap: r.CriticalCap,
	}
	copy(out.Entries, r.Entries)
	for i, e := range out.Entries {
		if w, ok := weights[e.Key]; ok {
			out.Entries[i].Weight = w
		}
	}
	return out
}

// IssueDefinition is one exposure issue with its base weight and class.
type IssueDefinition struct {
	Key    IssueKey   `json:"key"`
	Label  string     `json:"label"`
	Weight float64    `json:"weight"`
	Class  IssueClass `json:"class"`
}

// ExposureRubric holds every constant of the exposure risk scorer.
type ExposureRubric struct {
	Issues              []IssueDefinition
	SeverityMultipliers map[RoomSeverity]float64
	RoomWeights         map[string]float64 // keyed by lower-cased room name
	DefaultRoomWeight   float64
	HVACRoomWeight      float64
	MultiIssueCount     int
	MultiIssueFactor    float64
	HeavyIssueCount     int
	HeavyIssueFactor    float64
	Normalizer          float64
	MaxScore            float64
	EscalationRoom      string
}

// Issue looks up the definition of an issue key.
func (r *ExposureRubric) Issue(key IssueKey) (IssueDefinition, bool) {
	for _, d := range r.Issues {
		if d.Key == key {
			return d, true
		}
	}
	return IssueDefinition{}, false
}

// RoomWeight returns the importance weight for a room name.
func (r *ExposureRubric) RoomWeight(name string) float64 {
	n := strings.ToLower(strings.TrimSpace(name))
	if w, ok := r.RoomWeights[n]; ok {
		return w
	}
	if strings.Contains(n, "hvac") {
		return r.HVACRoomWeight
	}
	return r.DefaultRoomWeight
}

// HerxRubric holds the group weights and emergency triggers of the herx assessor.
type HerxRubric struct {
	PhysicalWeight    float64
	CognitiveWeight   float64
	EmotionalWeight   float64
	EmergencySeverity int
	EmergencyFever    int
	HighSeverity      int
	ModerateSeverity  int
	EmergencySymptoms []string
}

// IsEmergencySymptom reports whether a flagged symptom is in the emergency set.
func (r *HerxRubric) IsEmergencySymptom(symptom string) bool {
	s := strings.TrimSpace(symptom)
	for _, e := range r.EmergencySymptoms {
		if strings.EqualFold(s, e) {
			return true
		}
	}
	return false
}

// Rubrics bundles the rubric of every domain.
type Rubrics struct {
	Drainage *DrainageRubric
	Exposure *ExposureRubric
	Herx     *HerxRubric
}

// DefaultRubrics builds the stock rubrics for all domains.
func DefaultRubrics() *Rubrics {
	return &Rubrics{
		Drainage: DefaultDrainageRubric(),
		Exposure: DefaultExposureRubric(),
		Herx:     DefaultHerxRubric(),
	}
}

// DefaultDrainageRubric returns the stock drainage rubric.
func DefaultDrainageRubric() *DrainageRubric {
	critical := func(key MetricKey, label string, weight float64) RubricEntry {
		return RubricEntry{Key: key, Label: label, Weight: weight, Critical: true, MinValue: DrainageCriticalMinimum}
	}
	plain := func(key MetricKey, label string, weight float64) RubricEntry {
		return RubricEntry{Key: key, Label: label, Weight: weight}
	}
	return &DrainageRubric{
		Entries: []RubricEntry{
			critical(BowelMovements, "Bowel Movements", 0.15),
			critical(Hydration, "Hydration", 0.12),
			plain(UrineColor, "Urine Color", 0.08),
			plain(Energy, "Energy", 0.08),
			plain(Sleep, "Sleep", 0.10),
			plain(SkinClarity, "Skin Clarity", 0.07),
			plain(LymphMovement, "Lymph Movement", 0.10),
			critical(LiverSupport, "Liver Support", 0.12),
			plain(MentalClarity, "Mental Clarity", 0.10),
			plain(Sweating, "Sweating", 0.08),
		},
		CriticalCap: DrainageCriticalCap,
	}
}

// DefaultExposureRubric returns the stock exposure rubric.
func DefaultExposureRubric() *ExposureRubric {
	return &ExposureRubric{
		Issues: []IssueDefinition{
			{Key: VisibleMold, Label: "Visible Mold", Weight: 10, Class: CriticalIssue},
			{Key: WaterDamage, Label: "Water Damage", Weight: 8, Class: CriticalIssue},
			{Key: MustySmell, Label: "Musty Smell", Weight: 5, Class: ModerateIssue},
			{Key: Leaks, Label: "Leaks", Weight: 6, Class: ModerateIssue},
			{Key: Humidity, Label: "High Humidity", Weight: 4, Class: ModerateIssue},
			{Key: Condensation, Label: "Condensation", Weight: 3, Class: MinorIssue},
			{Key: Peeling, Label: "Peeling Paint", Weight: 2, Class: MinorIssue},
			{Key: Discoloration, Label: "Discoloration", Weight: 3, Class: MinorIssue},
		},
		SeverityMultipliers: map[RoomSeverity]float64{
			SeverityNone:     0,
			SeverityMild:     1,
			SeverityModerate: 1.5,
			SeveritySevere:   2,
		},
		RoomWeights: map[string]float64{
			"bedroom":     1.5,
			"basement":    1.3,
			"bathroom":    1.2,
			"kitchen":     1.2,
			"living room": 1.1,
			"hvac system": 2.0,
		},
		DefaultRoomWeight: 1.0,
		HVACRoomWeight:    2.0,
		MultiIssueCount:   3,
		MultiIssueFactor:  1.2,
		HeavyIssueCount:   5,
		HeavyIssueFactor:  1.3,
		Normalizer:        2,
		MaxScore:          100,
		EscalationRoom:    HVACEscalationRoomName,
	}
}

// DefaultHerxRubric returns the stock herx rubric.
func DefaultHerxRubric() *HerxRubric {
	return &HerxRubric{
		PhysicalWeight:    0.5,
		CognitiveWeight:   0.3,
		EmotionalWeight:   0.2,
		EmergencySeverity: 9,
		EmergencyFever:    9,
		HighSeverity:      7,
		ModerateSeverity:  4,
		EmergencySymptoms: []string{"chest pain", "difficulty breathing", "suicidal thoughts"},
	}
}

// WeightsBalanced reports whether weights sum to 1.0 within tolerance.
func WeightsBalanced(sum float64) bool {
	return math.Abs(sum-1.0) <= 0.001
}

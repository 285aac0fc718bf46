package schema

// Custom string types for type safety.
type (
	// Domain names one of the scoring subjects.
	Domain string

	// MetricKey identifies a drainage rubric metric.
	MetricKey string

	// IssueKey identifies an exposure issue flag.
	IssueKey string

	// IssueClass groups exposure issues for risk derivation.
	IssueClass string

	// RoomSeverity is the overall severity reported for a room.
	RoomSeverity string

	// ReadinessLevel is the drainage readiness band.
	ReadinessLevel string

	// RiskLevel is the exposure or herx risk band.
	RiskLevel string

	// TrendDirection is the direction reported by trend analysis.
	TrendDirection string

	// Confidence is the confidence attached to a trend.
	Confidence string

	// Variability buckets the standard deviation of a series.
	Variability string

	// DosageAction is the binder dosage decision.
	DosageAction string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for history.
	DatabaseBackend string
)

// All domains supported.
const (
	DrainageDomain Domain = "drainage"
	ExposureDomain Domain = "exposure"
	HerxDomain     Domain = "herx"
)

// Drainage metric keys in rubric order.
const (
	BowelMovements MetricKey = "bowel_movements"
	Hydration      MetricKey = "hydration"
	UrineColor     MetricKey = "urine_color"
	Energy         MetricKey = "energy"
	Sleep          MetricKey = "sleep"
	SkinClarity    MetricKey = "skin_clarity"
	LymphMovement  MetricKey = "lymph_movement"
	LiverSupport   MetricKey = "liver_support"
	MentalClarity  MetricKey = "mental_clarity"
	Sweating       MetricKey = "sweating"
)

// Exposure issue keys.
const (
	VisibleMold   IssueKey = "visible_mold"
	WaterDamage   IssueKey = "water_damage"
	MustySmell    IssueKey = "musty_smell"
	Leaks         IssueKey = "leaks"
	Humidity      IssueKey = "humidity"
	Condensation  IssueKey = "condensation"
	Peeling       IssueKey = "peeling"
	Discoloration IssueKey = "discoloration"
)

// Issue classes.
const (
	CriticalIssue IssueClass = "critical"
	ModerateIssue IssueClass = "moderate"
	MinorIssue    IssueClass = "minor"
)

// Room severities.
const (
	SeverityNone     RoomSeverity = "none"
	SeverityMild     RoomSeverity = "mild"
	SeverityModerate RoomSeverity = "moderate"
	SeveritySevere   RoomSeverity = "severe"
)

// Readiness bands, best first.
const (
	Ready       ReadinessLevel = "ready"
	AlmostReady ReadinessLevel = "almost-ready"
	Improving   ReadinessLevel = "improving"
	NotReady    ReadinessLevel = "not-ready"
)

// Risk bands, lowest first.
const (
	RiskLow       RiskLevel = "low"
	RiskModerate  RiskLevel = "moderate"
	RiskHigh      RiskLevel = "high"
	RiskCritical  RiskLevel = "critical"
	RiskEmergency RiskLevel = "emergency"
)

// Trend directions. Severity trends use improving/worsening, score trends use up/down.
const (
	TrendStable    TrendDirection = "stable"
	TrendImproving TrendDirection = "improving"
	TrendWorsening TrendDirection = "worsening"
	TrendUp        TrendDirection = "up"
	TrendDown      TrendDirection = "down"
)

// Trend confidences.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Variability buckets.
const (
	VariabilityLow      Variability = "low"
	VariabilityModerate Variability = "moderate"
	VariabilityHigh     Variability = "high"
)

// Dosage actions.
const (
	DosageContinue DosageAction = "continue"
	DosageReduce   DosageAction = "reduce"
	DosageStop     DosageAction = "stop"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Defaults shared by config and the engine.
const (
	DefaultRequiredDays     = 7
	DefaultRequiredScore    = 80.0
	DefaultSeriesWindow     = 7
	DefaultSeriesThreshold  = 80.0
	DefaultPrecision        = 1
	MetricMin               = 1
	MetricMax               = 10
	DefaultHistoryDBName    = ".readiness_history.db"
	DefaultConfigFileName   = ".readiness"
	DefaultEnvPrefix        = "READINESS"
	DefaultUser             = "default"
	DateLayout              = "2006-01-02"
	HVACEscalationRoomName  = "HVAC System"
	DrainageCriticalMinimum = 6
	DrainageCriticalCap     = 60
)

// AllDomains lists every domain in display order.
var AllDomains = []Domain{DrainageDomain, ExposureDomain, HerxDomain}

// DomainNames returns AllDomains as plain strings.
func DomainNames() []string {
	names := make([]string, 0, len(AllDomains))
	for _, d := range AllDomains {
		names = append(names, string(d))
	}
	return names
}

// ValidDomains is used for validating user input.
var ValidDomains = map[Domain]bool{
	DrainageDomain: true,
	ExposureDomain: true,
	HerxDomain:     true,
}

// ValidOutputModes is used for validating the output flag.
var ValidOutputModes = map[OutputMode]bool{
	TextOut: true,
	JSONOut: true,
	CSVOut:  true,
}

// ValidDatabaseBackends is used for validating the history backend.
var ValidDatabaseBackends = map[DatabaseBackend]bool{
	SQLiteBackend:     true,
	MySQLBackend:      true,
	PostgreSQLBackend: true,
	NoneBackend:       true,
}

// ValidRoomSeverities is used for validating room records.
var ValidRoomSeverities = map[RoomSeverity]bool{
	SeverityNone:     true,
	SeverityMild:     true,
	SeverityModerate: true,
	SeveritySevere:   true,
}

// DrainageMetricKeys lists the drainage metrics in rubric order.
var DrainageMetricKeys = []MetricKey{
	BowelMovements, Hydration, UrineColor, Energy, Sleep,
	SkinClarity, LymphMovement, LiverSupport, MentalClarity, Sweating,
}

// ExposureIssueKeys lists the exposure issues in rubric order.
var ExposureIssueKeys = []IssueKey{
	VisibleMold, WaterDamage, MustySmell, Leaks,
	Humidity, Condensation, Peeling, Discoloration,
}

// riskOrder ranks risk levels, lowest first.
var riskOrder = map[RiskLevel]int{
	RiskLow:       0,
	RiskModerate:  1,
	RiskHigh:      2,
	RiskCritical:  3,
	RiskEmergency: 4,
}

// Rank returns the ordinal of the risk level, lowest first.
func (r RiskLevel) Rank() int {
	return riskOrder[r]
}

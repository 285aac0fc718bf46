package intake

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/restorepath/readiness/schema"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("check-in cancelled")

// Flagged symptom choices per herx group. Emergency symptoms are included so
// they can be reported from the prompt.
var (
	physicalFlags  = []string{"headache", "nausea", "fatigue", "body aches", "joint pain", "skin rash", "chest pain", "difficulty breathing"}
	cognitiveFlags = []string{"brain fog", "insomnia"}
	emotionalFlags = []string{"anxiety", "irritability", "suicidal thoughts"}
)

// validateMetric requires an integer within the metric range.
func validateMetric(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < schema.MetricMin || v > schema.MetricMax {
		return fmt.Errorf("enter a whole number from %d to %d", schema.MetricMin, schema.MetricMax)
	}
	return nil
}

// metricInput returns a required metric input bound to value.
func metricInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(fmt.Sprintf("%s (%d-%d)", title, schema.MetricMin, schema.MetricMax)).
		Placeholder("5").
		Value(value).
		Validate(validateMetric)
}

// drainageForm builds a form with one input per rubric metric, five per page.
func drainageForm(rubric *schema.DrainageRubric, values map[schema.MetricKey]*string) *huh.Form {
	var groups []*huh.Group
	var fields []huh.Field
	for i, e := range rubric.Entries {
		fields = append(fields, metricInput(e.Label, values[e.Key]))
		if len(fields) == 5 || i == len(rubric.Entries)-1 {
			groups = append(groups, huh.NewGroup(fields...).Title("Drainage check-in"))
			fields = nil
		}
	}
	return huh.NewForm(groups...).WithTheme(huh.ThemeBase()).WithShowHelp(false)
}

// PromptDrainage asks for every drainage metric of the rubric.
func PromptDrainage(ctx context.Context, rubric *schema.DrainageRubric) (schema.Snapshot, error) {
	values := make(map[schema.MetricKey]*string, len(rubric.Entries))
	for _, e := range rubric.Entries {
		values[e.Key] = new(string)
	}
	if err := runForm(ctx, drainageForm(rubric, values)); err != nil {
		return nil, err
	}
	return parseValues(values)
}

// parseValues converts prompt answers to a snapshot.
func parseValues(values map[schema.MetricKey]*string) (schema.Snapshot, error) {
	snapshot := make(schema.Snapshot, len(values))
	for key, s := range values {
		v, err := strconv.Atoi(strings.TrimSpace(*s))
		if err != nil {
			return nil, fmt.Errorf("metric %s: %q is not a number", key, *s)
		}
		snapshot[key] = v
	}
	return snapshot, nil
}

// herxAnswers holds the raw prompt answers of a herx check-in.
type herxAnswers struct {
	values    map[string]*string // keyed by sub-metric name
	physical  []string
	cognitive []string
	emotional []string
}

func newHerxAnswers() *herxAnswers {
	a := &herxAnswers{values: map[string]*string{}}
	for _, sv := range (schema.HerxInput{}).AllValues() {
		a.values[sv.Key] = new(string)
	}
	return a
}

// symptomInput returns the input for one herx sub-metric.
func symptomInput(key string, answers *herxAnswers) *huh.Input {
	label := strings.ReplaceAll(key, "_", " ")
	return metricInput(strings.ToUpper(label[:1])+label[1:], answers.values[key])
}

// herxGroup builds one page of symptom inputs plus a flag selector.
func herxGroup(title string, values []schema.SymptomValue, answers *herxAnswers, flags []string, selected *[]string) *huh.Group {
	fields := make([]huh.Field, 0, len(values)+1)
	for _, sv := range values {
		fields = append(fields, symptomInput(sv.Key, answers))
	}
	fields = append(fields, huh.NewMultiSelect[string]().
		Title("Anything specific right now?").
		Options(huh.NewOptions(flags...)...).
		Value(selected))
	return huh.NewGroup(fields...).Title(title).Description("Rate every symptom, 1 if absent")
}

// herxForm builds the three-page herx check-in form.
func herxForm(answers *herxAnswers) *huh.Form {
	empty := schema.HerxInput{}
	return huh.NewForm(
		herxGroup("Physical", empty.PhysicalValues(), answers, physicalFlags, &answers.physical),
		herxGroup("Cognitive", empty.CognitiveValues(), answers, cognitiveFlags, &answers.cognitive),
		herxGroup("Emotional", empty.EmotionalValues(), answers, emotionalFlags, &answers.emotional),
	).WithTheme(huh.ThemeBase()).WithShowHelp(false)
}

// PromptHerx asks for a herx check-in.
func PromptHerx(ctx context.Context) (schema.HerxInput, error) {
	answers := newHerxAnswers()
	if err := runForm(ctx, herxForm(answers)); err != nil {
		return schema.HerxInput{}, err
	}
	return answers.toInput()
}

// toInput converts the answers to a herx check-in.
func (a *herxAnswers) toInput() (schema.HerxInput, error) {
	get := func(key string) (int, error) {
		s := strings.TrimSpace(*a.values[key])
		if s == "" {
			return 0, fmt.Errorf("symptom %s is required", key)
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("symptom %s: %q is not a number", key, s)
		}
		return v, nil
	}

	var in schema.HerxInput
	var errs []error
	set := func(dst *int, key string) {
		v, err := get(key)
		errs = append(errs, err)
		*dst = v
	}
	set(&in.Physical.Fatigue, "fatigue")
	set(&in.Physical.Headache, "headache")
	set(&in.Physical.BodyAches, "body_aches")
	set(&in.Physical.Nausea, "nausea")
	set(&in.Physical.Fever, "fever")
	set(&in.Cognitive.BrainFog, "brain_fog")
	set(&in.Cognitive.Concentration, "concentration")
	set(&in.Cognitive.Memory, "memory")
	set(&in.Cognitive.Processing, "processing")
	set(&in.Emotional.Mood, "mood")
	set(&in.Emotional.Anxiety, "anxiety")
	set(&in.Emotional.Irritability, "irritability")
	set(&in.Emotional.Motivation, "motivation")
	if err := errors.Join(errs...); err != nil {
		return schema.HerxInput{}, err
	}

	in.Physical.Flagged = a.physical
	in.Cognitive.Flagged = a.cognitive
	in.Emotional.Flagged = a.emotional
	return in, nil
}

// runForm runs a form and maps a user abort to ErrAborted.
func runForm(ctx context.Context, form *huh.Form) error {
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

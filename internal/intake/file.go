// Package intake reads check-ins from YAML or JSON files and interactive prompts.
package intake

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/restorepath/readiness/schema"
	"github.com/spf13/viper"
)

// roomRaw is a room as written in an exposure file. Issues are listed by key.
type roomRaw struct {
	Name     string   `mapstructure:"name"`
	Severity string   `mapstructure:"severity"`
	Issues   []string `mapstructure:"issues"`
}

// roomsFile is the top-level shape of an exposure file.
type roomsFile struct {
	Rooms []roomRaw `mapstructure:"rooms"`
}

// readFile loads a YAML or JSON file into a fresh viper instance.
// The format follows the file extension.
func readFile(path string) (*viper.Viper, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("no input file given")
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return v, nil
}

// strict rejects keys that do not map to a field.
func strict(c *mapstructure.DecoderConfig) {
	c.ErrorUnused = true
}

// wholeNumbers rejects fractional values bound for integer fields.
func wholeNumbers(_, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("value %v is not a whole number", f)
	}
	return data, nil
}

// decodeHook is shared by file and argument decoding.
var decodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.DecodeHookFuncType(wholeNumbers),
)

// decodeStrict decodes a generic value with the same rules as file input.
func decodeStrict(raw, out any) error {
	cfg := &mapstructure.DecoderConfig{Result: out, DecodeHook: decodeHook}
	strict(cfg)
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// LoadSnapshot reads a drainage snapshot. Metrics may sit at the top level or
// under a "metrics" key. Unknown metric names are kept so scoring can reject them.
func LoadSnapshot(path string) (schema.Snapshot, error) {
	v, err := readFile(path)
	if err != nil {
		return nil, err
	}

	settings := v.AllSettings()
	if nested, ok := settings["metrics"].(map[string]any); ok {
		settings = nested
	}
	return SnapshotFromMap(settings)
}

// SnapshotFromMap converts loosely typed metric values to a snapshot.
// Whole floats and numeric strings are accepted.
func SnapshotFromMap(raw map[string]any) (schema.Snapshot, error) {
	snapshot := make(schema.Snapshot, len(raw))
	for key, value := range raw {
		n, err := toInt(value)
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", key, err)
		}
		snapshot[schema.MetricKey(strings.ToLower(strings.TrimSpace(key)))] = n
	}
	return snapshot, nil
}

// toInt converts a decoded YAML or JSON scalar to an int.
func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("value %v is not a whole number", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("value %q is not a number", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported value %v of type %T", value, value)
	}
}

// LoadRooms reads the room list of an exposure assessment.
func LoadRooms(path string) ([]schema.RoomRecord, error) {
	v, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var file roomsFile
	if err := v.Unmarshal(&file, strict, viper.DecodeHook(decodeHook)); err != nil {
		return nil, fmt.Errorf("invalid rooms file %s: %w", path, err)
	}
	if len(file.Rooms) == 0 {
		return nil, fmt.Errorf("rooms file %s lists no rooms", path)
	}

	return roomRecords(file.Rooms), nil
}

// RoomsFromValue decodes a loosely typed room list, as sent by MCP clients.
func RoomsFromValue(raw any) ([]schema.RoomRecord, error) {
	var rooms []roomRaw
	if err := decodeStrict(raw, &rooms); err != nil {
		return nil, fmt.Errorf("invalid rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("no rooms given")
	}
	return roomRecords(rooms), nil
}

func roomRecords(raw []roomRaw) []schema.RoomRecord {
	rooms := make([]schema.RoomRecord, 0, len(raw))
	for _, r := range raw {
		rooms = append(rooms, RoomFromList(r.Name, r.Severity, r.Issues))
	}
	return rooms
}

// RoomFromList builds a room record from issue keys.
func RoomFromList(name, severity string, issues []string) schema.RoomRecord {
	room := schema.RoomRecord{
		Name:     strings.TrimSpace(name),
		Severity: schema.RoomSeverity(strings.ToLower(strings.TrimSpace(severity))),
		Issues:   make(map[schema.IssueKey]bool, len(issues)),
	}
	for _, issue := range issues {
		room.Issues[schema.IssueKey(strings.ToLower(strings.TrimSpace(issue)))] = true
	}
	return room
}

// LoadHerx reads a detox-reaction check-in. Omitted sub-metrics stay zero
// and fractional values are rejected.
func LoadHerx(path string) (schema.HerxInput, error) {
	v, err := readFile(path)
	if err != nil {
		return schema.HerxInput{}, err
	}

	var input schema.HerxInput
	if err := v.Unmarshal(&input, strict, viper.DecodeHook(decodeHook)); err != nil {
		return schema.HerxInput{}, fmt.Errorf("invalid herx file %s: %w", path, err)
	}
	return input, nil
}

// HerxFromMap decodes a check-in given as nested groups.
func HerxFromMap(raw map[string]any) (schema.HerxInput, error) {
	var input schema.HerxInput
	if err := decodeStrict(raw, &input); err != nil {
		return schema.HerxInput{}, fmt.Errorf("invalid herx check-in: %w", err)
	}
	return input, nil
}

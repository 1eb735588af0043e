package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Metal represents the metal type of an inventory item or bill
type Metal int

const (
	MetalGold   Metal = 0
	MetalSilver Metal = 1
)

func (m Metal) String() string {
	names := [...]string{"Gold", "Silver"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Gold"
	}
	return names[m]
}

// ParseMetal converts a string to a Metal, case-insensitively.
// Returns (MetalGold, false) for unknown values.
func ParseMetal(s string) (Metal, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return MetalGold, true
	case "silver":
		return MetalSilver, true
	}
	return MetalGold, false
}

func (m Metal) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Metal) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = Metal(i)
		return nil
	}
	if parsed, ok := ParseMetal(str); ok {
		*m = parsed
	}
	return nil
}

func (m Metal) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *Metal) Scan(value interface{}) error {
	if value == nil {
		*m = MetalGold
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = Metal(v)
	case int:
		*m = Metal(v)
	}
	return nil
}

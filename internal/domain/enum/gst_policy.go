package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// GSTPolicy selects how GST is folded into a gold bill total.
// Two historical variants exist and the deployed one is chosen once in
// configuration, never per call site.
type GSTPolicy int

const (
	// GSTPolicyPlain adds GST on top of the subtotal and nothing else.
	GSTPolicyPlain GSTPolicy = 0
	// GSTPolicyLegacyFactor additionally multiplies the GST-inclusive
	// total by 1.002911 before the discount is applied.
	GSTPolicyLegacyFactor GSTPolicy = 1
)

func (p GSTPolicy) String() string {
	names := [...]string{"Plain", "LegacyFactor"}
	if int(p) < 0 || int(p) >= len(names) {
		return "Plain"
	}
	return names[p]
}

// ParseGSTPolicy converts a config string to a GSTPolicy.
// Returns (GSTPolicyPlain, false) for unknown values.
func ParseGSTPolicy(s string) (GSTPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return GSTPolicyPlain, true
	case "legacy", "legacy_factor", "legacyfactor":
		return GSTPolicyLegacyFactor, true
	}
	return GSTPolicyPlain, false
}

func (p GSTPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *GSTPolicy) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = GSTPolicy(i)
		return nil
	}
	if parsed, ok := ParseGSTPolicy(str); ok {
		*p = parsed
	}
	return nil
}

func (p GSTPolicy) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *GSTPolicy) Scan(value interface{}) error {
	if value == nil {
		*p = GSTPolicyPlain
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = GSTPolicy(v)
	case int:
		*p = GSTPolicy(v)
	}
	return nil
}

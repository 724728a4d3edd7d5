package training

import "strings"

const DefaultCombo = "1-2"

// ParseCombo turns "1-2-3" or "Jab, Cross, Lead Hook" into a list of codes.
// Tokens that are neither a code nor a known name are returned unchanged.
func ParseCombo(combo string) []string {
	combo = strings.TrimSpace(combo)
	if combo == "" {
		combo = DefaultCombo
	}

	if strings.Contains(combo, "-") {
		return tokens(combo, "-", func(s string) string { return s })
	}
	return tokens(combo, ",", func(s string) string {
		if code, ok := codesByName[s]; ok {
			return code
		}
		return s
	})
}

func tokens(s, sep string, mapFn func(string) string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, mapFn(p))
	}
	return out
}

type Combo struct {
	Codes   []string `json:"codes"`
	Moves   []Move   `json:"moves"`
	Unknown []string `json:"unknown"`
}

// Describe parses combo and resolves each code to its move.
func Describe(combo string) Combo {
	out := Combo{
		Codes:   ParseCombo(combo),
		Moves:   []Move{},
		Unknown: []string{},
	}
	for _, code := range out.Codes {
		if mv, ok := Lookup(strings.ToUpper(code)); ok {
			out.Moves = append(out.Moves, mv)
			continue
		}
		out.Unknown = append(out.Unknown, code)
	}
	return out
}

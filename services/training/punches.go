// Package training describes the punch and defence codes used to write combos.
package training

type Move struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Defensive   bool   `json:"defensive"`
}

var moves = []Move{
	{Code: "1", Name: "Jab", Description: "Lead hand straight punch"},
	{Code: "2", Name: "Cross", Description: "Rear hand straight punch"},
	{Code: "3", Name: "Lead Hook", Description: "Lead hand hook"},
	{Code: "4", Name: "Rear Hook", Description: "Rear hand hook"},
	{Code: "5", Name: "Lead Uppercut", Description: "Lead hand uppercut"},
	{Code: "6", Name: "Rear Uppercut", Description: "Rear hand uppercut"},
	{Code: "S", Name: "Slip", Description: "Defensive slip movement", Defensive: true},
	{Code: "R", Name: "Roll", Description: "Defensive roll movement", Defensive: true},
	{Code: "D", Name: "Duck", Description: "Defensive duck movement", Defensive: true},
}

var movesByCode = func() map[string]Move {
	m := make(map[string]Move, len(moves))
	for _, mv := range moves {
		m[mv.Code] = mv
	}
	return m
}()

// Names accepted in place of codes. Bare "Hook" and "Uppercut" mean the lead hook and the rear uppercut.
var codesByName = map[string]string{
	"Jab":           "1",
	"Cross":         "2",
	"Hook":          "3",
	"Lead Hook":     "3",
	"Rear Hook":     "4",
	"Uppercut":      "6",
	"Lead Uppercut": "5",
	"Rear Uppercut": "6",
	"Slip":          "S",
	"Roll":          "R",
	"Duck":          "D",
}

func Moves() []Move {
	out := make([]Move, len(moves))
	copy(out, moves)
	return out
}

func Lookup(code string) (Move, bool) {
	mv, ok := movesByCode[code]
	return mv, ok
}

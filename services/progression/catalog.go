package progression

// Punch is one entry of the unlockable curriculum.
type Punch struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Videos []string `json:"videos"`
}

// Catalog is the ordered punch curriculum. Reaching level N unlocks the Nth punch.
type Catalog struct {
	punches []Punch
	index   map[string]int
}

func NewCatalog(punches ...Punch) *Catalog {
	c := &Catalog{
		punches: make([]Punch, 0, len(punches)),
		index:   make(map[string]int, len(punches)),
	}
	for _, p := range punches {
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		c.index[p.ID] = len(c.punches)
		c.punches = append(c.punches, p)
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(
		Punch{ID: "jab", Name: "Jab", Videos: []string{"vid-jab-basics", "vid-jab-drill"}},
		Punch{ID: "cross", Name: "Cross", Videos: []string{"vid-cross-basics"}},
		Punch{ID: "hook", Name: "Hook", Videos: []string{"vid-hook-basics", "vid-hook-defense"}},
		Punch{ID: "uppercut", Name: "Uppercut", Videos: []string{"vid-uppercut-power"}},
	)
}

func (c *Catalog) Punches() []Punch {
	out := make([]Punch, len(c.punches))
	copy(out, c.punches)
	return out
}

// PunchForLevel returns the punch unlocked on reaching level (1-based).
func (c *Catalog) PunchForLevel(level int) (Punch, bool) {
	if level < 1 || level > len(c.punches) {
		return Punch{}, false
	}
	return c.punches[level-1], true
}

func (c *Catalog) Has(punchID string) bool {
	_, ok := c.index[punchID]
	return ok
}

func (c *Catalog) Videos(punchID string) []string {
	i, ok := c.index[punchID]
	if !ok {
		return nil
	}
	return c.punches[i].Videos
}

package entity

// Stat is one named character statistic
type Stat struct {
	Name  string
	Value int
}

// Character is a selectable hero
type Character struct {
	Name          string
	Title         string
	Tagline       string
	Bio           string
	Stats         []Stat
	PortraitIndex int
}

// Instinct is one of the four faction categories gating character choice
type Instinct struct {
	Name  string
	Motto string
	Lore  string
}

// Roster holds the instincts in display order and their characters
type Roster struct {
	Instincts  []Instinct
	Characters map[string][]Character
}

// InstinctNames returns the instinct names in display order
func (r *Roster) InstinctNames() []string {
	names := make([]string, len(r.Instincts))
	for i, inst := range r.Instincts {
		names[i] = inst.Name
	}
	return names
}

// CharactersOf returns the characters available to an instinct
func (r *Roster) CharactersOf(instinct string) []Character {
	return r.Characters[instinct]
}

// InstinctIndex returns the position of an instinct, or -1
func (r *Roster) InstinctIndex(name string) int {
	for i, inst := range r.Instincts {
		if inst.Name == name {
			return i
		}
	}
	return -1
}

// StatMaxima returns the highest value of every stat across all characters
func (r *Roster) StatMaxima() map[string]int {
	maxima := make(map[string]int)
	for _, chars := range r.Characters {
		for _, c := range chars {
			for _, s := range c.Stats {
				if s.Value > maxima[s.Name] {
					maxima[s.Name] = s.Value
				}
			}
		}
	}
	return maxima
}

// Party maps each instinct to the character chosen for it
type Party map[string]string

// NewParty creates a party with an empty slot per instinct
func NewParty(instincts []string) Party {
	p := make(Party, len(instincts))
	for _, name := range instincts {
		p[name] = ""
	}
	return p
}

// Picked reports whether the instinct's slot has been filled
func (p Party) Picked(instinct string) bool {
	return p[instinct] != ""
}

// Filled returns the number of filled slots
func (p Party) Filled() int {
	n := 0
	for _, v := range p {
		if v != "" {
			n++
		}
	}
	return n
}

// Complete reports whether every slot has been filled
func (p Party) Complete() bool {
	return len(p) > 0 && p.Filled() == len(p)
}

// Clone returns an independent copy
func (p Party) Clone() Party {
	out := make(Party, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

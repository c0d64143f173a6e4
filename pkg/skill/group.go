package skill

// Group partitions skills into the four display buckets keeping their order.
// Skills with any other category are dropped.
func Group(skills []Skill) Groups {
	g := Groups{
		Programming: []Skill{},
		Frameworks:  []Skill{},
		Tools:       []Skill{},
		Soft:        []Skill{},
	}
	for _, s := range skills {
		switch s.Category {
		case CategoryProgramming:
			g.Programming = append(g.Programming, s)
		case CategoryFrameworks:
			g.Frameworks = append(g.Frameworks, s)
		case CategoryTools:
			g.Tools = append(g.Tools, s)
		case CategorySoft:
			g.Soft = append(g.Soft, s)
		}
	}
	return g
}

// ClampLevel bounds a level to [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}

package chord

// Levels of the extension ladder, lowest first.
var Levels = []int{7, 9, 11, 13}

// Ladder records which extensions are enabled. A level is only enabled when
// every level below it is.
type Ladder struct {
	levels [4]bool
}

func levelIndex(level int) (int, bool) {
	for i, l := range Levels {
		if l == level {
			return i, true
		}
	}
	return 0, false
}

// LadderUpTo returns a ladder with every level up to degree enabled.
func LadderUpTo(degree int) Ladder {
	var l Ladder
	degree = ResolveMaxDegree(degree)
	if degree > 5 {
		l = l.Set(degree, true)
	}
	return l
}

// Set enables a level together with all lower levels, or disables it together
// with all higher levels. Unknown levels leave the ladder unchanged.
func (l Ladder) Set(level int, on bool) Ladder {
	idx, ok := levelIndex(level)
	if !ok {
		return l
	}
	if on {
		for i := 0; i <= idx; i++ {
			l.levels[i] = true
		}
	} else {
		for i := idx; i < len(l.levels); i++ {
			l.levels[i] = false
		}
	}
	return l
}

// Toggle flips a level with the same cascading as Set.
func (l Ladder) Toggle(level int) Ladder {
	return l.Set(level, !l.Enabled(level))
}

func (l Ladder) Enabled(level int) bool {
	idx, ok := levelIndex(level)
	return ok && l.levels[idx]
}

// MaxDegree is the highest enabled level, or 5 when only triads are enabled.
func (l Ladder) MaxDegree() int {
	max := 5
	for i, on := range l.levels {
		if !on {
			break
		}
		max = Levels[i]
	}
	return max
}

// Gate limits a requested degree to what the ladder allows.
func (l Ladder) Gate(requested int) int {
	requested = ResolveMaxDegree(requested)
	if max := l.MaxDegree(); requested > max {
		return max
	}
	return requested
}

package langton

import "langton-ant/internal/core"

// HighwayPeriod is the length of the recurring move cycle of the highway the
// classic ant settles into; each cycle drifts it two cells diagonally.
const HighwayPeriod = 104

// HighwayResult summarises a DetectHighway run.
type HighwayResult struct {
	Onset int
	Found bool
	Steps int
	Black int
}

// DetectHighway steps e up to maxSteps times (none when negative) and reports the first step from
// which the ant kept a two-cell diagonal drift per period for confirm whole
// periods. Drift is measured on unwrapped coordinates, so a highway that
// crosses the torus edge is still recognised.
func DetectHighway(e *Engine, maxSteps, confirm int) HighwayResult {
	if confirm < 1 {
		confirm = 1
	}
	maxSteps = max(maxSteps, 0)
	need := confirm * HighwayPeriod

	type pos struct{ x, y int }
	trail := make([]pos, 0, min(maxSteps, 1<<16)+1)
	cur := pos{}
	trail = append(trail, cur)

	streak := 0
	res := HighwayResult{}
	for i := 1; i <= maxSteps; i++ {
		e.Step()
		dx, dy := e.ant.Dir.Delta()
		cur = pos{cur.x + dx, cur.y + dy}
		trail = append(trail, cur)
		res.Steps = i

		if i < HighwayPeriod {
			continue
		}
		prev := trail[i-HighwayPeriod]
		if absInt(cur.x-prev.x) == 2 && absInt(cur.y-prev.y) == 2 {
			streak++
		} else {
			streak = 0
		}
		if streak >= need {
			res.Found = true
			res.Onset = i - streak + 1 - HighwayPeriod
			break
		}
	}
	res.Black = e.grid.Count(core.Black)
	return res
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

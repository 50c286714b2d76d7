package focus

import (
	"context"
	"sort"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// NavigateGeometric finds the nearest pane in the given direction using geometry.
// Algorithm:
//  1. Get active pane rectangle
//  2. Filter candidates that are in the direction (dx < 0 for Left, etc.)
//  3. Prioritize panes with perpendicular overlap (same row for left/right, same column for up/down)
//  4. Score by: overlap_penalty + primary_distance * 1000 + perpendicular_distance
//  5. Return lowest scoring candidate
func NavigateGeometric(
	ctx context.Context,
	active entity.PaneID,
	rects []entity.PaneRect,
	direction entity.SplitDirection,
) (entity.PaneID, bool) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("direction", string(direction)).
		Str("active", string(active)).
		Int("candidates", len(rects)).
		Msg("geometric navigation")

	var activeRect *entity.PaneRect
	for i := range rects {
		if rects[i].PaneID == active {
			activeRect = &rects[i]
			break
		}
	}
	if activeRect == nil {
		log.Debug().Msg("active pane rect not found")
		return "", false
	}

	candidates := scoreNavigationCandidates(*activeRect, rects, direction)
	if len(candidates) == 0 {
		log.Debug().Msg("no candidates in direction")
		return "", false
	}

	// Stable so that equal scores keep layout order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	log.Debug().
		Str("target", string(candidates[0].paneID)).
		Int("score", candidates[0].score).
		Msg("geometric navigation found target")
	return candidates[0].paneID, true
}

type navCandidate struct {
	paneID entity.PaneID
	score  int
}

// scoreNavigationCandidates scores all panes in the given direction from activeRect.
// Panes with perpendicular overlap are heavily preferred.
func scoreNavigationCandidates(
	activeRect entity.PaneRect,
	paneRects []entity.PaneRect,
	direction entity.SplitDirection,
) []navCandidate {
	const noOverlapPenalty = 10_000_000

	acx, acy := activeRect.Center()
	var candidates []navCandidate

	for _, rect := range paneRects {
		if rect.PaneID == activeRect.PaneID {
			continue
		}

		cx, cy := rect.Center()
		inDirection, primaryDist, perpDist, hasOverlap := evalDirection(activeRect, rect, cx-acx, cy-acy, direction)
		if !inDirection {
			continue
		}
		score := primaryDist*1000 + perpDist
		if !hasOverlap {
			score += noOverlapPenalty
		}
		candidates = append(candidates, navCandidate{rect.PaneID, score})
	}

	return candidates
}

// evalDirection returns: inDirection, primaryDist, perpDist, hasOverlap
func evalDirection(
	activeRect, rect entity.PaneRect,
	dx, dy int,
	direction entity.SplitDirection,
) (inDirection bool, primaryDist, perpDist int, hasOverlap bool) {
	switch direction {
	case entity.SplitLeft:
		return dx < 0, abs(dx), abs(dy), activeRect.OverlapsVertically(rect)
	case entity.SplitRight:
		return dx > 0, abs(dx), abs(dy), activeRect.OverlapsVertically(rect)
	case entity.SplitUp:
		return dy < 0, abs(dy), abs(dx), activeRect.OverlapsHorizontally(rect)
	case entity.SplitDown:
		return dy > 0, abs(dy), abs(dx), activeRect.OverlapsHorizontally(rect)
	default:
		return false, 0, 0, false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package render

import (
	"container/heap"

	"github.com/nightclipse/dancoren"
)

// Compose left-multiplies every child's model matrix by its parent's world
// matrix, processing children in depth_of ascending order so a parent is
// always resolved before its children (spec.md §4.5 "Render data";
// Invariant 8). entries is mutated and returned in place. parentOf and
// depthOf are the Coordinator's global maps; a child whose parent has no
// entry in byID this frame (already died or was never live) has its entry
// dropped — an orphan reference is not an error (spec.md §7).
func Compose(entries []dancoren.RenderData, parentOf map[dancoren.ID]dancoren.ID, depthOf map[dancoren.ID]int16) []dancoren.RenderData {
	byID := make(map[dancoren.ID]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
	}

	pq := make(depthPQ, 0, len(entries))
	for _, e := range entries {
		if _, hasParent := parentOf[e.ID]; hasParent {
			heap.Push(&pq, &depthItem{id: e.ID, depth: depthOf[e.ID]})
		}
	}

	dropped := make(map[dancoren.ID]bool)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*depthItem)
		childIdx, ok := byID[item.id]
		if !ok || dropped[item.id] {
			continue
		}
		parentID := parentOf[item.id]
		parentIdx, ok := byID[parentID]
		if !ok || dropped[parentID] {
			dropped[item.id] = true
			continue
		}
		entries[childIdx].Model = entries[parentIdx].Model.Mul4(entries[childIdx].Model)
	}

	if len(dropped) == 0 {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if !dropped[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// depthItem pairs a projectile ID with its family depth for priority-queue
// ordering (spec.md §4.5 "priority queue of (child_id, parent_id) keyed by
// depth_of[child] ascending").
type depthItem struct {
	id    dancoren.ID
	depth int16
}

// depthPQ is a min-heap of *depthItem ordered by depth ascending, mirroring
// the teacher's nodePQ (dijkstra.go) shape.
type depthPQ []*depthItem

func (pq depthPQ) Len() int { return len(pq) }

func (pq depthPQ) Less(i, j int) bool { return pq[i].depth < pq[j].depth }

func (pq depthPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *depthPQ) Push(x interface{}) { *pq = append(*pq, x.(*depthItem)) }

func (pq *depthPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

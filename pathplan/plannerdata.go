package pathplan

import (
	"github.com/xDarkicex/pathplan/internal/tree"
	"github.com/xDarkicex/pathplan/space"
)

// Vertex tags in exported planner data.
const (
	TagStartTree = 1
	TagGoalTree  = 2
)

// DataVertex is one state of the search as seen by diagnostics.
type DataVertex struct {
	State space.State
	Tag   int
}

// DataEdge is a directed edge between two vertices, by vertex index.
type DataEdge struct {
	From, To int
}

// PlannerData is an exported snapshot of both trees: every motion as a
// vertex tagged by side, edges oriented start-to-goal, and, once solved, the
// single edge bridging the trees.
type PlannerData struct {
	Vertices []DataVertex
	Edges    []DataEdge
}

// Data exports the current search trees. Start-tree motions come first,
// goal-tree motions after, both in insertion order. Goal-side edges are
// reversed (child to parent) so every edge points away from the start.
func (p *Planner) Data() *PlannerData {
	d := &PlannerData{}

	for i := 0; i < p.tStart.Len(); i++ {
		m := p.tStart.Motion(i)
		d.Vertices = append(d.Vertices, DataVertex{State: m.State, Tag: TagStartTree})
		if m.Parent != tree.NoParent {
			d.Edges = append(d.Edges, DataEdge{From: m.Parent, To: i})
		}
	}

	offset := p.tStart.Len()
	for i := 0; i < p.tGoal.Len(); i++ {
		m := p.tGoal.Motion(i)
		d.Vertices = append(d.Vertices, DataVertex{State: m.State, Tag: TagGoalTree})
		if m.Parent != tree.NoParent {
			d.Edges = append(d.Edges, DataEdge{From: offset + i, To: offset + m.Parent})
		}
	}

	if p.conn != nil {
		d.Edges = append(d.Edges, DataEdge{From: p.conn.startID, To: offset + p.conn.goalID})
	}
	return d
}

package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pacgrid/grid"
	"github.com/katalvlaran/pacgrid/gridgraph"
	"github.com/katalvlaran/pacgrid/standard"
)

// PropertySuite checks the structural invariants of a ComputedGrid over
// the hand-drawn fixtures and every preset arena.
type PropertySuite struct {
	suite.Suite
	grids map[string]*gridgraph.ComputedGrid
}

func (s *PropertySuite) SetupSuite() {
	s.grids = make(map[string]*gridgraph.ComputedGrid)

	build := func(name string, g grid.Grid, opts ...gridgraph.Option) {
		cg, err := gridgraph.New(g, opts...)
		s.Require().NoError(err, name)
		s.grids[name] = cg
	}
	build("threeByThree", threeByThree())
	build("twoRegions", twoRegions())
	build("openField", openField(), gridgraph.WithoutValidation())
	for _, n := range standard.All() {
		cg, err := n.Compute()
		s.Require().NoError(err, n.String())
		s.grids[n.String()] = cg
	}
}

// TestDistanceIdentityAndSymmetry: dist(c,c)=0 and dist(a,b)=dist(b,a).
func (s *PropertySuite) TestDistanceIdentityAndSymmetry() {
	for name, cg := range s.grids {
		nodes := cg.WalkableNodes()
		for _, a := range nodes {
			d, ok := cg.Dist(a, a)
			s.True(ok, "%s: Dist(%v,%v)", name, a, a)
			s.Equal(0, d)
			for _, b := range nodes {
				d1, ok1 := cg.Dist(a, b)
				d2, ok2 := cg.Dist(b, a)
				if d1 != d2 || ok1 != ok2 {
					s.Failf("asymmetric", "%s: Dist(%v,%v)=%d,%v Dist(%v,%v)=%d,%v",
						name, a, b, d1, ok1, b, a, d2, ok2)
				}
			}
		}
	}
}

// TestDistanceBounds: dist ≥ Manhattan and dist == 1 iff neighbours.
func (s *PropertySuite) TestDistanceBounds() {
	for name, cg := range s.grids {
		nodes := cg.WalkableNodes()
		for _, a := range nodes {
			adjacent := make(map[grid.Point]bool)
			for _, q := range cg.Neighbors(a) {
				adjacent[q] = true
			}
			for _, b := range nodes {
				d, ok := cg.Dist(a, b)
				if !ok {
					continue
				}
				if d < abs(a.X-b.X)+abs(a.Y-b.Y) {
					s.Failf("below manhattan", "%s: Dist(%v,%v)=%d", name, a, b, d)
				}
				if (d == 1) != adjacent[b] {
					s.Failf("unit distance", "%s: Dist(%v,%v)=%d adjacent=%v", name, a, b, d, adjacent[b])
				}
			}
		}
	}
}

// TestTriangleInequality samples every 7th node as the intermediate point
// and every 3rd as the origin.
func (s *PropertySuite) TestTriangleInequality() {
	for name, cg := range s.grids {
		nodes := cg.WalkableNodes()
		for k := 0; k < len(nodes); k += 7 {
			c := nodes[k]
			for i := 0; i < len(nodes); i += 3 {
				a := nodes[i]
				ac, ok := cg.Dist(a, c)
				if !ok {
					continue
				}
				for _, b := range nodes {
					cb, ok := cg.Dist(c, b)
					if !ok {
						continue
					}
					ab, ok := cg.Dist(a, b)
					if !ok || ab > ac+cb {
						s.Failf("triangle", "%s: Dist(%v,%v)=%d > %d+%d via %v", name, a, b, ab, ac, cb, c)
					}
				}
			}
		}
	}
}

// TestNeighbors: walkable, in bounds, one step away, at most four.
func (s *PropertySuite) TestNeighbors() {
	for name, cg := range s.grids {
		for _, p := range allPoints() {
			nbrs := cg.Neighbors(p)
			s.LessOrEqual(len(nbrs), 4, "%s: %v", name, p)
			v, _ := cg.At(p)
			if !v.Walkable() {
				s.Empty(nbrs, "%s: non-walkable %v has neighbours", name, p)
				continue
			}
			for _, q := range nbrs {
				s.True(grid.InBounds(q))
				qv, _ := cg.At(q)
				s.True(qv.Walkable(), "%s: neighbour %v of %v", name, q, p)
				s.Equal(1, abs(p.X-q.X)+abs(p.Y-q.Y))
			}
		}
	}
}

// TestValidActions: the mask mirrors walkability and the neighbour list.
func (s *PropertySuite) TestValidActions() {
	for name, cg := range s.grids {
		for _, p := range allPoints() {
			va, ok := cg.ValidActions(p)
			s.Require().True(ok)
			v, _ := cg.At(p)
			s.Equal(v.Walkable(), va.Walkable, "%s: %v", name, p)

			if !va.Walkable {
				s.Equal(gridgraph.ValidActions{}, va, "%s: %v", name, p)
				continue
			}
			want := []grid.Point{}
			for _, d := range grid.Directions {
				if va.Can(d) {
					want = append(want, p.Step(d))
				}
			}
			s.Equal(want, cg.Neighbors(p), "%s: %v", name, p)
		}
	}
}

// TestNodeIndexRoundTrip: Node(NodeID(p)) == p, ids are dense.
func (s *PropertySuite) TestNodeIndexRoundTrip() {
	for name, cg := range s.grids {
		nodes := cg.WalkableNodes()
		s.Equal(cg.NodeCount(), len(nodes), name)
		for id, p := range nodes {
			got, ok := cg.NodeID(p)
			s.True(ok)
			s.Equal(id, got, "%s: %v", name, p)
			back, ok := cg.Node(id)
			s.True(ok)
			s.Equal(p, back)
		}
	}
}

// TestPelletInventory recounts pellets and power pellets from the grid.
func (s *PropertySuite) TestPelletInventory() {
	for name, cg := range s.grids {
		g := cg.Grid()
		s.Equal(g.Count(grid.Value.IsPellet), cg.PelletCount(), name)
		power := []grid.Point{}
		for _, p := range allPoints() {
			if v, _ := g.At(p); v == grid.PowerPellet {
				power = append(power, p)
			}
		}
		s.Equal(power, cg.PowerPellets(), name)
	}
}

// TestPathsAreShortest: every Path has Dist+1 points, each step legal.
func (s *PropertySuite) TestPathsAreShortest() {
	for name, cg := range s.grids {
		nodes := cg.WalkableNodes()
		for i := 0; i < len(nodes); i += 11 {
			a := nodes[i]
			for j := len(nodes) - 1; j >= 0; j -= 13 {
				b := nodes[j]
				d, ok := cg.Dist(a, b)
				path, pok := cg.Path(a, b)
				s.Equal(ok, pok, "%s: %v→%v", name, a, b)
				if !ok {
					continue
				}
				s.Len(path, d+1)
				for k := 1; k < len(path); k++ {
					s.Equal(1, abs(path[k].X-path[k-1].X)+abs(path[k].Y-path[k-1].Y))
				}
			}
		}
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

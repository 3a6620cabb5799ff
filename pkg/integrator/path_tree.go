package integrator

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// noParent marks the root of the tree
const noParent = -1

// PathNode is an interaction placed in the path tree
type PathNode struct {
	core.Interaction
	Leaf     bool      // Resolved; its color and radiance are final
	Radiance float64   // Scalar light estimate carried to the parent
	Color    core.Vec3 // Color carried to the parent

	parent   int
	children []int
	expanded bool
}

// IsRoot reports whether the node is the root of its tree
func (n *PathNode) IsRoot() bool {
	return n.parent == noParent
}

// ChildCount returns the number of children still attached
func (n *PathNode) ChildCount() int {
	return len(n.children)
}

// Trace is the outcome of tracing one primary ray
type Trace struct {
	Root  PathNode
	Stats TraceStats
}

// PathTree traces primary rays by growing a tree of interactions and folding
// it back into the root. Nodes live in an arena that is reused between
// traces, so a PathTree must not be shared between goroutines.
type PathTree struct {
	world    World
	lighting *DirectLighting
	config   Config

	nodes []PathNode
	free  []int
	live  int
}

// NewPathTree creates a tracer for a world
func NewPathTree(world World, config Config) *PathTree {
	return &PathTree{
		world:    world,
		lighting: NewDirectLighting(world, config),
		config:   config,
	}
}

// Live returns the number of arena nodes currently in use
func (p *PathTree) Live() int {
	return p.live
}

// TraceRay walks the path tree of a primary interaction without recursion.
// A node below the importance threshold becomes a leaf lit only by direct
// lighting. Any other node is expanded into the children its material
// scatters, and once every child is a leaf the children are folded into it
// and released. A ray leaving the scene abandons the whole walk and the root
// keeps a black color.
func (p *PathTree) TraceRay(primary core.Interaction, sampler core.Sampler) Trace {
	stats := TraceStats{Traces: 1}
	root := p.alloc(PathNode{Interaction: primary, parent: noParent}, &stats)
	current := root

	for {
		node := &p.nodes[current]

		switch {
		case node.Importance < p.config.ImportanceThreshold:
			if p.world.NearestHit(&node.Interaction) == nil {
				return p.abort(root, current, stats)
			}
			local := p.lighting.estimate(&node.Interaction, sampler, &stats)
			node.Leaf = true
			node.Color = local
			node.Radiance = local.Length()
			stats.Leaves++
			if node.IsRoot() {
				return p.finish(root, stats)
			}
			current = node.parent

		case !node.expanded:
			if p.world.NearestHit(&node.Interaction) == nil {
				return p.abort(root, current, stats)
			}
			node.expanded = true
			for _, child := range node.Target.Material().Scatter(&node.Interaction, sampler) {
				idx := p.alloc(PathNode{Interaction: child, parent: current}, &stats)
				// alloc may grow the arena
				p.nodes[current].children = append(p.nodes[current].children, idx)
			}

		default:
			if next, ok := p.pendingChild(node); ok {
				current = next
				continue
			}
			p.fold(current, sampler, &stats)
			if node.IsRoot() {
				return p.finish(root, stats)
			}
			current = node.parent
		}
	}
}

// pendingChild returns the first child that is not yet a leaf
func (p *PathTree) pendingChild(node *PathNode) (int, bool) {
	for _, child := range node.children {
		if !p.nodes[child].Leaf {
			return child, true
		}
	}
	return 0, false
}

// fold combines the node's direct lighting with its leaf children and
// releases them
func (p *PathTree) fold(idx int, sampler core.Sampler, stats *TraceStats) {
	node := &p.nodes[idx]
	local := p.lighting.estimate(&node.Interaction, sampler, stats)

	radiance := local.Length()
	for _, c := range node.children {
		child := &p.nodes[c]
		if node.Importance > 0 {
			radiance += child.Radiance * child.Importance / node.Importance
		}
	}

	color := local.Multiply(radiance)
	for _, c := range node.children {
		color = color.Add(p.nodes[c].Color.Multiply(p.config.ColorContribution))
		p.release(c)
	}

	node.children = node.children[:0]
	node.Radiance = radiance
	node.Color = color
	node.Leaf = true
	stats.Leaves++
}

// abort abandons the walk after the ray at idx escaped
func (p *PathTree) abort(root, idx int, stats TraceStats) Trace {
	if idx == root {
		stats.Escaped++
	} else {
		stats.Aborted++
	}
	trace := Trace{Root: p.nodes[root], Stats: stats}
	trace.Root.Color = core.Black
	trace.Root.Radiance = 0
	trace.Root.children = nil
	p.reset()
	return trace
}

// finish detaches the root from the arena
func (p *PathTree) finish(root int, stats TraceStats) Trace {
	trace := Trace{Root: p.nodes[root], Stats: stats}
	trace.Root.children = nil
	p.release(root)
	return trace
}

func (p *PathTree) alloc(node PathNode, stats *TraceStats) int {
	stats.Nodes++
	p.live++
	if p.live > stats.PeakLive {
		stats.PeakLive = p.live
	}

	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		node.children = p.nodes[idx].children[:0]
		p.nodes[idx] = node
		return idx
	}

	p.nodes = append(p.nodes, node)
	return len(p.nodes) - 1
}

func (p *PathTree) release(idx int) {
	p.live--
	p.free = append(p.free, idx)
}

// reset releases every node in the arena
func (p *PathTree) reset() {
	p.free = p.free[:0]
	for i := len(p.nodes) - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	p.live = 0
}

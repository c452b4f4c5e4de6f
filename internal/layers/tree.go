package layers

import (
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/geometry"
)

// treeNode places one sephira: its level selects one of seven vertical rows
// (0 apex .. 6 base) and pillar selects the column (-1 left, 0 middle, +1
// right). The chosen layout is the defaulted historical variant: pillar
// offset width*THREE/TWENTYTWO, vertical margin height/ELEVEN.
type treeNode struct {
	label  string
	level  int
	pillar float64
}

// treePath joins two sephirot by label.
type treePath struct {
	from string
	to   string
}

const treeLevels = 7

// The ten sephirot in canonical order, apex first.
var treeNodes = [10]treeNode{
	{label: "keter", level: 0, pillar: 0},
	{label: "chokmah", level: 1, pillar: 1},
	{label: "binah", level: 1, pillar: -1},
	{label: "chesed", level: 2, pillar: 1},
	{label: "gevurah", level: 2, pillar: -1},
	{label: "tiferet", level: 3, pillar: 0},
	{label: "netzach", level: 4, pillar: 1},
	{label: "hod", level: 4, pillar: -1},
	{label: "yesod", level: 5, pillar: 0},
	{label: "malkuth", level: 6, pillar: 0},
}

// The twenty-two connecting paths in fixed draw order.
var treePaths = [22]treePath{
	{"keter", "chokmah"},
	{"keter", "binah"},
	{"keter", "tiferet"},
	{"chokmah", "binah"},
	{"chokmah", "tiferet"},
	{"chokmah", "chesed"},
	{"binah", "tiferet"},
	{"binah", "gevurah"},
	{"chesed", "gevurah"},
	{"chesed", "tiferet"},
	{"chesed", "netzach"},
	{"gevurah", "tiferet"},
	{"gevurah", "hod"},
	{"tiferet", "netzach"},
	{"tiferet", "hod"},
	{"tiferet", "yesod"},
	{"netzach", "hod"},
	{"netzach", "yesod"},
	{"netzach", "malkuth"},
	{"hod", "yesod"},
	{"hod", "malkuth"},
	{"yesod", "malkuth"},
}

// Tree lays out the fixed ten-node, twenty-two-path scaffold. Paths come
// first (22 two-point polylines in table order), then the ten node circles.
// Pairs referencing an unknown label are skipped; with the fixed tables this
// is a consistency guard, not a runtime condition.
func Tree(cfg config.Config) ([]geometry.Polyline, []geometry.Circle) {
	positions := treePositions(cfg)
	graph := TreeTopology()

	paths := make([]geometry.Polyline, 0, len(treePaths))
	for _, path := range treePaths {
		if !graph.HasVertex(path.from) || !graph.HasVertex(path.to) {
			continue
		}
		from, okFrom := positions[path.from]
		to, okTo := positions[path.to]
		if !okFrom || !okTo {
			continue
		}
		paths = append(paths, geometry.Segment(from, to))
	}

	radius := TreeNodeRadius(cfg)
	nodes := make([]geometry.Circle, 0, len(treeNodes))
	for _, node := range treeNodes {
		pos := positions[node.label]
		nodes = append(nodes, geometry.Circle{CenterX: pos.X, CenterY: pos.Y, Radius: radius})
	}
	return paths, nodes
}

// TreeTopology builds the scaffold as an undirected graph: ten vertices,
// twenty-two edges. Callers use it to validate the fixed tables.
func TreeTopology() *core.Graph {
	graph, _ := core.NewGraph()
	for _, node := range treeNodes {
		_ = graph.AddVertex(node.label)
	}
	for _, path := range treePaths {
		_, _ = graph.AddEdge(path.from, path.to, 0)
	}
	return graph
}

// TreeNodeRadius scales the node circles with the canvas, clamped so nodes
// stay legible on small canvases.
func TreeNodeRadius(cfg config.Config) float64 {
	return math.Max(math.Min(cfg.Width, cfg.Height)/cfg.Numerology.ThirtyThree, 4)
}

// TreePathWidth scales the path stroke with the canvas, clamped to a
// legible minimum.
func TreePathWidth(cfg config.Config) float64 {
	return math.Max(math.Min(cfg.Width, cfg.Height)/cfg.Numerology.OneFortyFour, 1.5)
}

func treePositions(cfg config.Config) map[string]geometry.Point {
	num := cfg.Numerology
	marginY := cfg.Height / num.Eleven
	stepY := (cfg.Height - 2*marginY) / float64(treeLevels-1)
	pillarOffset := cfg.Width * num.Three / num.TwentyTwo

	positions := make(map[string]geometry.Point, len(treeNodes))
	for _, node := range treeNodes {
		positions[node.label] = geometry.Point{
			X: cfg.Width/2 + node.pillar*pillarOffset,
			Y: marginY + float64(node.level)*stepY,
		}
	}
	return positions
}

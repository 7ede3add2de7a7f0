// Package grid provides a maze search problem on a 4-connected grid.
//
// Layouts use the Pacman text format: '%' is a wall, 'P' the start and '.' a
// goal. Every move costs one unless a cost function is supplied.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/pdrpinto/search"
)

// Point is a cell position. Y grows downwards, row by row of the layout.
type Point struct {
	X, Y int
}

// Direction is a move on the grid.
type Direction string

// Moves, in the order Successors offers them.
const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

var directions = []struct {
	dir    Direction
	dx, dy int
}{
	{North, 0, -1},
	{South, 0, 1},
	{East, 1, 0},
	{West, -1, 0},
}

// Move returns the point one step from p in direction d.
func (p Point) Move(d Direction) (Point, bool) {
	for _, candidate := range directions {
		if candidate.dir == d {
			return Point{p.X + candidate.dx, p.Y + candidate.dy}, true
		}
	}
	return p, false
}

// Layout errors.
var (
	ErrNoStart       = errors.New("grid: layout has no start")
	ErrMultipleStart = errors.New("grid: layout has more than one start")
	ErrNoGoal        = errors.New("grid: layout has no goal")
)

// Maze implements search.Problem[Point, Direction].
type Maze struct {
	Width, Height int
	Walls         map[Point]bool
	Start         Point
	Goals         map[Point]bool

	// CostFn returns the cost of entering a cell. Nil means unit cost.
	CostFn func(Point) float64
}

// Parse reads a layout from r.
func Parse(r io.Reader) (*Maze, error) {
	m := &Maze{Walls: make(map[Point]bool), Goals: make(map[Point]bool)}
	starts := 0

	scanner := bufio.NewScanner(r)
	y := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		for x, c := range line {
			p := Point{x, y}
			switch c {
			case '%':
				m.Walls[p] = true
			case 'P':
				m.Start = p
				starts++
			case '.':
				m.Goals[p] = true
			}
		}
		m.Width = max(m.Width, len(line))
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	m.Height = y

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStart, starts)
	case len(m.Goals) == 0:
		return nil, ErrNoGoal
	}
	return m, nil
}

// ParseString parses a layout held in a string.
func ParseString(layout string) (*Maze, error) {
	return Parse(strings.NewReader(layout))
}

// Load reads a layout file.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Open reports whether p is inside the maze and not a wall.
func (m *Maze) Open(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height && !m.Walls[p]
}

// StartState implements search.Problem.
func (m *Maze) StartState() Point { return m.Start }

// IsGoal implements search.Problem.
func (m *Maze) IsGoal(p Point) bool { return m.Goals[p] }

// Successors implements search.Problem.
func (m *Maze) Successors(p Point) []search.Successor[Point, Direction] {
	successors := make([]search.Successor[Point, Direction], 0, len(directions))
	for _, d := range directions {
		next := Point{p.X + d.dx, p.Y + d.dy}
		if !m.Open(next) {
			continue
		}
		successors = append(successors, search.Successor[Point, Direction]{
			State:  next,
			Action: d.dir,
			Cost:   m.cost(next),
		})
	}
	return successors
}

// CostOfActions implements search.Problem.
func (m *Maze) CostOfActions(actions []Direction) (float64, error) {
	p, total := m.Start, 0.0
	for i, action := range actions {
		next, ok := p.Move(action)
		if !ok || !m.Open(next) {
			return 0, fmt.Errorf("move %d %s from %v: %w", i, action, p, search.ErrIllegalAction)
		}
		total += m.cost(next)
		p = next
	}
	return total, nil
}

func (m *Maze) cost(p Point) float64 {
	if m.CostFn == nil {
		return 1
	}
	return m.CostFn(p)
}

// ManhattanHeuristic estimates the distance to the nearest goal. It is
// admissible for unit cost moves.
func ManhattanHeuristic(p Point, problem search.Problem[Point, Direction]) float64 {
	m, ok := problem.(*Maze)
	if !ok {
		return 0
	}
	best := math.Inf(1)
	for goal := range m.Goals {
		best = math.Min(best, float64(abs(p.X-goal.X)+abs(p.Y-goal.Y)))
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// EuclideanHeuristic estimates the straight line distance to the nearest goal.
func EuclideanHeuristic(p Point, problem search.Problem[Point, Direction]) float64 {
	m, ok := problem.(*Maze)
	if !ok {
		return 0
	}
	best := math.Inf(1)
	for goal := range m.Goals {
		best = math.Min(best, math.Hypot(float64(p.X-goal.X), float64(p.Y-goal.Y)))
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// String renders the maze in layout format.
func (m *Maze) String() string {
	return m.Render(nil)
}

// Render draws the maze with path cells marked by 'o'.
func (m *Maze) Render(path []Point) string {
	onPath := make(map[Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{x, y}
			switch {
			case m.Walls[p]:
				b.WriteByte('%')
			case p == m.Start:
				b.WriteByte('P')
			case m.Goals[p]:
				b.WriteByte('.')
			case onPath[p]:
				b.WriteByte('o')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Random builds a maze with clustered walls made by random walks. start and
// goal are never walls.
func Random(rng *rand.Rand, width, height, clusters, steps int, density float64, start, goal Point) *Maze {
	walls := map[Point]bool{}
	for c := 0; c < clusters; c++ {
		p := Point{rng.Intn(width), rng.Intn(height)}
		for s := 0; s < steps; s++ {
			if rng.Float64() < density && p != start && p != goal {
				walls[p] = true
			}
			d := directions[rng.Intn(len(directions))]
			next := Point{p.X + d.dx, p.Y + d.dy}
			if next.X >= 0 && next.X < width && next.Y >= 0 && next.Y < height {
				p = next
			}
		}
	}
	return &Maze{
		Width:  width,
		Height: height,
		Walls:  walls,
		Start:  start,
		Goals:  map[Point]bool{goal: true},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ search.Problem[Point, Direction] = (*Maze)(nil)

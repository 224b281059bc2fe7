package gridtext

import (
	"fmt"
	"strings"

	"github.com/dshills/smartbelt/pkg/entity"
	"github.com/dshills/smartbelt/pkg/geometry"
	"github.com/dshills/smartbelt/pkg/grid"
)

var directionChars = map[rune]geometry.Direction{
	'<': geometry.West,
	'>': geometry.East,
	'^': geometry.North,
	'v': geometry.South,
}

func dirChar(d geometry.Direction) rune {
	switch d {
	case geometry.East:
		return '>'
	case geometry.West:
		return '<'
	case geometry.North:
		return '^'
	default:
		return 'v'
	}
}

// parseWord parses a single token into the entity it names, or ok=false
// if the token names no entity at all ("_" or "").
func parseWord(word string) (entity.Entity, bool, error) {
	switch word {
	case "", "_":
		return nil, false, nil
	case "X":
		return entity.CollidingEntityOrTile{}, true, nil
	case "#":
		return entity.ImpassableTile{}, true, nil
	}

	runes := []rune(word)
	i := 0

	tierNum := 1
	if runes[i] >= '1' && runes[i] <= '9' {
		tierNum = int(runes[i] - '0')
		i++
	}
	tier := entity.TierByIndex(tierNum - 1)
	if tier == nil {
		return nil, false, fmt.Errorf("gridtext: invalid tier %d in %q", tierNum, word)
	}

	if i >= len(runes) {
		return nil, false, fmt.Errorf("gridtext: missing direction in %q", word)
	}
	direction, ok := directionChars[runes[i]]
	if !ok {
		return nil, false, fmt.Errorf("gridtext: invalid direction %q in %q", runes[i], word)
	}
	i++

	var kind byte
	if i < len(runes) {
		kind = byte(runes[i])
		i++
	}
	if i != len(runes) {
		return nil, false, fmt.Errorf("gridtext: trailing characters in %q", word)
	}

	switch kind {
	case 0, 'b':
		return entity.Belt{Direction: direction, Tier: tier}, true, nil
	case 'i':
		return entity.UndergroundBelt{Direction: direction, Tier: tier, IsInput: true}, true, nil
	case 'o':
		return entity.UndergroundBelt{Direction: direction, Tier: tier, IsInput: false}, true, nil
	case 's':
		return entity.Splitter{Direction: direction, Tier: tier}, true, nil
	case 'I':
		return entity.LoaderLike{Direction: direction, Tier: tier, IsInput: true}, true, nil
	case 'O':
		return entity.LoaderLike{Direction: direction, Tier: tier, IsInput: false}, true, nil
	default:
		return nil, false, fmt.Errorf("gridtext: invalid entity type %q in %q", kind, word)
	}
}

// Parse reads a grid from text: one line per row, whitespace-separated
// tokens per column. It returns the populated grid and the positions of
// every leading-'*' marker, in the order encountered.
func Parse(input string) (*grid.TileGrid, []geometry.TilePosition, error) {
	g := grid.New()
	var markers []geometry.TilePosition

	for y, line := range strings.Split(input, "\n") {
		for x, word := range strings.Fields(line) {
			pos := geometry.TilePosition{X: x, Y: y}
			for strings.HasPrefix(word, "*") {
				markers = append(markers, pos)
				word = word[1:]
			}

			e, ok, err := parseWord(word)
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				continue
			}
			if err := g.Build(pos, e); err != nil {
				return nil, nil, err
			}
		}
	}
	return g, markers, nil
}

// formatEntity renders a single entity back to its token form.
func formatEntity(e entity.Entity) string {
	tierNum := func(t entity.BeltTier) int { return entity.TierIndex(t) + 1 }
	tierPrefix := func(n int) string {
		if n == 1 {
			return ""
		}
		return fmt.Sprintf("%d", n)
	}

	switch v := e.(type) {
	case entity.Belt:
		return fmt.Sprintf("%s%c", tierPrefix(tierNum(v.Tier)), dirChar(v.Direction))
	case entity.UndergroundBelt:
		kind := byte('o')
		if v.IsInput {
			kind = 'i'
		}
		return fmt.Sprintf("%s%c%c", tierPrefix(tierNum(v.Tier)), dirChar(v.Direction), kind)
	case entity.Splitter:
		return fmt.Sprintf("%s%cs", tierPrefix(tierNum(v.Tier)), dirChar(v.Direction))
	case entity.LoaderLike:
		kind := byte('O')
		if v.IsInput {
			kind = 'I'
		}
		return fmt.Sprintf("%s%c%c", tierPrefix(tierNum(v.Tier)), dirChar(v.Direction), kind)
	case entity.CollidingEntityOrTile:
		return "X"
	case entity.ImpassableTile:
		return "#"
	default:
		return "?"
	}
}

// Format renders g back to text, columns padded to line up, with any
// position in markers prefixed with '*'. The rendered bounds are the
// smallest box containing every occupied tile and every marker.
func Format(g *grid.TileGrid, markers []geometry.TilePosition) string {
	min, max, ok := g.Bounds()
	for _, m := range markers {
		if !ok {
			min, max, ok = m, m, true
			continue
		}
		if m.X < min.X {
			min.X = m.X
		}
		if m.Y < min.Y {
			min.Y = m.Y
		}
		if m.X > max.X {
			max.X = m.X
		}
		if m.Y > max.Y {
			max.Y = m.Y
		}
	}
	if !ok {
		return "<Empty>"
	}

	isMarker := make(map[geometry.TilePosition]bool, len(markers))
	for _, m := range markers {
		isMarker[m] = true
	}

	var b strings.Builder
	for y := min.Y; y <= max.Y; y++ {
		if y > min.Y {
			b.WriteByte('\n')
		}
		var line strings.Builder
		for x := min.X; x <= max.X; x++ {
			if x > min.X {
				line.WriteByte(' ')
			}
			pos := geometry.TilePosition{X: x, Y: y}
			token := "_"
			if e, ok := g.Get(pos); ok {
				// A splitter's tail tile carries the same entity value as
				// its head for lookup purposes; only the head gets a
				// token, so the tail doesn't print as a duplicate symbol.
				if head, partOfSplitter := g.SplitterHead(pos); !partOfSplitter || head == pos {
					token = formatEntity(e)
				}
			}
			if isMarker[pos] {
				token = "*" + token
			}
			fmt.Fprintf(&line, "%-4s", token)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
	}
	return b.String()
}

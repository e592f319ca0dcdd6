// Package piece defines the move policy of each supported piece kind on an
// otherwise empty board.
package piece

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/VrushabBayas/chessboard/internal/board"
	chesserrors "github.com/VrushabBayas/chessboard/internal/errors"
	"github.com/VrushabBayas/chessboard/internal/movegen"
)

// Kind is a supported piece type.
type Kind int

const (
	Pawn Kind = iota
	King
	Queen
	Bishop
	NumKinds
)

var kindNames = []string{"Pawn", "King", "Queen", "Bishop"}

// String returns the capitalised name of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a kind, '?' if unknown.
func (k Kind) Letter() byte {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k][0]
	}
	return '?'
}

// byName maps lower-case piece names to kinds.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, NumKinds)
	for _, k := range Kinds() {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// ParseKind looks up a piece name case-insensitively.
func ParseKind(name string) (Kind, error) {
	k, ok := byName[strings.ToLower(name)]
	if !ok {
		return 0, chesserrors.Wrapf(chesserrors.ErrInvalidPiece, "%q", name)
	}
	return k, nil
}

// Names returns the lower-case names of every supported kind, sorted.
func Names() []string {
	names := maps.Keys(byName)
	slices.Sort(names)
	return names
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// scan is one generator call. When sorted is set its output is ordered by
// label before being appended to the move list.
type scan struct {
	dirs   []board.Direction
	sorted bool
}

// rule is the move policy of one kind.
type rule struct {
	maxSteps int
	scans    []scan
}

func single(d board.Direction, sorted bool) scan {
	return scan{dirs: []board.Direction{d}, sorted: sorted}
}

// rules is indexed by Kind. The scan order is the output order.
var rules = [NumKinds]rule{
	Pawn: {
		maxSteps: 1,
		scans:    []scan{single(board.Up, false)},
	},
	King: {
		maxSteps: 1,
		scans: []scan{{dirs: []board.Direction{
			board.DownLeft, board.Left, board.UpLeft,
			board.Down, board.Up,
			board.DownRight, board.Right, board.UpRight,
		}}},
	},
	// Sub-lists of the directions with a negative component are sorted.
	Queen: {
		maxSteps: board.BoardSize - 1,
		scans: []scan{
			single(board.Left, true),
			single(board.Right, false),
			single(board.Down, true),
			single(board.Up, false),
			single(board.UpLeft, true),
			single(board.DownRight, false),
			single(board.DownLeft, true),
			single(board.UpRight, false),
		},
	},
	Bishop: {
		maxSteps: board.BoardSize - 1,
		scans: []scan{
			single(board.UpLeft, false),
			single(board.DownRight, false),
			single(board.DownLeft, false),
			single(board.UpRight, false),
		},
	},
}

// Policy computes the destinations of one piece on one square.
type Policy interface {
	Kind() Kind
	Square() board.Square
	Moves() []string
}

type policy struct {
	kind   Kind
	square board.Square
}

// New returns the policy for kind placed on sq.
func New(kind Kind, sq board.Square) Policy {
	return policy{kind: kind, square: sq}
}

func (p policy) Kind() Kind           { return p.kind }
func (p policy) Square() board.Square { return p.square }

// Moves returns the destination labels in the kind's documented order.
// An empty result means the piece cannot move.
func (p policy) Moves() []string {
	if p.kind < 0 || p.kind >= NumKinds {
		return nil
	}
	r := rules[p.kind]

	var moves []string
	for _, s := range r.scans {
		sub := movegen.Generate(p.square, s.dirs, r.maxSteps)
		if s.sorted {
			slices.Sort(sub)
		}
		moves = append(moves, sub...)
	}
	return moves
}

package match

import (
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/zelezo001/linear"
)

const (
	DefaultOpening = "({["
	DefaultClosing = ")}]"
)

var defaultMatcher = MustMatcher(DefaultOpening, DefaultClosing)

// Matcher checks nesting of delimiters. Opening delimiter on position i is closed by closing delimiter on position i.
type Matcher struct {
	opening []rune
	closing []rune
	openers mapset.Set[rune]
	closers mapset.Set[rune]
}

func NewMatcher(opening, closing string) (*Matcher, error) {
	m := &Matcher{
		opening: []rune(opening),
		closing: []rune(closing),
	}
	if len(m.opening) == 0 {
		return nil, errors.New("at least one delimiter pair is required")
	}
	if len(m.opening) != len(m.closing) {
		return nil, fmt.Errorf("%d opening delimiters %q do not pair with %d closing delimiters %q",
			len(m.opening), opening, len(m.closing), closing)
	}
	m.openers = mapset.NewThreadUnsafeSet(m.opening...)
	m.closers = mapset.NewThreadUnsafeSet(m.closing...)
	if m.openers.Cardinality() != len(m.opening) || m.closers.Cardinality() != len(m.closing) {
		return nil, fmt.Errorf("delimiters %q and %q contain duplicates", opening, closing)
	}
	if !m.openers.Intersect(m.closers).IsEmpty() {
		return nil, fmt.Errorf("delimiter can not be both opening and closing: %q, %q", opening, closing)
	}
	return m, nil
}

func MustMatcher(opening, closing string) *Matcher {
	m, err := NewMatcher(opening, closing)
	if err != nil {
		panic(err)
	}
	return m
}

// Matched reports whether every closing delimiter in expr closes the most recent unclosed opening one and nothing
// stays open. Other characters are ignored.
func (m *Matcher) Matched(expr string) bool {
	stack := linear.NewStack[rune](0)
	for _, c := range expr {
		switch {
		case m.openers.Contains(c):
			stack.Push(c)
		case m.closers.Contains(c):
			opener, err := stack.Pop()
			if err != nil {
				return false
			}
			if m.pair(opener) != c {
				return false
			}
		}
	}
	return stack.Empty()
}

func (m *Matcher) pair(opener rune) rune {
	return m.closing[slices.Index(m.opening, opener)]
}

// Delimiters reports whether expr has balanced (), {} and [].
func Delimiters(expr string) bool {
	return defaultMatcher.Matched(expr)
}

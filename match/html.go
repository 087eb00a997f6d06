package match

import (
	"strings"

	"github.com/zelezo001/linear"
)

// HTML reports whether every <tag> in raw is closed by </tag> in nested order. Text between tags is ignored and
// attributes are not parsed, so <br/> opens a tag which can never be closed.
func HTML(raw string) bool {
	stack := linear.NewStack[string](0)
	position := 0
	for {
		start := strings.IndexByte(raw[position:], '<')
		if start == -1 {
			return stack.Empty()
		}
		start += position
		end := strings.IndexByte(raw[start+1:], '>')
		if end == -1 {
			return false
		}
		end += start + 1
		tag := raw[start+1 : end]
		if name, closing := strings.CutPrefix(tag, "/"); closing {
			opened, err := stack.Pop()
			if err != nil || opened != name {
				return false
			}
		} else {
			stack.Push(tag)
		}
		position = end + 1
	}
}

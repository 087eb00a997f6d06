package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "document",
			input: "<body><center><h1></h1></center><p></p><ol><li></li><li></li><li></li></ol></body>",
			want:  true,
		},
		{
			name: "document with text",
			input: `<body>
			<center><h1> The Little Boat </h1></center>
			<p> The storm tossed the little boat like a cheap sneaker in an old washing machine. </p>
			</body>`,
			want: true,
		},
		{name: "crossed", input: "<a><b></a></b>", want: false},
		{name: "unclosed", input: "<a>", want: false},
		{name: "unopened", input: "</a>", want: false},
		{name: "empty", input: "", want: true},
		{name: "plain text", input: "just text", want: true},
		{name: "unterminated tag", input: "<a></a", want: false},
		{name: "self closing stays open", input: "<br/>", want: false},
		{name: "attributes are part of tag", input: `<a href="x"></a>`, want: false},
		{name: "empty tag", input: "<></>", want: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, HTML(tc.input))
		})
	}
}

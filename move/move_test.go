package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

type coordTestStruct struct {
	input  string
	output Move
}

var coordTests = []coordTestStruct{
	{"0,0", Move{0, 0}},
	{"3,4", Move{3, 4}},
	{"(3, 4)", Move{3, 4}},
	{" ( 10 ,2 ) ", Move{10, 2}},
	{"-1,-1", NoMove},
}

func TestParse(t *testing.T) {
	is := is.New(t)
	for _, tc := range coordTests {
		m, err := Parse(tc.input)
		is.NoErr(err)
		is.Equal(m, tc.output)
	}
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{"", "3", "a,b", "3,4,5", "(3;4)"} {
		_, err := Parse(s)
		is.True(errors.Is(err, ErrBadCoords))
	}
}

func TestNoMove(t *testing.T) {
	is := is.New(t)
	is.True(NoMove.IsNoMove())
	is.True(!New(0, 0).IsNoMove())
	is.Equal(NoMove.String(), "(none)")
	is.Equal(New(1, 2).String(), "(1, 2)")
}

func TestShortDescriptionRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, tc := range coordTests {
		m, err := Parse(tc.output.ShortDescription())
		is.NoErr(err)
		is.Equal(m, tc.output)
	}
}

package nonogram

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	Log.SetLevel(logrus.WarnLevel)
	m.Run()
}

func cells(pattern string) []Cell[Shade] {
	// '.' empty, '/' crossed out, digits filled with that shade
	line := make([]Cell[Shade], 0, len(pattern))
	for _, ch := range pattern {
		switch ch {
		case '.':
			line = append(line, Empty[Shade]())
		case '/':
			line = append(line, Crossed[Shade]())
		default:
			line = append(line, Filled(Shade(ch-'0')))
		}
	}
	return line
}

func TestLineSolved(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint[Shade]
		line       string
		want       bool
	}{
		{"empty constraint, empty line", runs(), ".....", true},
		{"empty constraint, crossed line", runs(), "//./.", true},
		{"empty constraint, filled cell", runs(), "..1..", false},
		{"single run exact", runs(3), ".111.", true},
		{"single run at edge", runs(3), "111..", true},
		{"single run too short", runs(3), ".11..", false},
		{"single run too long", runs(3), "1111.", false},
		{"run split by gap", runs(2), "1.1..", false},
		{"two unit runs never collapse", runs(2), "/1/1/", false},
		{"two runs in order", runs(1, 2), "1.11.", true},
		{"two runs wrong order", runs(2, 1), "1.11.", false},
		{"trailing unexpected run", runs(2), "11..1", false},
		{"missing trailing run", runs(2, 1), ".11..", false},
		{"crosses do not matter", runs(2), "/11//", true},
		{
			name: "value change splits runs",
			constraint: Constraint[Shade]{
				{Value: 1, Size: 2}, {Value: 2, Size: 1},
			},
			line: ".112.",
			want: true,
		},
		{
			name:       "value change is not a single run",
			constraint: runs(3),
			line:       ".112.",
			want:       false,
		},
		{
			name: "foreign value only passes on exact alignment",
			constraint: Constraint[Shade]{
				{Value: 2, Size: 1},
			},
			line: "..2..",
			want: true,
		},
		{
			name:       "foreign value mismatches expected value",
			constraint: runs(1),
			line:       "..2..",
			want:       false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := lineSolved(test.constraint, rowSeq(cells(test.line)))
			assert.Equal(t, test.want, got)
		})
	}
}

func TestLineSolvedIsPure(t *testing.T) {
	line := cells("/1/1/")
	constraint := runs(1, 1)
	assert.True(t, lineSolved(constraint, rowSeq(line)))
	// Same inputs, same answer; the matcher holds no state.
	assert.True(t, lineSolved(constraint, rowSeq(line)))
	assert.Equal(t, cells("/1/1/"), line)
}

package laxjson

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column of a location in source
// text. Columns count characters, except that a tab advances by the tab width
// of the scanner's Config.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column number, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the source span of a token together with the line and
// column of its first character.
type Location struct {
	Span
	LineCol
}

func (loc Location) String() string { return loc.LineCol.String() }

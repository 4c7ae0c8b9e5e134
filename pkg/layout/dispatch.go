package layout

// Kind is the closed set of layout behaviors. Every tag maps to exactly
// one Kind; unknown tags fall back to KindBlock, so dispatch is total.
type Kind int

const (
	KindText Kind = iota
	KindHeading
	KindBlock
	KindPre
	KindButton
	KindInput
	KindSelect
	KindOption
	KindList
	KindListItem
	KindInline
	KindBreak
	KindRule
	KindTable
	KindTableRow
	KindTableCell
)

// KindFor maps a tag name to its layout behavior. Matching is case-exact:
// the parser lowercases tags upstream, and this table does not second-guess
// that contract.
func KindFor(tag string) Kind {
	switch tag {
	case "text":
		return KindText
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return KindHeading
	case "p", "div", "blockquote":
		return KindBlock
	case "pre":
		return KindPre
	case "button":
		return KindButton
	case "input":
		return KindInput
	case "select":
		return KindSelect
	case "option":
		return KindOption
	case "ul", "ol":
		return KindList
	case "li":
		return KindListItem
	case "b", "i", "u", "strong", "em", "code", "span", "a":
		return KindInline
	case "br":
		return KindBreak
	case "hr":
		return KindRule
	case "table":
		return KindTable
	case "tr":
		return KindTableRow
	case "td", "th":
		return KindTableCell
	default:
		return KindBlock
	}
}

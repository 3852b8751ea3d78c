package tfdocs

// BlockKind identifies the type of a normalized content block.
type BlockKind int

// Block kinds produced by document parsing.
const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockCode
	BlockList
	BlockQuote
	// BlockHTML carries block-level markup with no dedicated kind
	// (e.g. tables). Markdown rendering converts it; text rendering
	// unwraps it to its text content.
	BlockHTML
)

// Block is one element of the normalized intermediate representation
// shared by the markdown and plain-text renderers. A section's content
// is an ordered sequence of blocks; each block carries both its inline
// HTML (for markdown conversion) and its collapsed plain text (for text
// output), so terminal renderers never re-parse the document.
type Block struct {
	Kind BlockKind

	// Level is the heading level for BlockHeading, unused otherwise.
	Level int

	// Text is the whitespace-collapsed plain text of the block.
	// For BlockCode it is the verbatim code content.
	Text string

	// HTML is the inner HTML of the block for markdown conversion.
	// Unused for BlockHeading, BlockCode, and BlockList.
	HTML string

	// Lang is the declared code language for BlockCode, if any.
	Lang string

	// Ordered marks a BlockList as numbered.
	Ordered bool

	// Items holds the list items for BlockList.
	Items []ListItem
}

// ListItem is one entry of a BlockList, possibly argument-style.
type ListItem struct {
	// Term is the leading code term of an argument-style item
	// ("name" in "`name` - (Required) ..."). Empty for plain items.
	Term string

	// HTML is the item's inline HTML, nested lists excluded.
	// For argument-style items it is the description only.
	HTML string

	// Text is the whitespace-collapsed plain text counterpart of HTML.
	Text string

	// Children holds a nested list, if the item contains one.
	Children []ListItem

	// ChildrenOrdered marks the nested list as numbered.
	ChildrenOrdered bool
}

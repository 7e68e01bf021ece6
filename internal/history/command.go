package history

import (
	"github.com/insketch/insketch/internal/document"
	"github.com/insketch/insketch/internal/sketch"
)

// AddCommand appends an object to the end of a document.
type AddCommand struct {
	doc   *document.Document
	obj   sketch.Object
	index int
}

// NewAdd creates an add command for obj. Execute must run before the
// command is recorded.
func NewAdd(doc *document.Document, obj sketch.Object) *AddCommand {
	return &AddCommand{doc: doc, obj: obj}
}

// Execute appends the object and remembers the slot it landed in so
// Undo can remove exactly that slot.
func (c *AddCommand) Execute() {
	c.doc.Append(c.obj)
	c.index = c.doc.LastIndex()
}

// Undo removes the appended object.
func (c *AddCommand) Undo() {
	c.doc.RemoveAt(c.index)
}

// ReplaceCommand swaps the object at a fixed document slot.
type ReplaceCommand struct {
	doc    *document.Document
	index  int
	before sketch.Object
	after  sketch.Object
}

// NewReplace creates a replace command for the slot at index.
func NewReplace(doc *document.Document, index int, before, after sketch.Object) *ReplaceCommand {
	return &ReplaceCommand{doc: doc, index: index, before: before, after: after}
}

// Execute installs the replacement object.
func (c *ReplaceCommand) Execute() {
	c.doc.ReplaceAt(c.index, c.after)
}

// Undo restores the original object.
func (c *ReplaceCommand) Undo() {
	c.doc.ReplaceAt(c.index, c.before)
}

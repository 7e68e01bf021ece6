package document

import "github.com/insketch/insketch/internal/sketch"

// Document owns the ordered sequence of objects on the canvas. The
// index of an object is its position and is stable only between
// structural mutations; commands that undo and redo rely on ReplaceAt
// and RemoveAt tolerating stale indices.
type Document struct {
	objects []sketch.Object
}

func New() *Document {
	return &Document{}
}

// Append adds the object at the end of the sequence. It records no
// history by itself; callers wrap it in a command when the edit should
// be undoable.
func (d *Document) Append(obj sketch.Object) {
	d.objects = append(d.objects, obj)
}

// ReplaceAt overwrites the slot at index. Out of bounds is a silent
// no-op.
func (d *Document) ReplaceAt(index int, obj sketch.Object) {
	if index < 0 || index >= len(d.objects) {
		return
	}
	d.objects[index] = obj
}

// RemoveAt removes the slot at index, shifting later objects down by
// one. Out of bounds is a silent no-op.
func (d *Document) RemoveAt(index int) {
	if index < 0 || index >= len(d.objects) {
		return
	}
	d.objects = append(d.objects[:index], d.objects[index+1:]...)
}

// LastIndex returns the index of the final object, or 0 when the
// document is empty. Callers must check Len before treating the result
// as a removable slot; 0 is ambiguous between "empty" and "one object".
func (d *Document) LastIndex() int {
	if len(d.objects) == 0 {
		return 0
	}
	return len(d.objects) - 1
}

func (d *Document) Len() int {
	return len(d.objects)
}

// At returns the object at index, or nil when out of bounds.
func (d *Document) At(index int) sketch.Object {
	if index < 0 || index >= len(d.objects) {
		return nil
	}
	return d.objects[index]
}

// Render draws every object in insertion order.
func (d *Document) Render(surface sketch.Surface) {
	for _, obj := range d.objects {
		obj.Render(surface)
	}
}

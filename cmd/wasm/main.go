//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/insketch/insketch/internal/document"
	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/render"
	"github.com/insketch/insketch/internal/session"
)

const (
	defaultColor = "#000000"
	defaultWidth = 3.0
)

var sess *session.Session

func main() {
	sess = session.New()

	// Create the editor API object
	insketch := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	insketch.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	insketch.Set("beginStroke", js.FuncOf(beginStroke))
	insketch.Set("extendStroke", js.FuncOf(extendStroke))
	insketch.Set("finishStroke", js.FuncOf(finishStroke))
	insketch.Set("commitPreview", js.FuncOf(commitPreview))
	insketch.Set("discardPreview", js.FuncOf(discardPreview))
	insketch.Set("undo", js.FuncOf(undo))
	insketch.Set("redo", js.FuncOf(redo))

	// --- Queries (frontend ← backend) ---
	insketch.Set("render", js.FuncOf(renderFrame))
	insketch.Set("renderPreview", js.FuncOf(renderPreview))
	insketch.Set("getState", js.FuncOf(getState))
	insketch.Set("canUndo", js.FuncOf(canUndo))
	insketch.Set("canRedo", js.FuncOf(canRedo))
	insketch.Set("hasPendingPreview", js.FuncOf(hasPendingPreview))

	// Register on global scope
	js.Global().Set("insketch", insketch)

	// Signal that WASM is ready
	js.Global().Set("insketchWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	sess = session.NewWithDocument(document.NewSampleDocument())
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func beginStroke(this js.Value, args []js.Value) interface{} {
	color := defaultColor
	width := defaultWidth
	if len(args) > 0 && args[0].Type() == js.TypeString {
		color = args[0].String()
	}
	if len(args) > 1 && args[1].Type() == js.TypeNumber {
		width = args[1].Float()
	}

	return js.ValueOf(sess.BeginStroke(color, width))
}

func extendStroke(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return js.ValueOf(map[string]interface{}{"error": "missing stroke id or point"})
	}

	pt := geom.Point{X: args[1].Float(), Y: args[2].Float()}
	if err := sess.ExtendStroke(args[0].String(), pt); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func finishStroke(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing stroke id"})
	}

	if err := sess.FinishStroke(args[0].String()); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{
		"ok":         true,
		"hasPreview": sess.HasPendingPreview(),
	})
}

func commitPreview(this js.Value, args []js.Value) interface{} {
	if err := sess.CommitPreview(); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func discardPreview(this js.Value, args []js.Value) interface{} {
	if err := sess.DiscardPreview(); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func undo(this js.Value, args []js.Value) interface{} {
	sess.Undo()
	return nil
}

func redo(this js.Value, args []js.Value) interface{} {
	sess.Redo()
	return nil
}

// --- Query Handlers ---

// renderFrame compiles the committed content and the preview overlay
// into one draw command buffer as JSON. The frontend draws the buffer
// and its own in-progress stroke on top.
func renderFrame(this js.Value, args []js.Value) interface{} {
	list := render.NewDrawList(1)
	sess.RenderAll(list)

	overlay := render.NewDrawList(render.PreviewOpacity)
	sess.RenderPreview(overlay)
	list.Append(overlay)

	out, err := list.ToJSON()
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(out)
}

// renderPreview compiles only the pending preview overlay, for
// frontends that layer the two passes themselves.
func renderPreview(this js.Value, args []js.Value) interface{} {
	overlay := render.NewDrawList(render.PreviewOpacity)
	sess.RenderPreview(overlay)

	out, err := overlay.ToJSON()
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(out)
}

func getState(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(session.Snapshot(sess))
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func canUndo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(sess.CanUndo())
}

func canRedo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(sess.CanRedo())
}

func hasPendingPreview(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(sess.HasPendingPreview())
}

// Package editor implements the rich-text edit surface: a small state
// machine bound to a markup tree that re-derives structured text after
// every edit. The host's native rich-editing layer is abstracted behind
// the Surface capability so the editor logic is testable headless.
package editor

import (
	"fmt"

	"github.com/i-asim/my-portfolio/internal/markup"
)

// Command identifies a formatting command delegated to the surface.
type Command string

const (
	CmdBold          Command = "bold"
	CmdItalic        Command = "italic"
	CmdStrikethrough Command = "strikethrough"
	CmdHeading       Command = "heading" // value: level "1".."6"
	CmdUnorderedList Command = "unordered-list"
	CmdOrderedList   Command = "ordered-list"
	CmdBlockquote    Command = "blockquote"
	CmdInsertLink    Command = "insert-link"  // value supplied via Prompter
	CmdInsertImage   Command = "insert-image" // value supplied via Prompter
	CmdUndo          Command = "undo"
	CmdRedo          Command = "redo"
)

// Surface is the native rich-editing capability the editor delegates to.
type Surface interface {
	// Load replaces the surface content with the given HTML fragment.
	Load(html string)
	// HTML returns the current content of the surface.
	HTML() string
	// Exec runs a formatting command. value carries the heading level or
	// the URL for link/image insertion.
	Exec(cmd Command, value string) error
}

// Prompter supplies user input for commands that need a URL. ok=false
// means the user cancelled, in which case no mutation occurs.
type Prompter interface {
	Prompt(label string) (value string, ok bool)
}

// ChangeFunc receives the re-derived structured text after each edit.
// It fires synchronously on every discrete change; batching and
// persistence are the caller's concern.
type ChangeFunc func(structuredText string)

type state int

const (
	stateUninitialized state = iota
	stateEditing
)

// Editor binds a Surface to the markup conversion pipeline.
type Editor struct {
	state    state
	surface  Surface
	prompter Prompter
	onChange ChangeFunc
}

// New creates an editor in the Uninitialized state.
func New(surface Surface, prompter Prompter, onChange ChangeFunc) *Editor {
	return &Editor{surface: surface, prompter: prompter, onChange: onChange}
}

// Load converts structured text to HTML and loads it into the surface,
// transitioning to Editing. Re-entry while already Editing is ignored so
// a late reload cannot clobber in-progress edits.
func (e *Editor) Load(structuredText string) {
	if e.state == stateEditing {
		return
	}
	e.surface.Load(markup.ToHTML(markup.Parse(structuredText)))
	e.state = stateEditing
}

// Editing reports whether the surface has been initialized.
func (e *Editor) Editing() bool { return e.state == stateEditing }

// HandleInput is called after a user-driven content change: it reads the
// surface, re-derives structured text, and emits it.
func (e *Editor) HandleInput() {
	if e.state != stateEditing {
		return
	}
	e.emit()
}

// Do runs a formatting command through the surface and re-derives.
// Link and image insertion prompt for a URL first; a cancelled prompt
// leaves the document untouched.
func (e *Editor) Do(cmd Command) error {
	return e.DoValue(cmd, "")
}

// DoValue runs a command with an explicit value (heading level, URL).
func (e *Editor) DoValue(cmd Command, value string) error {
	if e.state != stateEditing {
		return fmt.Errorf("editor: not initialized")
	}

	switch cmd {
	case CmdInsertLink, CmdInsertImage:
		if value == "" {
			label := "Enter URL:"
			if cmd == CmdInsertImage {
				label = "Enter image URL:"
			}
			url, ok := e.prompter.Prompt(label)
			if !ok || url == "" {
				return nil
			}
			value = url
		}
	}

	if err := e.surface.Exec(cmd, value); err != nil {
		return err
	}
	e.emit()
	return nil
}

// StructuredText returns the current document derived from the surface.
func (e *Editor) StructuredText() string {
	return markup.Render(markup.FromHTML(e.surface.HTML()))
}

func (e *Editor) emit() {
	if e.onChange != nil {
		e.onChange(e.StructuredText())
	}
}

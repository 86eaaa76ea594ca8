package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quickbar/internal/model"
	"github.com/ytget/quickbar/internal/palette"
)

// paletteEntry is a single-line entry that lets the palette intercept navigation keys
type paletteEntry struct {
	widget.Entry
	onKey func(*fyne.KeyEvent) bool
}

func newPaletteEntry() *paletteEntry {
	e := &paletteEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// TypedKey hands navigation keys to the palette before the entry sees them
func (e *paletteEntry) TypedKey(key *fyne.KeyEvent) {
	if e.onKey != nil && e.onKey(key) {
		return
	}
	e.Entry.TypedKey(key)
}

// Palette is the command palette overlay: a query entry above a ranked list
type Palette struct {
	window       fyne.Window
	matcher      palette.Matcher
	maxResults   func() int
	localization *Localization

	entry       *paletteEntry
	list        *widget.List
	statusLabel *widget.Label
	popup       *widget.PopUp

	results  []*model.Command
	selected int
	// clicking a row selects it in the list; suppress re-entry while we clear it
	clearing bool
}

// NewPalette creates the palette overlay for window
func NewPalette(window fyne.Window, matcher palette.Matcher, maxResults func() int, localization *Localization) *Palette {
	p := &Palette{
		window:       window,
		matcher:      matcher,
		maxResults:   maxResults,
		localization: localization,
		selected:     -1,
	}
	p.createUI()
	return p
}

// createUI builds the entry, list and popup
func (p *Palette) createUI() {
	p.entry = newPaletteEntry()
	p.entry.SetPlaceHolder(p.localization.GetText(KeyPalettePlaceholder))
	p.entry.OnChanged = p.setQuery
	p.entry.OnSubmitted = func(string) { p.submit() }
	p.entry.onKey = p.handleKey

	p.list = widget.NewList(
		func() int { return len(p.results) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			name.Truncation = fyne.TextTruncateEllipsis
			aliases := widget.NewLabel("")
			aliases.Importance = widget.LowImportance
			aliases.Truncation = fyne.TextTruncateEllipsis
			return container.NewBorder(nil, nil, nil, aliases, name)
		},
		p.updateItem,
	)
	p.list.OnSelected = p.onRowSelected

	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Importance = widget.LowImportance
	p.statusLabel.Hide()

	content := container.NewBorder(
		container.NewVBox(p.entry, p.statusLabel),
		nil, nil, nil,
		p.list,
	)
	p.popup = widget.NewModalPopUp(content, p.window.Canvas())
	p.popup.Hide()
}

// updateItem renders one result row, marking the keyboard selection
func (p *Palette) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(p.results) {
		return
	}
	cmd := p.results[id]

	row := obj.(*fyne.Container)
	name := row.Objects[0].(*widget.Label)
	aliases := row.Objects[1].(*widget.Label)

	text := cmd.Name
	if id == p.selected {
		text = IconSelected + " " + text
	}
	name.SetText(text)
	name.TextStyle = fyne.TextStyle{Bold: id == p.selected}
	name.Refresh()
	aliases.SetText(cmd.GetDisplayAliases())
}

// Show opens the palette with an empty query
func (p *Palette) Show() {
	p.entry.SetText("")
	p.setQuery("")

	canvasSize := p.window.Canvas().Size()
	rows := p.maxResults()
	height := PaletteRowHeight * float32(rows+2)
	if height > canvasSize.Height-PaletteTopOffset {
		height = canvasSize.Height - PaletteTopOffset
	}
	width := PaletteWidth
	if width > canvasSize.Width {
		width = canvasSize.Width
	}

	p.popup.Resize(fyne.NewSize(width, height))
	p.popup.Move(fyne.NewPos((canvasSize.Width-width)/2, PaletteTopOffset))
	p.popup.Show()
	p.window.Canvas().Focus(p.entry)
}

// Hide closes the palette
func (p *Palette) Hide() {
	p.popup.Hide()
}

// Visible reports whether the palette is open
func (p *Palette) Visible() bool {
	return p.popup.Visible()
}

// Results returns the rows currently shown
func (p *Palette) Results() []*model.Command {
	return p.results
}

// Selected returns the index of the keyboard selection, or -1 when nothing is selected
func (p *Palette) Selected() int {
	return p.selected
}

// setQuery re-ranks commands for the live query
func (p *Palette) setQuery(query string) {
	results := p.matcher.MatchingCommands(query)
	if limit := p.maxResults(); limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	p.results = results
	p.selected = -1

	// Browse mode lists everything but selects nothing, so Enter on an
	// empty query is a no-match rather than the first registered command.
	browsing := palette.Normalize(query) == ""
	switch {
	case len(results) > 0 && !browsing:
		p.selected = 0
		p.statusLabel.Hide()
	case len(results) == 0 && !browsing:
		p.statusLabel.SetText(p.localization.GetText(KeyNoMatch))
		p.statusLabel.Show()
	default:
		p.statusLabel.Hide()
	}

	p.list.Refresh()
	if p.selected >= 0 {
		p.list.ScrollTo(p.selected)
	}
}

// moveSelection moves the keyboard selection by delta, clamped to the visible rows
func (p *Palette) moveSelection(delta int) {
	if len(p.results) == 0 {
		return
	}

	next := p.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(p.results) {
		next = len(p.results) - 1
	}
	if next == p.selected {
		return
	}

	p.selected = next
	p.list.Refresh()
	p.list.ScrollTo(next)
}

// handleKey implements arrow navigation and Escape
func (p *Palette) handleKey(key *fyne.KeyEvent) bool {
	switch key.Name {
	case fyne.KeyDown:
		p.moveSelection(1)
		return true
	case fyne.KeyUp:
		p.moveSelection(-1)
		return true
	case fyne.KeyEscape:
		p.Hide()
		return true
	}
	return false
}

// submit executes the selected row, or the best match when nothing is selected
func (p *Palette) submit() {
	query := p.entry.Text

	var cmd *model.Command
	if p.selected >= 0 && p.selected < len(p.results) {
		cmd = p.results[p.selected]
	} else if best, ok := p.matcher.BestMatch(query); ok {
		cmd = best
	}

	if cmd == nil {
		log.Printf("Palette: no command for %q", query)
		p.statusLabel.SetText(p.localization.GetText(KeyNoMatch))
		p.statusLabel.Show()
		return
	}

	// Close first so actions that open dialogs land on a clean canvas
	p.Hide()
	p.matcher.Execute(cmd)
}

// onRowSelected executes a clicked row
func (p *Palette) onRowSelected(id widget.ListItemID) {
	if p.clearing {
		return
	}
	if id < 0 || id >= len(p.results) {
		return
	}

	cmd := p.results[id]
	p.clearing = true
	p.list.UnselectAll()
	p.clearing = false

	p.Hide()
	p.matcher.Execute(cmd)
}

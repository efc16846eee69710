package event_bus

// SheetUpdated is published after every mutation of the budget sheet. The
// persistence subscriber stores the carried snapshot synchronously, which
// gives the write-through contract: no explicit save action exists anywhere.
const SheetUpdated EventType = "sheet.updated"

// SheetSnapshot is the payload of SheetUpdated: the full serialized budget
// document.
type SheetSnapshot struct {
	Data []byte
}

package ui

// SelectionKind tags the outcome of a menu session. Control signals carry
// their own tags so they can never collide with a valid option index.
type SelectionKind int

const (
	// SelectionChosen means the operator picked an option (Index) or, in
	// multi-select mode, a set of options (Indices).
	SelectionChosen SelectionKind = iota
	// SelectionCancelled means the operator quit the menu.
	SelectionCancelled
	// SelectionRefresh asks the caller to rebuild the menu's contents.
	SelectionRefresh
	// SelectionBack asks the caller to return to the previous screen.
	SelectionBack
)

// Selection is the tagged result of a menu session.
type Selection struct {
	Kind    SelectionKind
	Index   int
	Indices []int
}

// Chosen builds a single-select result.
func Chosen(index int) Selection {
	return Selection{Kind: SelectionChosen, Index: index}
}

// ChosenSet builds a multi-select result.
func ChosenSet(indices []int) Selection {
	return Selection{Kind: SelectionChosen, Indices: indices}
}

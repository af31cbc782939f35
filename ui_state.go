package main

type mode int

const (
	modeView mode = iota
	modeCommand
	modeQuery
)

type uiState struct {
	mode        mode
	command     CommandInput
	noticeMsg   string
	noticeType  string
	noticeSeq   int
	searchQuery string
	colOffset   int // first scrolled column; the pinned column is not counted

	visibleStart int
	visibleEnd   int

	debugCursorHeight       int
	debugHeightFree         int
	debugDesiredAboveHeight int
}

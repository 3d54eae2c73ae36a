package logic

import "pastelines/internal/domain"

// SelectionStore holds at most one active range per file
type SelectionStore interface {
	Get(fileIndex int) (domain.Selection, bool)
	Set(sel domain.Selection)
	All() []domain.Selection
	Len() int
	Clear()
}

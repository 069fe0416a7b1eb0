package tui

import (
	"github.com/MKhiriev/go-cipher-lab/models"
)

type methodsLoadedMsg struct {
	methods []models.MethodInfo
	err     error
}

type transformDoneMsg struct {
	result models.TransformResult
	err    error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type historyClearedMsg struct {
	err error
}

type errMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

// Package ui provides semantic text formatting for the cipher CLI.
//
// Formatters colorize output when the terminal supports it. When NO_COLOR is
// set or colors are unavailable they fall back to plain text decorations:
//
//	ui.Code.Sprint("cipher methods")   // `cipher methods`
//	ui.Highlight.Sprint("caesar")      // 'caesar'
//	ui.Muted.Sprint("simulated")       // (simulated)
//
// Strength picks the formatter matching a strength score.
package ui

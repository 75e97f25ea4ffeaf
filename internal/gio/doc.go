// Package gio implements the plain-text external interfaces of spec.md §6:
// a graph reader for the tool's input format, raw writers for an LDrawing
// or a RectDual, and a text/template-based TikZ writer.
package gio

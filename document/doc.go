// Package document provides a structured-document receiver for
// snapshot-style undo/redo.
//
// A Document holds a title, a JSON body, and free-form metadata. Fields in
// the body are addressed by gjson path syntax ("author.name",
// "tags.0"). The document implements history.Originator: Capture deep-copies
// the whole state into an opaque snapshot, so later mutations to the live
// document — including writes through its metadata map — can never leak into
// a snapshot already recorded.
//
// Unlike the delta-style editor receiver, the document's mutation methods
// carry no backup of their own; a dispatcher using full-state snapshots
// records the state taken just before each mutating command.
package document

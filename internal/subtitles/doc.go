// Package subtitles models caption documents and reads and writes them as SRT.
//
// A Document is an ordered list of Sections; each Section carries an opaque
// Timing and the Lines displayed for it. Lines keep their raw text, markup
// included, and expose the markup-aware measures (visible text, visible
// length, dialog markers) that the cleanup stages use for every threshold and
// emptiness decision.
//
// Parsing and serialization are symmetric: Serialize renumbers sections by
// position, and parsing its output yields the same Document again.
package subtitles

// Package annotate renders a pretty-printed snapshot of an input document with
// inline error markers and a numbered legend.
//
// Given the original (pre-validation) value and an ordered list of reports,
// Annotate produces a JSON-like rendering where every reported location carries
// a bracketed ordinal marker, and a trailing legend maps each ordinal to its
// message:
//
//	{
//	  "name": "alice",
//	  "age" [1]: "forty"
//	}
//
//	[1] "age" must be a number
//
// Reports that address a key absent from the input (a required key that was
// never provided) are synthesized as trailing `-- missing --` entries. Multiple
// reports sharing the same location are merged into a single marker listing all
// of their ordinals.
//
// The walk is guarded against circular references: a container that is its own
// ancestor renders as the string "[Circular ~<path>]" and is not descended into
// again. Values with no JSON representation (NaN, infinities, functions,
// channels) fall back to a readable literal form via Literal, which is also
// suitable for embedding values into error messages.
//
// Markers and the legend are wrapped in ANSI red escape codes unless the
// colorless flag is set.
package annotate

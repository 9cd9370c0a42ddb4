// Package evio decodes EVIO/HIPO v6 container files: a global file
// header, a sequence of optionally-compressed records, each holding a
// sequence of events, each a tree of tagged BANK/SEGMENT/TAGSEGMENT
// containers and typed leaves. The package is read-only — it opens a
// memory-mapped byte range and exposes a lazily materialized tree over
// it, never writing to the mapping. Parsing and the core accessors
// (AsTypedSlice, AsComposite, Payload) never copy data bytes; the
// Decode-prefixed convenience methods do, to hand callers a
// byte-order-normalized value instead of a raw range.
package evio

// Package schema defines the East value model: typed, serializable,
// tree-shaped data used as the declarative representation of UI components.
//
// A Value is a tagged tree node. Scalar kinds (Boolean, Integer, Float,
// String, DateTime, Blob) carry their payload directly; Array and Struct
// carry children; Variant carries one active case among named alternatives.
// Null doubles as the absent case of the option wrapper (see Some and None).
//
// Serialization is deterministic: two structurally equal values marshal to
// identical bytes. Struct fields are emitted in sorted key order and
// datetimes in RFC 3339 UTC.
package schema

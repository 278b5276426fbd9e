// Package model defines the intermediate representation shared by every
// stage of the recovery pipeline: the XML definition parser produces it,
// the recovery engine mutates it in place, and the sort/prune/emit
// collaborators read it.
package model

// TypeKind distinguishes how a TypeRef's Name should be read.
type TypeKind uint8

const (
	// TypeSimple is a primitive or named type (Name holds the identifier).
	TypeSimple TypeKind = iota
	// TypeTuple is a literal tuple form, e.g. "[number, number]" (Name
	// holds the already-formatted tuple text).
	TypeTuple
)

// TypeRef is a normalized type reference: a target-language type name,
// whether it denotes an array of that name, and (for enum members only)
// a literal value.
type TypeRef struct {
	Kind    TypeKind
	Name    string
	IsArray bool
	Value   string // non-empty only for enum-member literal values
}

// Param source markers recorded by the recovery engine (ParamMatch.Source).
type MatchSource uint8

const (
	SourceLocal MatchSource = iota
	SourceClassCache
	SourceGlobalCache
)

// Parameter is a single method/indexer parameter.
type Parameter struct {
	Name     string
	Desc     []string
	Optional bool
	Types    []TypeRef

	// Transient corruption-tracking attributes. Set by the XML parser,
	// consumed by the recovery engine. Never read by pkg/emitter.
	Malformed    bool
	DescFromXML  bool
	WasSpaceName bool
	XMLDescCount int
}

// PropertyKind is the tagged variant for a Definition member.
type PropertyKind uint8

const (
	KindProperty PropertyKind = iota
	KindMethod
	KindIndexer
	KindEnumMember
)

// Property is a member of a class, interface, or enum.
type Property struct {
	Kind     PropertyKind
	IsStatic bool
	ReadOnly bool
	Name     string
	Desc     []string
	Params   []Parameter
	Types    []TypeRef

	// Transient, derived after parameter parsing; consumed by recovery,
	// never by pkg/emitter.
	NeedsFullBinaryRecovery bool
	HasParamsToEnrich       bool
}

// DefinitionKind is the root kind of a Definition.
type DefinitionKind uint8

const (
	KindClass DefinitionKind = iota
	KindInterface
	KindEnum
)

// Definition is a class, interface, or enum extracted from the XML.
type Definition struct {
	Kind     DefinitionKind
	Name     string // may contain dots; split into namespace+class at emit time
	Desc     []string
	Extends  string // parent name, empty if none
	Members  []Property
}

// StringIndexEntry is a candidate text string recovered from a binary blob.
type StringIndexEntry struct {
	Text       string
	ByteOffset int
	Ordinal    int
}

// BinaryIndex is the per-blob scan result: an ordinal-ordered sequence of
// entries plus an exact-text lookup map.
type BinaryIndex struct {
	BlobName string
	Entries  []StringIndexEntry
	ByText   map[string][]StringIndexEntry
}

// ParamMatch is the recovery engine's view of a "name: description"
// observation tied to one method.
type ParamMatch struct {
	Name     string
	Desc     string
	Source   MatchSource
	LocalPos int // meaningful only when Source == SourceLocal
}

// Blob is the Go shape of spec.md's {name, bytes} blob input.
type Blob struct {
	Name  string
	Bytes []byte
}

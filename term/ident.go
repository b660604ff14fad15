// FILE: lixenwraith/ncl/term/ident.go
package term

import "sync"

// SrcID identifies a source registered in a SourceTable. Zero means no source.
type SrcID int

// Pos is a byte span inside a registered source.
type Pos struct {
	Src   SrcID
	Start uint32
	End   uint32
}

// PosNone is the absent position.
var PosNone = Pos{}

// IsNone reports whether p points at no source.
func (p Pos) IsNone() bool {
	return p.Src == 0
}

// SourceTable is an append-only registry of source names and texts.
type SourceTable struct {
	mu    sync.Mutex
	names []string
	texts []string
}

// Sources is the process-wide source table.
var Sources = &SourceTable{}

// Add registers a source and returns its identifier.
func (s *SourceTable) Add(name, text string) SrcID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names = append(s.names, name)
	s.texts = append(s.texts, text)
	return SrcID(len(s.names))
}

// Name returns the name a source was registered under.
func (s *SourceTable) Name(id SrcID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id <= 0 || int(id) > len(s.names) {
		return "", false
	}
	return s.names[id-1], true
}

// Len returns the number of registered sources.
func (s *SourceTable) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

var fakePos = sync.OnceValue(func() Pos {
	return Pos{Src: Sources.Add("<fake>", "")}
})

// FakePos returns the placeholder position used for synthesized identifiers.
// Evaluation errors pointing at it are meaningless; it only exists because
// record construction expects identifiers to be positioned.
func FakePos() Pos {
	return fakePos()
}

// Ident is a field name. Two identifiers are equal when their names are.
type Ident struct {
	Name string
	Pos  Pos
}

// NewIdent creates an unpositioned identifier.
func NewIdent(name string) Ident {
	return NewIdentWithPos(name, PosNone)
}

// NewIdentWithPos creates an identifier carrying pos.
// An empty name is a caller bug and panics.
func NewIdentWithPos(name string, pos Pos) Ident {
	if name == "" {
		panic("term: identifier must not be empty")
	}
	return Ident{Name: name, Pos: pos}
}

// Equal compares identifiers by name.
func (i Ident) Equal(o Ident) bool {
	return i.Name == o.Name
}

// IsZero reports whether i is the zero identifier.
func (i Ident) IsZero() bool {
	return i.Name == ""
}

func (i Ident) String() string {
	return i.Name
}

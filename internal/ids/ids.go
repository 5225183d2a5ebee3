// Package ids derives stable, content-driven identifiers for world
// entities. Two content authors who both write a room named "cave-entry"
// get the same Id, in the same way across every load of the same content,
// which is what keeps save files stable across edits that preserve
// authoring tokens.
package ids

import "github.com/google/uuid"

// Id is an opaque, equatable, hashable identifier for a room, item, or
// character. The zero value is not a valid entity id.
type Id = uuid.UUID

// Namespace tags the kind of entity a token belongs to. Identical tokens
// in different namespaces always produce distinct ids.
type Namespace = uuid.UUID

// Fixed namespace constants, one per entity kind. These are arbitrary but
// permanent UUIDs: changing any of them would change every id derived
// from it and break every existing save file.
var (
	NamespaceRoom      Namespace = uuid.MustParse("5f1b1f0e-7b1d-4a6e-9c3a-000000000001")
	NamespaceItem      Namespace = uuid.MustParse("5f1b1f0e-7b1d-4a6e-9c3a-000000000002")
	NamespaceCharacter Namespace = uuid.MustParse("5f1b1f0e-7b1d-4a6e-9c3a-000000000003")
	NamespaceGoal      Namespace = uuid.MustParse("5f1b1f0e-7b1d-4a6e-9c3a-000000000004")
	NamespaceTrigger   Namespace = uuid.MustParse("5f1b1f0e-7b1d-4a6e-9c3a-000000000005")
)

// For derives the deterministic id for token within namespace. Equal
// (namespace, token) pairs always yield equal ids; the same token under a
// different namespace yields a different id.
func For(namespace Namespace, token string) Id {
	return uuid.NewSHA1(namespace, []byte(token))
}

// SymbolTable maps the authoring tokens used in content files to the ids
// derived from them, one map per entity kind. It is built once during
// load and consulted by the resolvers in internal/content.
type SymbolTable struct {
	Rooms      map[string]Id
	Items      map[string]Id
	Characters map[string]Id
}

// NewSymbolTable returns an empty, ready-to-populate SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Rooms:      make(map[string]Id),
		Items:      make(map[string]Id),
		Characters: make(map[string]Id),
	}
}

// InternRoom records token's id in the room namespace and returns it.
func (s *SymbolTable) InternRoom(token string) Id {
	id := For(NamespaceRoom, token)
	s.Rooms[token] = id
	return id
}

// InternItem records token's id in the item namespace and returns it.
func (s *SymbolTable) InternItem(token string) Id {
	id := For(NamespaceItem, token)
	s.Items[token] = id
	return id
}

// InternCharacter records token's id in the character namespace (shared by
// NPCs and the player) and returns it.
func (s *SymbolTable) InternCharacter(token string) Id {
	id := For(NamespaceCharacter, token)
	s.Characters[token] = id
	return id
}

// Parse parses the canonical string form of an Id, as round-tripped
// through a save file or log line.
func Parse(s string) (Id, error) {
	return uuid.Parse(s)
}

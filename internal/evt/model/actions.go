package model

import "encoding/json"

// Names of the actions that create or mutate entities.
const (
	ActionNewDomain      = "newdomain"
	ActionUpdateDomain   = "updatedomain"
	ActionIssueToken     = "issuetoken"
	ActionTransfer       = "transfer"
	ActionDestroyToken   = "destroytoken"
	ActionNewGroup       = "newgroup"
	ActionUpdateGroup    = "updategroup"
	ActionNewFungible    = "newfungible"
	ActionUpdateFungible = "updfungible"
	ActionAddMeta        = "addmeta"
)

// Reserved names used by addmeta to address its owning entity.
const (
	FungibleDomain = ".fungible"
	GroupDomain    = ".group"
	DomainMetaKey  = ".meta"
)

// TokenID returns the composite token id "domain:name".
func TokenID(domain, name string) string {
	return domain + ":" + name
}

// NewDomain creates a domain. Permission rules are kept as rendered JSON.
type NewDomain struct {
	Name     string          `json:"name"`
	Creator  string          `json:"creator"`
	Issue    json.RawMessage `json:"issue"`
	Transfer json.RawMessage `json:"transfer"`
	Manage   json.RawMessage `json:"manage"`
}

// UpdateDomain replaces the permission rules that are present.
type UpdateDomain struct {
	Name     string                    `json:"name"`
	Issue    Optional[json.RawMessage] `json:"issue"`
	Transfer Optional[json.RawMessage] `json:"transfer"`
	Manage   Optional[json.RawMessage] `json:"manage"`
}

// IssueToken mints one token per name, all held by the same owners.
type IssueToken struct {
	Domain string   `json:"domain"`
	Names  []string `json:"names"`
	Owner  []string `json:"owner"`
}

// Transfer replaces the owners of a token.
type Transfer struct {
	Domain string   `json:"domain"`
	Name   string   `json:"name"`
	To     []string `json:"to"`
}

// DestroyToken burns a token.
type DestroyToken struct {
	Domain string `json:"domain"`
	Name   string `json:"name"`
}

// Group is a serialized authorization tree. Only the subtree under "root"
// is stored as the group definition.
type Group struct {
	Name string          `json:"name"`
	Key  string          `json:"key"`
	Root json.RawMessage `json:"root"`
}

// NewGroup creates a group.
type NewGroup struct {
	Name  string `json:"name"`
	Group Group  `json:"group"`
}

// UpdateGroup replaces the definition of a group.
type UpdateGroup struct {
	Name  string `json:"name"`
	Group Group  `json:"group"`
}

// NewFungible creates a fungible token class.
type NewFungible struct {
	Name    string          `json:"name"`
	SymName string          `json:"sym_name"`
	Sym     Symbol          `json:"sym"`
	Creator string          `json:"creator"`
	Issue   json.RawMessage `json:"issue"`
	Manage  json.RawMessage `json:"manage"`
}

// UpdateFungible replaces the permission rules of a fungible class that are present.
type UpdateFungible struct {
	SymID  uint32                    `json:"sym_id"`
	Issue  Optional[json.RawMessage] `json:"issue"`
	Manage Optional[json.RawMessage] `json:"manage"`
}

// AddMeta attaches a key/value metadata record to the entity addressed by
// the action's domain and key.
type AddMeta struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Creator string `json:"creator"`
}

package render

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
)

// BurnedOwner is the owner identity stored for a destroyed token.
const BurnedOwner = "EVT00000000000000000000000000000000000000000000000000"

// EntityMutations renders the entity writes caused by act. Actions that do not
// touch an entity table render nothing.
func EntityMutations(act model.Action) ([]Mutation, error) {
	var (
		muts []Mutation
		err  error
	)
	switch act.Name {
	case model.ActionNewDomain:
		muts, err = decodeAndRender(act, newDomain)
	case model.ActionUpdateDomain:
		muts, err = decodeAndRender(act, updateDomain)
	case model.ActionIssueToken:
		muts, err = decodeAndRender(act, issueToken)
	case model.ActionTransfer:
		muts, err = decodeAndRender(act, transfer)
	case model.ActionDestroyToken:
		muts, err = decodeAndRender(act, destroyToken)
	case model.ActionNewGroup:
		muts, err = decodeAndRender(act, newGroup)
	case model.ActionUpdateGroup:
		muts, err = decodeAndRender(act, updateGroup)
	case model.ActionNewFungible:
		muts, err = decodeAndRender(act, newFungible)
	case model.ActionUpdateFungible:
		muts, err = decodeAndRender(act, updateFungible)
	case model.ActionAddMeta:
		muts, err = decodeAndRender(act, func(am model.AddMeta) ([]Mutation, error) {
			return addMeta(act, am)
		})
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("render %s on %s/%s: %w", act.Name, act.Domain, act.Key, err)
	}
	return muts, nil
}

// TokenOwner renders the replacement of a token's owner set.
func TokenOwner(tokenID string, o model.Ownership) Statement {
	owners := o.Owners()
	if o.IsBurned() {
		owners = []string{BurnedOwner}
	}
	if owners == nil {
		owners = []string{}
	}
	return Statement{Name: StmtUpdateTokenOwner, Args: []any{tokenID, owners}}
}

func decodeAndRender[T any](act model.Action, fn func(T) ([]Mutation, error)) ([]Mutation, error) {
	var payload T
	if err := json.Unmarshal(act.Data, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return fn(payload)
}

func newDomain(nd model.NewDomain) ([]Mutation, error) {
	issue, err := requiredJSON("issue", nd.Issue)
	if err != nil {
		return nil, err
	}
	transferRule, err := requiredJSON("transfer", nd.Transfer)
	if err != nil {
		return nil, err
	}
	manage, err := requiredJSON("manage", nd.Manage)
	if err != nil {
		return nil, err
	}
	return []Mutation{Statement{
		Name: StmtInsertDomain,
		Args: []any{nd.Name, nd.Creator, issue, transferRule, manage},
	}}, nil
}

func updateDomain(ud model.UpdateDomain) ([]Mutation, error) {
	issue, err := optionalJSON(ud.Issue)
	if err != nil {
		return nil, fmt.Errorf("issue: %w", err)
	}
	transferRule, err := optionalJSON(ud.Transfer)
	if err != nil {
		return nil, fmt.Errorf("transfer: %w", err)
	}
	manage, err := optionalJSON(ud.Manage)
	if err != nil {
		return nil, fmt.Errorf("manage: %w", err)
	}
	return []Mutation{Statement{
		Name: StmtUpdateDomain,
		Args: []any{ud.Name, issue, transferRule, manage},
	}}, nil
}

func issueToken(it model.IssueToken) ([]Mutation, error) {
	owners := model.OwnedBy(it.Owner...).Owners()
	if owners == nil {
		owners = []string{}
	}
	muts := make([]Mutation, 0, len(it.Names))
	for _, name := range it.Names {
		muts = append(muts, Statement{
			Name: StmtInsertToken,
			Args: []any{model.TokenID(it.Domain, name), it.Domain, name, owners},
		})
	}
	return muts, nil
}

func transfer(tf model.Transfer) ([]Mutation, error) {
	return []Mutation{TokenOwner(model.TokenID(tf.Domain, tf.Name), model.OwnedBy(tf.To...))}, nil
}

func destroyToken(dt model.DestroyToken) ([]Mutation, error) {
	return []Mutation{TokenOwner(model.TokenID(dt.Domain, dt.Name), model.Burned())}, nil
}

func newGroup(ng model.NewGroup) ([]Mutation, error) {
	def, err := requiredJSON("group root", ng.Group.Root)
	if err != nil {
		return nil, err
	}
	return []Mutation{Statement{
		Name: StmtInsertGroup,
		Args: []any{ng.Name, ng.Group.Key, def},
	}}, nil
}

func updateGroup(ug model.UpdateGroup) ([]Mutation, error) {
	def, err := requiredJSON("group root", ug.Group.Root)
	if err != nil {
		return nil, err
	}
	return []Mutation{Statement{
		Name: StmtUpdateGroup,
		Args: []any{ug.Name, def},
	}}, nil
}

func newFungible(nf model.NewFungible) ([]Mutation, error) {
	issue, err := requiredJSON("issue", nf.Issue)
	if err != nil {
		return nil, err
	}
	manage, err := requiredJSON("manage", nf.Manage)
	if err != nil {
		return nil, err
	}
	return []Mutation{Statement{
		Name: StmtInsertFungible,
		Args: []any{int64(nf.Sym.ID), nf.Name, nf.SymName, nf.Sym.String(), nf.Creator, issue, manage},
	}}, nil
}

func updateFungible(uf model.UpdateFungible) ([]Mutation, error) {
	issue, err := optionalJSON(uf.Issue)
	if err != nil {
		return nil, fmt.Errorf("issue: %w", err)
	}
	manage, err := optionalJSON(uf.Manage)
	if err != nil {
		return nil, fmt.Errorf("manage: %w", err)
	}
	return []Mutation{Statement{
		Name: StmtUpdateFungible,
		Args: []any{int64(uf.SymID), issue, manage},
	}}, nil
}

func addMeta(act model.Action, am model.AddMeta) ([]Mutation, error) {
	insert := Statement{
		Name: StmtInsertMeta,
		Args: []any{am.Key, am.Value, am.Creator},
	}

	switch {
	case act.Domain == model.FungibleDomain:
		symID, err := strconv.ParseInt(act.Key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("fungible symbol id %q: %w", act.Key, err)
		}
		return []Mutation{MetaInsert{Insert: insert, Owner: StmtAppendFungibleMeta, OwnerKey: symID}}, nil
	case act.Domain == model.GroupDomain:
		return []Mutation{MetaInsert{Insert: insert, Owner: StmtAppendGroupMeta, OwnerKey: act.Key}}, nil
	case act.Key == model.DomainMetaKey:
		return []Mutation{MetaInsert{Insert: insert, Owner: StmtAppendDomainMeta, OwnerKey: act.Domain}}, nil
	default:
		return []Mutation{MetaInsert{
			Insert:   insert,
			Owner:    StmtAppendTokenMeta,
			OwnerKey: model.TokenID(act.Domain, act.Key),
		}}, nil
	}
}

func requiredJSON(field string, raw json.RawMessage) (string, error) {
	s, err := compactJSON(raw, "")
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	if s == "" {
		return "", fmt.Errorf("%s: missing", field)
	}
	return s, nil
}

// optionalJSON returns nil for an absent rule so the statement keeps the
// stored value.
func optionalJSON(o model.Optional[json.RawMessage]) (any, error) {
	raw, ok := o.Get()
	if !ok {
		return nil, nil
	}
	s, err := compactJSON(raw, "null")
	if err != nil {
		return nil, err
	}
	return s, nil
}

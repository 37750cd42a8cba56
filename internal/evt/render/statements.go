package render

// Names of the prepared statements. Each name maps to exactly one template.
const (
	StmtLatestBlock          = "latest_block"
	StmtExistsBlock          = "exists_block"
	StmtSetBlockIrreversible = "set_block_irreversible"
	StmtInsertStat           = "insert_stat"
	StmtReadStat             = "read_stat"
	StmtUpdateStat           = "update_stat"
	StmtInsertDomain         = "insert_domain"
	StmtUpdateDomain         = "update_domain"
	StmtInsertToken          = "insert_token"
	StmtUpdateTokenOwner     = "update_token_owner"
	StmtInsertGroup          = "insert_group"
	StmtUpdateGroup          = "update_group"
	StmtInsertFungible       = "insert_fungible"
	StmtUpdateFungible       = "update_fungible"
	StmtInsertMeta           = "insert_meta"
	StmtAppendDomainMeta     = "append_domain_meta"
	StmtAppendTokenMeta      = "append_token_meta"
	StmtAppendGroupMeta      = "append_group_meta"
	StmtAppendFungibleMeta   = "append_fungible_meta"
)

// Templates holds the SQL of every named statement.
var Templates = map[string]string{
	StmtLatestBlock:          `SELECT block_id, block_num FROM blocks ORDER BY block_num DESC LIMIT 1`,
	StmtExistsBlock:          `SELECT EXISTS (SELECT 1 FROM blocks WHERE block_id = $1)`,
	StmtSetBlockIrreversible: `UPDATE blocks SET pending = false WHERE block_id = $1`,
	StmtInsertStat:           `INSERT INTO stats (key, value) VALUES ($1, $2)`,
	StmtReadStat:             `SELECT value FROM stats WHERE key = $1`,
	StmtUpdateStat:           `UPDATE stats SET value = $2, updated_at = now() WHERE key = $1`,
	StmtInsertDomain: `INSERT INTO domains (name, creator, issue, transfer, manage, metas)
VALUES ($1, $2, $3, $4, $5, '{}')`,
	StmtUpdateDomain: `UPDATE domains SET
	issue = COALESCE($2::jsonb, issue),
	transfer = COALESCE($3::jsonb, transfer),
	manage = COALESCE($4::jsonb, manage)
WHERE name = $1`,
	StmtInsertToken: `INSERT INTO tokens (id, domain, name, owner, metas)
VALUES ($1, $2, $3, $4, '{}')`,
	StmtUpdateTokenOwner: `UPDATE tokens SET owner = $2 WHERE id = $1`,
	StmtInsertGroup: `INSERT INTO groups (name, key, def, metas)
VALUES ($1, $2, $3, '{}')`,
	StmtUpdateGroup: `UPDATE groups SET def = $2 WHERE name = $1`,
	StmtInsertFungible: `INSERT INTO fungibles (sym_id, name, sym_name, sym, creator, issue, manage, metas)
VALUES ($1, $2, $3, $4, $5, $6, $7, '{}')`,
	StmtUpdateFungible: `UPDATE fungibles SET
	issue = COALESCE($2::jsonb, issue),
	manage = COALESCE($3::jsonb, manage)
WHERE sym_id = $1`,
	StmtInsertMeta:         `INSERT INTO metas (key, value, creator) VALUES ($1, $2, $3) RETURNING id`,
	StmtAppendDomainMeta:   `UPDATE domains SET metas = array_append(metas, $1) WHERE name = $2`,
	StmtAppendTokenMeta:    `UPDATE tokens SET metas = array_append(metas, $1) WHERE id = $2`,
	StmtAppendGroupMeta:    `UPDATE groups SET metas = array_append(metas, $1) WHERE name = $2`,
	StmtAppendFungibleMeta: `UPDATE fungibles SET metas = array_append(metas, $1) WHERE sym_id = $2`,
}

// Mutation is one step of a mutation batch: a Statement or a MetaInsert.
type Mutation interface {
	mutation()
}

// Statement is an invocation of a named prepared statement.
type Statement struct {
	Name string
	Args []any
}

// MetaInsert inserts a metadata row and appends the id it was assigned to the
// metas array of its owner. Both run back to back in the same transaction;
// the owner statement takes the id as $1 and OwnerKey as $2.
type MetaInsert struct {
	Insert   Statement
	Owner    string
	OwnerKey any
}

func (Statement) mutation()  {}
func (MetaInsert) mutation() {}

// InsertStat writes a new stats entry.
func InsertStat(key, value string) Statement {
	return Statement{Name: StmtInsertStat, Args: []any{key, value}}
}

// UpdateStat overwrites a stats entry.
func UpdateStat(key, value string) Statement {
	return Statement{Name: StmtUpdateStat, Args: []any{key, value}}
}

// SetBlockIrreversible clears the pending flag of a block.
func SetBlockIrreversible(blockID string) Statement {
	return Statement{Name: StmtSetBlockIrreversible, Args: []any{blockID}}
}

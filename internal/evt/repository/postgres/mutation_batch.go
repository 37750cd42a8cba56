package postgres

import (
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/model"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// MutationBatch collects the statement invocations of one ingestion unit.
// They run in insertion order inside a single transaction.
type MutationBatch struct {
	mutations []render.Mutation
}

// NewMutationBatch returns an empty batch.
func NewMutationBatch() *MutationBatch {
	return &MutationBatch{}
}

// Add appends mutations to the batch.
func (b *MutationBatch) Add(muts ...render.Mutation) {
	b.mutations = append(b.mutations, muts...)
}

// MarkIrreversible clears the pending flag of the given blocks.
func (b *MutationBatch) MarkIrreversible(blockIDs ...string) {
	for _, id := range blockIDs {
		b.mutations = append(b.mutations, render.SetBlockIrreversible(id))
	}
}

// AdvanceCheckpoint moves the sync checkpoint to blockID when the batch commits.
func (b *MutationBatch) AdvanceCheckpoint(blockID string) {
	b.mutations = append(b.mutations, render.UpdateStat(model.StatLastSyncBlockID, blockID))
}

// Len returns the number of buffered mutations.
func (b *MutationBatch) Len() int {
	return len(b.mutations)
}

// Mutations returns the buffered mutations in execution order.
func (b *MutationBatch) Mutations() []render.Mutation {
	return b.mutations
}

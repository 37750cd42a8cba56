package model

// Ownership is the owner state of a token: either held by a set of owners or burned.
type Ownership struct {
	owners []string
	burned bool
}

// OwnedBy returns an active ownership held by the given owners.
func OwnedBy(owners ...string) Ownership {
	return Ownership{owners: append([]string(nil), owners...)}
}

// Burned returns the ownership of a destroyed token.
func Burned() Ownership {
	return Ownership{burned: true}
}

// IsBurned reports whether the token was destroyed.
func (o Ownership) IsBurned() bool {
	return o.burned
}

// Owners returns the current owners; a burned token has none.
func (o Ownership) Owners() []string {
	if o.burned {
		return nil
	}
	return append([]string(nil), o.owners...)
}

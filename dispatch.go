package keccakp

import "sync"

// impl is one of the closed set of permutation implementations. Both entry
// points always come from the same implementation; the dispatcher never mixes
// tiers within a process.
type impl struct {
	name      string
	permute24 func(*State)
	permute12 func(*State)
}

var genericImpl = &impl{
	name:      "generic",
	permute24: func(a *State) { f1600Generic(a, rc[:]) },
	permute12: func(a *State) { f1600Generic(a, rc[12:]) },
}

// binding returns the implementation selected for this process. The probe
// runs exactly once, on first use; concurrent first callers block until it
// completes and all observe the same result. The binding never changes for
// the life of the process.
var binding = sync.OnceValue(probe)

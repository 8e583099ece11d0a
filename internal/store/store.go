// Package store merges the snapshot cache and the database repositories
// behind one facade. Reads prefer the backend and fall back to the last
// snapshot; writes land in the snapshot synchronously and reach the backend
// best-effort. There is no retry and no rollback: the two sides may diverge
// until the next successful read overwrites the snapshot.
package store

// WriteReceipt is the two-phase result of a facade write. Local reports
// whether the snapshot was updated; Remote carries the backend error, nil on
// success. Callers that only care about the optimistic view ignore Remote.
type WriteReceipt struct {
	Local  bool
	Remote error
}

func (r WriteReceipt) RemoteOK() bool { return r.Remote == nil }

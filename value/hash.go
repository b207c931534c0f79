package value

import (
	"sort"

	"github.com/mitchellh/hashstructure"
)

// hashKey is the exported mirror hashstructure.Hash walks by reflection;
// Value's own fields are unexported (see value.go's comment on why), so
// Hash builds this small exported snapshot per Value rather than hashing v
// itself.
type hashKey struct {
	Kind  Kind
	Null  NullType
	B     bool
	I     int64
	F     float64
	S     string
	Elems []uint64
	Keys  []string
	Vals  []uint64
}

// Hash returns a structural hash of v: equal Values (per Equal) are not
// guaranteed to collide across every composite kind (Set/Map element order
// is normalized, but a hash collision is still possible for any hash
// function), so callers needing exact de-duplication must still confirm a
// same-hash pair with Equal. This backs Set's and Map's fast-path
// de-duplication and the Dedup plan node's row-fingerprinting, where a
// collision only costs a redundant Equal call rather than a correctness
// bug.
func Hash(v Value) uint64 {
	hk := hashKey{Kind: v.kind, Null: v.null, B: v.b, I: v.i, F: v.f, S: v.s}
	switch v.kind {
	case KindDate:
		hk.I = int64(v.date.Year)<<16 | int64(v.date.Month)<<8 | int64(v.date.Day)
	case KindTime:
		hk.I = int64(v.time.Hour)<<16 | int64(v.time.Minute)<<8 | int64(v.time.Second)
	case KindDateTime:
		hk.S = v.datetime.String()
	case KindDuration:
		hk.S = v.duration.String()
	case KindList:
		for _, e := range v.list.Elems {
			hk.Elems = append(hk.Elems, Hash(e))
		}
	case KindSet:
		for _, e := range v.set.Elems {
			hk.Elems = append(hk.Elems, Hash(e))
		}
		sort.Slice(hk.Elems, func(i, j int) bool { return hk.Elems[i] < hk.Elems[j] })
	case KindMap:
		keys := append([]string(nil), v.m.keys...)
		sort.Strings(keys)
		for _, k := range keys {
			hk.Keys = append(hk.Keys, k)
			val, _ := v.m.Get(k)
			hk.Vals = append(hk.Vals, Hash(val))
		}
	case KindVertex:
		hk.I = int64(Hash(v.vertex.ID))
		for _, t := range v.vertex.Tags {
			hk.Keys = append(hk.Keys, t.Name)
		}
	case KindEdge:
		hk.S = v.edge.Name
		hk.I = int64(v.edge.Type)<<32 | v.edge.Rank
	case KindPath:
		hk.I = int64(Hash(v.path.Src.ID))
		hk.Elems = make([]uint64, len(v.path.Steps))
		for i, st := range v.path.Steps {
			hk.Elems[i] = Hash(st.Dst.ID)
		}
	case KindDataSet:
		hk.Keys = append([]string(nil), v.dataSet.ColNames...)
		hk.I = int64(len(v.dataSet.Rows))
	}
	h, err := hashstructure.Hash(hk, nil)
	if err != nil {
		return 0
	}
	return h
}

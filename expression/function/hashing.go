package function

import (
	"math"

	"github.com/graphlang/ngqlcore/value"
)

// registerHashing implements hash(). Bool and Int hash to themselves (0/1
// and the integer's own bit pattern); String and Float hash through
// murmurHash64A with seed 0xc70f6907. The seed and algorithm are load
// bearing: callers persist hash() outputs, so the values are pinned by
// regression tests and must never change.
func registerHashing(r *Registry) {
	r.Register(Entry{
		Name: "hash", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			return value.Int(hashValue(args[0]))
		},
	})
}

const murmurSeed uint64 = 0xc70f6907

func hashValue(v value.Value) int64 {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			return 1
		}
		return 0
	case value.KindInt:
		i, _ := v.AsInt()
		return i
	case value.KindFloat:
		f, _ := v.AsFloat()
		bits := math.Float64bits(f)
		buf := make([]byte, 8)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		return int64(murmurHash64A(buf, murmurSeed))
	case value.KindString:
		s, _ := v.AsString()
		return int64(murmurHash64A([]byte(s), murmurSeed))
	default:
		return int64(murmurHash64A([]byte(v.String()), murmurSeed))
	}
}

// murmurHash64A is Austin Appleby's 64-bit MurmurHash2 variant for 64-bit
// platforms, ported directly from the reference C implementation.
func murmurHash64A(data []byte, seed uint64) uint64 {
	const m uint64 = 0xc6a4a7935bd1e995
	const r uint = 47

	h := seed ^ (uint64(len(data)) * m)

	n := len(data) / 8
	for i := 0; i < n; i++ {
		off := i * 8
		k := uint64(data[off]) | uint64(data[off+1])<<8 | uint64(data[off+2])<<16 |
			uint64(data[off+3])<<24 | uint64(data[off+4])<<32 | uint64(data[off+5])<<40 |
			uint64(data[off+6])<<48 | uint64(data[off+7])<<56

		k *= m
		k ^= k >> r
		k *= m

		h ^= k
		h *= m
	}

	tail := data[n*8:]
	switch len(tail) {
	case 7:
		h ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(tail[0])
		h *= m
	}

	h ^= h >> r
	h *= m
	h ^= h >> r

	return h
}

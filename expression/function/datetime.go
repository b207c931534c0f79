package function

import (
	"strconv"
	"strings"
	gotime "time"

	"github.com/graphlang/ngqlcore/value"
)

// registerDateTime implements date/time/datetime/timestamp. Component
// bounds (year in [-32768,32767], month in [1,12], day per leap-year rule,
// hour in [0,23], minute/second in [0,59]) live in value.ValidDate/
// value.ValidTime; out-of-range components yield NullBadData.
func registerDateTime(r *Registry) {
	r.Register(Entry{
		Name: "date", MinArity: 0, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeDate, nil },
		Fn: func(args []value.Value) value.Value {
			if len(args) == 0 {
				now := gotime.Now().UTC()
				return value.DateVal(value.Date{Year: int16(now.Year()), Month: uint8(now.Month()), Day: uint8(now.Day())})
			}
			if n, ok := anyNull(args); ok {
				return n
			}
			return parseDateArg(args[0])
		},
	})

	r.Register(Entry{
		Name: "time", MinArity: 0, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeTime, nil },
		Fn: func(args []value.Value) value.Value {
			if len(args) == 0 {
				now := gotime.Now().UTC()
				return value.TimeVal(value.Time{Hour: uint8(now.Hour()), Minute: uint8(now.Minute()), Second: uint8(now.Second())})
			}
			if n, ok := anyNull(args); ok {
				return n
			}
			return parseTimeArg(args[0])
		},
	})

	r.Register(Entry{
		Name: "datetime", MinArity: 0, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeDateTime, nil },
		Fn: func(args []value.Value) value.Value {
			if len(args) == 0 {
				now := gotime.Now().UTC()
				return value.DateTimeVal(value.DateTime{
					Date: value.Date{Year: int16(now.Year()), Month: uint8(now.Month()), Day: uint8(now.Day())},
					Time: value.Time{Hour: uint8(now.Hour()), Minute: uint8(now.Minute()), Second: uint8(now.Second())},
				})
			}
			if n, ok := anyNull(args); ok {
				return n
			}
			return parseDateTimeArg(args[0])
		},
	})

	r.Register(Entry{
		Name: "timestamp", MinArity: 0, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if len(args) == 0 {
				return value.Int(gotime.Now().UTC().Unix())
			}
			if n, ok := anyNull(args); ok {
				return n
			}
			dtv := parseDateTimeArg(args[0])
			dt, ok := dtv.AsDateTime()
			if !ok {
				return dtv
			}
			t := gotime.Date(int(dt.Date.Year), gotime.Month(dt.Date.Month), int(dt.Date.Day),
				int(dt.Time.Hour), int(dt.Time.Minute), int(dt.Time.Second), 0, gotime.UTC)
			return value.Int(t.Unix())
		},
	})
}

func parseDateArg(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		parts := strings.Split(s, "-")
		if len(parts) != 3 {
			return badData()
		}
		y, e1 := strconv.Atoi(parts[0])
		m, e2 := strconv.Atoi(parts[1])
		d, e3 := strconv.Atoi(parts[2])
		if e1 != nil || e2 != nil || e3 != nil {
			return badData()
		}
		if !value.ValidDate(y, uint8(m), uint8(d)) {
			return badData()
		}
		return value.DateVal(value.Date{Year: int16(y), Month: uint8(m), Day: uint8(d)})
	case value.KindMap:
		m, _ := v.AsMap()
		y, okY := mapInt(m, "year")
		mo, okM := mapIntDefault(m, "month", 1)
		d, okD := mapIntDefault(m, "day", 1)
		if !okY || !okM || !okD {
			return badData()
		}
		if !value.ValidDate(y, uint8(mo), uint8(d)) {
			return badData()
		}
		return value.DateVal(value.Date{Year: int16(y), Month: uint8(mo), Day: uint8(d)})
	default:
		return badType()
	}
}

func parseTimeArg(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return badData()
		}
		h, e1 := strconv.Atoi(parts[0])
		mi, e2 := strconv.Atoi(parts[1])
		se, e3 := strconv.Atoi(parts[2])
		if e1 != nil || e2 != nil || e3 != nil {
			return badData()
		}
		if !value.ValidTime(uint8(h), uint8(mi), uint8(se)) {
			return badData()
		}
		return value.TimeVal(value.Time{Hour: uint8(h), Minute: uint8(mi), Second: uint8(se)})
	case value.KindMap:
		m, _ := v.AsMap()
		h, okH := mapIntDefault(m, "hour", 0)
		mi, okM := mapIntDefault(m, "minute", 0)
		se, okS := mapIntDefault(m, "second", 0)
		if !okH || !okM || !okS {
			return badData()
		}
		if !value.ValidTime(uint8(h), uint8(mi), uint8(se)) {
			return badData()
		}
		return value.TimeVal(value.Time{Hour: uint8(h), Minute: uint8(mi), Second: uint8(se)})
	default:
		return badType()
	}
}

func parseDateTimeArg(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		dParts := strings.SplitN(s, "T", 2)
		if len(dParts) != 2 {
			dParts = strings.SplitN(s, " ", 2)
		}
		if len(dParts) != 2 {
			return badData()
		}
		dv := parseDateArg(value.Str(dParts[0]))
		if dv.IsNull() {
			return dv
		}
		tv := parseTimeArg(value.Str(dParts[1]))
		if tv.IsNull() {
			return tv
		}
		d, _ := dv.AsDate()
		tm, _ := tv.AsTime()
		return value.DateTimeVal(value.DateTime{Date: d, Time: tm})
	case value.KindMap:
		dv := parseDateArg(v)
		if dv.IsNull() {
			return dv
		}
		tv := parseTimeArg(v)
		if tv.IsNull() {
			return tv
		}
		d, _ := dv.AsDate()
		tm, _ := tv.AsTime()
		return value.DateTimeVal(value.DateTime{Date: d, Time: tm})
	default:
		return badType()
	}
}

func mapInt(m *value.Map, key string) (int, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	i, ok := v.AsInt()
	return int(i), ok
}

func mapIntDefault(m *value.Map, key string, def int) (int, bool) {
	v, ok := m.Get(key)
	if !ok {
		return def, true
	}
	i, ok := v.AsInt()
	return int(i), ok
}

package Report

import (
	"github.com/g-m-twostay/counttable/Maps"
	"github.com/tinylib/msgp/msgp"
)

// MarshalMsg implements msgp.Marshaler
func (z *Summary) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, 3)
	o = msgp.AppendString(o, "hash")
	o = msgp.AppendString(o, z.Hash)
	o = msgp.AppendString(o, "stats")
	o = appendStats(o, &z.Stats)
	o = msgp.AppendString(o, "top")
	o = msgp.AppendArrayHeader(o, uint32(len(z.Top)))
	for i := range z.Top {
		o = msgp.AppendMapHeader(o, 3)
		o = msgp.AppendString(o, "key")
		o = msgp.AppendString(o, z.Top[i].Key)
		o = msgp.AppendString(o, "count")
		o = msgp.AppendUint64(o, z.Top[i].Count)
		o = msgp.AppendString(o, "share")
		o = msgp.AppendFloat64(o, z.Top[i].Share)
	}
	return
}

func appendStats(o []byte, s *Maps.Stats) []byte {
	o = msgp.AppendMapHeader(o, 7)
	o = msgp.AppendString(o, "capacity")
	o = msgp.AppendUint64(o, uint64(s.Capacity))
	o = msgp.AppendString(o, "records")
	o = msgp.AppendUint64(o, uint64(s.Records))
	o = msgp.AppendString(o, "used_buckets")
	o = msgp.AppendUint64(o, uint64(s.UsedBuckets))
	o = msgp.AppendString(o, "longest_chain")
	o = msgp.AppendUint64(o, uint64(s.LongestChain))
	o = msgp.AppendString(o, "resizes")
	o = msgp.AppendUint64(o, uint64(s.Resizes))
	o = msgp.AppendString(o, "load_threshold")
	o = msgp.AppendFloat64(o, s.LoadThreshold)
	o = msgp.AppendString(o, "load_factor")
	o = msgp.AppendFloat64(o, s.LoadFactor)
	return o
}

// UnmarshalMsg implements msgp.Unmarshaler. Unknown fields are skipped.
func (z *Summary) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var sz uint32
	sz, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for ; sz > 0; sz-- {
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "hash":
			z.Hash, bts, err = msgp.ReadStringBytes(bts)
		case "stats":
			bts, err = readStats(bts, &z.Stats)
		case "top":
			var n uint32
			n, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			z.Top = make([]Entry, n)
			for i := range z.Top {
				bts, err = readEntry(bts, &z.Top[i])
				if err != nil {
					return
				}
			}
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			return
		}
	}
	o = bts
	return
}

func readEntry(bts []byte, e *Entry) (o []byte, err error) {
	var field []byte
	var sz uint32
	sz, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for ; sz > 0; sz-- {
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "key":
			e.Key, bts, err = msgp.ReadStringBytes(bts)
		case "count":
			e.Count, bts, err = msgp.ReadUint64Bytes(bts)
		case "share":
			e.Share, bts, err = msgp.ReadFloat64Bytes(bts)
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			return
		}
	}
	o = bts
	return
}

func readStats(bts []byte, s *Maps.Stats) (o []byte, err error) {
	var field []byte
	var sz uint32
	sz, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for ; sz > 0; sz-- {
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		var u uint64
		switch msgp.UnsafeString(field) {
		case "capacity":
			u, bts, err = msgp.ReadUint64Bytes(bts)
			s.Capacity = uint(u)
		case "records":
			u, bts, err = msgp.ReadUint64Bytes(bts)
			s.Records = uint(u)
		case "used_buckets":
			u, bts, err = msgp.ReadUint64Bytes(bts)
			s.UsedBuckets = uint(u)
		case "longest_chain":
			u, bts, err = msgp.ReadUint64Bytes(bts)
			s.LongestChain = uint(u)
		case "resizes":
			u, bts, err = msgp.ReadUint64Bytes(bts)
			s.Resizes = uint(u)
		case "load_threshold":
			s.LoadThreshold, bts, err = msgp.ReadFloat64Bytes(bts)
		case "load_factor":
			s.LoadFactor, bts, err = msgp.ReadFloat64Bytes(bts)
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			return
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Summary) Msgsize() (s int) {
	s = msgp.MapHeaderSize + 3*msgp.StringPrefixSize + len("hashstatstop") + msgp.StringPrefixSize + len(z.Hash)
	s += msgp.MapHeaderSize + 7*(msgp.StringPrefixSize+len("load_threshold")) + 5*msgp.Uint64Size + 2*msgp.Float64Size
	s += msgp.ArrayHeaderSize
	for i := range z.Top {
		s += msgp.MapHeaderSize + 3*msgp.StringPrefixSize + len("keycountshare") + msgp.StringPrefixSize + len(z.Top[i].Key) + msgp.Uint64Size + msgp.Float64Size
	}
	return
}

package civiltime

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Wire encoding for embedding the value types in msgpack documents. An
// Instant or Offset is a plain integer; date-times are fixed-shape arrays
// of their components. Decoding goes through the validating constructors,
// so a decoded value carries the same guarantees as a constructed one.

var (
	_ msgpack.CustomEncoder = (*Instant)(nil)
	_ msgpack.CustomDecoder = (*Instant)(nil)
	_ msgpack.CustomEncoder = (*Offset)(nil)
	_ msgpack.CustomDecoder = (*Offset)(nil)
	_ msgpack.CustomEncoder = (*NaiveDateTime)(nil)
	_ msgpack.CustomDecoder = (*NaiveDateTime)(nil)
	_ msgpack.CustomEncoder = (*ZonedDateTime)(nil)
	_ msgpack.CustomDecoder = (*ZonedDateTime)(nil)
)

func (t Instant) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt64(int64(t))
}

func (t *Instant) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	*t = Instant(v)
	return nil
}

func (o Offset) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt32(int32(o))
}

func (o *Offset) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt32()
	if err != nil {
		return err
	}
	decoded, err := NewOffset(int(v))
	if err != nil {
		return err
	}
	*o = decoded
	return nil
}

// NaiveDateTime encodes as [year, month, day, hour, minute, second].
func (d NaiveDateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(6); err != nil {
		return err
	}
	return encodeInts(enc, d.Year, int(d.Month), d.Day, d.Hour, d.Minute, d.Second)
}

func (d *NaiveDateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	var c [6]int
	if err := decodeInts(dec, c[:]); err != nil {
		return err
	}
	decoded, err := NewDateTime(c[0], Month(c[1]), c[2], c[3], c[4], c[5])
	if err != nil {
		return err
	}
	*d = decoded
	return nil
}

// ZonedDateTime encodes as [year, month, day, hour, minute, second, offset].
func (z ZonedDateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(7); err != nil {
		return err
	}
	d := z.DateTime
	return encodeInts(enc, d.Year, int(d.Month), d.Day, d.Hour, d.Minute, d.Second, int(z.Offset))
}

func (z *ZonedDateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	var c [7]int
	if err := decodeInts(dec, c[:]); err != nil {
		return err
	}
	o, err := NewOffset(c[6])
	if err != nil {
		return err
	}
	decoded, err := NewZonedDateTime(o, c[0], Month(c[1]), c[2], c[3], c[4], c[5])
	if err != nil {
		return err
	}
	*z = decoded
	return nil
}

func encodeInts(enc *msgpack.Encoder, vals ...int) error {
	for _, v := range vals {
		if err := enc.EncodeInt(int64(v)); err != nil {
			return err
		}
	}
	return nil
}

func decodeInts(dec *msgpack.Decoder, vals []int) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != len(vals) {
		return fmt.Errorf("invalid encoded date-time: %d elements, wanted %d", n, len(vals))
	}
	for i := range vals {
		v, err := dec.DecodeInt()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	return nil
}

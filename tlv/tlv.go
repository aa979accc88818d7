// Package tlv reads and appends type-length-value records laid out back to
// back in a fixed byte buffer. Each record is a 1-byte type, a 1-byte value
// length, then the value bytes; a record with type 0 and length 0 is the end
// sentinel. A zeroed buffer is therefore an empty, well-formed stream.
package tlv

// header is 1 byte of type plus 1 byte of length.
const headerSize = 2

// MaxValueLen is the largest value a single record can carry.
const MaxValueLen = 0xFF

// Record is a single type-length-value entry. Value aliases the underlying
// buffer: it stays valid for as long as the buffer does, and writing through
// it edits the stream in place.
type Record struct {
	Type  uint8
	Value []byte
}

// Len returns the value length in bytes.
func (r Record) Len() int { return len(r.Value) }

// Vector is a record stream over a caller-supplied buffer. The buffer is
// never reallocated; Append fails once the space runs out.
type Vector struct {
	buf []byte
	end int // offset of the sentinel (or of the unusable tail)
}

// New wraps buf, which must already hold a sentinel-terminated record stream.
func New(buf []byte) *Vector {
	v := &Vector{buf: buf}
	v.end = v.scanEnd()
	return v
}

func (v *Vector) scanEnd() int {
	off := 0
	for off+headerSize <= len(v.buf) {
		typ, length := v.buf[off], int(v.buf[off+1])
		if typ == 0 && length == 0 {
			break
		}
		if off+headerSize+length > len(v.buf) {
			break // malformed tail, treat the stream as ending here
		}
		off += headerSize + length
	}
	return off
}

// Count returns the number of records in the stream. O(n).
func (v *Vector) Count() int {
	n := 0
	it := v.Iter()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// Append writes a record after the existing ones and re-seals the stream
// with a sentinel. It fails, leaving the buffer untouched, when the record
// plus the sentinel would not fit, when the value is longer than
// MaxValueLen, or when the record would be indistinguishable from the
// sentinel (type 0, empty value).
func (v *Vector) Append(typ uint8, value []byte) bool {
	if typ == 0 && len(value) == 0 {
		return false
	}
	if len(value) > MaxValueLen {
		return false
	}
	if v.end+headerSize+len(value)+headerSize > len(v.buf) {
		return false
	}
	v.buf[v.end] = typ
	v.buf[v.end+1] = uint8(len(value))
	copy(v.buf[v.end+headerSize:], value)
	v.end += headerSize + len(value)
	v.buf[v.end] = 0
	v.buf[v.end+1] = 0
	return true
}

// Iter returns a lazy single-pass cursor over the records. Appending while
// a cursor is open is a caller error.
func (v *Vector) Iter() *Iterator {
	return &Iterator{vec: v}
}

// Iterator yields records one at a time, stopping at the sentinel or at the
// end of the buffer.
type Iterator struct {
	vec *Vector
	off int
}

// Next yields the next record; ok is false once the stream is exhausted.
func (it *Iterator) Next() (Record, bool) {
	buf := it.vec.buf
	if it.off+headerSize > len(buf) {
		return Record{}, false
	}
	typ, length := buf[it.off], int(buf[it.off+1])
	if typ == 0 && length == 0 {
		return Record{}, false
	}
	start := it.off + headerSize
	if start+length > len(buf) {
		return Record{}, false
	}
	it.off = start + length
	return Record{Type: typ, Value: buf[start : start+length : start+length]}, true
}

package bmfont

import "unicode/utf8"

// The binary .fnt format is a small, fully-materialized buffer, so
// the parsing buffer is a plain cursor over the input slice; there's
// no streaming or refill logic.

type parsingBuffer struct {
	bytes []byte
	index int // index of processed data within 'bytes'. unprocessed data == len(bytes) - index
}

// Current absolute position within the buffer.
func (self *parsingBuffer) Position() int { return self.index }

// Whether the cursor has reached the end of the buffer.
func (self *parsingBuffer) AtEnd() bool { return self.index >= len(self.bytes) }

func (self *parsingBuffer) readUpTo(newIndex int) error {
	if newIndex <= self.index { panic("readUpTo() misuse") }
	if newIndex > len(self.bytes) {
		return parseErr(ErrTruncated, "premature end of data")
	}
	self.index = newIndex
	return nil
}

func (self *parsingBuffer) AdvanceBytes(n int) error {
	if n <= 0 { panic("AdvanceBytes(N) where N <= 0") }
	return self.readUpTo(self.index + n)
}

func (self *parsingBuffer) ReadUint8() (uint8, error) {
	index := self.index
	err := self.readUpTo(index + 1)
	if err != nil { return 0, err }
	return self.bytes[index], nil
}

func (self *parsingBuffer) ReadUint16() (uint16, error) {
	index := self.index
	err := self.readUpTo(index + 2)
	if err != nil { return 0, err }
	return decodeUint16LE(self.bytes[index : ]), nil
}

// Same bit pattern as ReadUint16, reinterpreted as two's complement.
func (self *parsingBuffer) ReadInt16() (int16, error) {
	value, err := self.ReadUint16()
	return int16(value), err
}

func (self *parsingBuffer) ReadUint32() (uint32, error) {
	index := self.index
	err := self.readUpTo(index + 4)
	if err != nil { return 0, err }
	return decodeUint32LE(self.bytes[index : ]), nil
}

// Reads bytes up to a NUL terminator, consuming the terminator but
// excluding it from the result. The collected bytes must be valid
// utf8 text.
func (self *parsingBuffer) ReadCString() (string, error) {
	index := self.index
	for index < len(self.bytes) {
		if self.bytes[index] == 0 {
			str := string(self.bytes[self.index : index])
			self.index = index + 1
			if !utf8.ValidString(str) {
				return "", parseErr(ErrInvalidEncoding, "string field")
			}
			return str, nil
		}
		index += 1
	}
	return "", parseErr(ErrTruncated, "unterminated string")
}

// Consumes a block type tag and its uint32 content length. The
// format trusts these implicitly; default parsing discards the tag,
// strict parsing checks it against the expected block order.
func (self *parsingBuffer) ReadBlockHeader() (uint8, uint32, error) {
	tag, err := self.ReadUint8()
	if err != nil { return 0, 0, err }
	length, err := self.ReadUint32()
	if err != nil { return 0, 0, err }
	return tag, length, nil
}

package bmfont

import "errors"
import "testing"

func TestParsingBufferReads(t *testing.T) {
	var parser parsingBuffer
	parser.bytes = []byte{
		0x07, // uint8
		0x34, 0x12, // uint16
		0xFF, 0xFF, // int16 (-1)
		0x78, 0x56, 0x34, 0x12, // uint32
		'H', 'i', 0, // cstring
		0, // empty cstring
		0xAA,
	}

	value8, err := parser.ReadUint8()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if value8 != 0x07 { t.Fatalf("expected %d, got %d", 0x07, value8) }

	value16, err := parser.ReadUint16()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if value16 != 0x1234 { t.Fatalf("expected %d, got %d", 0x1234, value16) }

	valueSigned, err := parser.ReadInt16()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if valueSigned != -1 { t.Fatalf("expected %d, got %d", -1, valueSigned) }

	value32, err := parser.ReadUint32()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if value32 != 0x12345678 { t.Fatalf("expected %d, got %d", 0x12345678, value32) }

	str, err := parser.ReadCString()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if str != "Hi" { t.Fatalf("expected \"Hi\", got \"%s\"", str) }

	str, err = parser.ReadCString()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if str != "" { t.Fatalf("expected empty string, got \"%s\"", str) }

	if parser.Position() != 13 {
		t.Fatalf("expected position %d, got %d", 13, parser.Position())
	}
	if parser.AtEnd() { t.Fatalf("expected one unprocessed byte") }
	err = parser.AdvanceBytes(1)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if !parser.AtEnd() { t.Fatalf("expected cursor at end of buffer") }
}

func TestParsingBufferTruncation(t *testing.T) {
	var parser parsingBuffer
	parser.bytes = []byte{0x01}

	_, err := parser.ReadUint16()
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }
	if parser.Position() != 0 { t.Fatalf("failed reads must not consume bytes") }
	_, err = parser.ReadUint32()
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }
	err = parser.AdvanceBytes(2)
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }

	// a string without terminator is a truncation too
	parser = parsingBuffer{ bytes: []byte{'H', 'i'} }
	_, err = parser.ReadCString()
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }
}

func TestParsingBufferBadUtf8(t *testing.T) {
	var parser parsingBuffer
	parser.bytes = []byte{0xFF, 0xFE, 0}
	_, err := parser.ReadCString()
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

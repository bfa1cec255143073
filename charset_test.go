package bmfont

import "errors"
import "testing"

import "golang.org/x/text/encoding/charmap"

func TestCharsetEncoding(t *testing.T) {
	info := Info{ Charset: CharsetANSI }
	table, found := info.CharsetEncoding()
	if !found { t.Fatalf("expected a table for the ansi charset") }
	if table != charmap.Windows1252 {
		t.Fatalf("expected windows-1252, got %v", table)
	}

	info = Info{ Charset: CharsetRussian }
	table, found = info.CharsetEncoding()
	if !found || table != charmap.Windows1251 {
		t.Fatalf("expected windows-1251, got %v", table)
	}

	// unicode fonts don't use the charset id
	info = Info{ Charset: CharsetANSI, Unicode: true }
	_, found = info.CharsetEncoding()
	if found { t.Fatalf("expected no table for unicode fonts") }

	// multi-byte charsets have no single-byte table
	info = Info{ Charset: CharsetShiftJIS }
	_, found = info.CharsetEncoding()
	if found { t.Fatalf("expected no table for shift-jis") }
}

func TestTextCharsInCharset(t *testing.T) {
	font := &Font{
		Info: Info{ Charset: CharsetRussian },
		Chars: map[uint32]Char{
			0xC6: { ID: 0xC6, XAdvance: 9 }, // 'Ж' in windows-1251
		},
	}

	chars, err := font.TextCharsInCharset("Ж")
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if len(chars) != 1 { t.Fatalf("expected %d chars, got %d", 1, len(chars)) }
	if chars[0].ID != 0xC6 { t.Fatalf("expected char id %d, got %d", 0xC6, chars[0].ID) }
	if chars[0].XAdvance != 9 { t.Fatalf("expected xadvance %d, got %d", 9, chars[0].XAdvance) }

	// 'Я' encodes to 0xDF, which has no char record
	_, err = font.TextCharsInCharset("Я")
	if !errors.Is(err, ErrMissingGlyph) { t.Fatalf("expected ErrMissingGlyph, got %v", err) }

	// unicode fonts have no charset table to encode with
	font.Info.Unicode = true
	_, err = font.TextCharsInCharset("Ж")
	if !errors.Is(err, ErrUnknownCharset) { t.Fatalf("expected ErrUnknownCharset, got %v", err) }
}

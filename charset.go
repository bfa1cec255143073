package bmfont

import "fmt"
import "golang.org/x/text/encoding/charmap"

// Charset identifiers for [Info.Charset]. These are the windows
// charset ids that BMFont generators write for non-unicode fonts.
const (
	CharsetANSI        uint8 = 0
	CharsetDefault     uint8 = 1
	CharsetSymbol      uint8 = 2
	CharsetMac         uint8 = 77
	CharsetShiftJIS    uint8 = 128
	CharsetHangul      uint8 = 129
	CharsetJohab       uint8 = 130
	CharsetGB2312      uint8 = 134
	CharsetChineseBig5 uint8 = 136
	CharsetGreek       uint8 = 161
	CharsetTurkish     uint8 = 162
	CharsetVietnamese  uint8 = 163
	CharsetHebrew      uint8 = 177
	CharsetArabic      uint8 = 178
	CharsetBaltic      uint8 = 186
	CharsetRussian     uint8 = 204
	CharsetThai        uint8 = 222
	CharsetEastEurope  uint8 = 238
	CharsetOEM         uint8 = 255
)

// Returns the single-byte code page matching the font's charset id.
// The second result is false for unicode fonts, for multi-byte
// charsets like shift-jis, and for ids with no known table.
func (self *Info) CharsetEncoding() (*charmap.Charmap, bool) {
	if self.Unicode { return nil, false }
	switch self.Charset {
	case CharsetANSI: return charmap.Windows1252, true
	case CharsetEastEurope: return charmap.Windows1250, true
	case CharsetRussian: return charmap.Windows1251, true
	case CharsetGreek: return charmap.Windows1253, true
	case CharsetTurkish: return charmap.Windows1254, true
	case CharsetHebrew: return charmap.Windows1255, true
	case CharsetArabic: return charmap.Windows1256, true
	case CharsetBaltic: return charmap.Windows1257, true
	case CharsetVietnamese: return charmap.Windows1258, true
	case CharsetThai: return charmap.Windows874, true
	case CharsetOEM: return charmap.CodePage437, true
	default:
		return nil, false
	}
}

// Like [Font.TextChars], but the text is first encoded with the
// code page declared by the font's charset id, so non-ascii text
// resolves to the right single-byte character codes. Fails with
// [ErrUnknownCharset] when [Info.CharsetEncoding] has no table for
// the font, and with the encoder's error when the text contains
// runes outside the code page.
func (self *Font) TextCharsInCharset(text string) ([]*Char, error) {
	table, found := self.Info.CharsetEncoding()
	if !found {
		return nil, fmt.Errorf("%w: charset id %d", ErrUnknownCharset, self.Info.Charset)
	}
	encoded, err := table.NewEncoder().Bytes([]byte(text))
	if err != nil { return nil, err }

	chars := make([]*Char, 0, len(encoded))
	for _, value := range encoded {
		code := uint32(value)
		char, hasChar := self.Chars[code]
		if !hasChar { return nil, fmt.Errorf("%w: %d", ErrMissingGlyph, code) }
		chars = append(chars, &char)
	}
	return chars, nil
}

package bmfont

import "fmt"

// A [Font] is the decoded, read-only form of a binary BMFont (.fnt)
// descriptor. To create a [Font], use the [Parse]() function.
//
// All fields are plain values owned by the font. Nothing is mutated
// after parsing, so a single *Font can be shared between goroutines
// for reading without any synchronization.
type Font struct {
	Info Info
	Common Common
	Pages []string // texture file names, one per page index
	Chars map[uint32]Char // keyed by character code
	Kernings []Kerning // nil when the source data has no kernings block
}

// Global font metadata, from the info block. Mostly a record of the
// settings the font was generated with; renderers rarely need more
// than [Info.FontSize] and the style flags.
type Info struct {
	FontSize int16
	Smooth bool
	Unicode bool
	Italic bool
	Bold bool
	FixedHeight bool
	Charset uint8 // windows charset id, meaningful when !Unicode
	StretchH uint16 // font height stretch percentage, 100 == none
	AA uint8 // supersampling level, 1 == none
	PaddingUp, PaddingRight, PaddingDown, PaddingLeft uint8
	SpacingHoriz, SpacingVert uint8
	Outline uint8
	FontName string
}

// Shared rendering parameters, from the common block.
type Common struct {
	LineHeight uint16
	Base uint16 // distance from the top of the line to the baseline
	ScaleW, ScaleH uint16 // texture page dimensions
	Pages uint16 // matches len(Font.Pages) after parsing
	Packed bool // whether glyphs are packed into all texture channels
	AlphaChnl, RedChnl, GreenChnl, BlueChnl uint8
}

// Metrics and atlas location for a single character.
type Char struct {
	ID uint32 // character code, the Font.Chars key
	X, Y uint16 // top-left corner within the texture page
	Width, Height uint16
	XOffset, YOffset int16
	XAdvance int16
	Page uint8 // texture page index
	Chnl uint8 // texture channel bitmask
}

// A kerning adjustment between an ordered pair of character codes.
type Kerning struct {
	First uint32
	Second uint32
	Amount int16
}

// Whether the source data included a kernings block. A font with a
// present but empty block reports true and zero pairs; this is not
// the same as a font with no block at all.
func (self *Font) HasKernings() bool { return self.Kernings != nil }

// Returns the texture file name backing the given page index.
func (self *Font) PageFile(page uint8) (string, bool) {
	if int(page) >= len(self.Pages) { return "", false }
	return self.Pages[page], true
}

// Returns the kerning adjustment between two character codes, or
// zero if no pair matches. The format permits duplicate pairs; the
// last one in source order wins, consistently with duplicate char
// records.
func (self *Font) Kern(first, second uint32) int16 {
	var amount int16
	for i := range self.Kernings {
		if self.Kernings[i].First == first && self.Kernings[i].Second == second {
			amount = self.Kernings[i].Amount
		}
	}
	return amount
}

// Resolves each byte of the given text as a character code in
// [Font.Chars], preserving input order. Any byte without a char
// record fails with [ErrMissingGlyph].
//
// Bytes are resolved individually, not decoded as code points, so
// this is only a correct lookup for single-byte charsets; see
// [Font.TextCharsInCharset] for charset-encoded text.
func (self *Font) TextChars(text string) ([]*Char, error) {
	chars := make([]*Char, 0, len(text))
	for i := 0; i < len(text); i++ {
		code := uint32(text[i])
		char, found := self.Chars[code]
		if !found { return nil, fmt.Errorf("%w: %d", ErrMissingGlyph, code) }
		chars = append(chars, &char)
	}
	return chars, nil
}

package bmfont

import "slices"

// Parses a binary BMFont (.fnt, version 3) descriptor.
//
// The input must be the complete file contents; callers are in
// charge of sourcing the bytes (os.ReadFile, embed, etc). On failure
// no partial font is returned, only an error wrapping one of the
// package's error kinds.
//
// Block type tags and the info/common/pages block lengths are
// skipped without validation, matching the reference parsers for
// the format. See [ParseStrict] if you want them checked.
func Parse(data []byte) (*Font, error) {
	return parse(data, false)
}

// Like [Parse], but the block headers that the format normally
// trusts are validated too: type tags must appear in the expected
// order, declared block lengths must match the block contents, the
// chars and kernings sizes must be exact multiples of their record
// widths, and no data may remain past the last block. Violations
// fail with [ErrBadBlock].
//
// Fonts produced by well-behaved generators parse identically under
// both functions.
func ParseStrict(data []byte) (*Font, error) {
	return parse(data, true)
}

func parse(data []byte, strict bool) (*Font, error) {
	var font Font
	var parser parsingBuffer
	parser.bytes = data

	// --- signature ---
	err := parser.AdvanceBytes(len(signature))
	if err != nil { return nil, err }
	if !slices.Equal(data[0 : len(signature)], signature) {
		return nil, parseErr(ErrBadSignature, "expecting \"BMF\" format version 3")
	}

	// --- info block ---
	blockTag, blockLen, err := parser.ReadBlockHeader()
	if err != nil { return nil, err }
	if strict && blockTag != blockInfo {
		return nil, parseErr(ErrBadBlock, "expecting info block tag")
	}
	blockStart := parser.Position()

	font.Info.FontSize, err = parser.ReadInt16()
	if err != nil { return nil, err }
	bitField, err := parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.Smooth      = (bitField & (1 << 7)) != 0
	font.Info.Unicode     = (bitField & (1 << 6)) != 0
	font.Info.Italic      = (bitField & (1 << 5)) != 0
	font.Info.Bold        = (bitField & (1 << 4)) != 0
	font.Info.FixedHeight = (bitField & (1 << 3)) != 0
	font.Info.Charset, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.StretchH, err = parser.ReadUint16()
	if err != nil { return nil, err }
	font.Info.AA, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.PaddingUp, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.PaddingRight, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.PaddingDown, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.PaddingLeft, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.SpacingHoriz, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.SpacingVert, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.Outline, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Info.FontName, err = parser.ReadCString()
	if err != nil { return nil, err }
	if strict && parser.Position() - blockStart != int(blockLen) {
		return nil, parseErr(ErrBadBlock, "info block length mismatch")
	}

	// --- common block ---
	blockTag, blockLen, err = parser.ReadBlockHeader()
	if err != nil { return nil, err }
	if strict && blockTag != blockCommon {
		return nil, parseErr(ErrBadBlock, "expecting common block tag")
	}
	blockStart = parser.Position()

	font.Common.LineHeight, err = parser.ReadUint16()
	if err != nil { return nil, err }
	font.Common.Base, err = parser.ReadUint16()
	if err != nil { return nil, err }
	font.Common.ScaleW, err = parser.ReadUint16()
	if err != nil { return nil, err }
	font.Common.ScaleH, err = parser.ReadUint16()
	if err != nil { return nil, err }
	font.Common.Pages, err = parser.ReadUint16()
	if err != nil { return nil, err }
	packedField, err := parser.ReadUint8()
	if err != nil { return nil, err }
	font.Common.Packed = (packedField & 1) != 0 // other bits reserved
	font.Common.AlphaChnl, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Common.RedChnl, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Common.GreenChnl, err = parser.ReadUint8()
	if err != nil { return nil, err }
	font.Common.BlueChnl, err = parser.ReadUint8()
	if err != nil { return nil, err }
	if strict && parser.Position() - blockStart != int(blockLen) {
		return nil, parseErr(ErrBadBlock, "common block length mismatch")
	}

	// --- pages block ---
	blockTag, blockLen, err = parser.ReadBlockHeader()
	if err != nil { return nil, err }
	if strict && blockTag != blockPages {
		return nil, parseErr(ErrBadBlock, "expecting pages block tag")
	}
	blockStart = parser.Position()

	font.Pages = make([]string, 0, font.Common.Pages)
	for i := uint16(0); i < font.Common.Pages; i++ {
		page, err := parser.ReadCString()
		if err != nil { return nil, err }
		font.Pages = append(font.Pages, page)
	}
	if strict && parser.Position() - blockStart != int(blockLen) {
		return nil, parseErr(ErrBadBlock, "pages block length mismatch")
	}

	// --- chars block ---
	blockTag, blockLen, err = parser.ReadBlockHeader()
	if err != nil { return nil, err }
	if strict {
		if blockTag != blockChars {
			return nil, parseErr(ErrBadBlock, "expecting chars block tag")
		}
		if blockLen % charRecordSize != 0 {
			return nil, parseErr(ErrBadBlock, "chars block size isn't a multiple of the char record size")
		}
	}

	// trailing bytes of a size that's not an exact multiple of the
	// record width are left unconsumed, as the reference parsers do
	numChars := blockLen / charRecordSize
	if int64(numChars) > int64(len(parser.bytes) - parser.Position()) / charRecordSize {
		return nil, parseErr(ErrTruncated, "chars block size exceeds remaining data")
	}

	chars := make([]Char, 0, numChars)
	for i := uint32(0); i < numChars; i++ {
		var char Char
		char.ID, err = parser.ReadUint32()
		if err != nil { return nil, err }
		char.X, err = parser.ReadUint16()
		if err != nil { return nil, err }
		char.Y, err = parser.ReadUint16()
		if err != nil { return nil, err }
		char.Width, err = parser.ReadUint16()
		if err != nil { return nil, err }
		char.Height, err = parser.ReadUint16()
		if err != nil { return nil, err }
		char.XOffset, err = parser.ReadInt16()
		if err != nil { return nil, err }
		char.YOffset, err = parser.ReadInt16()
		if err != nil { return nil, err }
		char.XAdvance, err = parser.ReadInt16()
		if err != nil { return nil, err }
		char.Page, err = parser.ReadUint8()
		if err != nil { return nil, err }
		char.Chnl, err = parser.ReadUint8()
		if err != nil { return nil, err }
		chars = append(chars, char)
	}

	// --- kernings block (optional) ---
	if !parser.AtEnd() {
		blockTag, blockLen, err = parser.ReadBlockHeader()
		if err != nil { return nil, err }
		if strict {
			if blockTag != blockKernings {
				return nil, parseErr(ErrBadBlock, "expecting kernings block tag")
			}
			if blockLen % kerningRecordSize != 0 {
				return nil, parseErr(ErrBadBlock, "kernings block size isn't a multiple of the kerning record size")
			}
		}

		numPairs := blockLen / kerningRecordSize
		if int64(numPairs) > int64(len(parser.bytes) - parser.Position()) / kerningRecordSize {
			return nil, parseErr(ErrTruncated, "kernings block size exceeds remaining data")
		}

		font.Kernings = make([]Kerning, 0, numPairs)
		for i := uint32(0); i < numPairs; i++ {
			var pair Kerning
			pair.First, err = parser.ReadUint32()
			if err != nil { return nil, err }
			pair.Second, err = parser.ReadUint32()
			if err != nil { return nil, err }
			pair.Amount, err = parser.ReadInt16()
			if err != nil { return nil, err }
			font.Kernings = append(font.Kernings, pair)
		}
	}

	if strict && !parser.AtEnd() {
		return nil, parseErr(ErrBadBlock, "data continues beyond the expected end")
	}

	// --- assembly ---
	// later records overwrite earlier ones that share a char id
	font.Chars = make(map[uint32]Char, len(chars))
	for _, char := range chars {
		font.Chars[char.ID] = char
	}

	return &font, nil
}

package bmfont

// Signature of the binary .fnt format: "BMF" plus the format version.
// Only version 3 is supported.
const FormatVersion = 3
var signature = []byte{'B', 'M', 'F', FormatVersion}

// Fixed record widths, in bytes.
const charRecordSize    = 20 // 4 + 2 + 2 + 2 + 2 + 2 + 2 + 2 + 1 + 1
const kerningRecordSize = 10 // 4 + 4 + 2

// Block type tags, in file order. The format expects parsers to skip
// these without looking; only [ParseStrict] checks them.
const (
	blockInfo     uint8 = 1
	blockCommon   uint8 = 2
	blockPages    uint8 = 3
	blockChars    uint8 = 4
	blockKernings uint8 = 5
)

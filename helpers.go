package bmfont

// LE stands for "little endian". The format fixes the byte order, so
// values are composed byte by byte instead of reinterpreting memory;
// results don't depend on the host byte order.

func decodeUint16LE(buffer []byte) uint16 {
	if len(buffer) < 2 { panic(len(buffer)) }
	return uint16(buffer[0]) | (uint16(buffer[1]) << 8)
}

func decodeUint32LE(buffer []byte) uint32 {
	if len(buffer) < 4 { panic(len(buffer)) }
	return (uint32(buffer[0]) <<  0) | (uint32(buffer[1]) <<  8) |
	       (uint32(buffer[2]) << 16) | (uint32(buffer[3]) << 24)
}

package format

// Align4 returns n aligned up to the next chunk boundary.
//
//	Align4(0) = 0
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + ChunkAlignmentMask) &^ ChunkAlignmentMask
}

// Padding returns the number of zero bytes needed to move n to the next chunk
// boundary.
func Padding(n int) int {
	return Align4(n) - n
}

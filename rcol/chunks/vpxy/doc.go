// Package vpxy implements the VPXY chunk codec: a list of links into a
// trailing resource key table, plus a bounding box and an optional footprint
// reference.
//
// Layout (little-endian):
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------------------
//	 0x00    4    'V' 'P' 'X' 'Y'
//	 0x04    4    Version (4)
//	 0x08    4    Key table offset, relative to 0x0C
//	 0x0C    4    Key table size in bytes
//	 0x10    1    Entry count
//	 ...          Entries:
//	                0x00: u8 id, u8 n, i32 keyIndex[n]
//	                0x01: i32 keyIndex
//	         1    0x02 (restated)
//	        24    Bounding box: min x,y,z, max x,y,z (f32)
//	         4    Reserved, zero
//	         1    Modular flag
//	        (4)   Footprint key index when modular
//	 ...          Key table: i32 count, count * 16-byte TGI keys
//
// Importing the package registers the codec in rcol.DefaultRegistry.
package vpxy

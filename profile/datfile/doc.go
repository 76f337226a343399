// Package datfile reads and writes the tab-delimited .dat tables that carry
// altitude/temperature traces.
//
// Input may be UTF-8 or UTF-16 (with or without a byte order mark, little
// endian when unmarked). Files whose names end in .gz, .zst, .s2 or .lz4 are
// decompressed on read and compressed on write.
package datfile

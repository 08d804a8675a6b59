// Package compress provides whole-payload compression codecs and Block, a compressed
// byte payload that plugs into the octet codec contract.
//
// # Algorithms
//
//   - None: pass-through, zero copy.
//   - Zstd: best ratio. Pure Go by default; libzstd via valyala/gozstd with the gozstd
//     build tag and cgo.
//   - S2: fast, with a decoded-length header.
//   - LZ4: fastest decompression; the block format does not record the decoded length.
//
// Every Codec can decompress with a known output size (DecompressSized), which is
// how Block bounds its allocations.
//
// # Block
//
//	blk, err := compress.NewBlock(compress.Zstd, payload)
//	encoded, err := codec.Marshal(blk)
//
//	var got compress.Block
//	err = got.Decode(r)
//
// A Block is encoded as the algorithm byte, the raw length and the compressed length
// (both varints), followed by the compressed bytes. It is a value like any other
// codec type, so it may be nested inside larger encodings.
//
// # Thread Safety
//
// Codecs are safe for concurrent use. A Block is a value; share it read-only or copy
// it.
package compress

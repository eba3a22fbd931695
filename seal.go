// Optional record envelope: checksum framing and compression.
//
// The list stores opaque bytes and never interprets them; callers who
// want end-to-end integrity or smaller files can wrap each record with
// Seal before appending and Unseal after reading. The envelope is
// [alg:1][flags:1][digest:8][payload], with the 64-bit digest computed
// over the original payload so Unseal verifies after decompression.
package fixedlist

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Digest algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

const (
	sealHeaderSize = 10
	flagCompressed = 1 << 0
)

// Shared encoder/decoder — both are documented as safe for concurrent
// use, and construction is expensive enough that per-call allocation
// would dominate the cost of sealing small records. SpeedFastest because
// sealing sits on the append path; unsealing is typically rarer.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// SealOptions configures the envelope.
type SealOptions struct {
	Algorithm int  // Digest algorithm (default AlgXXHash3)
	Compress  bool // Zstd-compress the payload
}

// Seal wraps payload in an integrity envelope suitable for Append.
func Seal(payload []byte, opts SealOptions) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyRecord
	}
	alg := opts.Algorithm
	if alg == 0 {
		alg = AlgXXHash3
	}
	digest, err := digest64(alg, payload)
	if err != nil {
		return nil, err
	}

	body := payload
	var flags byte
	if opts.Compress {
		body = zstdEncoder.EncodeAll(payload, nil)
		flags |= flagCompressed
	}

	out := make([]byte, sealHeaderSize+len(body))
	out[0] = byte(alg)
	out[1] = flags
	binary.BigEndian.PutUint64(out[2:sealHeaderSize], digest)
	copy(out[sealHeaderSize:], body)
	return out, nil
}

// Unseal unwraps a record produced by Seal, decompressing if needed and
// verifying the digest against the recovered payload.
func Unseal(record []byte) ([]byte, error) {
	if len(record) <= sealHeaderSize {
		return nil, fmt.Errorf("%w: sealed record too short", ErrChecksum)
	}
	alg := int(record[0])
	flags := record[1]
	stored := binary.BigEndian.Uint64(record[2:sealHeaderSize])

	payload := record[sealHeaderSize:]
	if flags&flagCompressed != 0 {
		out, err := zstdDecoder.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
		}
		payload = out
	}

	digest, err := digest64(alg, payload)
	if err != nil {
		return nil, err
	}
	if digest != stored {
		return nil, fmt.Errorf("%w: got %016x, want %016x", ErrChecksum, digest, stored)
	}
	return payload, nil
}

// digest64 computes a 64-bit digest with the selected algorithm.
func digest64(alg int, b []byte) (uint64, error) {
	switch alg {
	case AlgXXHash3:
		return xxh3.Hash(b), nil
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(b)
		return h.Sum64(), nil
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(b)
		return binary.BigEndian.Uint64(h.Sum(nil)), nil
	default:
		return 0, fmt.Errorf("%w: unknown digest algorithm %d", ErrChecksum, alg)
	}
}

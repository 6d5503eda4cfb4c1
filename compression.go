package strmatch

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type Compression byte

const (
	CompressionInvalid Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZ
	CompressionBZip2
)

// Ordered so that detection is deterministic. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
var compressionSigs = []struct {
	compression Compression
	sig         []byte
}{
	{CompressionGzip, []byte{0x1f, 0x8b, 0x08}},
	{CompressionZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{CompressionXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{CompressionZ, []byte{0x1f, 0x9d}},
	{CompressionBZip2, []byte{0x42, 0x5a, 0x68}},
}

// DetectCompression reads the first few bytes from r and checks them against
// the known compression signatures. Streams shorter than the longest
// signature, including empty streams, are reported as uncompressed.
func DetectCompression(r io.Reader) (Compression, error) {
	buff := make([]byte, 6)
	if n, err := io.ReadFull(r, buff); err == io.EOF || err == io.ErrUnexpectedEOF {
		buff = buff[:n]
	} else if err != nil {
		return CompressionInvalid, err
	}

Outer:
	for _, known := range compressionSigs {
		if len(buff) < len(known.sig) {
			continue
		}

		for position := range known.sig {
			if buff[position] != known.sig[position] {
				continue Outer
			}
		}
		return known.compression, nil
	}

	return CompressionNone, nil
}

// MaybeDecompress sniffs the compression type of rs, rewinds it, and wraps it
// in the matching decompressor. A stream with no recognized signature is
// passed through as-is, on the assumption that it is uncompressed text.
func MaybeDecompress(rs io.ReadSeeker) (io.ReadCloser, error) {
	compression, err := DetectCompression(rs)
	if err != nil {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch compression {
	case CompressionGzip:
		return gzip.NewReader(rs)
	case CompressionZip:
		return &nopReadCloser{zipstream.NewReader(rs)}, nil
	case CompressionBZip2:
		return &nopReadCloser{bzip2.NewReader(rs)}, nil
	case CompressionXZ:
		reader, err := xz.NewReader(rs, 0)
		if err != nil {
			return nil, err
		}
		return &nopReadCloser{reader}, nil
	case CompressionZ:
		return zlib.NewReader(rs)
	}

	return &nopReadCloser{rs}, nil
}

// nopReadCloser "upgrades" readers that don't need to be closed
type nopReadCloser struct {
	io.Reader
}

func (c *nopReadCloser) Close() error {
	return nil
}

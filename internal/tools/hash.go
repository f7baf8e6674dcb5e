// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"crypto/md5"  //nolint:gosec // reporting digests, not securing anything
	"crypto/sha1" //nolint:gosec // same
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/tomtom215/osintdesk/internal/metrics"
)

// UnknownFileType is reported when content cannot be identified.
const UnknownFileType = "unknown"

// sniffLen is how much of the content mimetype inspects.
const sniffLen = 3072

// Digests are lowercase hex digests of one upload.
type Digests struct {
	MD5    string `json:"md5"`
	SHA1   string `json:"sha1"`
	SHA256 string `json:"sha256"`
}

// HashResult is the /hash response body.
type HashResult struct {
	Hashes   Digests `json:"hashes"`
	FileType string  `json:"file_type"`
}

// Hasher digests uploads and sniffs their type.
type Hasher struct{}

// NewHasher returns a Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash reads r to EOF. The same content always yields the same result.
func (h *Hasher) Hash(r io.Reader) (HashResult, error) {
	start := time.Now()

	m5, s1, s256 := md5.New(), sha1.New(), sha256.New() //nolint:gosec
	head := &headWriter{max: sniffLen}

	_, err := io.Copy(io.MultiWriter(m5, s1, s256, head), r)
	if err != nil {
		err = &Error{Kind: KindExternalToolFailure, Tool: "hash", Err: fmt.Errorf("read upload: %w", err)}
		metrics.RecordToolInvocation("hash", outcome(err), time.Since(start))
		return HashResult{}, err
	}

	res := HashResult{
		Hashes: Digests{
			MD5:    hex.EncodeToString(m5.Sum(nil)),
			SHA1:   hex.EncodeToString(s1.Sum(nil)),
			SHA256: hex.EncodeToString(s256.Sum(nil)),
		},
		FileType: DetectFileType(head.buf),
	}
	metrics.RecordToolInvocation("hash", "ok", time.Since(start))
	return res, nil
}

// DetectFileType returns the MIME type of content, or UnknownFileType when
// only a generic fallback matches: an opaque byte stream, or text that is
// not a recognised format.
func DetectFileType(content []byte) string {
	if len(content) == 0 {
		return UnknownFileType
	}
	mt := mimetype.Detect(content)
	if mt.Is("application/octet-stream") || mt.Is("text/plain") {
		return UnknownFileType
	}
	return mt.String()
}

// headWriter keeps the first max bytes written to it.
type headWriter struct {
	buf []byte
	max int
}

func (w *headWriter) Write(p []byte) (int, error) {
	if room := w.max - len(w.buf); room > 0 {
		if len(p) < room {
			room = len(p)
		}
		w.buf = append(w.buf, p[:room]...)
	}
	return len(p), nil
}

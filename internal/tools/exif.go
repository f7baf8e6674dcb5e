// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/tomtom215/osintdesk/internal/metrics"
)

// maxUndefinedLen is the largest opaque (UNDEFINED typed) tag rendered as
// text; longer blobs such as MakerNote are summarised by size.
const maxUndefinedLen = 64

// ErrNotImage is wrapped when the upload is not an image at all.
var ErrNotImage = errors.New("file is not a recognised image")

// ExifReader extracts EXIF tags from images.
type ExifReader struct{}

// NewExifReader returns an ExifReader.
func NewExifReader() *ExifReader {
	return &ExifReader{}
}

// Extract returns tag name -> decoded value. An image without EXIF yields
// an empty map; content that is not an image is KindInvalidInput.
func (e *ExifReader) Extract(r io.Reader) (map[string]any, error) {
	start := time.Now()
	md, err := extract(r)
	metrics.RecordToolInvocation("exif", outcome(err), time.Since(start))
	return md, err
}

func extract(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Kind: KindExternalToolFailure, Tool: "exif", Err: fmt.Errorf("read upload: %w", err)}
	}

	x, err := exif.Decode(bytes.NewReader(data))
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		ft := DetectFileType(data)
		if !strings.HasPrefix(ft, "image/") {
			return nil, invalidInput("exif", fmt.Errorf("%w (detected %s)", ErrNotImage, ft))
		}
		return map[string]any{}, nil
	}

	w := tagWalker{out: make(map[string]any)}
	if err := x.Walk(&w); err != nil {
		return nil, &Error{Kind: KindExternalToolFailure, Tool: "exif", Err: err}
	}

	if lat, long, err := x.LatLong(); err == nil {
		w.out["GPSLatitudeDecimal"] = lat
		w.out["GPSLongitudeDecimal"] = long
	}
	return w.out, nil
}

type tagWalker struct {
	out map[string]any
}

func (w *tagWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	w.out[string(name)] = tagValue(tag)
	return nil
}

// tagValue converts a tag to a JSON friendly value: strings stay strings,
// single numbers become numbers, lists become slices.
func tagValue(tag *tiff.Tag) any {
	switch tag.Format() {
	case tiff.StringVal:
		if s, err := tag.StringVal(); err == nil {
			return strings.TrimRight(s, "\x00 ")
		}
	case tiff.IntVal:
		vals := make([]int64, 0, tag.Count)
		for i := 0; i < int(tag.Count); i++ {
			v, err := tag.Int64(i)
			if err != nil {
				break
			}
			vals = append(vals, v)
		}
		if len(vals) == 1 {
			return vals[0]
		}
		if len(vals) > 0 {
			return vals
		}
	case tiff.RatVal:
		vals := make([]float64, 0, tag.Count)
		for i := 0; i < int(tag.Count); i++ {
			num, den, err := tag.Rat2(i)
			if err != nil {
				break
			}
			if den == 0 {
				vals = append(vals, 0)
				continue
			}
			vals = append(vals, float64(num)/float64(den))
		}
		if len(vals) == 1 {
			return vals[0]
		}
		if len(vals) > 0 {
			return vals
		}
	case tiff.FloatVal:
		if v, err := tag.Float(0); err == nil {
			return v
		}
	case tiff.UndefVal:
		if len(tag.Val) > maxUndefinedLen {
			return fmt.Sprintf("<%d bytes>", len(tag.Val))
		}
		if isPrintable(tag.Val) {
			return strings.TrimRight(string(tag.Val), "\x00 ")
		}
	}
	return tag.String()
}

func isPrintable(b []byte) bool {
	for _, c := range bytes.TrimRight(b, "\x00") {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

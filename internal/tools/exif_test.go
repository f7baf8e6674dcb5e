// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// tinyTIFF is a little-endian TIFF with one IFD entry: Make = "Go".
var tinyTIFF = []byte{
	'I', 'I', 0x2A, 0x00, // byte order, magic
	0x08, 0x00, 0x00, 0x00, // IFD0 offset
	0x01, 0x00, // one entry
	0x0F, 0x01, // tag 0x010F Make
	0x02, 0x00, // ASCII
	0x03, 0x00, 0x00, 0x00, // count incl. NUL
	'G', 'o', 0x00, 0x00, // inline value
	0x00, 0x00, 0x00, 0x00, // no next IFD
}

func TestExtract_Tags(t *testing.T) {
	md, err := NewExifReader().Extract(bytes.NewReader(tinyTIFF))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if md["Make"] != "Go" {
		t.Errorf("Make = %#v, want \"Go\" (all: %v)", md["Make"], md)
	}
}

func TestExtract_ImageWithoutExif(t *testing.T) {
	md, err := NewExifReader().Extract(bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(md) != 0 {
		t.Errorf("Extract() = %v, want empty map", md)
	}
	if md == nil {
		t.Error("Extract() should return a non-nil map so it encodes as {}")
	}
}

func TestExtract_NotAnImage(t *testing.T) {
	_, err := NewExifReader().Extract(strings.NewReader("this is a text file, not a photo\n"))
	assertKind(t, err, KindInvalidInput)
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("error %v should wrap ErrNotImage", err)
	}
}

func TestIsPrintable(t *testing.T) {
	if !isPrintable([]byte("0230\x00")) {
		t.Error("ExifVersion style value should be printable")
	}
	if isPrintable([]byte{0x01, 0x02}) {
		t.Error("control bytes are not printable")
	}
}

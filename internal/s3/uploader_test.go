package s3

import (
	"encoding/base64"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("signature-bytes"))
	mime, data, err := DecodeDataURI("data:image/png;base64," + payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("expected image/png, got %q", mime)
	}
	if string(data) != "signature-bytes" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestDecodeDataURIRejectsMalformed(t *testing.T) {
	cases := []string{
		"image/png;base64,abcd",      // missing scheme
		"data:image/png;base64",      // no payload separator
		"data:image/png,plain-text",  // not base64
		"data:image/png;base64,@@@@", // bad encoding
	}
	for _, c := range cases {
		if _, _, err := DecodeDataURI(c); err == nil {
			t.Fatalf("expected error for %q", c)
		}
	}
}

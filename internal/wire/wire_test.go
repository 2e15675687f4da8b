package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func mustDecodeEntry(t *testing.T, b []byte) []byte {
	t.Helper()
	p, err := DecodeEntry(b)
	if err != nil {
		t.Fatalf("DecodeEntry error: %v", err)
	}
	return p
}

func TestEntryRTEmptyAndNonEmpty(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("hello"),
		{0, 1, 2, 3, 4},
	}
	for _, payload := range cases {
		enc := EncodeEntry(payload)
		p := mustDecodeEntry(t, enc)
		if !bytes.Equal(p, payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, payload)
		}
	}
}

func TestEntryRejectsTrailingBytes(t *testing.T) {
	enc := EncodeEntry([]byte("x"))
	enc = append(enc, 0xDE, 0xAD) // add junk
	if _, err := DecodeEntry(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestEntryCorruptHeadersAndLengths(t *testing.T) {
	enc := EncodeEntry([]byte("abc"))

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, err := DecodeEntry(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, err := DecodeEntry(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// wrong kind
	badKind := append([]byte(nil), enc...)
	badKind[5] = kindEntry + 1
	if _, err := DecodeEntry(badKind); err == nil {
		t.Fatalf("expected error on bad kind")
	}

	// vlen too large (announce more than available)
	tooLong := append([]byte(nil), enc...)
	// vlen is at offset 6..9 (4 magic +1 ver +1 kind)
	binary.BigEndian.PutUint32(tooLong[6:10], uint32(len("abc")+1))
	if _, err := DecodeEntry(tooLong); err == nil {
		t.Fatalf("expected error on vlen beyond buffer")
	}

	// truncated buffer
	trunc := enc[:len(enc)-1]
	if _, err := DecodeEntry(trunc); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}

	// plain junk shorter than the header
	if _, err := DecodeEntry([]byte("junk")); err == nil {
		t.Fatalf("expected error on short junk")
	}
}

func TestEntryZeroCopyPayload(t *testing.T) {
	enc := EncodeEntry([]byte("Z"))
	p := mustDecodeEntry(t, enc)
	if len(p) != 1 {
		t.Fatalf("unexpected payload len")
	}
	// mutate payload slice. should mutate underlying enc bytes (zero-copy)
	p[0] = 'Q'
	p2 := mustDecodeEntry(t, enc)
	if p2[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}

package conv

import "testing"

func TestHex(t *testing.T) {
	if got := Hex32(0xFDC60314); got != "0xFDC60314" {
		t.Fatalf("Hex32=%q", got)
	}
	if got := Hex32(0); got != "0x00000000" {
		t.Fatalf("Hex32(0)=%q", got)
	}
	if got := Hex8(0x0c); got != "0x0C" {
		t.Fatalf("Hex8=%q", got)
	}
	if got := U8Hex(make([]byte, 1), 0xFF); len(got) != 0 {
		t.Fatalf("short buffer should yield empty slice, got %q", got)
	}
}

func TestDec(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", 42: "42", -3: "-3"}
	for in, want := range cases {
		if got := Dec(in); got != want {
			t.Fatalf("Dec(%d)=%q want %q", in, got, want)
		}
	}
}

func TestHexN(t *testing.T) {
	if got := HexN(0x809, 3); got != "809" {
		t.Fatalf("HexN=%q", got)
	}
	if got := HexN(0xF, 1); got != "F" {
		t.Fatalf("HexN=%q", got)
	}
	if got := HexN(0x1234, 2); got != "34" {
		t.Fatalf("HexN truncation=%q", got)
	}
}

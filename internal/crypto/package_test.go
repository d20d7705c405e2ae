package crypto

import (
	"errors"
	"strings"
	"testing"
)

func validPackage() *Package {
	return &Package{
		Encrypted: ToBase64URL([]byte("some ciphertext")),
		Salt:      ToBase64URL(make([]byte, SaltSize)),
		IV:        ToBase64URL(make([]byte, NonceSize)),
		Tag:       ToBase64URL(make([]byte, TagSize)),
	}
}

func TestPackage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Package)
		wantErr bool
	}{
		{"valid", func(p *Package) {}, false},
		{"empty ciphertext is allowed", func(p *Package) { p.Encrypted = "" }, false},
		{"salt too short", func(p *Package) { p.Salt = ToBase64URL(make([]byte, SaltSize-1)) }, true},
		{"salt too long", func(p *Package) { p.Salt = ToBase64URL(make([]byte, SaltSize+8)) }, true},
		{"iv wrong size", func(p *Package) { p.IV = ToBase64URL(make([]byte, 16)) }, true},
		{"tag wrong size", func(p *Package) { p.Tag = ToBase64URL(make([]byte, 8)) }, true},
		{"invalid base64", func(p *Package) { p.IV = "%%%" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPackage()
			tt.mutate(p)

			err := p.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidPackage) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidPackage)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestPackage_MarshalRoundTrip(t *testing.T) {
	p := validPackage()

	data, err := p.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// The wire form is a flat JSON record with the four field names the
	// web implementation expects.
	for _, field := range []string{`"encrypted"`, `"salt"`, `"iv"`, `"tag"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized package missing %s field", field)
		}
	}

	parsed, err := UnmarshalPackage(data)
	if err != nil {
		t.Fatalf("UnmarshalPackage() error = %v", err)
	}

	if *parsed != *p {
		t.Errorf("round trip = %+v, want %+v", parsed, p)
	}
}

func TestUnmarshalPackage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"empty object", "{}"},
		{"wrong field sizes", `{"encrypted":"YWJj","salt":"YWJj","iv":"YWJj","tag":"YWJj"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalPackage([]byte(tt.data))
			if !errors.Is(err, ErrInvalidPackage) {
				t.Errorf("UnmarshalPackage() error = %v, want %v", err, ErrInvalidPackage)
			}
		})
	}
}

func TestBase64_LenientDecode(t *testing.T) {
	raw := []byte{0xfb, 0xef, 0xff, 0x01, 0x02}

	variants := []struct {
		name    string
		encoded string
	}{
		{"url-safe no padding", "--__AQI"},
		{"url-safe padded", "--__AQI="},
		{"standard no padding", "++//AQI"},
		{"standard padded", "++//AQI="},
	}

	for _, tt := range variants {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeBase64() error = %v", err)
			}
			if string(decoded) != string(raw) {
				t.Errorf("DecodeBase64() = %x, want %x", decoded, raw)
			}
		})
	}
}

func TestBase64URL_RoundTrip(t *testing.T) {
	raw := []byte{0x00, 0xfb, 0xef, 0xff, 0x41}

	encoded := ToBase64URL(raw)
	if strings.ContainsAny(encoded, "+/=") {
		t.Errorf("ToBase64URL() = %q, want unpadded URL-safe alphabet", encoded)
	}

	decoded, err := FromBase64URL(encoded)
	if err != nil {
		t.Fatalf("FromBase64URL() error = %v", err)
	}
	if string(decoded) != string(raw) {
		t.Errorf("round trip = %x, want %x", decoded, raw)
	}
}

func TestZeroize(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zeroize(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d not zeroed: %d", i, v)
		}
	}
}

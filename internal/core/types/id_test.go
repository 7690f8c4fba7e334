package types

import (
	"encoding/json"
	"testing"
)

func TestPackEntityID(t *testing.T) {
	tests := []struct {
		name  string
		gen   uint16
		index uint32
	}{
		{"All zero", 0, 0},
		{"Simple values", 3, 4},
		{"Max values", maskGen, maskIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PackEntityID(tt.gen, tt.index)

			if id.Generation() != tt.gen {
				t.Errorf("Generation() = %v, want %v", id.Generation(), tt.gen)
			}
			if id.Index() != tt.index {
				t.Errorf("Index() = %v, want %v", id.Index(), tt.index)
			}
		})
	}
}

func TestEntityID_Generation(t *testing.T) {
	tests := []struct {
		name string
		id   EntityID
		want uint16
	}{
		{"Generation zero", EntityID(0), 0},
		{"Generation simple", EntityID(uint64(1) << shiftGen), 1},
		{"Generation ignores reserved bits", EntityID(uint64(0xFFFFFFFF) << shiftGen), maskGen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Generation(); got != tt.want {
				t.Errorf("Generation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntityID_IsNil(t *testing.T) {
	tests := []struct {
		name string
		id   EntityID
		want bool
	}{
		{"Zero is Nil", 0, true},
		{"NilEntityID constant", NilEntityID, true},
		{"First live slot is not Nil", PackEntityID(1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.IsNil(); got != tt.want {
				t.Errorf("IsNil() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntityID_String(t *testing.T) {
	if got := NilEntityID.String(); got != "<nil>" {
		t.Errorf("String() = %q, want <nil>", got)
	}
	if got := PackEntityID(2, 7).String(); got != "7#2" {
		t.Errorf("String() = %q, want 7#2", got)
	}
}

func TestEntityID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    EntityID
		wantErr bool
	}{
		{name: "String ID", data: []byte(`"123"`), want: EntityID(123)},
		{name: "Number ID", data: []byte(`456`), want: EntityID(456)},
		{name: "Empty string", data: []byte(`""`), want: NilEntityID},
		{name: "Null", data: []byte(`null`), want: NilEntityID},
		{name: "Invalid format", data: []byte(`"abc"`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id EntityID
			err := id.UnmarshalJSON(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("UnmarshalJSON() = %v, want %v", id, tt.want)
			}
		})
	}
}

func TestEntityID_JSONRoundTrip(t *testing.T) {
	original := PackEntityID(5, 6)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"21474836486"` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded EntityID
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded != original {
		t.Errorf("JSON round-trip failed: got %v, want %v", decoded, original)
	}
}

// FuzzPackEntityID проверяет, что поля переживают упаковку без потерь.
func FuzzPackEntityID(f *testing.F) {
	f.Add(uint16(0), uint32(0))
	f.Add(uint16(3), uint32(4))
	f.Add(uint16(65535), uint32(4294967295))

	f.Fuzz(func(t *testing.T, gen uint16, index uint32) {
		id := PackEntityID(gen, index)

		if got := id.Generation(); got != gen {
			t.Fatalf("Generation mismatch: got %d, want %d", got, gen)
		}
		if got := id.Index(); got != index {
			t.Fatalf("Index mismatch: got %d, want %d", got, index)
		}
	})
}

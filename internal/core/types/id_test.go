package types

import (
	"encoding/json"
	"testing"
)

func TestPackEntityID(t *testing.T) {
	tests := []struct {
		name  string
		kind  uint8
		team  uint8
		gen   uint16
		index uint32
	}{
		{name: "All zero", kind: 0, team: 0, gen: 0, index: 0},
		{name: "Typical actor", kind: 1, team: 2, gen: 1, index: 42},
		{name: "Max values", kind: maskKind, team: maskTeam, gen: maskGen, index: maskIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PackEntityID(tt.kind, tt.team, tt.gen, tt.index)

			if id.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", id.Kind(), tt.kind)
			}
			if id.Team() != tt.team {
				t.Errorf("Team() = %v, want %v", id.Team(), tt.team)
			}
			if id.Generation() != tt.gen {
				t.Errorf("Generation() = %v, want %v", id.Generation(), tt.gen)
			}
			if id.Index() != tt.index {
				t.Errorf("Index() = %v, want %v", id.Index(), tt.index)
			}
		})
	}
}

func TestEntityID_IsNil(t *testing.T) {
	if !NilEntityID.IsNil() {
		t.Error("NilEntityID must be nil")
	}
	if PackEntityID(1, 0, 0, 1).IsNil() {
		t.Error("packed id must not be nil")
	}
}

func TestEntityID_String(t *testing.T) {
	tests := []struct {
		name string
		id   EntityID
		want string
	}{
		{name: "Nil", id: NilEntityID, want: "<nil>"},
		{name: "Packed", id: PackEntityID(3, 1, 2, 7), want: "[kind=3 team=1 gen=2 idx=7]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntityID_JSONRoundTrip(t *testing.T) {
	original := PackEntityID(maskKind, 4, 9, maskIndex)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if data[0] != '"' {
		t.Fatalf("expected string encoding, got %s", data)
	}

	var decoded EntityID
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip mismatch: %v != %v", decoded, original)
	}
}

func TestEntityID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EntityID
		wantErr bool
	}{
		{name: "Number", input: `42`, want: EntityID(42)},
		{name: "String", input: `"42"`, want: EntityID(42)},
		{name: "Empty string", input: `""`, want: NilEntityID},
		{name: "Garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got EntityID
			err := got.UnmarshalJSON([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllocator_Deterministic(t *testing.T) {
	a := NewAllocator(1)
	b := NewAllocator(1)

	for i := 0; i < 5; i++ {
		idA := a.Next(1, 2)
		idB := b.Next(1, 2)
		if idA != idB {
			t.Fatalf("step %d: %v != %v", i, idA, idB)
		}
		if idA.Index() != uint32(i+1) {
			t.Errorf("step %d: index = %d", i, idA.Index())
		}
	}

	if a.Issued() != 5 {
		t.Errorf("Issued() = %d, want 5", a.Issued())
	}
}

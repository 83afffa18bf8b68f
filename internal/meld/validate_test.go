package meld

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		hand    string
		wantErr error
	}{
		{name: "group of three", kind: Group, hand: "8S 8H 8C"},
		{name: "group of four", kind: Group, hand: "8S 8H 8C 8D"},
		{name: "group too small", kind: Group, hand: "8S 8H", wantErr: ErrGroupSize},
		{name: "group mixed rank", kind: Group, hand: "8S 8H 9C", wantErr: ErrGroupRank},
		{name: "run low ace", kind: Run, hand: "AD 2D 3D"},
		{name: "run high ace", kind: Run, hand: "QD KD AD"},
		{name: "run unordered", kind: Run, hand: "6D 4D 5D"},
		{name: "run ace interior", kind: Run, hand: "KD AD 2D", wantErr: ErrRunNotConsecutive},
		{name: "run with gap", kind: Run, hand: "4D 5D 7D", wantErr: ErrRunNotConsecutive},
		{name: "run mixed suit", kind: Run, hand: "4D 5H 6D", wantErr: ErrRunSuit},
		{name: "run too short", kind: Run, hand: "4D 5D", wantErr: ErrRunSize},
		{name: "unknown kind", kind: Kind(9), hand: "4D 5D 6D", wantErr: ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Meld{Kind: tt.kind, Cards: cards(t, tt.hand)})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_GroupRepeatedSuit(t *testing.T) {
	c := cards(t, "8S 8H")
	if err := validateGroup(append(c, c[0])); !errors.Is(err, ErrGroupSuit) {
		t.Fatalf("Expected ErrGroupSuit, got %v", err)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{Group, Run} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil || back != k {
			t.Fatalf("UnmarshalText(%q) = %v, %v", text, back, err)
		}
	}
	if _, err := Kind(0).MarshalText(); err == nil {
		t.Fatal("Expected an error for the zero kind")
	}
}

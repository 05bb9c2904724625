package types

import (
	"testing"

	"dungeon-arena/internal/core/types/enums"
)

func TestMakeGlyph(t *testing.T) {
	type args struct {
		colorRGB uint32
		char     byte
	}

	tests := []struct {
		name string
		args args
		want Glyph
	}{
		{
			name: "player",
			args: args{colorRGB: 0x00BFFF, char: '@'},
			want: Glyph(0x00BFFF40),
		},
		{
			name: "black space",
			args: args{colorRGB: 0x000000, char: ' '},
			want: Glyph(0x00000020),
		},
		{
			name: "color truncation (ignore alpha)",
			args: args{colorRGB: 0x12345678, char: 'x'},
			want: Glyph(0x34567878),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeGlyph(tt.args.colorRGB, tt.args.char); got != tt.want {
				t.Errorf("MakeGlyph() = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestGlyph_RGB(t *testing.T) {
	r, g, b := MakeGlyph(0xA0B0C0, '#').RGB()
	if r != 0xA0 || g != 0xB0 || b != 0xC0 {
		t.Errorf("RGB() = %02X %02X %02X, want A0 B0 C0", r, g, b)
	}
}

func TestGlyph_String(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want string
	}{
		{"printable", MakeGlyph(0xFFA500, 'A'), "Glyph{char='A', color=#FFA500}"},
		{"newline escape", MakeGlyph(0xFFFFFF, '\n'), "Glyph{char='\\x0A', color=#FFFFFF}"},
		{"del char", MakeGlyph(0x654321, 0x7F), "Glyph{char='\\x7F', color=#654321}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		kind enums.EntityKind
		char byte
	}{
		{enums.KindPlayer, '@'},
		{enums.KindMeleeEnemy, 'm'},
		{enums.KindRangedEnemy, 'r'},
		{enums.KindBoss, 'B'},
		{enums.KindProjectile, '*'},
		{enums.KindLootBox, '$'},
		{enums.KindSpawner, 'O'},
		{enums.KindUnknown, '?'},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := GlyphFor(tt.kind).Char(); got != tt.char {
				t.Errorf("GlyphFor(%v).Char() = %q, want %q", tt.kind, got, tt.char)
			}
		})
	}
}

package cch

import (
	"errors"
	"testing"
)

func TestConfigChange_Byte(t *testing.T) {
	tests := []struct {
		cc       ConfigChange
		expected byte
	}{
		{ConfigChange{NoChange, FrameEventNone}, 0x00},
		{ConfigChange{Seamless, FrameEventNone}, 0x01},
		{ConfigChange{Gapless, FrameEventNone}, 0x02},
		{ConfigChange{Clean, FrameEventNone}, 0x03},
		{ConfigChange{Splice, FrameEventNone}, 0x04},
		{ConfigChange{NoChange, FrameDrop}, 0x10},
		{ConfigChange{Splice, FrameDrop}, 0x14},
		{ConfigChange{Gapless, FrameRepetition}, 0x22},
		{Undefined, 0xFF},
		{Undefined.WithFrame(FrameDrop), 0x1F},
		{Undefined.WithConfig(Splice), 0xF4},
	}

	for _, tt := range tests {
		if got := tt.cc.Byte(); got != tt.expected {
			t.Errorf("%v.Byte() = 0x%02X, want 0x%02X", tt.cc, got, tt.expected)
		}
	}
}

func TestParseConfigChange_AllDefined(t *testing.T) {
	configs := []ConfigEvent{ConfigEventUndefined, NoChange, Seamless, Gapless, Clean, Splice}
	frames := []FrameEvent{FrameEventUndefined, FrameEventNone, FrameDrop, FrameRepetition}

	for _, ce := range configs {
		for _, fe := range frames {
			want := ConfigChange{ce, fe}
			got, err := ParseConfigChange(want.Byte())
			if err != nil {
				t.Errorf("ParseConfigChange(0x%02X) error: %v", want.Byte(), err)
				continue
			}
			if got != want {
				t.Errorf("ParseConfigChange(0x%02X) = %v, want %v", want.Byte(), got, want)
			}
		}
	}
}

func TestParseConfigChange_Reserved(t *testing.T) {
	tests := []struct {
		in   byte
		want error
	}{
		{0x05, ErrReservedConfigEvent},
		{0x0E, ErrReservedConfigEvent},
		{0x30, ErrReservedFrameEvent},
		{0xE0, ErrReservedFrameEvent},
	}

	for _, tt := range tests {
		_, err := ParseConfigChange(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseConfigChange(0x%02X) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestConfigChange_FieldsIndependent(t *testing.T) {
	cc := Undefined.WithFrame(FrameDrop)
	if cc.Config != ConfigEventUndefined {
		t.Errorf("Config = %v, want UNDEFINED", cc.Config)
	}

	cc = ConfigChange{Splice, FrameRepetition}.WithFrame(FrameDrop)
	if cc.Config != Splice || cc.Frame != FrameDrop {
		t.Errorf("got %v, want SPLICE|FRAME_DROP", cc)
	}

	cc = cc.WithConfig(Gapless)
	if cc.Config != Gapless || cc.Frame != FrameDrop {
		t.Errorf("got %v, want GAPLESS|FRAME_DROP", cc)
	}
}

func TestConfigChange_String(t *testing.T) {
	tests := []struct {
		cc       ConfigChange
		expected string
	}{
		{ConfigChange{NoChange, FrameEventNone}, "NO_CHANGE"},
		{ConfigChange{Splice, FrameDrop}, "SPLICE|FRAME_DROP"},
		{ConfigChange{Seamless, FrameRepetition}, "SEAMLESS|FRAME_REPETITION"},
		{Undefined, "UNDEFINED|UNDEFINED"},
	}

	for _, tt := range tests {
		if got := tt.cc.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

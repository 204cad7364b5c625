package device

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  Class
	}{
		{0, Phone},
		{40, Phone},
		{PhoneMaxWidth, Phone},
		{PhoneMaxWidth + 1, Tablet},
		{100, Tablet},
		{TabletMaxWidth, Tablet},
		{TabletMaxWidth + 1, Desktop},
		{200, Desktop},
	}
	for _, tt := range tests {
		if got := Classify(tt.width, 24); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestClassifyIgnoresHeight(t *testing.T) {
	for _, h := range []int{0, 24, 1000, -5} {
		if got := Classify(100, h); got != Tablet {
			t.Errorf("Classify(100, %d) = %v, want Tablet", h, got)
		}
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{Phone, "phone"},
		{Tablet, "tablet"},
		{Desktop, "desktop"},
		{Class(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}

package grid

import "testing"

func TestControllerWidthThreshold(t *testing.T) {
	c := NewController(0)

	if !c.SetSize(800, 600) {
		t.Fatal("initial measurement should publish")
	}

	tests := []struct {
		name  string
		width float64
		want  bool
	}{
		{name: "identical width", width: 800, want: false},
		{name: "sub-pixel jitter up", width: 800.5, want: false},
		{name: "sub-pixel jitter down", width: 799.5, want: false},
		{name: "full pixel change", width: 801, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(0)
			c.SetSize(800, 600)
			if got := c.SetSize(tt.width, 600); got != tt.want {
				t.Errorf("SetSize(%v) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestControllerZeroWidthFallback(t *testing.T) {
	c := NewController(1024)

	if !c.SetSize(0, 500) {
		t.Fatal("fallback substitution should publish a width")
	}
	if got := c.State().ContainerWidth; got != 1024 {
		t.Errorf("ContainerWidth = %v, want fallback 1024", got)
	}

	// A real measurement later replaces the estimate.
	if !c.SetSize(900, 500) {
		t.Error("real measurement should publish")
	}
	if got := c.State().ContainerWidth; got != 900 {
		t.Errorf("ContainerWidth = %v, want 900", got)
	}
}

func TestControllerDefaultFallback(t *testing.T) {
	c := NewController(0)
	c.SetSize(-10, 100)
	if c.State().ContainerWidth <= 0 {
		t.Errorf("ContainerWidth = %v, want positive fallback", c.State().ContainerWidth)
	}
}

func TestControllerHeightAlwaysApplied(t *testing.T) {
	c := NewController(0)
	c.SetSize(800, 600)

	if c.SetSize(800, 700) {
		t.Error("height-only change should not report a width change")
	}
	if got := c.State().ContainerHeight; got != 700 {
		t.Errorf("ContainerHeight = %v, want 700", got)
	}
	c.SetSize(800, -5)
	if got := c.State().ContainerHeight; got != 0 {
		t.Errorf("negative height not clamped: %v", got)
	}
}

func TestControllerScroll(t *testing.T) {
	c := NewController(0)

	if !c.SetScrollTop(120) {
		t.Error("scroll change should report true")
	}
	if c.SetScrollTop(120) {
		t.Error("unchanged scroll should report false")
	}
	c.SetScrollTop(-10)
	if got := c.State().ScrollTop; got != 0 {
		t.Errorf("ScrollTop = %v, want clamp at 0", got)
	}

	c.SetScrollTop(0)
	if got := c.ScrollBy(250, 200); got != 200 {
		t.Errorf("ScrollBy past extent = %v, want 200", got)
	}
	if got := c.ScrollBy(-500, 200); got != 0 {
		t.Errorf("ScrollBy below zero = %v, want 0", got)
	}
}

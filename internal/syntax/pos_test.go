package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name     string
		pos      Pos
		wantStr  string
	}{
		{
			name:    "with filename",
			pos:     NewPos("test.c", 10, 5),
			wantStr: "test.c:10:5",
		},
		{
			name:    "without filename",
			pos:     NewPos("", 10, 5),
			wantStr: "10:5",
		},
		{
			name:    "line 1 col 1",
			pos:     NewPos("main.c", 1, 1),
			wantStr: "main.c:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{
			name:  "valid position",
			pos:   NewPos("test.c", 1, 1),
			valid: true,
		},
		{
			name:  "valid position line 100",
			pos:   NewPos("", 100, 50),
			valid: true,
		},
		{
			name:  "invalid - zero line",
			pos:   NewPos("test.c", 0, 1),
			valid: false,
		},
		{
			name:  "invalid - zero value",
			pos:   Pos{},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosGetters(t *testing.T) {
	pos := NewPos("test.c", 42, 13)

	if got := pos.Line(); got != 42 {
		t.Errorf("Pos.Line() = %d, want 42", got)
	}

	if got := pos.Col(); got != 13 {
		t.Errorf("Pos.Col() = %d, want 13", got)
	}

	if got := pos.Filename(); got != "test.c" {
		t.Errorf("Pos.Filename() = %q, want %q", got, "test.c")
	}
}

func TestNewPos(t *testing.T) {
	pos := NewPos("file.c", 5, 10)

	if pos.filename != "file.c" {
		t.Errorf("filename = %q, want %q", pos.filename, "file.c")
	}
	if pos.line != 5 {
		t.Errorf("line = %d, want 5", pos.line)
	}
	if pos.col != 10 {
		t.Errorf("col = %d, want 10", pos.col)
	}
}

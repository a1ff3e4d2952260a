package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidManifest, "duplicate item id %q", "a")
	want := `INVALID_MANIFEST: duplicate item id "a"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk gone")
	err := Wrap(ErrCodeInternal, cause, "read manifest %s", "lib.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !Is(err, ErrCodeInternal) {
		t.Error("code not matched")
	}
	if Is(err, ErrCodeInvalidManifest) {
		t.Error("wrong code matched")
	}
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "gap must be non-negative")
	if GetCode(err) != ErrCodeInvalidConfig {
		t.Errorf("GetCode = %q", GetCode(err))
	}
	if UserMessage(err) != "gap must be non-negative" {
		t.Errorf("UserMessage = %q", UserMessage(err))
	}

	plain := stderrors.New("plain")
	if GetCode(plain) != "" {
		t.Error("plain errors have no code")
	}
	if UserMessage(plain) != "plain" {
		t.Errorf("UserMessage(plain) = %q", UserMessage(plain))
	}
}

func TestValidateItemID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "normal id", id: "550e8400-e29b-41d4-a716-446655440000", wantErr: false},
		{name: "short id", id: "a", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "control characters", id: "a\x00b", wantErr: true},
		{name: "newline", id: "a\nb", wantErr: true},
		{name: "too long", id: string(make([]byte, 300)), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	if err := ValidateDimensions(0, 0); err != nil {
		t.Errorf("unmeasured dims should pass: %v", err)
	}
	if err := ValidateDimensions(1920, 1080); err != nil {
		t.Errorf("normal dims should pass: %v", err)
	}
	if err := ValidateDimensions(-1, 100); err == nil {
		t.Error("negative width should fail")
	}
	if !Is(ValidateDimensions(10, -10), ErrCodeInvalidItem) {
		t.Error("expected INVALID_ITEM code")
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/vaultpass/vaultpass-web/internal/crypto"
	"github.com/vaultpass/vaultpass-web/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != DefaultLength {
		t.Errorf("expected length %d, got %d", DefaultLength, resp.Length)
	}
	for _, c := range resp.Password {
		if c < 'A' || c > 'Z' {
			t.Errorf("default password should be uppercase only, got %q", resp.Password)
		}
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_SeededGeneratorIsReproducible(t *testing.T) {
	newSvc := func() *GeneratorService {
		src, err := crypto.NewSeededSource([32]byte{9, 9, 9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return NewGeneratorService(crypto.NewGenerator(src))
	}
	req := model.GenerateRequest{Length: 12, Numbers: boolPtr(true), Symbols: boolPtr(true)}

	a, err := newSvc().Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := newSvc().Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Password != b.Password {
		t.Errorf("expected identical passwords, got %q and %q", a.Password, b.Password)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if err != ErrLengthTooShort {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if err != ErrLengthTooLong {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

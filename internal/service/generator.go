package service

import (
	"errors"

	"github.com/vaultpass/vaultpass-web/internal/crypto"
	"github.com/vaultpass/vaultpass-web/internal/model"
)

const (
	DefaultLength = 4
	MinLength     = 4
	MaxLength     = 128
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 4")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses the secure default.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, false),
		Numbers:   boolOrDefault(req.Numbers, false),
		Symbols:   boolOrDefault(req.Symbols, false),
	}

	if opts.Length == 0 {
		opts.Length = DefaultLength
	}
	if opts.Length < MinLength {
		return model.GenerateResponse{}, ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

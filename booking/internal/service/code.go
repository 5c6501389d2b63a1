package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const codeLength = 4

// randomCode takes the leading decimal digits of a random UUID read as a 128-bit integer.
func randomCode() string {
	id := uuid.New()
	digits := new(big.Int).SetBytes(id[:]).String()
	if len(digits) < codeLength {
		digits = strings.Repeat("0", codeLength-len(digits)) + digits
	}
	return digits[:codeLength]
}

func (s *Service) generateCode(ctx context.Context) (string, error) {
	for i := 0; i < s.codeAttempts; i++ {
		code := s.newCode()
		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	code := fmt.Sprintf("%0*d", codeLength, s.now().Unix()%10000)
	s.log.Warn("codigo_unico attempts exhausted, using timestamp", zap.Int("attempts", s.codeAttempts), zap.String("code", code))
	return code, nil
}

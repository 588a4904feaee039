package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	codeAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeSuffixLength = 12
	codePrefix       = "CERT"
)

// CodeGenerator 证书验证码生成策略，注入以便测试时使用确定性实现
type CodeGenerator interface {
	Generate(now time.Time) (string, error)
}

// SecureCodeGenerator 基于 crypto/rand 的默认实现
// 格式: CERT-<yyyyMMdd>-<12位大写字母数字>
type SecureCodeGenerator struct{}

func (SecureCodeGenerator) Generate(now time.Time) (string, error) {
	suffix := make([]byte, codeSuffixLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = codeAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%s-%s-%s", codePrefix, now.UTC().Format("20060102"), string(suffix)), nil
}

package gosnowconn

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
)

// parsePrivateKey decodes an unencrypted PEM private key for key-pair
// authentication. PKCS#8 ("PRIVATE KEY") and PKCS#1 ("RSA PRIVATE KEY")
// blocks are accepted; encrypted keys and passphrases are not supported.
func parsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, configError(ErrCodePrivateKeyParse, "%v does not contain a PEM block", EnvPrivateKey)
	}

	switch block.Type {
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, configError(ErrCodePrivateKeyParse, "invalid PKCS#8 private key: %v", err)
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, configError(ErrCodePrivateKeyParse, "private key is not an RSA key")
		}
		return rsaKey, nil
	case "RSA PRIVATE KEY":
		rsaKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, configError(ErrCodePrivateKeyParse, "invalid PKCS#1 private key: %v", err)
		}
		return rsaKey, nil
	case "ENCRYPTED PRIVATE KEY":
		return nil, configError(ErrCodePrivateKeyParse, "encrypted private keys are not supported")
	}
	return nil, configError(ErrCodePrivateKeyParse, "unsupported PEM block type %q", block.Type)
}

package signature

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"go.mozilla.org/pkcs7"
	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// Filename is the fixed name of the detached signature inside the bundle.
const Filename = "signature"

// signatureFilePermissions is used when writing the signature file.
const signatureFilePermissions = 0o644

// CertificateError indicates unusable signing material: an unreadable
// PKCS#12 container, a wrong password, or a missing trust-chain certificate.
// These are operator-fixed problems, never retried.
type CertificateError struct {
	// Path is the offending certificate file.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *CertificateError) Error() string {
	return fmt.Sprintf("certificate %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CertificateError) Unwrap() error {
	return e.Err
}

// SigningError indicates the signing primitive itself failed.
type SigningError struct {
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *SigningError) Error() string {
	return fmt.Sprintf("produce signature: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *SigningError) Unwrap() error {
	return e.Err
}

// Signer produces detached PKCS#7/CMS signatures using a PKCS#12 identity
// and one trust-chain certificate. All fields are read-only after
// construction, so a single Signer is safe to share across invocations.
type Signer struct {
	// certificateFile is the PKCS#12 container with the leaf cert and key.
	certificateFile string
	// password decrypts the PKCS#12 container.
	password string
	// chainFile is the intermediate (WWDR) certificate, PEM or DER.
	chainFile string
}

// NewSigner creates a signer over the provided signing material paths.
func NewSigner(certificateFile, password, chainFile string) *Signer {
	return &Signer{
		certificateFile: certificateFile,
		password:        password,
		chainFile:       chainFile,
	}
}

// SignFile writes a raw binary (DER) detached signature over the file at
// sourcePath to destinationPath. The signature includes the leaf and the
// trust-chain certificate, with no other chain certificates added.
func (s *Signer) SignFile(sourcePath, destinationPath string) error {
	key, leaf, err := s.loadIdentity()
	if err != nil {
		return err
	}

	chain, err := s.loadChainCertificate()
	if err != nil {
		return err
	}

	contents, err := os.ReadFile(filepath.Clean(sourcePath))
	if err != nil {
		return &SigningError{Err: fmt.Errorf("read signing input: %w", err)}
	}

	signedData, err := pkcs7.NewSignedData(contents)
	if err != nil {
		return &SigningError{Err: err}
	}

	if err = signedData.AddSigner(leaf, key, pkcs7.SignerInfoConfig{}); err != nil {
		return &SigningError{Err: err}
	}

	signedData.AddCertificate(chain)

	// Detached mode: the manifest bytes are not embedded in the CMS structure.
	signedData.Detach()

	raw, err := signedData.Finish()
	if err != nil {
		return &SigningError{Err: err}
	}

	// Signing primitives that shell out to S/MIME tooling hand back a MIME
	// envelope instead of DER; the container format mandates the raw blob.
	if IsEnvelope(raw) {
		if raw, err = ExtractDER(raw); err != nil {
			return &SigningError{Err: err}
		}
	}

	if err = os.WriteFile(destinationPath, raw, signatureFilePermissions); err != nil {
		return &SigningError{Err: fmt.Errorf("write signature: %w", err)}
	}

	return nil
}

// loadIdentity decrypts the PKCS#12 container into a private key and leaf certificate.
func (s *Signer) loadIdentity() (crypto.PrivateKey, *x509.Certificate, error) {
	contents, err := os.ReadFile(filepath.Clean(s.certificateFile))
	if err != nil {
		return nil, nil, &CertificateError{Path: s.certificateFile, Err: err}
	}

	key, leaf, _, err := pkcs12.DecodeChain(contents, s.password)
	if err != nil {
		return nil, nil, &CertificateError{Path: s.certificateFile, Err: err}
	}

	return key, leaf, nil
}

// loadChainCertificate reads the trust-chain certificate, accepting PEM or raw DER.
func (s *Signer) loadChainCertificate() (*x509.Certificate, error) {
	contents, err := os.ReadFile(filepath.Clean(s.chainFile))
	if err != nil {
		return nil, &CertificateError{Path: s.chainFile, Err: err}
	}

	der := contents
	if block, _ := pem.Decode(contents); block != nil {
		der = block.Bytes
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, &CertificateError{Path: s.chainFile, Err: err}
	}

	return cert, nil
}

// Package signature produces the detached PKCS#7/CMS signature over the
// bundle manifest. It decrypts a PKCS#12 identity container, signs in
// binary detached mode with exactly one trust-chain certificate attached,
// and guarantees the on-disk result is raw DER, unwrapping S/MIME
// envelopes produced by external signing tooling when necessary.
package signature

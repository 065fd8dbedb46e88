package fetchurlhttp

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
)

var (
	ErrTLSCertificateRequired = errors.New("both a certificateFile and keyFile are required")
	ErrUnableToAddRootCA      = errors.New("unable to add root CA certificate")

	// strongCipherSuites are the tls.CipherSuite values that are safe for TLS versions less than 1.3
	strongCipherSuites = []uint16{
		tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
		tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	}
)

// ClientCertificate is a client certificate with its key file on the filesystem,
// presented to servers that require mTLS.
type ClientCertificate struct {
	CertificateFile string
	KeyFile         string
}

// Load reads in the certificate and key files from the file system
func (cc ClientCertificate) Load() (tls.Certificate, error) {
	if len(cc.CertificateFile) > 0 && len(cc.KeyFile) > 0 {
		return tls.LoadX509KeyPair(cc.CertificateFile, cc.KeyFile)
	}

	return tls.Certificate{}, ErrTLSCertificateRequired
}

// TLSConfig is the unmarshaled client-side TLS configuration for a transport.
type TLSConfig struct {
	// Certificates are presented to servers that ask for a client certificate.
	Certificates []ClientCertificate

	// RootCAs are files of PEM-encoded certificates that servers are verified against.
	// If unset, the system pool is used.
	RootCAs []string

	// ServerName overrides the hostname used to verify the server's certificate.
	ServerName string

	// InsecureSkipVerify turns off verification of the server's certificate.
	InsecureSkipVerify bool

	// MinVersion is the minimum TLS version.  Defaults to TLS 1.2.
	MinVersion uint16

	// MaxVersion is the maximum TLS version.  If unset, the crypto/tls default is used.
	MaxVersion uint16
}

func (tc *TLSConfig) rootCAs() (*x509.CertPool, error) {
	if len(tc.RootCAs) == 0 {
		return nil, nil
	}

	pool := x509.NewCertPool()
	for _, file := range tc.RootCAs {
		pemCert, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		if !pool.AppendCertsFromPEM(pemCert) {
			return nil, ErrUnableToAddRootCA
		}
	}

	return pool, nil
}

// New constructs a *tls.Config from this configuration.  If this instance is nil,
// it returns nil with no error.
func (tc *TLSConfig) New() (*tls.Config, error) {
	if tc == nil {
		return nil, nil
	}

	config := &tls.Config{
		MinVersion:         tc.MinVersion,
		MaxVersion:         tc.MaxVersion,
		ServerName:         tc.ServerName,
		InsecureSkipVerify: tc.InsecureSkipVerify, //nolint:gosec // the caller set this explicitly
		CipherSuites:       strongCipherSuites,
	}

	if config.MinVersion == 0 {
		config.MinVersion = tls.VersionTLS12
	}

	if config.MaxVersion != 0 && config.MaxVersion < config.MinVersion {
		config.MaxVersion = config.MinVersion
	}

	for _, cc := range tc.Certificates {
		cert, err := cc.Load()
		if err != nil {
			return nil, err
		}

		config.Certificates = append(config.Certificates, cert)
	}

	var err error
	if config.RootCAs, err = tc.rootCAs(); err != nil {
		return nil, err
	}

	return config, nil
}

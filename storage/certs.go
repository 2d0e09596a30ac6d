// Copyright 2024 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package storage

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"os"
)

// CertEnvName holds an extra PEM encoded CA trusted when talking to the
// object store, e.g. for a self-hosted minio or azurite.
const CertEnvName = "CATALOG_STORAGE_CERT"

var getEnv = func(key string) string {
	return os.Getenv(key)
}

func GetRootCAs() *x509.CertPool {
	rootCAs, _ := x509.SystemCertPool()
	if rootCAs == nil {
		rootCAs = x509.NewCertPool()
	}
	if cert := getEnv(CertEnvName); cert != "" {
		rootCAs.AppendCertsFromPEM([]byte(cert))
	}
	return rootCAs
}

// NewHTTPClient returns the client used by the object store SDKs.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		RootCAs: GetRootCAs(),
	}
	return &http.Client{Transport: transport}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type cloudFoundrySource struct {
	lookup func(string) (string, bool)
}

// NewCloudFoundry returns the platform source for Cloud Foundry style
// environments. A non-empty PORT binds the host to 0.0.0.0:$PORT, and the
// VCAP_APPLICATION and VCAP_SERVICES documents are flattened below
// vcap.application and vcap.services so that other keys can reference them:
//
//	storage.db.dsn = ${vcap.services.postgres.0.credentials.uri}
//
// Outside such a platform the source yields nothing.
func NewCloudFoundry() Source {
	return &cloudFoundrySource{lookup: os.LookupEnv}
}

func (s *cloudFoundrySource) Name() string    { return "cloudfoundry" }
func (s *cloudFoundrySource) Precedence() int { return PrecedenceCloudFoundry }

func (s *cloudFoundrySource) Load(_ context.Context, _ Values) ([]Entry, error) {
	var entries []Entry

	if port, ok := s.lookup("PORT"); ok && strings.TrimSpace(port) != "" {
		entries = append(entries,
			Entry{Key: "host.bindAddress", Value: "0.0.0.0"},
			Entry{Key: "host.port", Value: strings.TrimSpace(port)},
		)
	}

	for _, doc := range []struct{ variable, prefix string }{
		{"VCAP_APPLICATION", "vcap.application"},
		{"VCAP_SERVICES", "vcap.services"},
	} {
		raw, ok := s.lookup(doc.variable)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		flattened, err := flattenJSON(doc.prefix, []byte(raw))
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", doc.variable, err)
		}
		entries = append(entries, flattened...)
	}

	return entries, nil
}

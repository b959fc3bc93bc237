/*
 * Copyright (c) 2025, Hubsight (https://hubsight.io).
 *
 * Hubsight licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) writeConfigFile(content string) string {
	path := filepath.Join(suite.T().TempDir(), "deployment.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(suite.T(), err)
	return path
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	path := suite.writeConfigFile(`
server:
  hostname: "localhost"
  port: 8090
github:
  base_url: "https://api.github.com"
  token: "test-token"
  request_timeout: 15
cache:
  local_size: 500
  ttl: 120
  remote:
    enabled: true
    address: "localhost:6379"
    database: 1
auth:
  enabled: true
  header_name: "X-API-Key"
  api_keys:
    - "first-key"
    - "second-key"
rate_limit:
  enabled: true
  requests_per_minute: 120
cors:
  allowed_origins:
    - "https://app.example.com"
`)

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "localhost", cfg.Server.Hostname)
	assert.Equal(suite.T(), 8090, cfg.Server.Port)

	assert.Equal(suite.T(), "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(suite.T(), "test-token", cfg.GitHub.Token)
	assert.Equal(suite.T(), 15, cfg.GitHub.RequestTimeout)

	assert.False(suite.T(), cfg.Cache.Disabled)
	assert.Equal(suite.T(), 500, cfg.Cache.LocalSize)
	assert.Equal(suite.T(), 120, cfg.Cache.TTL)
	assert.True(suite.T(), cfg.Cache.Remote.Enabled)
	assert.Equal(suite.T(), "localhost:6379", cfg.Cache.Remote.Address)
	assert.Equal(suite.T(), 1, cfg.Cache.Remote.Database)

	assert.True(suite.T(), cfg.Auth.Enabled)
	assert.Equal(suite.T(), []string{"first-key", "second-key"}, cfg.Auth.APIKeys)

	assert.True(suite.T(), cfg.RateLimit.Enabled)
	assert.Equal(suite.T(), 120, cfg.RateLimit.RequestsPerMinute)

	assert.Equal(suite.T(), []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	cfg, err := LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := suite.writeConfigFile("server: [not a mapping")

	cfg, err := LoadConfig(path)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

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

import "sync"

// HubsightRuntime holds the runtime configuration for the Hubsight server.
type HubsightRuntime struct {
	HubsightHome string `yaml:"hubsight_home"`
	Config       Config `yaml:"config"`
}

var (
	runtimeConfig *HubsightRuntime
	once          sync.Once
)

// InitializeHubsightRuntime initializes the HubsightRuntime configuration.
func InitializeHubsightRuntime(hubsightHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &HubsightRuntime{
			HubsightHome: hubsightHome,
			Config:       *config,
		}
	})

	return nil
}

// GetHubsightRuntime returns the HubsightRuntime configuration.
func GetHubsightRuntime() *HubsightRuntime {
	if runtimeConfig == nil {
		panic("HubsightRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetHubsightRuntime resets the HubsightRuntime.
// This should only be used in tests to reset the singleton state.
func ResetHubsightRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}

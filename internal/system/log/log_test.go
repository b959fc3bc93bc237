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

package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LogTestSuite struct {
	suite.Suite
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) TestGetLoggerReturnsSingleton() {
	first := GetLogger()
	second := GetLogger()

	assert.NotNil(suite.T(), first)
	assert.Same(suite.T(), first, second)
}

func (suite *LogTestSuite) TestFieldConstructors() {
	testCases := []struct {
		name          string
		field         Field
		expectedKey   string
		expectedValue any
	}{
		{
			name:          "String",
			field:         String("name", "value"),
			expectedKey:   "name",
			expectedValue: "value",
		},
		{
			name:          "Int",
			field:         Int("count", 42),
			expectedKey:   "count",
			expectedValue: 42,
		},
		{
			name:          "Bool",
			field:         Bool("enabled", true),
			expectedKey:   "enabled",
			expectedValue: true,
		},
		{
			name:          "Any",
			field:         Any("payload", []int{1, 2}),
			expectedKey:   "payload",
			expectedValue: []int{1, 2},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedKey, tc.field.Key)
			assert.Equal(t, tc.expectedValue, tc.field.Value)
		})
	}
}

func (suite *LogTestSuite) TestErrorField() {
	err := errors.New("boom")
	field := Error(err)

	assert.Equal(suite.T(), "error", field.Key)
	assert.Equal(suite.T(), err, field.Value)
}

func (suite *LogTestSuite) TestWithReturnsNewLogger() {
	base := GetLogger()
	derived := base.With(String(LoggerKeyComponentName, "Test"))

	assert.NotNil(suite.T(), derived)
	assert.NotSame(suite.T(), base, derived)
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name     string
		input    string
		expected zapcore.Level
	}{
		{
			name:     "EmptyDefaultsToInfo",
			input:    "",
			expected: zapcore.InfoLevel,
		},
		{
			name:     "Debug",
			input:    "debug",
			expected: zapcore.DebugLevel,
		},
		{
			name:     "MixedCase",
			input:    "WARN",
			expected: zapcore.WarnLevel,
		},
		{
			name:     "InvalidFallsBackToInfo",
			input:    "verbose",
			expected: zapcore.InfoLevel,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLogLevel(tc.input))
		})
	}
}

func (suite *LogTestSuite) TestMaskString() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty",
			input:    "",
			expected: "",
		},
		{
			name:     "ShortFullyMasked",
			input:    "abc",
			expected: "***",
		},
		{
			name:     "KeepsFirstAndLast",
			input:    "secret-key",
			expected: "s********y",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskString(tc.input))
		})
	}
}

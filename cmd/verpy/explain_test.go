// Copyright 2024 The University of Queensland
// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kythera-dev/verpy/internal/clierr"
)

func TestExplainResolvable(t *testing.T) {
	path := writeScenario(t, rootOnlyScenario)
	output := captureStdout(t, func() {
		err := ExecuteTest([]string{"explain", path})
		require.NoError(t, err)
	})
	assert.Contains(t, output, "resolvable")
}

func TestExplainUnresolvable(t *testing.T) {
	path := writeScenario(t, `
root:
  - "foo 1.0"
packages:
  foo:
    "1.0":
      - "bar 1.0"
  bar:
    "2.0":
      - "foo 1.0"
`)
	var err error
	output := captureStdout(t, func() {
		err = ExecuteTest([]string{"explain", path})
	})
	require.Error(t, err)
	assert.Equal(t, clierr.ExitUnresolvable, clierr.Code(err))
	assert.Contains(t, output, "unresolvable")
}

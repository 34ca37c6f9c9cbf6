/*
 * logger_test.go, part of tmdstack.
 *
 * Copyright 2026 The tmdstack Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", true)
	require.NoError(t, err)
	log.Debugw("hidden", "formula", "MoS2")
	log.Infow("Built heterostructure", "atoms", 6)
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Built heterostructure", entry["msg"])
	assert.Equal(t, 6.0, entry["atoms"])
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", false)
	require.NoError(t, err)
	log.Debugw("Resolved monolayer", "formula", "WSe2")
	assert.Contains(t, buf.String(), "Resolved monolayer")
	assert.Contains(t, buf.String(), "WSe2")
}

func TestBadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", false)
	assert.Error(t, err)
}
